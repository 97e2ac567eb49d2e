package inference

import (
	"fmt"

	"github.com/dmitryikh/leaves"

	"github.com/shenikar/fire_risk_alert/internal/models"
)

// GBTEngine - обертка над предобученным градиентным бустингом.
// Модель загружается один раз при старте процесса и далее используется
// только на чтение: конкурентные вызовы Predict безопасны.
type GBTEngine struct {
	ensemble *leaves.Ensemble
}

// Load загружает артефакт модели с диска. Ошибка загрузки фатальна
// для процесса: без модели сервис не должен принимать запросы.
func Load(path string) (*GBTEngine, error) {
	// true - применять трансформацию модели (сигмоиду для binary:logistic),
	// чтобы получать вероятность, а не сырой скор
	ensemble, err := leaves.XGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact %q: %w", path, err)
	}

	return &GBTEngine{ensemble: ensemble}, nil
}

// Predict возвращает вероятность возгорания для вектора признаков
func (e *GBTEngine) Predict(features []float64) (float64, error) {
	if len(features) != models.NumFeatures {
		return 0, fmt.Errorf("expected %d features, got %d", models.NumFeatures, len(features))
	}

	// 0 - использовать все деревья ансамбля
	return e.ensemble.PredictSingle(features, 0), nil
}
