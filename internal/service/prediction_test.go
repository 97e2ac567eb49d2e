package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/fire_risk_alert/internal/alert"
	alertmocks "github.com/shenikar/fire_risk_alert/internal/alert/mocks"
	"github.com/shenikar/fire_risk_alert/internal/config"
	"github.com/shenikar/fire_risk_alert/internal/models"
	"github.com/shenikar/fire_risk_alert/internal/service"
	"github.com/shenikar/fire_risk_alert/internal/service/mocks"
)

// newTestPredictionService создает сервис с мокированными зависимостями
func newTestPredictionService(t *testing.T) (service.PredictionService, *mocks.MockEngine, *alertmocks.MockPublisher, *alertmocks.MockSender) {
	ctrl := gomock.NewController(t)
	mockEngine := mocks.NewMockEngine(ctrl)
	mockPublisher := alertmocks.NewMockPublisher(ctrl)
	mockSender := alertmocks.NewMockSender(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RiskThreshold:  0.8,
		AlertRecipient: "+15550001111",
	}

	svc := service.NewPredictionService(mockEngine, mockPublisher, mockSender, logger, cfg)
	return svc, mockEngine, mockPublisher, mockSender
}

func testObservation() models.Observation {
	return models.Observation{
		Temperature:      25,
		RelativeHumidity: 40,
		WindSpeed:        5,
		Rain:             0,
		WindDirection:    180,
	}
}

func TestPredictFireRisk_HighRisk_EnqueuesAlert(t *testing.T) {
	svc, mockEngine, mockPublisher, _ := newTestPredictionService(t)

	mockEngine.EXPECT().Predict(gomock.Any()).Return(0.95, nil).Times(1)
	mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event alert.Event) error {
			assert.Equal(t, "+10000000000", event.Phone)
			assert.Equal(t, "Fire Risk Alert! Probability: 95.00% - Stay safe!", event.Message)
			return nil
		}).Times(1)

	probability, err := svc.PredictFireRisk(context.Background(), testObservation(), "+10000000000")
	require.NoError(t, err)
	assert.Equal(t, 0.95, probability)
}

func TestPredictFireRisk_LowRisk_NoAlert(t *testing.T) {
	svc, mockEngine, mockPublisher, _ := newTestPredictionService(t)

	mockEngine.EXPECT().Predict(gomock.Any()).Return(0.5, nil).Times(1)
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0) // Порог не превышен

	probability, err := svc.PredictFireRisk(context.Background(), testObservation(), "+10000000000")
	require.NoError(t, err)
	assert.Equal(t, 0.5, probability)
}

func TestPredictFireRisk_AtThreshold_EnqueuesAlert(t *testing.T) {
	svc, mockEngine, mockPublisher, _ := newTestPredictionService(t)

	// Порог включительный: ровно 0.8 тоже считается опасным
	mockEngine.EXPECT().Predict(gomock.Any()).Return(0.8, nil).Times(1)
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	probability, err := svc.PredictFireRisk(context.Background(), testObservation(), "+10000000000")
	require.NoError(t, err)
	assert.Equal(t, 0.8, probability)
}

func TestPredictFireRisk_PublishError_DoesNotAffectResult(t *testing.T) {
	svc, mockEngine, mockPublisher, _ := newTestPredictionService(t)

	mockEngine.EXPECT().Predict(gomock.Any()).Return(0.9, nil).Times(1)
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis is down")).Times(1)

	// Сбой очереди уведомлений не должен влиять на результат прогноза
	probability, err := svc.PredictFireRisk(context.Background(), testObservation(), "+10000000000")
	require.NoError(t, err)
	assert.Equal(t, 0.9, probability)
}

func TestPredictFireRisk_EngineError(t *testing.T) {
	svc, mockEngine, mockPublisher, _ := newTestPredictionService(t)

	mockEngine.EXPECT().Predict(gomock.Any()).Return(0.0, errors.New("bad feature vector")).Times(1)
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.PredictFireRisk(context.Background(), testObservation(), "+10000000000")
	require.Error(t, err)
}

func TestPredictFireRisk_FeatureOrder(t *testing.T) {
	svc, mockEngine, _, _ := newTestPredictionService(t)

	obs := models.Observation{
		Temperature:      24.96,
		RelativeHumidity: 70,
		WindSpeed:        3.11,
		Rain:             0.19,
		WindDirection:    57,
	}

	mockEngine.EXPECT().
		Predict(gomock.Any()).
		DoAndReturn(func(features []float64) (float64, error) {
			// Порядок признаков — жесткий контракт с моделью
			assert.Equal(t, []float64{24.96, 70, 3.11, 0.19, 57}, features)
			return 0.1, nil
		}).Times(1)

	_, err := svc.PredictFireRisk(context.Background(), obs, "+10000000000")
	require.NoError(t, err)
}

func TestSendWeatherAlert_Success(t *testing.T) {
	svc, _, _, mockSender := newTestPredictionService(t)

	location := "Campinas"
	temperature := 25.0
	humidity := 40.0
	windSpeed := 5.0
	windDirection := 180.0
	report := models.WeatherReport{
		Location:      &location,
		Temperature:   &temperature,
		Humidity:      &humidity,
		WindSpeed:     &windSpeed,
		WindDirection: &windDirection,
	}

	expectedMessage := "Weather Alert!\n" +
		"Location: Campinas\n" +
		"Temperature: 25°C\n" +
		"Humidity: 40%\n" +
		"Wind Speed: 5 m/s\n" +
		"Wind Direction: 180°"

	mockSender.EXPECT().Send("+15550001111", expectedMessage).Return(nil).Times(1)

	err := svc.SendWeatherAlert(context.Background(), report)
	require.NoError(t, err)
}

func TestSendWeatherAlert_MissingFieldsRenderedAsNA(t *testing.T) {
	svc, _, _, mockSender := newTestPredictionService(t)

	expectedMessage := "Weather Alert!\n" +
		"Location: Unknown Location\n" +
		"Temperature: N/A°C\n" +
		"Humidity: N/A%\n" +
		"Wind Speed: N/A m/s\n" +
		"Wind Direction: N/A°"

	mockSender.EXPECT().Send("+15550001111", expectedMessage).Return(nil).Times(1)

	err := svc.SendWeatherAlert(context.Background(), models.WeatherReport{})
	require.NoError(t, err)
}

func TestSendWeatherAlert_SenderError(t *testing.T) {
	svc, _, _, mockSender := newTestPredictionService(t)

	mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("provider rejected")).Times(1)

	err := svc.SendWeatherAlert(context.Background(), models.WeatherReport{})
	require.Error(t, err)
}

func TestSendWeatherAlert_NoRecipientConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEngine := mocks.NewMockEngine(ctrl)
	mockPublisher := alertmocks.NewMockPublisher(ctrl)
	mockSender := alertmocks.NewMockSender(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{RiskThreshold: 0.8} // Получатель не задан

	svc := service.NewPredictionService(mockEngine, mockPublisher, mockSender, logger, cfg)

	mockSender.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	err := svc.SendWeatherAlert(context.Background(), models.WeatherReport{})
	require.Error(t, err)
}
