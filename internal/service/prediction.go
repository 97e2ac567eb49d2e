package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/fire_risk_alert/internal/alert"
	"github.com/shenikar/fire_risk_alert/internal/config"
	"github.com/shenikar/fire_risk_alert/internal/metrics"
	"github.com/shenikar/fire_risk_alert/internal/models"
)

// Engine определяет контракт движка инференса. Реализация обязана быть
// безопасной для конкурентных вызовов из нескольких запросов.
//
//go:generate mockgen -source=prediction.go -destination=mocks/mock_prediction.go -package=mocks
type Engine interface {
	Predict(features []float64) (float64, error)
}

// PredictionService определяет контракт бизнес-логики оценки риска возгорания
type PredictionService interface {
	PredictFireRisk(ctx context.Context, obs models.Observation, phone string) (float64, error)
	SendWeatherAlert(ctx context.Context, report models.WeatherReport) error
}

type predictionService struct {
	engine    Engine
	publisher alert.Publisher
	sender    alert.Sender
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewPredictionService(engine Engine, publisher alert.Publisher, sender alert.Sender, logger *logrus.Logger, cfg *config.Config) PredictionService {
	return &predictionService{
		engine:    engine,
		publisher: publisher,
		sender:    sender,
		logger:    logger,
		cfg:       cfg,
	}
}

// PredictFireRisk прогоняет замер через модель и при превышении порога
// ставит SMS-уведомление в очередь. Исход доставки не влияет на ответ.
func (s *predictionService) PredictFireRisk(ctx context.Context, obs models.Observation, phone string) (float64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "PredictFireRisk",
	})

	start := time.Now()
	probability, err := s.engine.Predict(obs.Features())
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.WithError(err).Error("Inference engine call failed")
		return 0, fmt.Errorf("service: could not compute fire risk: %w", err)
	}
	metrics.PredictionsTotal.Inc()

	log = log.WithField("probability", probability)
	log.Info("Fire risk computed")

	if probability >= s.cfg.RiskThreshold {
		event := alert.Event{
			Phone:     phone,
			Message:   alert.FireRiskMessage(probability),
			Timestamp: time.Now().UTC(),
		}
		// Сбой постановки в очередь не должен влиять на ответ клиенту
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to enqueue fire risk alert")
		} else {
			metrics.AlertsEnqueued.Inc()
			log.Info("Fire risk alert enqueued")
		}
	}

	return probability, nil
}

// SendWeatherAlert отправляет информационное SMS о погоде на номер
// получателя из конфигурации
func (s *predictionService) SendWeatherAlert(ctx context.Context, report models.WeatherReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "prediction",
		"method":  "SendWeatherAlert",
	})

	if s.cfg.AlertRecipient == "" {
		log.Warn("Alert recipient is not configured")
		return fmt.Errorf("service: alert recipient is not configured")
	}

	if err := s.sender.Send(s.cfg.AlertRecipient, alert.WeatherMessage(report)); err != nil {
		log.WithError(err).Error("Failed to send weather alert SMS")
		return fmt.Errorf("service: could not send weather alert: %w", err)
	}

	log.Info("Weather alert SMS sent")
	return nil
}
