package alert

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/fire_risk_alert/internal/metrics"
)

const popRetryDelay = 5 * time.Second

// Worker - фоновый обработчик очереди SMS-уведомлений.
// Семантика fire-and-forget: сбой отправки логируется и проглатывается,
// повторных попыток нет.
type Worker struct {
	redisClient *redis.Client
	sender      Sender
	logger      *logrus.Logger
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, sender Sender, logger *logrus.Logger) *Worker {
	return &Worker{
		redisClient: redisClient,
		sender:      sender,
		logger:      logger,
	}
}

// Start запускает горутину для обработки очереди уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting SMS alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping SMS alert worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop alert event from Redis")
					time.Sleep(popRetryDelay) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event Event
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal alert event from Redis")
					continue
				}

				w.process(event)
			}
		}
	}()
}

func (w *Worker) process(event Event) {
	log := w.logger.WithField("phone", event.Phone)
	log.Debug("Processing SMS alert event...")

	if err := w.sender.Send(event.Phone, event.Message); err != nil {
		metrics.AlertsFailed.Inc()
		log.WithError(err).Error("Failed to send SMS alert")
		return
	}

	metrics.AlertsSent.Inc()
	log.Info("SMS alert delivered successfully.")
}
