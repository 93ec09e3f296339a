package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/config"
	"github.com/ssmapp/safety_management_system/internal/models"
)

// NotificationStore - минимальный контракт записи уведомлений
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// RecipientSource - источник получателей по роли
type RecipientSource interface {
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
}

// Worker разбирает очередь событий: пишет уведомления получателям и, если
// настроен WEBHOOK_URL, доставляет подписанный вебхук во внешнюю систему.
type Worker struct {
	redisClient *redis.Client
	store       NotificationStore
	users       RecipientSource
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, store NotificationStore, users RecipientSource, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		store:       store,
		users:       users,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди событий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting notification worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping notification worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop notification event from Redis")
					time.Sleep(w.cfg.WebhookTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal notification event from Redis")
					continue
				}

				w.processEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) processEvent(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithField("event_type", event.Type).WithField("incident_id", event.IncidentID)
	log.Debug("Processing notification event...")

	for _, recipient := range w.recipients(ctx, event) {
		// Инициатор не уведомляет сам себя
		if recipient == event.ActorID {
			continue
		}
		title, message := composeNotification(event)
		incidentID := event.IncidentID
		notification := &models.Notification{
			UserID:    recipient,
			Type:      event.Type,
			Title:     title,
			Message:   message,
			RelatedID: &incidentID,
		}
		if err := w.store.Create(ctx, notification); err != nil {
			log.WithError(err).WithField("recipient", recipient).Error("Failed to store notification")
		}
	}

	w.deliverWebhook(ctx, log, rawPayload)
}

// recipients определяет, кто должен увидеть уведомление о событии
func (w *Worker) recipients(ctx context.Context, event Event) []uuid.UUID {
	switch event.Type {
	case models.NotifyIncidentReported:
		// О новом инциденте узнают ответственные по охране труда
		responsibles, err := w.users.ListByRole(ctx, models.RoleSSMResponsible)
		if err != nil {
			w.logger.WithError(err).Error("Failed to list SSM responsibles for notification")
			return nil
		}
		ids := make([]uuid.UUID, 0, len(responsibles))
		for _, u := range responsibles {
			ids = append(ids, u.ID)
		}
		return ids
	case models.NotifyIncidentStatusChanged:
		return []uuid.UUID{event.ReporterID}
	case models.NotifyTaskAssigned:
		if event.AssigneeID == nil {
			return nil
		}
		return []uuid.UUID{*event.AssigneeID}
	}
	return nil
}

func composeNotification(event Event) (string, string) {
	switch event.Type {
	case models.NotifyIncidentReported:
		return "New incident reported",
			fmt.Sprintf("A new incident (%s) has been reported.", event.IncidentType.Label())
	case models.NotifyIncidentStatusChanged:
		return "Incident status updated",
			fmt.Sprintf("Your incident (%s) is now %s.", event.IncidentType.Label(), event.Status.Label())
	case models.NotifyTaskAssigned:
		return "Incident assigned to you",
			fmt.Sprintf("You are now responsible for an incident (%s).", event.IncidentType.Label())
	}
	return "Safety notification", "A safety event occurred."
}

// deliverWebhook отправляет сырое событие во внешнюю систему с HMAC подписью
// и экспоненциальной задержкой между попытками
func (w *Worker) deliverWebhook(ctx context.Context, log *logrus.Entry, rawPayload string) {
	if w.cfg.WebhookURL == "" {
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
		if w.cfg.WebhookSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.WebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Webhook delivered successfully.")
			return
		}
		log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
