package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/ssmapp/safety_management_system/internal/models"
)

const (
	eventQueueKey = "notification_events"
)

// Event - событие жизненного цикла инцидента, помещаемое в очередь уведомлений
type Event struct {
	Type         models.NotificationType `json:"type"`
	IncidentID   uuid.UUID               `json:"incident_id"`
	IncidentType models.IncidentType     `json:"incident_type"`
	Status       models.IncidentStatus   `json:"status,omitempty"`
	ActorID      uuid.UUID               `json:"actor_id"`
	ReporterID   uuid.UUID               `json:"reporter_id"`
	AssigneeID   *uuid.UUID              `json:"assignee_id,omitempty"`
	OccurredAt   time.Time               `json:"occurred_at"`
}

// EventPublisher - интерфейс для публикации событий уведомлений
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
