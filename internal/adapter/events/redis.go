// Package events publishes alert lifecycle events to a Redis stream.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/heartmarshall/shelfwatch-backend/internal/config"
	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
)

// NewRedisClient creates a client for the configured Redis server.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisPublisher appends alert events to a capped Redis stream.
type RedisPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedisPublisher creates a publisher writing to cfg.AlertsStream.
func NewRedisPublisher(client *redis.Client, cfg config.RedisConfig) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		stream: cfg.AlertsStream,
		maxLen: cfg.StreamMaxLen,
	}
}

// PublishAlertEvent XADDs the event. The stream entry carries the event name,
// the ids used for routing, and the full JSON payload under "data".
func (p *RedisPublisher) PublishAlertEvent(ctx context.Context, event domain.AlertEvent) error {
	values, err := streamValues(event)
	if err != nil {
		return err
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func streamValues(event domain.AlertEvent) (map[string]any, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal alert event: %w", err)
	}

	return map[string]any{
		"event":    event.Event,
		"alert_id": event.AlertID.String(),
		"store_id": event.StoreID.String(),
		"data":     string(data),
	}, nil
}

// Noop discards events. Used when no Redis server is configured.
type Noop struct{}

func (Noop) PublishAlertEvent(context.Context, domain.AlertEvent) error { return nil }

func (Noop) Ping(context.Context) error { return nil }
