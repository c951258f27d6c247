package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hotelops/config"
	"hotelops/models"
	"hotelops/services/stats"
	"hotelops/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitStatsWorker runs the async stats worker in background. It consumes
// source-write events and applies the resulting deltas to the dashboard
// stats document. Delivery is at-least-once and unordered; dedupe makes a
// redelivered event ID a no-op.
func InitStatsWorker(statsSvc stats.Service, dedupe Deduper, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSourceWrite, NewSourceWriteHandler(statsSvc, dedupe, logger))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		logger.Info("starting stats worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Sugar().Errorf("stats worker attempt %d/%d failed: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					logger.Fatal("stats worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// NewSourceWriteHandler builds the trigger body the worker mounts. Failures
// applying the delta are logged and absorbed: the task reports success so
// the queue does not redeliver, and the drift waits for the next
// reconciliation run. Only a payload that cannot be decoded is returned as
// an error (retrying it can never succeed either, but it signals a producer
// bug loudly).
func NewSourceWriteHandler(statsSvc stats.Service, dedupe Deduper, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var evt models.SourceWriteEvent
		if err := json.Unmarshal(task.Payload(), &evt); err != nil {
			logger.Error("invalid source write payload", zap.Error(err))
			return fmt.Errorf("invalid source write payload: %w", err)
		}

		first, err := dedupe.Claim(ctx, evt.EventID)
		if err != nil {
			logger.Warn("dedupe claim failed, proceeding",
				zap.String("eventId", evt.EventID), zap.Error(err))
		} else if !first {
			logger.Info("skipping duplicate event delivery",
				zap.String("eventId", evt.EventID),
				zap.String("collection", evt.Collection))
			return nil
		}

		delta, err := DeltaForEvent(evt)
		if err != nil {
			logger.Error("failed to compute delta for event",
				zap.String("eventId", evt.EventID),
				zap.String("collection", evt.Collection), zap.Error(err))
			return nil
		}
		if delta.Empty() {
			return nil
		}

		// ApplyDelta logs its own failure; the event is done either way.
		_ = statsSvc.ApplyDelta(ctx, delta)
		return nil
	}
}

// DeltaForEvent decodes the event's snapshots and dispatches to the
// aggregator for its source collection. An unknown collection yields an
// empty delta.
func DeltaForEvent(evt models.SourceWriteEvent) (stats.Delta, error) {
	switch evt.Collection {
	case models.CollectionBookings:
		var before, after *models.Booking
		if err := decodeSnapshots(evt, &before, &after); err != nil {
			return nil, err
		}
		return stats.BookingDelta(before, after), nil
	case models.CollectionRooms:
		var before, after *models.Room
		if err := decodeSnapshots(evt, &before, &after); err != nil {
			return nil, err
		}
		return stats.RoomDelta(before, after), nil
	case models.CollectionStaff:
		var before, after *models.Staff
		if err := decodeSnapshots(evt, &before, &after); err != nil {
			return nil, err
		}
		return stats.StaffDelta(before, after), nil
	case models.CollectionInventory:
		var before, after *models.InventoryItem
		if err := decodeSnapshots(evt, &before, &after); err != nil {
			return nil, err
		}
		return stats.InventoryDelta(before, after), nil
	default:
		return stats.Delta{}, nil
	}
}

// decodeSnapshots unmarshals the before/after images into typed documents,
// leaving the pointer nil when the snapshot is absent.
func decodeSnapshots(evt models.SourceWriteEvent, before, after interface{}) error {
	if len(evt.Before) > 0 {
		if err := json.Unmarshal(evt.Before, before); err != nil {
			return fmt.Errorf("decode before snapshot: %w", err)
		}
	}
	if len(evt.After) > 0 {
		if err := json.Unmarshal(evt.After, after); err != nil {
			return fmt.Errorf("decode after snapshot: %w", err)
		}
	}
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[StatsWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
