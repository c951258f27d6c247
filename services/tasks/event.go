package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"hotelops/config"
	"hotelops/models"

	"github.com/hibiken/asynq"
)

// TypeSourceWrite is the task type carrying one source-collection write
// (before/after snapshots) to the stats worker.
const TypeSourceWrite = "stats:source_write"

// NewSourceWriteTask builds the asynq task for one write event.
func NewSourceWriteTask(evt models.SourceWriteEvent) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(evt)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSourceWrite, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("default")}

	return task, opts, nil
}

// Publisher hands write events to the delivery layer. The delivery contract
// is at-least-once and unordered; the worker deduplicates by event ID.
type Publisher interface {
	PublishSourceWrite(ctx context.Context, evt models.SourceWriteEvent) error
}

// AsynqPublisher enqueues write events onto the Redis-backed asynq queue.
type AsynqPublisher struct {
	client *asynq.Client
}

// NewAsynqPublisher creates a publisher against the configured event queue.
func NewAsynqPublisher() *AsynqPublisher {
	return &AsynqPublisher{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisEventQueueDB,
		}),
	}
}

func (p *AsynqPublisher) PublishSourceWrite(ctx context.Context, evt models.SourceWriteEvent) error {
	task, opts, err := NewSourceWriteTask(evt)
	if err != nil {
		return fmt.Errorf("failed to build source write task: %w", err)
	}
	if _, err := p.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue source write task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}
