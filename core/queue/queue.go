package queue

import (
	"context"

	"github.com/hibiken/asynq"

	"gotix-api/core/config"
	"gotix-api/core/logger"
)

// Enqueuer is the capability services use to push background tasks.
type Enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

type Client struct {
	inner *asynq.Client
}

func RedisOpt() asynq.RedisClientOpt {
	rc := config.Get().Redis
	return asynq.RedisClientOpt{Addr: rc.Addr, Password: rc.Password, DB: rc.DB}
}

func NewClient() *Client {
	return &Client{inner: asynq.NewClient(RedisOpt())}
}

func (c *Client) Enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.inner.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	if err != nil {
		logger.Error("Queue:Enqueue:Error", "type", task.Type(), "error", err)
		return err
	}
	logger.Info("Queue:Enqueue:OK", "type", task.Type(), "id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.inner.Close()
}

// NewWorker builds the background worker that consumes tasks from redis.
func NewWorker() *asynq.Server {
	return asynq.NewServer(RedisOpt(), asynq.Config{Concurrency: 5})
}
