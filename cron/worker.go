package cron

import (
	"context"
	"fmt"
	"time"

	"travelhub/models"
	"travelhub/services/tasks"
	"travelhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Deliverer persists a queued notification.
type Deliverer interface {
	Deliver(ctx context.Context, p models.NotificationPayload) error
}

// InitNotificationWorker runs the notification consumer in the background
// until ctx is cancelled. The returned server is shut down by the caller.
func InitNotificationWorker(ctx context.Context, deliverer Deliverer, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.NotificationQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationDeliver, handleNotificationTask(deliverer, logger))

	// Start Redis health monitor
	go monitorRedisConnection(ctx, logger)

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting notification worker", zap.String("queue", tasks.NotificationQueue))
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("Failed to start notification worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Notification worker gave up; queued notifications will wait")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()

	return srv
}

func handleNotificationTask(deliverer Deliverer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseNotificationTask(task)
		if err != nil {
			logger.Error("Invalid notification payload", zap.Error(err))
			return fmt.Errorf("decode notification payload: %v: %w", err, asynq.SkipRetry)
		}
		if p.RecipientID == "" {
			logger.Warn("Dropping notification without recipient", zap.String("type", string(p.Type)))
			return nil
		}

		if err := deliverer.Deliver(ctx, p); err != nil {
			logger.Error("Failed to deliver notification",
				zap.String("recipientId", p.RecipientID), zap.String("type", string(p.Type)), zap.Error(err))
			return err
		}
		logger.Debug("Notification delivered",
			zap.String("recipientId", p.RecipientID), zap.String("type", string(p.Type)))
		return nil
	}
}

// monitorRedisConnection pings the queue database periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	client := utils.NewQueueRedisClient()
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Queue Redis connection lost", zap.Error(err))
			}
		}
	}
}
