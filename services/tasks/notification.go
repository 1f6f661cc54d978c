package tasks

import (
	"encoding/json"
	"time"

	"travelhub/models"

	"github.com/hibiken/asynq"
)

const TypeNotificationDeliver = "notification:deliver"

// NotificationQueue is the asynq queue notification tasks are published to.
const NotificationQueue = "notifications"

func NewNotificationTask(payload models.NotificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationDeliver, b)
	opts := []asynq.Option{
		asynq.Queue(NotificationQueue),
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

// ParseNotificationTask decodes the payload of a notification task.
func ParseNotificationTask(task *asynq.Task) (models.NotificationPayload, error) {
	var p models.NotificationPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
