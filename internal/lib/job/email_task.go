package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskApplicationReceived = "email:application_received"
)

// ApplicationReceivedPayload carries everything the worker needs, so the
// task never reads the database.
type ApplicationReceivedPayload struct {
	To            string `json:"to"`
	ApplicationID int64  `json:"application_id"`
	BusinessName  string `json:"business_name"`
	ProjectTitle  string `json:"project_title"`
	DeveloperName string `json:"developer_name"`
	CoverLetter   string `json:"cover_letter,omitempty"`
}

func NewApplicationReceivedTask(p ApplicationReceivedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskApplicationReceived,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}
