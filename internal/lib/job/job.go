// Package job runs background work on asynq, backed by Redis.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/devmatch/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// QueueDefault is the only queue tasks are enqueued to and served from.
const QueueDefault = "default"

type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	mailer Mailer

	logger *zerolog.Logger
}

func serverConfig() asynq.Config {
	return asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{QueueDefault: 1},
	}
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(redisOpt, serverConfig())

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskApplicationReceived, j.handleApplicationReceivedTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// EnqueueApplicationReceived schedules the email telling a business about a
// new application.
func (j *JobService) EnqueueApplicationReceived(ctx context.Context, p ApplicationReceivedPayload) error {
	task, err := NewApplicationReceivedTask(p)
	if err != nil {
		return fmt.Errorf("failed to build application task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue application task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("application_id", p.ApplicationID).
		Msg("enqueued application notification")

	return nil
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
