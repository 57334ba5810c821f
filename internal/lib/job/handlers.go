package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/devmatch/internal/config"
	"github.com/deppfellow/devmatch/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer sends the notification emails. *email.Client implements it.
type Mailer interface {
	SendApplicationReceivedEmail(to string, data email.ApplicationReceived) error
}

func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.mailer = email.NewClient(cfg, logger)
}

func (j *JobService) handleApplicationReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p ApplicationReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// a payload that cannot be decoded never will be
		return fmt.Errorf("failed to unmarshal application payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "application_received").
		Str("to", p.To).
		Int64("application_id", p.ApplicationID).
		Logger()

	logger.Info().Msg("Processing application notification task")

	err := j.mailer.SendApplicationReceivedEmail(p.To, email.ApplicationReceived{
		ApplicationID: p.ApplicationID,
		BusinessName:  p.BusinessName,
		ProjectTitle:  p.ProjectTitle,
		DeveloperName: p.DeveloperName,
		CoverLetter:   p.CoverLetter,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send application notification")
		return err // asynq schedules a retry
	}

	logger.Info().Msg("Successfully sent application notification")

	return nil
}
