package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/devmatch/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to   string
	data email.ApplicationReceived
	err  error
}

func (m *fakeMailer) SendApplicationReceivedEmail(to string, data email.ApplicationReceived) error {
	m.to = to
	m.data = data
	return m.err
}

func newTestService(m Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func TestNewApplicationReceivedTask(t *testing.T) {
	p := ApplicationReceivedPayload{
		To:            "hiring@acme.test",
		ApplicationID: 9,
		BusinessName:  "Acme",
		ProjectTitle:  "Site",
		DeveloperName: "Ada",
	}

	task, err := NewApplicationReceivedTask(p)
	require.NoError(t, err)
	assert.Equal(t, TaskApplicationReceived, task.Type())

	var decoded ApplicationReceivedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, p, decoded)
	assert.NotContains(t, string(task.Payload()), "cover_letter")
}

func TestHandleApplicationReceivedTask(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestService(mailer)

	task, err := NewApplicationReceivedTask(ApplicationReceivedPayload{
		To:            "hiring@acme.test",
		ApplicationID: 3,
		ProjectTitle:  "Site",
		DeveloperName: "Ada",
		CoverLetter:   "hello",
	})
	require.NoError(t, err)

	require.NoError(t, j.handleApplicationReceivedTask(context.Background(), task))
	assert.Equal(t, "hiring@acme.test", mailer.to)
	assert.Equal(t, int64(3), mailer.data.ApplicationID)
	assert.Equal(t, "hello", mailer.data.CoverLetter)
}

func TestHandleApplicationReceivedTask_SendFailureRetries(t *testing.T) {
	sendErr := errors.New("resend unavailable")
	j := newTestService(&fakeMailer{err: sendErr})

	task, err := NewApplicationReceivedTask(ApplicationReceivedPayload{To: "x@acme.test"})
	require.NoError(t, err)

	err = j.handleApplicationReceivedTask(context.Background(), task)
	assert.ErrorIs(t, err, sendErr)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleApplicationReceivedTask_BadPayloadSkipsRetry(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestService(mailer)

	err := j.handleApplicationReceivedTask(context.Background(), asynq.NewTask(TaskApplicationReceived, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, mailer.to)
}

func TestServerConfig_ServesOnlyDefaultQueue(t *testing.T) {
	cfg := serverConfig()

	assert.Equal(t, map[string]int{QueueDefault: 1}, cfg.Queues)
	assert.Equal(t, 10, cfg.Concurrency)
}
