package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Sender delivers a rendered message to the configured recipient.
type Sender interface {
	Name() string
	Send(ctx context.Context, body string) (messageID string, err error)
}

// LogSender writes messages to the log instead of sending them.
// It is used when no SMS credentials are configured.
type LogSender struct {
	logger zerolog.Logger
}

func NewLogSender(logger zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Name() string { return "log" }

func (s *LogSender) Send(_ context.Context, body string) (string, error) {
	id := "log-" + uuid.NewString()
	s.logger.Info().Str("message_id", id).Str("body", body).Msg("sms disabled; message logged")
	return id, nil
}
