// Package mail defines the outbound email boundary. Delivery itself is an
// external collaborator; the account service only depends on the Mailer
// interface.
package mail

import (
	"context"
	"log/slog"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogMailer writes messages to the log instead of delivering them. Used in
// development and as the default when no transport is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a logging mailer
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.logger.Info("outbound email",
		"to", to,
		"subject", subject,
		"body", htmlBody)
	return nil
}
