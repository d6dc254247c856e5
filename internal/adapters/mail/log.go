package mail

import (
	"context"

	"vet-form/internal/platform/logger"
	"vet-form/internal/ports/mailer"
)

// LogMailer no envía nada: deja el mensaje en el log (dev, sin SMTP_HOST).
type LogMailer struct {
	log logger.Logger
}

func NewLogMailer(l logger.Logger) *LogMailer {
	if l == nil {
		l = logger.NewNop()
	}
	return &LogMailer{log: l.With(map[string]any{"component": "mail"})}
}

func (m *LogMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.log.Info("email (not sent)", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
		"body":    msg.Body,
	})
	return nil
}
