package mailer

import "context"

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer envía un mensaje de texto plano.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
