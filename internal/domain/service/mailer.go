package service

import "context"

// MailMessage is a single transactional email ready to send.
type MailMessage struct {
	To      string
	Subject string
	Body    string // Plain text; the mail client derives the HTML part.
}

// Mailer sends a single transactional email synchronously.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// MailDispatcher accepts messages for asynchronous, best-effort
// delivery. Enqueue never blocks the caller and never returns an
// error: delivery failures are logged and retried by the dispatcher,
// not surfaced to the request path.
type MailDispatcher interface {
	Enqueue(msg *MailMessage)
}
