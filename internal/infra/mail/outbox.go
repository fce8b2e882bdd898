package mail

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"retrokick/config"
	"retrokick/internal/domain/service"
)

const retryBackoff = 2 * time.Second

// Outbox queues mail for a background worker so request handlers never
// wait on the mail provider. A full queue drops the message: mail is
// best-effort and must not back-pressure checkout.
type Outbox struct {
	mailer      service.Mailer
	logger      *slog.Logger
	queue       chan *service.MailMessage
	maxAttempts int
	backoff     time.Duration

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewOutbox builds the dispatcher; Start must be called before any
// enqueued mail is delivered.
func NewOutbox(cfg *config.Config, mailer service.Mailer, logger *slog.Logger) *Outbox {
	size := cfg.Mail.QueueSize
	if size <= 0 {
		size = 64
	}
	attempts := cfg.Mail.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}

	return &Outbox{
		mailer:      mailer,
		logger:      logger,
		queue:       make(chan *service.MailMessage, size),
		maxAttempts: attempts,
		backoff:     retryBackoff,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Enqueue hands the message to the worker without blocking.
func (o *Outbox) Enqueue(msg *service.MailMessage) {
	select {
	case o.queue <- msg:
	default:
		o.logger.Warn("Mail queue full, dropping message",
			"to", msg.To, "subject", msg.Subject)
	}
}

// Start launches the delivery worker.
func (o *Outbox) Start() {
	go o.run()
}

// Stop drains queued mail and waits for the worker to exit, bounded by
// the context deadline.
func (o *Outbox) Stop(ctx context.Context) error {
	o.stopOnce.Do(func() { close(o.stop) })

	select {
	case <-o.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *Outbox) run() {
	defer close(o.done)

	for {
		select {
		case msg := <-o.queue:
			o.deliver(msg)
		case <-o.stop:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case msg := <-o.queue:
					o.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (o *Outbox) deliver(msg *service.MailMessage) {
	var err error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		err = o.mailer.Send(context.Background(), msg)
		if err == nil {
			return
		}

		o.logger.Warn("Mail delivery attempt failed",
			"to", msg.To,
			"subject", msg.Subject,
			"attempt", attempt,
			"error", err)

		if attempt < o.maxAttempts {
			select {
			case <-time.After(o.backoff):
			case <-o.stop:
				// Shutting down: one last immediate retry loop pass.
			}
		}
	}

	o.logger.Error("Mail delivery abandoned",
		"to", msg.To,
		"subject", msg.Subject,
		"attempts", o.maxAttempts,
		"error", err)
}
