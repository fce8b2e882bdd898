package mail

import (
	"context"
	"log/slog"

	"retrokick/config"
	"retrokick/internal/domain/service"

	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for the mail dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Mailer service.Mailer
	Logger *slog.Logger
}

// NewMailDispatcher wires the outbox into the application lifecycle:
// the worker starts with the app and drains its queue on shutdown.
func NewMailDispatcher(params DispatcherParams) service.MailDispatcher {
	outbox := NewOutbox(params.Config, params.Mailer, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			outbox.Start()
			return nil
		},
		OnStop: outbox.Stop,
	})

	return outbox
}
