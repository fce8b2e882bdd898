package mail

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"retrokick/config"
	"retrokick/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu       sync.Mutex
	sent     []*service.MailMessage
	failures int
}

func (m *recordingMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failures > 0 {
		m.failures--

		return errors.New("provider unavailable")
	}
	m.sent = append(m.sent, msg)

	return nil
}

func (m *recordingMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

func newTestOutbox(mailer service.Mailer, maxAttempts int) *Outbox {
	cfg := &config.Config{Mail: &config.MailConfig{QueueSize: 8, MaxAttempts: maxAttempts}}

	return NewOutbox(cfg, mailer, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestOutbox_DeliversEnqueuedMail(t *testing.T) {
	mailer := &recordingMailer{}
	outbox := newTestOutbox(mailer, 3)
	outbox.Start()

	outbox.Enqueue(&service.MailMessage{To: "shopper@example.com", Subject: "hi", Body: "body"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, outbox.Stop(ctx))

	assert.Equal(t, 1, mailer.sentCount())
}

func TestOutbox_StopDrainsQueue(t *testing.T) {
	mailer := &recordingMailer{}
	outbox := newTestOutbox(mailer, 1)
	outbox.Start()

	for i := 0; i < 5; i++ {
		outbox.Enqueue(&service.MailMessage{To: "shopper@example.com", Subject: "hi", Body: "body"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, outbox.Stop(ctx))

	assert.Equal(t, 5, mailer.sentCount())
}

func TestOutbox_GivesUpAfterMaxAttempts(t *testing.T) {
	mailer := &recordingMailer{failures: 10}
	outbox := newTestOutbox(mailer, 2)
	outbox.backoff = time.Millisecond

	outbox.deliver(&service.MailMessage{To: "shopper@example.com", Subject: "hi", Body: "body"})

	assert.Equal(t, 0, mailer.sentCount())
	mailer.mu.Lock()
	assert.Equal(t, 8, mailer.failures)
	mailer.mu.Unlock()
}

func TestOutbox_FullQueueDropsWithoutBlocking(t *testing.T) {
	cfg := &config.Config{Mail: &config.MailConfig{QueueSize: 1, MaxAttempts: 1}}
	outbox := NewOutbox(cfg, &recordingMailer{}, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Worker not started: second enqueue must return immediately.
	done := make(chan struct{})
	go func() {
		outbox.Enqueue(&service.MailMessage{To: "a@example.com"})
		outbox.Enqueue(&service.MailMessage{To: "b@example.com"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
