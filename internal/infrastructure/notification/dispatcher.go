package notification

import (
	"context"
	"sync"
	"time"

	domnotif "github.com/procure/backend/internal/domain/notification"
	"go.uber.org/zap"
)

// sendTimeout bounds a single delivery attempt once a worker picks
// the message up.
const sendTimeout = 30 * time.Second

type message struct {
	recipient string
	subject   string
	body      string
}

// Dispatcher queues messages and delivers them on a background
// worker. Enqueueing never blocks the caller and never returns an
// error: delivery failures are logged and dropped, so a broken mail
// relay cannot fail an order placement.
type Dispatcher struct {
	sender domnotif.Gateway
	logger *zap.Logger
	queue  chan message

	closeOnce sync.Once
	done      chan struct{}
}

// NewDispatcher starts a dispatcher with the given queue capacity.
func NewDispatcher(sender domnotif.Gateway, logger *zap.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		sender: sender,
		logger: logger,
		queue:  make(chan message, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Notify enqueues a message. A full queue drops the message with a
// warning instead of blocking the request path.
func (d *Dispatcher) Notify(_ context.Context, recipient, subject, body string) error {
	select {
	case d.queue <- message{recipient: recipient, subject: subject, body: body}:
	default:
		d.logger.Warn("notification queue full, dropping message",
			zap.String("recipient", recipient),
			zap.String("subject", subject),
		)
	}
	return nil
}

// Close stops accepting messages and waits for the worker to drain
// what is already queued.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := d.sender.Notify(ctx, msg.recipient, msg.subject, msg.body); err != nil {
			d.logger.Error("notification delivery failed",
				zap.String("recipient", msg.recipient),
				zap.String("subject", msg.subject),
				zap.Error(err),
			)
		}
		cancel()
	}
}

var _ domnotif.Gateway = (*Dispatcher)(nil)
