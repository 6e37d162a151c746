package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	domnotif "github.com/procure/backend/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (s *recordingSender) Notify(_ context.Context, recipient, subject, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, recipient+"/"+subject)
	return s.err
}

func (s *recordingSender) delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

func TestDispatcherDeliversQueuedMessages(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, zap.NewNop(), 8)

	require.NoError(t, d.Notify(context.Background(), "buyer@example.com", "Order placed", "body"))
	require.NoError(t, d.Notify(context.Background(), "shop@example.com", "New order", "body"))
	d.Close()

	assert.Equal(t, []string{
		"buyer@example.com/Order placed",
		"shop@example.com/New order",
	}, sender.delivered())
}

func TestDispatcherSwallowsSenderErrors(t *testing.T) {
	sender := &recordingSender{err: errors.New("relay down")}
	d := NewDispatcher(sender, zap.NewNop(), 8)

	require.NoError(t, d.Notify(context.Background(), "buyer@example.com", "Order placed", "body"))
	d.Close()

	assert.Len(t, sender.delivered(), 1)
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&recordingSender{}, zap.NewNop(), 1)
	d.Close()
	d.Close()
}

func TestGatewayFunc(t *testing.T) {
	var got string
	var gw domnotif.Gateway = domnotif.GatewayFunc(func(_ context.Context, recipient, _, _ string) error {
		got = recipient
		return nil
	})
	require.NoError(t, gw.Notify(context.Background(), "x@example.com", "s", "b"))
	assert.Equal(t, "x@example.com", got)
}
