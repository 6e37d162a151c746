package notification

import "context"

// Gateway delivers a notification to a recipient. The core calls it
// after committing its own state change and never depends on delivery
// succeeding: implementations may send synchronously, enqueue, or
// drop on overflow, but must not block the request path.
type Gateway interface {
	Notify(ctx context.Context, recipient, subject, body string) error
}

// GatewayFunc adapts a function to the Gateway interface.
type GatewayFunc func(ctx context.Context, recipient, subject, body string) error

// Notify implements Gateway
func (f GatewayFunc) Notify(ctx context.Context, recipient, subject, body string) error {
	return f(ctx, recipient, subject, body)
}
