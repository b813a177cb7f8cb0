// Package notify shows user-facing notifications through an ordered chain of
// delivery paths. The first path that accepts a notification wins; errors never
// reach the caller.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

// ErrUnavailable reports that a delivery path cannot be used on this machine and
// nothing was handed to it. Only this error moves the gateway to the next path.
var ErrUnavailable = errors.New("notification delivery unavailable")

// DefaultDeliverTimeout bounds a single delivery attempt.
var DefaultDeliverTimeout = 5 * time.Second

// Deliverer is one way of putting a notification in front of the user.
type Deliverer interface {
	Name() string
	Deliver(ctx context.Context, n *types.Notification) error
}

// Broadcaster observes every notification without taking part in delivery.
type Broadcaster interface {
	Broadcast(n *types.Notification)
}

// Gateway is safe for concurrent use; its chain is fixed at construction.
type Gateway struct {
	chain    []Deliverer
	mirrors  []Broadcaster
	timeout  time.Duration
	disabled bool
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithDeliverer appends a delivery path; order of options is the fallback order.
func WithDeliverer(d Deliverer) Option {
	return func(g *Gateway) {
		if d != nil {
			g.chain = append(g.chain, d)
		}
	}
}

// WithMirror also sends every notification to b before the delivery chain runs.
func WithMirror(b Broadcaster) Option {
	return func(g *Gateway) {
		if b != nil {
			g.mirrors = append(g.mirrors, b)
		}
	}
}

// WithTimeout bounds each delivery attempt. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithDisabled turns the gateway into a log-only sink.
func WithDisabled(disabled bool) Option {
	return func(g *Gateway) {
		g.disabled = disabled
	}
}

// New returns a gateway with no deliverers; add them with WithDeliverer.
func New(opts ...Option) *Gateway {
	g := &Gateway{timeout: DefaultDeliverTimeout}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewForRuntime builds the standard chain: Unix socket (when configured), the
// terminal-notifier binary resolved for the runtime mode, then AppleScript.
func NewForRuntime(rt types.Runtime, socketPath string, opts ...Option) *Gateway {
	base := []Option{}
	if socketPath != "" {
		base = append(base, WithDeliverer(NewSocketDeliverer(socketPath)))
	}
	base = append(base,
		WithDeliverer(NewTerminalNotifier(rt.NotifierPath)),
		WithDeliverer(NewAppleScript()),
	)
	return New(append(base, opts...)...)
}

// Notify delivers n through the first available path. It never reports failure.
func (g *Gateway) Notify(n *types.Notification) {
	if n == nil {
		return
	}
	for _, m := range g.mirrors {
		m.Broadcast(n)
	}
	if g.disabled {
		tool.DefaultLogger.Infof("[Notify] (skipped) %s - %s", n.Title, n.Message)
		return
	}

	for _, d := range g.chain {
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		err := d.Deliver(ctx, n)
		cancel()
		if err == nil {
			tool.DefaultLogger.Debugf("[Notify] delivered via %s: %s", d.Name(), n.Message)
			return
		}
		if !errors.Is(err, ErrUnavailable) {
			// handed off already; another path could show it twice
			tool.DefaultLogger.Warnf("[Notify] %s failed: %v", d.Name(), err)
			return
		}
		tool.DefaultLogger.Debugf("[Notify] %s unavailable: %v", d.Name(), err)
	}
	tool.DefaultLogger.Warnf("[Notify] no delivery path accepted notification %q", n.Message)
}
