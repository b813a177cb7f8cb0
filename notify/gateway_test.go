package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/moyoez/katana/types"
)

type fakeDeliverer struct {
	name  string
	err   error
	calls []*types.Notification
}

func (f *fakeDeliverer) Name() string { return f.name }

func (f *fakeDeliverer) Deliver(_ context.Context, n *types.Notification) error {
	f.calls = append(f.calls, n)
	return f.err
}

type fakeMirror struct {
	seen []*types.Notification
}

func (f *fakeMirror) Broadcast(n *types.Notification) { f.seen = append(f.seen, n) }

func sample() *types.Notification {
	return &types.Notification{Title: "Katana", Message: "hello", Sound: types.SoundDefault}
}

func TestGatewayUsesFirstWorkingPath(t *testing.T) {
	primary := &fakeDeliverer{name: "primary"}
	fallback := &fakeDeliverer{name: "fallback"}
	g := New(WithDeliverer(primary), WithDeliverer(fallback))

	g.Notify(sample())

	if len(primary.calls) != 1 {
		t.Fatalf("primary calls = %d, want 1", len(primary.calls))
	}
	if len(fallback.calls) != 0 {
		t.Fatalf("fallback should not run when primary succeeds, got %d calls", len(fallback.calls))
	}
}

func TestGatewayFallsBackWhenPrimaryUnavailable(t *testing.T) {
	primary := &fakeDeliverer{name: "primary", err: fmt.Errorf("%w: missing binary", ErrUnavailable)}
	fallback := &fakeDeliverer{name: "fallback"}
	g := New(WithDeliverer(primary), WithDeliverer(fallback))

	n := sample()
	g.Notify(n)

	if len(fallback.calls) != 1 || fallback.calls[0] != n {
		t.Fatalf("fallback should receive the same notification once, got %v", fallback.calls)
	}
}

func TestGatewayStopsAfterHandOff(t *testing.T) {
	broken := &fakeDeliverer{name: "broken", err: errors.New("exit status 1")}
	fallback := &fakeDeliverer{name: "fallback"}
	g := New(WithDeliverer(broken), WithDeliverer(fallback))

	g.Notify(sample())

	if len(broken.calls) != 1 {
		t.Fatalf("broken calls = %d, want 1", len(broken.calls))
	}
	if len(fallback.calls) != 0 {
		t.Fatalf("fallback ran after a handed-off failure: %d calls", len(fallback.calls))
	}
}

func TestGatewaySwallowsErrors(t *testing.T) {
	missing := &fakeDeliverer{name: "missing", err: ErrUnavailable}
	alsoMissing := &fakeDeliverer{name: "also-missing", err: fmt.Errorf("%w: no osascript", ErrUnavailable)}
	g := New(WithDeliverer(missing), WithDeliverer(alsoMissing))

	g.Notify(sample())

	if len(missing.calls) != 1 || len(alsoMissing.calls) != 1 {
		t.Fatalf("every unavailable path should be tried once: %d, %d", len(missing.calls), len(alsoMissing.calls))
	}
}

func TestGatewaySilentCompanionShowsOnce(t *testing.T) {
	path, received := serveSilent(t)
	fallback := &fakeDeliverer{name: "fallback"}
	g := New(
		WithDeliverer(NewSocketDeliverer(path)),
		WithDeliverer(fallback),
		WithTimeout(300*time.Millisecond),
	)

	g.Notify(sample())

	select {
	case n := <-received:
		if n == 0 {
			t.Fatal("companion read no bytes")
		}
	case <-time.After(time.Second):
		t.Fatal("companion never received the frame")
	}
	if len(fallback.calls) != 0 {
		t.Errorf("fallback delivered %d times after the companion took the frame", len(fallback.calls))
	}
}

func TestGatewayMirrorsAndDisabled(t *testing.T) {
	d := &fakeDeliverer{name: "primary"}
	m := &fakeMirror{}
	g := New(WithDeliverer(d), WithMirror(m), WithDisabled(true))

	g.Notify(sample())
	g.Notify(nil)

	if len(d.calls) != 0 {
		t.Errorf("disabled gateway delivered %d notifications", len(d.calls))
	}
	if len(m.seen) != 1 {
		t.Errorf("mirror saw %d notifications, want 1", len(m.seen))
	}
}

func TestNewForRuntimeChainOrder(t *testing.T) {
	g := NewForRuntime(types.Runtime{NotifierPath: "/nope/terminal-notifier"}, "/tmp/katana.sock")
	want := []string{"unix-socket", "terminal-notifier", "osascript"}
	if len(g.chain) != len(want) {
		t.Fatalf("chain length = %d, want %d", len(g.chain), len(want))
	}
	for i, d := range g.chain {
		if d.Name() != want[i] {
			t.Errorf("chain[%d] = %s, want %s", i, d.Name(), want[i])
		}
	}

	g = NewForRuntime(types.Runtime{NotifierPath: "/nope"}, "")
	if g.chain[0].Name() != "terminal-notifier" {
		t.Errorf("without socket the chain should start with terminal-notifier, got %s", g.chain[0].Name())
	}
}
