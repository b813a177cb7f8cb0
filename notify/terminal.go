package notify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/moyoez/katana/types"
)

// commandRunner runs an external program; swapped out in tests.
type commandRunner func(ctx context.Context, name string, args ...string) error

// execRunner reports ErrUnavailable only when the program could not be started.
func execRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}
	return fmt.Errorf("%s: %w (%s)", name, err, out)
}

// TerminalNotifier drives the bundled terminal-notifier binary.
type TerminalNotifier struct {
	path string
	run  commandRunner
}

// NewTerminalNotifier runs the terminal-notifier binary at path. An empty path is unavailable.
func NewTerminalNotifier(path string) *TerminalNotifier {
	return &TerminalNotifier{path: path, run: execRunner}
}

func (t *TerminalNotifier) Name() string { return "terminal-notifier" }

func (t *TerminalNotifier) Deliver(ctx context.Context, n *types.Notification) error {
	if t.path == "" {
		return fmt.Errorf("%w: no terminal-notifier path", ErrUnavailable)
	}
	info, err := os.Stat(t.path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: terminal-notifier not found at %s", ErrUnavailable, t.path)
	}
	return t.run(ctx, t.path, TerminalNotifierArgs(n)...)
}

// TerminalNotifierArgs builds the command line for one notification.
func TerminalNotifierArgs(n *types.Notification) []string {
	args := []string{"-title", n.Title, "-message", n.Message}
	if n.Sound != types.SoundNone {
		args = append(args, "-sound", string(n.Sound))
	}
	if n.HasAction() {
		args = append(args, "-open", n.Open)
	}
	return args
}
