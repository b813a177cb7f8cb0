package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/moyoez/katana/types"
)

// appleScriptSound is played for types.SoundDefault; AppleScript has no "default" sound name.
const appleScriptSound = "Glass"

// AppleScript is the fallback path. It cannot open a URL on click.
type AppleScript struct {
	lookPath func(string) (string, error)
	run      commandRunner
}

// NewAppleScript shows notifications through osascript.
func NewAppleScript() *AppleScript {
	return &AppleScript{lookPath: exec.LookPath, run: execRunner}
}

func (a *AppleScript) Name() string { return "osascript" }

func (a *AppleScript) Deliver(ctx context.Context, n *types.Notification) error {
	bin, err := a.lookPath("osascript")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return a.run(ctx, bin, "-e", AppleScriptSource(n))
}

// AppleScriptSource renders the display notification statement.
func AppleScriptSource(n *types.Notification) string {
	var b strings.Builder
	b.WriteString("display notification ")
	b.WriteString(appleScriptQuote(n.Message))
	b.WriteString(" with title ")
	b.WriteString(appleScriptQuote(n.Title))
	if n.Sound != types.SoundNone {
		b.WriteString(" sound name ")
		b.WriteString(appleScriptQuote(appleScriptSound))
	}
	return b.String()
}

func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
