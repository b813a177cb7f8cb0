package types

// RuntimeMode tells a packaged .app install apart from a development run.
type RuntimeMode int

const (
	RuntimeDevelopment RuntimeMode = iota
	RuntimePackaged
)

func (m RuntimeMode) String() string {
	switch m {
	case RuntimePackaged:
		return "packaged"
	default:
		return "development"
	}
}

// Runtime is resolved once at startup and passed down read-only.
type Runtime struct {
	Mode         RuntimeMode
	Executable   string
	BundlePath   string // "/Applications/Katana.app" when packaged, empty otherwise
	NotifierPath string // terminal-notifier binary used by the notification gateway
}
