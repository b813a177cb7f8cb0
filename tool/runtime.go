package tool

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/moyoez/katana/types"
)

const (
	bundleMarker     = ".app/Contents/"
	notifierRelative = "notifier.app/Contents/MacOS/terminal-notifier"
)

// DetectRuntimeMode decides once whether exe lives inside a packaged .app bundle.
func DetectRuntimeMode(exe string) (types.RuntimeMode, string) {
	idx := strings.Index(exe, bundleMarker)
	if idx < 0 {
		return types.RuntimeDevelopment, ""
	}
	return types.RuntimePackaged, exe[:idx] + ".app"
}

// ResolveRuntime inspects the running executable and resolves the notifier path.
// override wins over the mode-derived path when set.
func ResolveRuntime(override string) types.Runtime {
	exe, err := os.Executable()
	if err != nil {
		DefaultLogger.Warnf("Failed to resolve executable path: %v", err)
	} else if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	wd, _ := os.Getwd()
	return BuildRuntime(exe, wd, override)
}

// BuildRuntime is ResolveRuntime without touching the process state.
func BuildRuntime(exe, workDir, override string) types.Runtime {
	mode, bundle := DetectRuntimeMode(exe)
	rt := types.Runtime{
		Mode:       mode,
		Executable: exe,
		BundlePath: bundle,
	}
	switch {
	case override != "":
		rt.NotifierPath = override
	case mode == types.RuntimePackaged:
		rt.NotifierPath = filepath.Join(bundle, "Contents", "Resources", notifierRelative)
	default:
		rt.NotifierPath = filepath.Join(workDir, "resources", notifierRelative)
	}
	return rt
}
