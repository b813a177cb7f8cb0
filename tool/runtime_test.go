package tool

import (
	"path/filepath"
	"testing"

	"github.com/moyoez/katana/types"
)

func TestDetectRuntimeMode(t *testing.T) {
	tests := []struct {
		name       string
		exe        string
		wantMode   types.RuntimeMode
		wantBundle string
	}{
		{
			name:       "packaged",
			exe:        "/Applications/Katana.app/Contents/MacOS/katana",
			wantMode:   types.RuntimePackaged,
			wantBundle: "/Applications/Katana.app",
		},
		{
			name:     "go run",
			exe:      "/var/folders/xy/T/go-build123/b001/exe/katana",
			wantMode: types.RuntimeDevelopment,
		},
		{
			name:     "built in tree",
			exe:      "/Users/me/src/katana/katana",
			wantMode: types.RuntimeDevelopment,
		},
		{
			name:     "empty",
			exe:      "",
			wantMode: types.RuntimeDevelopment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, bundle := DetectRuntimeMode(tt.exe)
			if mode != tt.wantMode {
				t.Errorf("mode = %v, want %v", mode, tt.wantMode)
			}
			if bundle != tt.wantBundle {
				t.Errorf("bundle = %q, want %q", bundle, tt.wantBundle)
			}
		})
	}
}

func TestBuildRuntimeNotifierPath(t *testing.T) {
	rt := BuildRuntime("/Applications/Katana.app/Contents/MacOS/katana", "/", "")
	want := filepath.Join("/Applications/Katana.app", "Contents", "Resources", "notifier.app", "Contents", "MacOS", "terminal-notifier")
	if rt.NotifierPath != want {
		t.Errorf("packaged notifier = %q, want %q", rt.NotifierPath, want)
	}

	rt = BuildRuntime("/tmp/go-build/katana", "/Users/me/src/katana", "")
	want = filepath.Join("/Users/me/src/katana", "resources", "notifier.app", "Contents", "MacOS", "terminal-notifier")
	if rt.NotifierPath != want {
		t.Errorf("development notifier = %q, want %q", rt.NotifierPath, want)
	}
	if rt.Mode != types.RuntimeDevelopment {
		t.Errorf("mode = %v, want development", rt.Mode)
	}

	rt = BuildRuntime("/Applications/Katana.app/Contents/MacOS/katana", "/", "/opt/bin/terminal-notifier")
	if rt.NotifierPath != "/opt/bin/terminal-notifier" {
		t.Errorf("override ignored: %q", rt.NotifierPath)
	}
}
