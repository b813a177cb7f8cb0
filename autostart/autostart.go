// Package autostart registers the app as a login item.
package autostart

import (
	"fmt"

	"github.com/emersion/go-autostart"

	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

const launchAgentName = "io.katana.app"

// Enabler is the auto-launch collaborator.
type Enabler interface {
	Enable() error
	IsEnabled() bool
}

// New returns a login item that starts the packaged executable.
func New(rt types.Runtime) Enabler {
	return &autostart.App{
		Name:        launchAgentName,
		DisplayName: types.AppName,
		Exec:        []string{rt.Executable},
	}
}

// Apply enables the login item once at startup, only for a packaged install with
// startAtLogin set. Development runs never register themselves.
func Apply(rt types.Runtime, startAtLogin bool, launcher Enabler) (bool, error) {
	if !startAtLogin || rt.Mode != types.RuntimePackaged || launcher == nil {
		return false, nil
	}
	if launcher.IsEnabled() {
		return false, nil
	}
	if err := launcher.Enable(); err != nil {
		return false, fmt.Errorf("failed to enable login item: %w", err)
	}
	tool.DefaultLogger.Infof("Registered %s as a login item", rt.BundlePath)
	return true, nil
}
