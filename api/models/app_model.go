package models

import (
	"sync"

	"github.com/moyoez/katana/types"
)

// Controls forwards API requests to the tray event loop.
type Controls interface {
	Drop(paths []string)
	Capture()
	SetDockVisible(visible bool)
}

// RecentSource lists recent successful uploads, newest first.
type RecentSource interface {
	List() []types.RecentUpload
}

var (
	appMu    sync.RWMutex
	controls Controls
	recent   RecentSource
	runtime  types.Runtime
)

// SetControls registers the tray controls; nil detaches them.
func SetControls(c Controls) {
	appMu.Lock()
	defer appMu.Unlock()
	controls = c
}

// GetControls returns the tray controls, or nil before the tray is up.
func GetControls() Controls {
	appMu.RLock()
	defer appMu.RUnlock()
	return controls
}

// SetRecentSource registers the recent uploads store.
func SetRecentSource(r RecentSource) {
	appMu.Lock()
	defer appMu.Unlock()
	recent = r
}

// GetRecentUploads returns an empty list when no source is set.
func GetRecentUploads() []types.RecentUpload {
	appMu.RLock()
	r := recent
	appMu.RUnlock()
	if r == nil {
		return []types.RecentUpload{}
	}
	list := r.List()
	if list == nil {
		return []types.RecentUpload{}
	}
	return list
}

// SetRuntime records how the process was launched.
func SetRuntime(rt types.Runtime) {
	appMu.Lock()
	defer appMu.Unlock()
	runtime = rt
}

// GetRuntime returns the runtime set by SetRuntime.
func GetRuntime() types.Runtime {
	appMu.RLock()
	defer appMu.RUnlock()
	return runtime
}
