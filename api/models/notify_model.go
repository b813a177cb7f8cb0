package models

import (
	"sync"

	"github.com/moyoez/katana/api/notifyhub"
)

var (
	notifyHubMu sync.RWMutex
	notifyHub   *notifyhub.Hub
)

// SetNotifyHub sets the hub that mirrors notifications to websocket clients.
func SetNotifyHub(h *notifyhub.Hub) {
	notifyHubMu.Lock()
	defer notifyHubMu.Unlock()
	notifyHub = h
}

// GetNotifyHub returns the notify websocket hub, or nil if not set.
func GetNotifyHub() *notifyhub.Hub {
	notifyHubMu.RLock()
	defer notifyHubMu.RUnlock()
	return notifyHub
}
