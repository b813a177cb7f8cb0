package tray

import (
	"strings"
	"sync"
)

var (
	dropMu   sync.Mutex
	dropSink chan<- []string
)

func setDropSink(ch chan<- []string) {
	dropMu.Lock()
	dropSink = ch
	dropMu.Unlock()
}

// parseDroppedPaths splits the native drop payload, one path per line.
func parseDroppedPaths(s string) []string {
	var paths []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

// deliverDrop runs on the AppKit main thread and must not block it.
// It reports false when there is nothing to send or the sink is full.
func deliverDrop(payload string) bool {
	paths := parseDroppedPaths(payload)
	if len(paths) == 0 {
		return false
	}
	dropMu.Lock()
	defer dropMu.Unlock()
	if dropSink == nil {
		return false
	}
	select {
	case dropSink <- paths:
		return true
	default:
		return false
	}
}
