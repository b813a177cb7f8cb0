//go:build !darwin

package tray

func installDropTarget(chan<- []string) {}
