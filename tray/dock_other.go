//go:build !darwin

package tray

func setDockVisible(bool) {}
