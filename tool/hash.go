package tool

import (
	"path/filepath"

	"github.com/google/uuid"
)

// GenerateRandomUUID returns a random v4 UUID string.
func GenerateRandomUUID() string {
	return uuid.New().String()
}

// NewCaptureFilePath returns a fresh katana-<uuid>.png path under dir.
func NewCaptureFilePath(dir string) string {
	return filepath.Join(dir, "katana-"+GenerateRandomUUID()+".png")
}
