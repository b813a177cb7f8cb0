package tool

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppHomeDir returns <UserConfigDir>/Katana, falling back to the home directory.
func AppHomeDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, "Katana")
}

// UploadsDir is where captures are written before upload.
func UploadsDir() string {
	return filepath.Join(AppHomeDir(), "uploads")
}

// EnsureHome creates the application directory and its uploads directory when missing.
func EnsureHome(root string) error {
	if root == "" {
		root = AppHomeDir()
	}
	for _, dir := range []string{root, filepath.Join(root, "uploads")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
