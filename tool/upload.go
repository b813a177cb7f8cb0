package tool

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// LocalFileInfo is what the uploader needs to know about a file before sending it.
type LocalFileInfo struct {
	Name     string
	Size     int64
	MimeType string
}

// GetFileInfoFromPath stats a local file and detects its MIME type from the extension.
func GetFileInfoFromPath(filePath string) (LocalFileInfo, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return LocalFileInfo{}, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return LocalFileInfo{}, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(filePath))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return LocalFileInfo{
		Name:     filepath.Base(filePath),
		Size:     info.Size(),
		MimeType: mimeType,
	}, nil
}
