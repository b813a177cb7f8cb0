package types

import (
	"errors"
	"strings"
)

// ErrUploadFailed marks a failed upload attempt. Collaborators wrap their own cause around it.
var ErrUploadFailed = errors.New("upload failed")

// DroppedFile is one file handed over by a drop gesture.
type DroppedFile struct {
	AbsolutePath string `json:"absolutePath"`
	Extension    string `json:"extension"` // lower-cased, without the dot
}

// NewDroppedFile derives the extension from the path: the text after the last ".", lower-cased.
func NewDroppedFile(path string) DroppedFile {
	f := DroppedFile{AbsolutePath: path}
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		f.Extension = strings.ToLower(path[idx+1:])
	}
	return f
}

// DroppedFilesFromPaths converts raw paths from a drop source, keeping their order.
func DroppedFilesFromPaths(paths []string) []DroppedFile {
	files := make([]DroppedFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, NewDroppedFile(p))
	}
	return files
}

// UploadResult is what the upload collaborator returns on success.
type UploadResult struct {
	Link string `json:"link"` // absolute URL of the hosted asset
	Path string `json:"path,omitempty"`
}

// UploadCallback receives the outcome of one upload attempt. It is called exactly once.
// A nil error means result is populated.
type UploadCallback func(result *UploadResult, err error)
