package tool

import (
	"slices"
	"strings"
)

var extensionList = []string{"png", "jpg", "jpeg", "gif", "bmp", "tiff", "pdf"}

// allowedExtensions is built once from extensionList and only read afterwards.
var allowedExtensions = func() map[string]struct{} {
	m := make(map[string]struct{}, len(extensionList))
	for _, ext := range extensionList {
		m[ext] = struct{}{}
	}
	return m
}()

// AllowedExtensions returns a copy of the admitted extensions, lower-case and without the dot.
func AllowedExtensions() []string {
	return slices.Clone(extensionList)
}

// ExtensionOf returns the lower-cased text after the last "." in path, or "" when there is none.
func ExtensionOf(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(path[idx+1:])
}

// IsAllowed reports whether a file may be uploaded, judged by its extension only.
func IsAllowed(path string) bool {
	ext := ExtensionOf(path)
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[ext]
	return ok
}
