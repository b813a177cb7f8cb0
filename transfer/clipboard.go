package transfer

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard receives the uploaded link.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes to the OS pasteboard. Init runs on first use.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

// NewSystemClipboard initializes the pasteboard lazily on first write.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteText replaces the clipboard contents with text.
func (c *SystemClipboard) WriteText(text string) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.initErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
