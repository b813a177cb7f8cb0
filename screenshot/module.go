// Package screenshot is the capture and upload collaborator: it runs the macOS
// region picker and pushes files to the image host on background goroutines.
package screenshot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/transfer"
	"github.com/moyoez/katana/types"
)

// FileUploader performs one blocking upload.
type FileUploader interface {
	Upload(ctx context.Context, path string) (*types.UploadResult, error)
}

// captureRunner writes the user's selection to path, or nothing when the selection is cancelled.
type captureRunner func(ctx context.Context, path string) error

func screencapture(ctx context.Context, path string) error {
	out, err := exec.CommandContext(ctx, "screencapture", "-i", "-x", path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("screencapture: %w (%s)", err, out)
	}
	return nil
}

// Module runs interactive captures and uploads the result.
type Module struct {
	uploader   FileUploader
	clipboard  transfer.Clipboard
	dir        string
	capture    captureRunner
	onCaptured func(path string, result *types.UploadResult, err error)
	wg         sync.WaitGroup
}

// Option configures a Module.
type Option func(*Module)

// WithCaptureHook receives the outcome of every uploaded capture.
func WithCaptureHook(fn func(path string, result *types.UploadResult, err error)) Option {
	return func(m *Module) { m.onCaptured = fn }
}

// WithCaptureDir stores captures under dir instead of the uploads directory.
func WithCaptureDir(dir string) Option {
	return func(m *Module) {
		if dir != "" {
			m.dir = dir
		}
	}
}

// New returns a Module writing captures to tool.UploadsDir.
func New(uploader FileUploader, clipboard transfer.Clipboard, opts ...Option) *Module {
	m := &Module{
		uploader:  uploader,
		clipboard: clipboard,
		dir:       tool.UploadsDir(),
		capture:   screencapture,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetCaptureHook wires the hook after construction, for callers built from the module.
func (m *Module) SetCaptureHook(fn func(path string, result *types.UploadResult, err error)) {
	m.onCaptured = fn
}

// Upload runs in the background and calls done exactly once.
func (m *Module) Upload(ctx context.Context, path string, copyToClipboard bool, done types.UploadCallback) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		result, err := m.uploader.Upload(ctx, path)
		if err != nil {
			tool.DefaultLogger.Warnf("[Upload] %s failed: %v", path, err)
		} else if copyToClipboard && m.clipboard != nil {
			if cerr := m.clipboard.WriteText(result.Link); cerr != nil {
				tool.DefaultLogger.Warnf("[Upload] could not copy link: %v", cerr)
			}
		}
		if done != nil {
			done(result, err)
		}
	}()
}

// CaptureSelection asks the user for a region, then uploads it. A cancelled selection is silent.
func (m *Module) CaptureSelection(ctx context.Context) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		path := tool.NewCaptureFilePath(m.dir)
		if err := m.capture(ctx, path); err != nil {
			tool.DefaultLogger.Errorf("[Capture] %v", err)
			return
		}
		if _, err := os.Stat(path); err != nil {
			tool.DefaultLogger.Debugf("[Capture] selection cancelled")
			return
		}
		m.Upload(ctx, path, true, func(result *types.UploadResult, err error) {
			if m.onCaptured != nil {
				m.onCaptured(path, result, err)
			}
		})
	}()
}

// Wait blocks until every capture and upload started so far has finished.
func (m *Module) Wait() {
	m.wg.Wait()
}
