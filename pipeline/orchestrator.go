// Package pipeline turns captures and dropped files into uploads and reports
// every finished upload with exactly one notification.
package pipeline

import (
	"context"

	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

// Notification texts shown after an upload cycle.
const (
	// NotificationTitle heads every upload notification.
	NotificationTitle = types.AppName
	// MessageUploaded is shown once the link is on the clipboard.
	MessageUploaded = "Image has been successfully uploaded and copied to your clipboard!"
	// MessageFailed is shown when the upload did not produce a link.
	MessageFailed = "Unable to upload screenshot"
)

// Capturer lets the user pick a screen region. What happens to the capture is its own business.
type Capturer interface {
	CaptureSelection(ctx context.Context)
}

// Uploader sends a local file to the remote host and calls done exactly once.
type Uploader interface {
	Upload(ctx context.Context, path string, copyToClipboard bool, done types.UploadCallback)
}

// Notifier is the notification gateway; it never reports failure.
type Notifier interface {
	Notify(n *types.Notification)
}

// Recorder is told about successful uploads.
type Recorder interface {
	Record(path string, result *types.UploadResult)
}

// Orchestrator holds no mutable state; concurrent drops each run their own cycle.
type Orchestrator struct {
	capturer Capturer
	uploader Uploader
	notifier Notifier
	recorder Recorder
	allowed  func(path string) bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRecorder records every successful upload, e.g. into the recent list.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithAdmission replaces the extension filter; used by tests.
func WithAdmission(fn func(path string) bool) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.allowed = fn
		}
	}
}

// New wires the three collaborators; only Recorder is optional.
func New(capturer Capturer, uploader Uploader, notifier Notifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		capturer: capturer,
		uploader: uploader,
		notifier: notifier,
		allowed:  tool.IsAllowed,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CaptureSelection hands control to the capture collaborator.
func (o *Orchestrator) CaptureSelection(ctx context.Context) {
	tool.DefaultLogger.Debugf("[Pipeline] capture selection requested")
	o.capturer.CaptureSelection(ctx)
}

// HandleDrop uploads the first dropped file if its extension is admitted.
// Later files in the same drop are ignored. Returns whether an upload was started.
func (o *Orchestrator) HandleDrop(ctx context.Context, files []types.DroppedFile) bool {
	if len(files) == 0 {
		return false
	}
	if len(files) > 1 {
		tool.DefaultLogger.Debugf("[Pipeline] drop carried %d files, only the first is used", len(files))
	}
	path := files[0].AbsolutePath
	if !o.allowed(path) {
		tool.DefaultLogger.Debugf("[Pipeline] rejected %s: extension not allowed", path)
		return false
	}

	tool.DefaultLogger.Infof("[Pipeline] Uploading image %s", path)
	o.uploader.Upload(ctx, path, true, func(result *types.UploadResult, err error) {
		o.OnFileUploaded(path, result, err)
	})
	return true
}

// OnFileUploaded records a successful upload of path, then reports the outcome.
// The capture collaborator calls it for screenshots it uploaded itself.
func (o *Orchestrator) OnFileUploaded(path string, result *types.UploadResult, err error) {
	if err == nil && result != nil && o.recorder != nil {
		o.recorder.Record(path, result)
	}
	o.OnUploadComplete(result, err)
}

// OnUploadComplete shows one notification for a finished upload.
// Only success or failure matters here; the cause of a failure is not inspected.
func (o *Orchestrator) OnUploadComplete(result *types.UploadResult, err error) {
	o.notifier.Notify(UploadNotification(result, err))
}

// UploadNotification builds the notification for an upload outcome.
func UploadNotification(result *types.UploadResult, err error) *types.Notification {
	if err != nil || result == nil {
		return &types.Notification{
			Type:    types.NotifyTypeUploadFailed,
			Title:   NotificationTitle,
			Message: MessageFailed,
			Sound:   types.SoundDefault,
		}
	}
	return &types.Notification{
		Type:    types.NotifyTypeUploadSuccess,
		Title:   NotificationTitle,
		Message: MessageUploaded,
		Sound:   types.SoundDefault,
		Open:    result.Link,
	}
}
