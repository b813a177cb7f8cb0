package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/moyoez/katana/types"
)

type uploadCall struct {
	path            string
	copyToClipboard bool
	done            types.UploadCallback
}

type fakeUploader struct {
	mu    sync.Mutex
	calls []uploadCall
}

func (f *fakeUploader) Upload(_ context.Context, path string, copyToClipboard bool, done types.UploadCallback) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, uploadCall{path: path, copyToClipboard: copyToClipboard, done: done})
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []*types.Notification
}

func (f *fakeNotifier) Notify(n *types.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
}

type fakeCapturer struct{ calls int }

func (f *fakeCapturer) CaptureSelection(context.Context) { f.calls++ }

type fakeRecorder struct{ links []string }

func (f *fakeRecorder) Record(_ string, r *types.UploadResult) { f.links = append(f.links, r.Link) }

func newTestOrchestrator() (*Orchestrator, *fakeCapturer, *fakeUploader, *fakeNotifier, *fakeRecorder) {
	c, u, n, r := &fakeCapturer{}, &fakeUploader{}, &fakeNotifier{}, &fakeRecorder{}
	return New(c, u, n, WithRecorder(r)), c, u, n, r
}

func drop(paths ...string) []types.DroppedFile {
	return types.DroppedFilesFromPaths(paths)
}

func TestDropAdmittedFileUploadsAndNotifiesSuccess(t *testing.T) {
	o, _, u, n, r := newTestOrchestrator()

	if !o.HandleDrop(context.Background(), drop("photo.png")) {
		t.Fatal("HandleDrop should report a started upload")
	}
	if len(u.calls) != 1 {
		t.Fatalf("upload calls = %d, want 1", len(u.calls))
	}
	call := u.calls[0]
	if call.path != "photo.png" || !call.copyToClipboard {
		t.Fatalf("upload called with (%q, %v), want (photo.png, true)", call.path, call.copyToClipboard)
	}
	if len(n.sent) != 0 {
		t.Fatal("no notification before the upload completes")
	}

	call.done(&types.UploadResult{Link: "https://host/x.png"}, nil)

	if len(n.sent) != 1 {
		t.Fatalf("notifications = %d, want 1", len(n.sent))
	}
	got := n.sent[0]
	if got.Message != "Image has been successfully uploaded and copied to your clipboard!" {
		t.Errorf("message = %q", got.Message)
	}
	if got.Open != "https://host/x.png" {
		t.Errorf("action url = %q, want https://host/x.png", got.Open)
	}
	if got.Title != "Katana" || got.Sound != types.SoundDefault {
		t.Errorf("title/sound = %q/%q", got.Title, got.Sound)
	}
	if len(r.links) != 1 || r.links[0] != "https://host/x.png" {
		t.Errorf("recorded = %v", r.links)
	}
}

func TestDropRejectedFileDoesNothing(t *testing.T) {
	o, _, u, n, _ := newTestOrchestrator()

	if o.HandleDrop(context.Background(), drop("notes.txt")) {
		t.Fatal("notes.txt must not start an upload")
	}
	if len(u.calls) != 0 || len(n.sent) != 0 {
		t.Fatalf("uploads=%d notifications=%d, want 0/0", len(u.calls), len(n.sent))
	}
}

func TestDropOnlyFirstFileIsUsed(t *testing.T) {
	o, _, u, _, _ := newTestOrchestrator()

	o.HandleDrop(context.Background(), drop("a.jpg", "b.png"))

	if len(u.calls) != 1 || u.calls[0].path != "a.jpg" {
		t.Fatalf("upload calls = %+v, want a single a.jpg", u.calls)
	}

	// A rejected first file is not replaced by an admitted second one.
	o.HandleDrop(context.Background(), drop("a.txt", "b.png"))
	if len(u.calls) != 1 {
		t.Fatalf("b.png must be ignored, upload calls = %d", len(u.calls))
	}
}

func TestDropEmptyDoesNothing(t *testing.T) {
	o, _, u, n, _ := newTestOrchestrator()

	if o.HandleDrop(context.Background(), nil) {
		t.Fatal("empty drop must not start an upload")
	}
	if len(u.calls) != 0 || len(n.sent) != 0 {
		t.Fatal("empty drop must have no effect")
	}
}

func TestUploadFailureNotifiesWithoutAction(t *testing.T) {
	o, _, u, n, r := newTestOrchestrator()

	o.HandleDrop(context.Background(), drop("/Users/me/Desktop/shot.PNG"))
	u.calls[0].done(nil, fmt.Errorf("%w: status 500", types.ErrUploadFailed))

	if len(n.sent) != 1 {
		t.Fatalf("notifications = %d, want 1", len(n.sent))
	}
	if n.sent[0].Message != "Unable to upload screenshot" {
		t.Errorf("message = %q", n.sent[0].Message)
	}
	if n.sent[0].HasAction() {
		t.Errorf("failure must not carry an action url, got %q", n.sent[0].Open)
	}
	if len(r.links) != 0 {
		t.Errorf("failed upload recorded: %v", r.links)
	}
}

func TestEveryCompletionNotifiesOnce(t *testing.T) {
	outcomes := []struct {
		name   string
		result *types.UploadResult
		err    error
	}{
		{"success", &types.UploadResult{Link: "https://host/1.png"}, nil},
		{"sentinel", nil, types.ErrUploadFailed},
		{"other error", nil, errors.New("boom")},
		{"error with stale result", &types.UploadResult{Link: "https://host/2.png"}, types.ErrUploadFailed},
	}
	for _, tt := range outcomes {
		t.Run(tt.name, func(t *testing.T) {
			n := &fakeNotifier{}
			o := New(&fakeCapturer{}, &fakeUploader{}, n)
			o.OnUploadComplete(tt.result, tt.err)
			if len(n.sent) != 1 {
				t.Fatalf("notifications = %d, want 1", len(n.sent))
			}
			if tt.err != nil && n.sent[0].HasAction() {
				t.Error("failure notification carries an action url")
			}
		})
	}
}

func TestConcurrentDropsRunIndependently(t *testing.T) {
	o, _, u, n, _ := newTestOrchestrator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o.HandleDrop(context.Background(), drop(fmt.Sprintf("shot-%d.png", i)))
		}(i)
	}
	wg.Wait()
	if len(u.calls) != 8 {
		t.Fatalf("upload calls = %d, want 8", len(u.calls))
	}
	for _, c := range u.calls {
		c.done(&types.UploadResult{Link: "https://host/" + c.path}, nil)
	}
	if len(n.sent) != 8 {
		t.Fatalf("notifications = %d, want 8", len(n.sent))
	}
}

func TestCaptureSelectionDelegates(t *testing.T) {
	o, c, u, _, _ := newTestOrchestrator()
	o.CaptureSelection(context.Background())
	if c.calls != 1 {
		t.Fatalf("capture calls = %d, want 1", c.calls)
	}
	if len(u.calls) != 0 {
		t.Fatal("capture must not upload through the drop path")
	}
}
