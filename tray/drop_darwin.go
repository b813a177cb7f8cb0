//go:build darwin

package tray

/*
void katana_install_drop_target(void);
*/
import "C"

import "github.com/moyoez/katana/tool"

// installDropTarget registers the status item window for file drops.
// Must be called after systray is ready.
func installDropTarget(sink chan<- []string) {
	setDropSink(sink)
	C.katana_install_drop_target()
}

//export katanaFilesDropped
func katanaFilesDropped(payload *C.char) {
	if !deliverDrop(C.GoString(payload)) {
		tool.DefaultLogger.Warn("[Tray] dropped files discarded, controller busy or stopped")
	}
}
