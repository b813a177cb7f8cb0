//go:build darwin

package tray

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

static void katana_set_dock_visible(int visible) {
	dispatch_async(dispatch_get_main_queue(), ^{
		[NSApp setActivationPolicy:visible ? NSApplicationActivationPolicyRegular
		                                   : NSApplicationActivationPolicyAccessory];
	});
}
*/
import "C"

// setDockVisible switches the activation policy on the main thread.
func setDockVisible(visible bool) {
	v := C.int(0)
	if visible {
		v = 1
	}
	C.katana_set_dock_visible(v)
}
