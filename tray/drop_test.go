package tray

import (
	"reflect"
	"testing"
)

func TestParseDroppedPaths(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"/Users/me/a.png", []string{"/Users/me/a.png"}},
		{"/tmp/a.png\n/tmp/b c.jpg", []string{"/tmp/a.png", "/tmp/b c.jpg"}},
		{"/tmp/a.png\r\n\n  \n/tmp/b.png\n", []string{"/tmp/a.png", "/tmp/b.png"}},
	}
	for _, tt := range tests {
		if got := parseDroppedPaths(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseDroppedPaths(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeliverDropDoesNotBlock(t *testing.T) {
	t.Cleanup(func() { setDropSink(nil) })

	if deliverDrop("/tmp/a.png") {
		t.Error("delivered without a sink")
	}

	sink := make(chan []string, 1)
	setDropSink(sink)
	if deliverDrop("\n \n") {
		t.Error("delivered an empty payload")
	}
	if !deliverDrop("/tmp/a.png\n/tmp/b.png") {
		t.Fatal("first drop not delivered")
	}
	if deliverDrop("/tmp/c.png") {
		t.Error("second drop delivered into a full sink")
	}
	if got := <-sink; !reflect.DeepEqual(got, []string{"/tmp/a.png", "/tmp/b.png"}) {
		t.Errorf("sink got %q", got)
	}
}

func TestSystrayPlatformDropsReachController(t *testing.T) {
	t.Cleanup(func() { setDropSink(nil) })
	p := NewSystrayPlatform()
	if p.Drops() == nil {
		t.Fatal("Drops() is nil")
	}
	setDropSink(p.drops)
	if !deliverDrop("/tmp/shot.png") {
		t.Fatal("drop not delivered")
	}
	if got := <-p.Drops(); len(got) != 1 || got[0] != "/tmp/shot.png" {
		t.Errorf("Drops() got %q", got)
	}
}
