package tray

// MenuItem describes one tray menu entry. Parent is 0 for top-level items.
type MenuItem struct {
	ID        int
	Title     string
	Shortcut  string
	Parent    int
	Separator bool
	Hidden    bool
}

// Platform abstracts OS-specific tray operations.
type Platform interface {
	// Run blocks on the UI loop until Quit; onReady runs once the tray can be built.
	Run(onReady, onExit func())
	Quit()
	SetIcon(png []byte)
	SetTooltip(text string)
	SetMenu(items []MenuItem, onClick func(id int))
	SetItemTitle(id int, title string, visible bool)
	SetDockVisible(visible bool)
	OpenURL(url string) error
	// Drops delivers the paths of files dropped on the tray icon, or nil when the platform has no drop hook.
	Drops() <-chan []string
}
