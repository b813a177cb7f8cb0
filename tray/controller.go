// Package tray owns the menu-bar icon and menu, and turns user gestures into
// pipeline calls on a single event loop.
package tray

import (
	"context"
	"fmt"
	"sync"

	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

// Menu item IDs.
const (
	menuIDCapture     = 1
	menuIDRecent      = 2
	menuIDPreferences = 3
	menuIDQuit        = 4
	menuIDRecentBase  = 100 // recent upload slots start here
)

// Actions is the capture/drop orchestrator as seen from the tray.
type Actions interface {
	CaptureSelection(ctx context.Context)
	HandleDrop(ctx context.Context, files []types.DroppedFile) bool
}

// Preferences is the preferences collaborator; its window is opaque here.
type Preferences interface {
	GetOption(name string) any
	ShowWindow() error
}

type eventKind int

const (
	evClick eventKind = iota
	evDrop
	evCapture
	evRecent
	evIcon
	evDock
)

type event struct {
	kind    eventKind
	id      int
	paths   []string
	recent  []types.RecentUpload
	icon    string
	visible bool
}

// Controller owns the menu-bar state and serializes every tray event on one loop.
type Controller struct {
	platform    Platform
	actions     Actions
	prefs       Preferences
	icons       map[string][]byte
	recentSlots int
	onExit      func()

	ctx      context.Context
	events   chan event
	done     chan struct{}
	quitOnce sync.Once

	mu          sync.RWMutex
	dockVisible bool
	recent      []types.RecentUpload
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecentSlots sets how many recent uploads the menu can show.
func WithRecentSlots(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.recentSlots = n
		}
	}
}

// WithExitHook runs after the UI loop has stopped.
func WithExitHook(fn func()) Option {
	return func(c *Controller) { c.onExit = fn }
}

// WithIcons replaces the generated icon set.
func WithIcons(icons map[string][]byte) Option {
	return func(c *Controller) {
		if len(icons) > 0 {
			c.icons = icons
		}
	}
}

// NewController builds the controller; the menu is created in Run.
func NewController(platform Platform, actions Actions, prefs Preferences, opts ...Option) *Controller {
	c := &Controller{
		platform:    platform,
		actions:     actions,
		prefs:       prefs,
		icons:       DefaultIcons(),
		recentSlots: tool.DefaultRecentLimit,
		ctx:         context.Background(),
		events:      make(chan event, 64),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run builds the tray and blocks on the platform UI loop until Quit.
func (c *Controller) Run(ctx context.Context) {
	c.ctx = ctx
	c.platform.Run(c.onReady, c.exited)
}

func (c *Controller) onReady() {
	visible, _ := c.prefs.GetOption("showIcon").(bool)
	c.setDockVisible(visible)

	c.platform.SetIcon(c.icons[IconDefault])
	c.platform.SetTooltip(types.AppName)
	c.platform.SetMenu(c.menuItems(), c.Click)
	tool.DefaultLogger.Infof("[Tray] ready (dock visible: %v)", visible)

	go c.loop()
}

func (c *Controller) exited() {
	if c.onExit != nil {
		c.onExit()
	}
}

func (c *Controller) menuItems() []MenuItem {
	items := []MenuItem{
		{ID: menuIDCapture, Title: "Take Screenshot"},
		{ID: menuIDRecent, Title: "Recent"},
	}
	for i := 0; i < c.recentSlots; i++ {
		items = append(items, MenuItem{ID: menuIDRecentBase + i, Parent: menuIDRecent, Hidden: true})
	}
	items = append(items,
		MenuItem{Separator: true},
		MenuItem{ID: menuIDPreferences, Title: "Preferences...", Shortcut: "Cmd+,"},
		MenuItem{ID: menuIDQuit, Title: "Quit", Shortcut: "Cmd+Q"},
	)
	return items
}

// enqueue hands an event to the loop; it is dropped once the controller has quit.
func (c *Controller) enqueue(ev event) {
	select {
	case <-c.done:
	case c.events <- ev:
	}
}

// Click is called by the platform for a menu item, from any goroutine.
func (c *Controller) Click(id int) {
	c.enqueue(event{kind: evClick, id: id})
}

// Drop feeds files from any drop source into the same path as an OS drop.
func (c *Controller) Drop(paths []string) {
	c.enqueue(event{kind: evDrop, paths: paths})
}

// Capture starts a capture as if "Take Screenshot" was clicked.
func (c *Controller) Capture() {
	c.enqueue(event{kind: evCapture})
}

// UpdateRecent refreshes the Recent submenu.
func (c *Controller) UpdateRecent(list []types.RecentUpload) {
	c.enqueue(event{kind: evRecent, recent: list})
}

// SetIcon swaps the tray image; unknown kinds fall back to the default icon.
func (c *Controller) SetIcon(kind string) {
	c.enqueue(event{kind: evIcon, icon: kind})
}

// SetDockVisible is the explicit visibility switch for the preferences collaborator.
func (c *Controller) SetDockVisible(visible bool) {
	c.enqueue(event{kind: evDock, visible: visible})
}

// DockVisible reports whether the Dock icon is shown.
func (c *Controller) DockVisible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dockVisible
}

// Done is closed once the user quits.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) loop() {
	drops := c.platform.Drops()
	for {
		select {
		case <-c.ctx.Done():
			c.quit()
			return
		case <-c.done:
			return
		case paths := <-drops:
			c.handleDrop(paths)
		case ev := <-c.events:
			if c.dispatch(ev) {
				return
			}
		}
	}
}

// dispatch handles one event and reports whether the loop must stop.
func (c *Controller) dispatch(ev event) bool {
	switch ev.kind {
	case evClick:
		return c.onMenuClick(ev.id)
	case evDrop:
		c.handleDrop(ev.paths)
	case evCapture:
		c.actions.CaptureSelection(c.ctx)
	case evRecent:
		c.applyRecent(ev.recent)
	case evIcon:
		icon, ok := c.icons[ev.icon]
		if !ok {
			icon = c.icons[IconDefault]
		}
		c.platform.SetIcon(icon)
	case evDock:
		c.setDockVisible(ev.visible)
	}
	return false
}

func (c *Controller) onMenuClick(id int) bool {
	switch {
	case id == menuIDCapture:
		c.actions.CaptureSelection(c.ctx)

	case id == menuIDPreferences:
		if err := c.prefs.ShowWindow(); err != nil {
			tool.DefaultLogger.Errorf("[Tray] failed to open preferences: %v", err)
		}

	case id == menuIDQuit:
		c.quit()
		return true

	case id >= menuIDRecentBase:
		c.openRecent(id - menuIDRecentBase)
	}
	return false
}

func (c *Controller) handleDrop(paths []string) {
	if len(paths) == 0 {
		return
	}
	c.actions.HandleDrop(c.ctx, types.DroppedFilesFromPaths(paths))
}

func (c *Controller) applyRecent(list []types.RecentUpload) {
	c.mu.Lock()
	c.recent = list
	c.mu.Unlock()

	for i := 0; i < c.recentSlots; i++ {
		id := menuIDRecentBase + i
		if i < len(list) {
			c.platform.SetItemTitle(id, recentTitle(list[i]), true)
		} else {
			c.platform.SetItemTitle(id, "", false)
		}
	}
}

func recentTitle(r types.RecentUpload) string {
	if r.FileName == "" {
		return r.Link
	}
	return fmt.Sprintf("%s  (%s)", r.FileName, r.MtimeStr)
}

func (c *Controller) openRecent(index int) {
	c.mu.RLock()
	if index < 0 || index >= len(c.recent) {
		c.mu.RUnlock()
		return
	}
	link := c.recent[index].Link
	c.mu.RUnlock()

	if err := c.platform.OpenURL(link); err != nil {
		tool.DefaultLogger.Errorf("[Tray] failed to open %s: %v", link, err)
	}
}

func (c *Controller) setDockVisible(visible bool) {
	c.mu.Lock()
	c.dockVisible = visible
	c.mu.Unlock()
	c.platform.SetDockVisible(visible)
}

func (c *Controller) quit() {
	c.quitOnce.Do(func() {
		tool.DefaultLogger.Infof("[Tray] quitting")
		close(c.done)
		c.platform.Quit()
	})
}
