package tray

import (
	"os/exec"
	"sync"

	"fyne.io/systray"
)

// dropBuffer bounds how many drops may wait for the controller loop.
const dropBuffer = 8

// SystrayPlatform implements Platform on top of fyne.io/systray.
// systray has no drop hook, so on macOS the status item window is
// registered as a file drop target once the tray is ready.
type SystrayPlatform struct {
	mu    sync.Mutex
	items map[int]*systray.MenuItem
	drops chan []string
}

// NewSystrayPlatform returns a platform with an empty menu.
func NewSystrayPlatform() *SystrayPlatform {
	return &SystrayPlatform{
		items: make(map[int]*systray.MenuItem),
		drops: make(chan []string, dropBuffer),
	}
}

func (p *SystrayPlatform) Run(onReady, onExit func()) {
	systray.Run(func() {
		installDropTarget(p.drops)
		onReady()
	}, onExit)
}

func (p *SystrayPlatform) Quit()                       { systray.Quit() }
func (p *SystrayPlatform) SetIcon(png []byte)          { systray.SetTemplateIcon(png, png) }
func (p *SystrayPlatform) SetTooltip(text string)      { systray.SetTooltip(text) }
func (p *SystrayPlatform) SetDockVisible(visible bool) { setDockVisible(visible) }
func (p *SystrayPlatform) Drops() <-chan []string      { return p.drops }

func (p *SystrayPlatform) OpenURL(url string) error {
	return exec.Command("open", url).Start()
}

func (p *SystrayPlatform) SetMenu(items []MenuItem, onClick func(id int)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, it := range items {
		if it.Separator {
			systray.AddSeparator()
			continue
		}

		var mi *systray.MenuItem
		if parent, ok := p.items[it.Parent]; ok && it.Parent != 0 {
			mi = parent.AddSubMenuItem(it.Title, "")
		} else {
			mi = systray.AddMenuItem(it.Title, "")
		}
		if it.Hidden {
			mi.Hide()
		}
		p.items[it.ID] = mi

		go func(id int, mi *systray.MenuItem) {
			for range mi.ClickedCh {
				onClick(id)
			}
		}(it.ID, mi)
	}
}

func (p *SystrayPlatform) SetItemTitle(id int, title string, visible bool) {
	p.mu.Lock()
	mi, ok := p.items[id]
	p.mu.Unlock()
	if !ok {
		return
	}
	if title != "" {
		mi.SetTitle(title)
	}
	if visible {
		mi.Show()
	} else {
		mi.Hide()
	}
}
