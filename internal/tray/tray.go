// Package tray provides a system tray interface for the Mudra sign
// recognition system.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle func(enabled bool)
	onMute   func(muted bool)
	onOpen   func()
	onQuit   func()
	tracking bool
	muted    bool
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuToggle   *systray.MenuItem
	menuMute     *systray.MenuItem
	menuLastSign *systray.MenuItem
}

// New creates a new Tray instance reflecting the given initial state.
func New(tracking, muted bool) *Tray {
	return &Tray{
		tracking: tracking,
		muted:    muted,
	}
}

// OnToggle sets the callback function to be called when sign tracking is
// toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnMute sets the callback function to be called when speech is muted or
// unmuted.
func (t *Tray) OnMute(fn func(muted bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onMute = fn
}

// OnOpen sets the callback function to be called when the dashboard menu
// item is clicked.
func (t *Tray) OnOpen(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOpen = fn
}

// OnQuit sets the callback function to be called when the quit menu item
// is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra Sign Recognition")

	t.mu.Lock()
	t.menuToggle = systray.AddMenuItem(toggleTitle(t.tracking), "Toggle sign tracking")
	t.menuMute = systray.AddMenuItem(muteTitle(t.muted), "Toggle spoken announcements")
	systray.AddSeparator()

	t.menuLastSign = systray.AddMenuItem("Last sign: none", "Last confirmed sign")
	t.menuLastSign.Disable()
	t.mu.Unlock()
	systray.AddSeparator()

	menuOpen := systray.AddMenuItem("Open Dashboard...", "Open the dashboard in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Mudra")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-t.menuMute.ClickedCh:
				t.handleMute()
			case <-menuOpen.ClickedCh:
				t.handleOpen()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

func toggleTitle(tracking bool) string {
	if tracking {
		return "● Tracking"
	}
	return "○ Paused"
}

func muteTitle(muted bool) string {
	if muted {
		return "Speech: muted"
	}
	return "Speech: on"
}

// handleToggle handles the tracking menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.tracking = !t.tracking
	tracking := t.tracking
	t.menuToggle.SetTitle(toggleTitle(tracking))
	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(tracking)
	}
}

// handleMute handles the mute menu item click.
func (t *Tray) handleMute() {
	t.mu.Lock()
	t.muted = !t.muted
	muted := t.muted
	t.menuMute.SetTitle(muteTitle(muted))
	callback := t.onMute
	t.mu.Unlock()

	if callback != nil {
		callback(muted)
	}
}

// handleOpen handles the dashboard menu item click.
func (t *Tray) handleOpen() {
	t.mu.RLock()
	callback := t.onOpen
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastSign updates the last confirmed sign shown in the menu.
func (t *Tray) SetLastSign(label string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastSign != nil {
		if label == "" {
			t.menuLastSign.SetTitle("Last sign: none")
		} else {
			t.menuLastSign.SetTitle("Last sign: " + label)
		}
	}
}

// SetTracking syncs the menu with a tracking state changed elsewhere, for
// example through the HTTP API.
func (t *Tray) SetTracking(tracking bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.tracking = tracking
	if t.menuToggle != nil {
		t.menuToggle.SetTitle(toggleTitle(tracking))
	}
}

// SetMuted syncs the menu with a mute state changed elsewhere.
func (t *Tray) SetMuted(muted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.muted = muted
	if t.menuMute != nil {
		t.menuMute.SetTitle(muteTitle(muted))
	}
}

// IsTracking returns the tray's view of the tracking state.
func (t *Tray) IsTracking() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracking
}

// IsMuted returns the tray's view of the mute state.
func (t *Tray) IsMuted() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.muted
}
