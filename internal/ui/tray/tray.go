package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"minidoro/internal/control"
	"minidoro/internal/core/pomodoro"
	"minidoro/internal/ui/view"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnCommand func(control.Command)
	OnShow    func()
	OnQuit    func()
}

// Status is everything the tray menu displays.
type Status struct {
	State        pomodoro.State
	PhaseSeconds int
	TotalSeconds int
}

// StatusLine renders the disabled first menu entry.
func (status Status) StatusLine() string {
	switch {
	case status.State == pomodoro.StateStudying, status.State == pomodoro.StatePause, status.State.IsBreak():
		return fmt.Sprintf("%s %s", view.StateTitle(status.State), view.FormatClock(status.PhaseSeconds))
	default:
		return view.StateTitle(status.State)
	}
}

// Manager mirrors the timer window in the system tray menu.
type Manager struct {
	app       desktop.App
	title     string
	callbacks Callbacks

	statusItem *fyne.MenuItem
	totalItem  *fyne.MenuItem
	playItem   *fyne.MenuItem
	breakItem  *fyne.MenuItem
	endItem    *fyne.MenuItem

	// status is only touched on the fyne goroutine.
	status Status
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, title string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		title:     title,
		callbacks: callbacks,
		status:    Status{State: pomodoro.StateIdle},
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.totalItem = fyne.NewMenuItem("", nil)
	manager.totalItem.Disabled = true

	manager.playItem = fyne.NewMenuItem("", func() {
		manager.send(view.PlayCommand(manager.status.State))
	})
	manager.breakItem = fyne.NewMenuItem("Take a break", func() {
		manager.send(control.CmdBreak)
	})
	manager.endItem = fyne.NewMenuItem("End session", func() {
		manager.send(control.CmdEnd)
	})

	manager.apply(manager.status)
	return manager
}

// ChangeStateLabel updates the status line and the play entry.
func (manager *Manager) ChangeStateLabel(state pomodoro.State) {
	fyne.Do(func() {
		status := manager.status
		status.State = state
		manager.apply(status)
	})
}

// ChangeTimerLabel updates the phase clock in the status line.
func (manager *Manager) ChangeTimerLabel(seconds int) {
	fyne.Do(func() {
		status := manager.status
		status.PhaseSeconds = seconds
		manager.apply(status)
	})
}

// ChangeTotalTimeLabel updates the cumulative study time entry.
func (manager *Manager) ChangeTotalTimeLabel(seconds int) {
	fyne.Do(func() {
		status := manager.status
		status.TotalSeconds = seconds
		manager.apply(status)
	})
}

func (manager *Manager) apply(status Status) {
	if status == manager.status && manager.statusItem.Label != "" {
		return
	}
	manager.status = status

	manager.statusItem.Label = "Status: " + status.StatusLine()
	manager.totalItem.Label = "Total study time: " + view.FormatClock(status.TotalSeconds)
	manager.playItem.Label = view.PlayLabel(status.State)
	manager.breakItem.Disabled = status.State != pomodoro.StateStudying && status.State != pomodoro.StatePause
	manager.endItem.Disabled = status.State == pomodoro.StateEnd
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.title,
		manager.statusItem,
		manager.totalItem,
		fyne.NewMenuItemSeparator(),
		manager.playItem,
		manager.breakItem,
		manager.endItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.quitItem(),
	))
}

func (manager *Manager) quitItem() *fyne.MenuItem {
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true
	return quit
}

func (manager *Manager) send(command control.Command) {
	if manager.callbacks.OnCommand != nil {
		manager.callbacks.OnCommand(command)
	}
}
