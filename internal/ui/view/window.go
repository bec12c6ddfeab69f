package view

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"minidoro/internal/control"
	"minidoro/internal/core/pomodoro"
)

// Window is the main timer window. Label updates may come from any goroutine.
type Window struct {
	app         fyne.App
	window      fyne.Window
	stateLabel  *widget.Label
	timerLabel  *widget.Label
	totalLabel  *widget.Label
	playButton  *widget.Button
	breakButton *widget.Button
	onCommand   func(control.Command)

	// state is only touched on the fyne goroutine.
	state pomodoro.State
}

// New creates the timer window. onCommand receives every button press.
func New(app fyne.App, title string, onCommand func(control.Command)) *Window {
	window := app.NewWindow(title)
	window.SetMaster()
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	stateLabel := widget.NewLabelWithStyle(StateTitle(pomodoro.StateIdle), fyne.TextAlignCenter, fyne.TextStyle{})
	timerLabel := widget.NewLabelWithStyle(FormatClock(0), fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	totalLabel := widget.NewLabelWithStyle(totalText(0), fyne.TextAlignCenter, fyne.TextStyle{})

	view := &Window{
		app:        app,
		window:     window,
		stateLabel: stateLabel,
		timerLabel: timerLabel,
		totalLabel: totalLabel,
		onCommand:  onCommand,
		state:      pomodoro.StateIdle,
	}

	view.playButton = widget.NewButton(PlayLabel(pomodoro.StateIdle), view.handlePlay)
	view.playButton.Importance = widget.HighImportance
	view.breakButton = widget.NewButton("Break", func() {
		view.send(control.CmdBreak)
	})

	content := container.NewVBox(
		container.NewGridWithColumns(2, view.playButton, view.breakButton),
		stateLabel,
		timerLabel,
		totalLabel,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(300, 200))

	return view
}

// Show displays the window and blocks until the application quits.
func (view *Window) Show() {
	view.window.ShowAndRun()
}

// Raise brings an already running window to the front.
func (view *Window) Raise() {
	fyne.Do(func() {
		view.window.Show()
		view.window.RequestFocus()
	})
}

// Close tears the window down, which quits the application.
func (view *Window) Close() {
	fyne.Do(view.window.Close)
}

// ChangeStateLabel shows the phase and relabels the primary button.
func (view *Window) ChangeStateLabel(state pomodoro.State) {
	fyne.Do(func() {
		if view.state == state {
			return
		}
		view.state = state
		view.stateLabel.SetText(StateTitle(state))
		view.playButton.SetText(PlayLabel(state))
	})
}

// ChangeTimerLabel shows the counter of the current phase.
func (view *Window) ChangeTimerLabel(seconds int) {
	fyne.Do(func() {
		view.timerLabel.SetText(FormatClock(seconds))
	})
}

// ChangeTotalTimeLabel shows the cumulative study time.
func (view *Window) ChangeTotalTimeLabel(seconds int) {
	fyne.Do(func() {
		view.totalLabel.SetText(totalText(seconds))
	})
}

func (view *Window) handlePlay() {
	view.send(PlayCommand(view.state))
}

func (view *Window) send(command control.Command) {
	if view.onCommand != nil {
		view.onCommand(command)
	}
}

func totalText(seconds int) string {
	return "Total study time:\n" + FormatClock(seconds)
}
