package control

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"minidoro/internal/core/pomodoro"
)

// View renders the engine state. Implementations must not block.
type View interface {
	ChangeStateLabel(state pomodoro.State)
	ChangeTimerLabel(seconds int)
	ChangeTotalTimeLabel(seconds int)
}

// Notifier tells the user about phase boundaries.
type Notifier interface {
	TimeToBreak() error
	TimeToStudy() error
	StudyIsOver() error
}

// notificationBuffer bounds how many notifications may wait for a slow backend.
const notificationBuffer = 32

// Config contains runtime options for Driver.
type Config struct {
	TickInterval time.Duration
	Logger       *slog.Logger
}

// Driver owns the engine and advances it once per tick.
type Driver struct {
	timer    pomodoro.Timer
	queue    *Queue
	notifier Notifier
	views    []View
	options  Config
	logger   *slog.Logger

	// dispatch delivers a notification without blocking the loop.
	dispatch func(name string, notify func() error)

	// notifications is drained in order by a single worker.
	notifications chan notification
	worker        sync.Once
	closed        bool

	previous pomodoro.Snapshot
	finished bool
}

// New creates a Driver. The driver becomes the only user of timer.
func New(timer pomodoro.Timer, queue *Queue, notifier Notifier, options Config, views ...View) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	driver := &Driver{
		timer:    timer,
		queue:    queue,
		notifier: notifier,
		views:    views,
		options:  options,
		logger:   options.Logger,
		previous: timer.Snapshot(),

		notifications: make(chan notification, notificationBuffer),
	}
	driver.dispatch = driver.dispatchAsync
	return driver
}

// Run ticks until the session ends or ctx is cancelled. It returns nil when
// the engine reached END.
func (driver *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(driver.options.TickInterval)
	defer ticker.Stop()
	defer driver.closeNotifications()

	driver.render(driver.previous)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !driver.Step() {
				return nil
			}
		}
	}
}

// Step runs one iteration: apply the oldest pending command or, if there is
// none, account one second. It reports whether the loop should continue.
func (driver *Driver) Step() bool {
	if driver.finished {
		return false
	}

	if command, ok := driver.queue.Pop(); ok {
		driver.logger.Debug("Applying command", "command", command.String())
		command.Apply(driver.timer)
	} else {
		driver.timer.Update()
	}

	snapshot := driver.timer.Snapshot()
	previous := driver.previous
	driver.previous = snapshot

	if snapshot.State != previous.State {
		driver.logger.Debug("State changed",
			"from", string(previous.State),
			"to", string(snapshot.State),
			"breaks_done", snapshot.BreaksDone,
			"total_study_seconds", snapshot.CurrentTotalStudyTime)
	}

	driver.render(snapshot)

	config := driver.timer.Config()
	switch {
	case snapshot.State == pomodoro.StateEnd:
		driver.finished = true
		driver.logger.Info("Study session is over", "total_study_seconds", snapshot.CurrentTotalStudyTime)
		driver.dispatch("study_is_over", driver.notifier.StudyIsOver)
		return false
	case snapshot.State.IsBreak():
		if snapshot.CurrentBreakTime != previous.CurrentBreakTime &&
			snapshot.CurrentBreakTime == breakDuration(config.ShortBreakTime, config.LongBreakTime, snapshot.State) {
			driver.dispatch("time_to_study", driver.notifier.TimeToStudy)
			driver.timer.Idle()
			driver.previous = driver.timer.Snapshot()
			driver.render(driver.previous)
		}
	case snapshot.State == pomodoro.StateStudying:
		if snapshot.CurrentStudyTime != previous.CurrentStudyTime && snapshot.CurrentStudyTime == config.StudyTime {
			driver.dispatch("time_to_break", driver.notifier.TimeToBreak)
		}
	}
	return true
}

func breakDuration(short, long int, state pomodoro.State) int {
	if state == pomodoro.StateLongBreak {
		return long
	}
	return short
}

func (driver *Driver) render(snapshot pomodoro.Snapshot) {
	for _, view := range driver.views {
		driver.renderView(view, snapshot)
	}
}

func (driver *Driver) renderView(view View, snapshot pomodoro.Snapshot) {
	defer func() {
		if recovered := recover(); recovered != nil {
			driver.logger.Error("View update failed", "error", fmt.Sprint(recovered))
		}
	}()

	view.ChangeStateLabel(snapshot.State)
	view.ChangeTotalTimeLabel(snapshot.CurrentTotalStudyTime)
	switch {
	case snapshot.State == pomodoro.StateStudying:
		view.ChangeTimerLabel(snapshot.CurrentStudyTime)
	case snapshot.State.IsBreak():
		view.ChangeTimerLabel(snapshot.CurrentBreakTime)
	}
}

type notification struct {
	name   string
	notify func() error
}

// dispatchAsync hands the notification to the delivery worker, starting it on
// first use. It never blocks: when the backend falls behind, the notification
// is dropped.
func (driver *Driver) dispatchAsync(name string, notify func() error) {
	if driver.closed {
		driver.logger.Warn("Notification dropped after shutdown", "notification", name)
		return
	}
	driver.worker.Do(func() {
		go driver.deliverLoop()
	})
	select {
	case driver.notifications <- notification{name: name, notify: notify}:
	default:
		driver.logger.Warn("Notification queue full", "notification", name)
	}
}

func (driver *Driver) deliverLoop() {
	for item := range driver.notifications {
		driver.deliver(item.name, item.notify)
	}
}

// closeNotifications stops the worker once every queued notification has been
// handed to the backend. Only the goroutine calling Step may call it.
func (driver *Driver) closeNotifications() {
	if driver.closed {
		return
	}
	driver.closed = true
	close(driver.notifications)
}

func (driver *Driver) deliver(name string, notify func() error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			driver.logger.Error("Notifier panicked", "notification", name, "error", fmt.Sprint(recovered))
		}
	}()
	if err := notify(); err != nil {
		driver.logger.Warn("Notification failed", "notification", name, "error", err)
	}
}
