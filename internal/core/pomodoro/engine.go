package pomodoro

import (
	"fmt"

	"minidoro/internal/core/model"
)

// Engine is the Pomodoro state machine. It is not safe for concurrent use;
// a single owner drives it through its command methods and Update.
type Engine struct {
	config model.PomodoroConfig

	state                 State
	currentTotalStudyTime int
	currentStudyTime      int
	currentBreakTime      int
	breaksDone            int
}

var _ Timer = (*Engine)(nil)

// New creates an idle Engine. Durations in config are minutes.
func New(config model.PomodoroConfig) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return &Engine{
		config: config.InSeconds(),
		state:  StateIdle,
	}, nil
}

// Study starts a new study interval from any state except END.
func (engine *Engine) Study() {
	if engine.state == StateEnd {
		return
	}
	engine.enter(StateStudying)
}

// Pause freezes a running study interval.
func (engine *Engine) Pause() {
	if engine.state != StateStudying {
		return
	}
	engine.state = StatePause
}

// Resume continues a paused study interval without resetting it.
func (engine *Engine) Resume() {
	if engine.state != StatePause {
		return
	}
	engine.state = StateStudying
}

// TakeBreak starts a break while studying or paused. Every
// LongBreakInterval-th break is a long one.
func (engine *Engine) TakeBreak() {
	if engine.state != StateStudying && engine.state != StatePause {
		return
	}
	engine.breaksDone++
	if engine.breaksDone%engine.config.LongBreakInterval == 0 {
		engine.enter(StateLongBreak)
		return
	}
	engine.enter(StateShortBreak)
}

// Idle returns to IDLE from any state except PAUSE and END.
func (engine *Engine) Idle() {
	if engine.state == StatePause || engine.state == StateEnd {
		return
	}
	engine.enter(StateIdle)
}

// EndOfStudy ends the session. END is terminal.
func (engine *Engine) EndOfStudy() {
	engine.enter(StateEnd)
}

// Update accounts for one elapsed second.
func (engine *Engine) Update() {
	switch engine.state {
	case StateStudying:
		engine.advanceStudy()
	case StateShortBreak, StateLongBreak:
		engine.currentBreakTime++
	}
}

// Config returns the configuration with durations in seconds.
func (engine *Engine) Config() model.PomodoroConfig {
	return engine.config
}

// Snapshot returns a copy of the current counters and state.
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		CurrentTotalStudyTime: engine.currentTotalStudyTime,
		CurrentStudyTime:      engine.currentStudyTime,
		CurrentBreakTime:      engine.currentBreakTime,
		BreaksDone:            engine.breaksDone,
		State:                 engine.state,
	}
}

func (engine *Engine) advanceStudy() {
	if engine.config.StopOnEnd && engine.currentTotalStudyTime >= engine.config.TotalStudyTime {
		engine.EndOfStudy()
		return
	}
	if engine.config.StopOnTimeout && engine.currentStudyTime >= engine.config.StudyTime {
		engine.Idle()
		return
	}
	engine.currentStudyTime++
	engine.currentTotalStudyTime++
}

func (engine *Engine) enter(state State) {
	engine.state = state
	engine.resetIntervalTimers()
}

func (engine *Engine) resetIntervalTimers() {
	engine.currentStudyTime = 0
	engine.currentBreakTime = 0
}
