package pomodoro

import "minidoro/internal/core/model"

// State represents the current Pomodoro phase.
type State string

const (
	StateIdle       State = "idle"
	StateStudying   State = "studying"
	StateShortBreak State = "short_break"
	StateLongBreak  State = "long_break"
	StatePause      State = "pause"
	StateEnd        State = "end"
)

// IsBreak reports whether the state is a short or long break.
func (state State) IsBreak() bool {
	return state == StateShortBreak || state == StateLongBreak
}

// Snapshot is a copy of the runtime counters, in seconds.
type Snapshot struct {
	CurrentTotalStudyTime int
	CurrentStudyTime      int
	CurrentBreakTime      int
	BreaksDone            int
	State                 State
}

// Timer is the full command and read surface of a Pomodoro engine.
// Commands issued from a state that does not allow them are ignored.
type Timer interface {
	Study()
	Pause()
	Resume()
	TakeBreak()
	Idle()
	EndOfStudy()
	Update()

	Config() model.PomodoroConfig
	Snapshot() Snapshot
}
