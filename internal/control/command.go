// Package control runs the Pomodoro engine on a fixed tick. UI handlers enqueue
// commands; the driver goroutine is the only code that mutates the engine and
// it fans copies of the resulting snapshot out to the view and the notifier.
package control

import (
	"sync"

	"minidoro/internal/core/pomodoro"
)

// Command is a user request for the engine.
type Command int

const (
	CmdStudy Command = iota + 1
	CmdPause
	CmdResume
	CmdBreak
	CmdIdle
	CmdEnd
)

func (command Command) String() string {
	switch command {
	case CmdStudy:
		return "study"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdBreak:
		return "break"
	case CmdIdle:
		return "idle"
	case CmdEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Apply runs the engine operation matching the command. Unknown commands are
// ignored.
func (command Command) Apply(timer pomodoro.Timer) {
	switch command {
	case CmdStudy:
		timer.Study()
	case CmdPause:
		timer.Pause()
	case CmdResume:
		timer.Resume()
	case CmdBreak:
		timer.TakeBreak()
	case CmdIdle:
		timer.Idle()
	case CmdEnd:
		timer.EndOfStudy()
	}
}

// Queue is an unbounded FIFO of pending commands. Push never blocks and never
// drops, so it is safe to call from UI callbacks.
type Queue struct {
	mu      sync.Mutex
	pending []Command
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a command.
func (queue *Queue) Push(command Command) {
	queue.mu.Lock()
	queue.pending = append(queue.pending, command)
	queue.mu.Unlock()
}

// Pop removes the oldest command. ok is false when the queue is empty.
func (queue *Queue) Pop() (command Command, ok bool) {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if len(queue.pending) == 0 {
		return 0, false
	}
	command = queue.pending[0]
	queue.pending[0] = 0
	queue.pending = queue.pending[1:]
	return command, true
}

// Len returns the number of pending commands.
func (queue *Queue) Len() int {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	return len(queue.pending)
}
