package view

import (
	"fmt"
	"strings"

	"minidoro/internal/control"
	"minidoro/internal/core/pomodoro"
)

// FormatClock renders seconds as MM:SS, or HH:MM:SS from one hour on.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds %= 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// StateTitle returns the human label for a state, e.g. "Short break".
func StateTitle(state pomodoro.State) string {
	text := strings.ReplaceAll(string(state), "_", " ")
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[:1]) + text[1:]
}

// PlayLabel is the text of the primary button for the given state.
func PlayLabel(state pomodoro.State) string {
	switch state {
	case pomodoro.StateStudying:
		return "Pause"
	case pomodoro.StatePause:
		return "Resume"
	default:
		return "Study"
	}
}

// PlayCommand is the command issued when the primary button is pressed.
func PlayCommand(state pomodoro.State) control.Command {
	switch state {
	case pomodoro.StateStudying:
		return control.CmdPause
	case pomodoro.StatePause:
		return control.CmdResume
	default:
		return control.CmdStudy
	}
}
