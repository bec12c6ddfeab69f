package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig indicates a configuration that cannot drive the timer.
var ErrInvalidConfig = errors.New("invalid pomodoro config")

// SecondsPerMinute is the factor applied to configured durations.
const SecondsPerMinute = 60

// MaxMinutes is the largest duration that still fits in an int once converted
// to seconds.
const MaxMinutes = math.MaxInt / SecondsPerMinute

// PomodoroConfig contains the settings for one Pomodoro session.
// Durations are expressed in minutes when read from the config file and in
// seconds once returned by InSeconds.
type PomodoroConfig struct {
	TotalStudyTime    int
	StudyTime         int
	ShortBreakTime    int
	LongBreakTime     int
	LongBreakInterval int
	StopOnTimeout     bool
	StopOnEnd         bool
}

// DefaultPomodoroConfig returns the built-in settings, in minutes.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		TotalStudyTime:    120,
		StudyTime:         30,
		ShortBreakTime:    5,
		LongBreakTime:     15,
		LongBreakInterval: 4,
	}
}

// Validate reports every field that would break the tick arithmetic.
func (config PomodoroConfig) Validate() error {
	var errs []error
	durations := []struct {
		name  string
		value int
	}{
		{"total_study_time", config.TotalStudyTime},
		{"study_time", config.StudyTime},
		{"short_break_time", config.ShortBreakTime},
		{"long_break_time", config.LongBreakTime},
	}
	for _, field := range durations {
		switch {
		case field.value <= 0:
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field.name, field.value))
		case field.value > MaxMinutes:
			errs = append(errs, fmt.Errorf("%w: %s must be at most %d minutes, got %d", ErrInvalidConfig, field.name, MaxMinutes, field.value))
		}
	}
	if config.LongBreakInterval < 1 {
		errs = append(errs, fmt.Errorf("%w: long_break_interval must be at least 1, got %d", ErrInvalidConfig, config.LongBreakInterval))
	}
	return errors.Join(errs...)
}

// InSeconds returns a copy with every duration converted from minutes to seconds.
func (config PomodoroConfig) InSeconds() PomodoroConfig {
	config.TotalStudyTime *= SecondsPerMinute
	config.StudyTime *= SecondsPerMinute
	config.ShortBreakTime *= SecondsPerMinute
	config.LongBreakTime *= SecondsPerMinute
	return config
}
