package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"minidoro/internal/core/model"
)

const configFileName = "config.yaml"

// ErrConfigExists is returned by SaveConfig when it must not overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// yamlConfig mirrors the config file. Pointer fields tell a missing key
// apart from an explicit zero, which must fail validation.
type yamlConfig struct {
	TotalStudyTime    *int  `yaml:"total_study_time"`
	StudyTime         *int  `yaml:"study_time"`
	ShortBreakTime    *int  `yaml:"short_break_time"`
	LongBreakTime     *int  `yaml:"long_break_time"`
	LongBreakInterval *int  `yaml:"long_break_interval"`
	StopOnTimeout     *bool `yaml:"stop_on_timeout"`
	StopOnEnd         *bool `yaml:"stop_on_end"`
}

// DefaultConfigPath returns the per-user config file location for appName.
func DefaultConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

// LoadConfig reads the Pomodoro settings, in minutes, from path.
// If the file does not exist, default settings are returned.
// Keys absent from the file keep their default value.
func LoadConfig(path string) (model.PomodoroConfig, error) {
	config := model.DefaultPomodoroConfig()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes config to path, creating parent directories. An existing
// file is only replaced when overwrite is set.
func SaveConfig(path string, config model.PomodoroConfig, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlConfig{
		TotalStudyTime:    &config.TotalStudyTime,
		StudyTime:         &config.StudyTime,
		ShortBreakTime:    &config.ShortBreakTime,
		LongBreakTime:     &config.LongBreakTime,
		LongBreakInterval: &config.LongBreakInterval,
		StopOnTimeout:     &config.StopOnTimeout,
		StopOnEnd:         &config.StopOnEnd,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func applyYamlConfig(config *model.PomodoroConfig, fileData yamlConfig) {
	if fileData.TotalStudyTime != nil {
		config.TotalStudyTime = *fileData.TotalStudyTime
	}
	if fileData.StudyTime != nil {
		config.StudyTime = *fileData.StudyTime
	}
	if fileData.ShortBreakTime != nil {
		config.ShortBreakTime = *fileData.ShortBreakTime
	}
	if fileData.LongBreakTime != nil {
		config.LongBreakTime = *fileData.LongBreakTime
	}
	if fileData.LongBreakInterval != nil {
		config.LongBreakInterval = *fileData.LongBreakInterval
	}
	if fileData.StopOnTimeout != nil {
		config.StopOnTimeout = *fileData.StopOnTimeout
	}
	if fileData.StopOnEnd != nil {
		config.StopOnEnd = *fileData.StopOnEnd
	}
}
