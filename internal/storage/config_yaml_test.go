package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"minidoro/internal/core/model"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, model.DefaultPomodoroConfig(), config)
}

func TestLoadConfig_ReadsAllKeys(t *testing.T) {
	path := writeFile(t, `
total_study_time: 240
study_time: 25
short_break_time: 5
long_break_time: 20
long_break_interval: 3
stop_on_timeout: true
stop_on_end: true
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, model.PomodoroConfig{
		TotalStudyTime:    240,
		StudyTime:         25,
		ShortBreakTime:    5,
		LongBreakTime:     20,
		LongBreakInterval: 3,
		StopOnTimeout:     true,
		StopOnEnd:         true,
	}, config)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "total_study_time: 90\nstop_on_end: true\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	expected := model.DefaultPomodoroConfig()
	expected.TotalStudyTime = 90
	expected.StopOnEnd = true
	require.Equal(t, expected, config)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "study_time: 0\nlong_break_interval: -1\n")

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, model.ErrInvalidConfig)
	require.Contains(t, err.Error(), "study_time")
	require.Contains(t, err.Error(), "long_break_interval")
}

func TestLoadConfig_RejectsMalformedYaml(t *testing.T) {
	path := writeFile(t, "study_time: [thirty\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config yaml")
}

func TestLoadConfig_RejectsNonNumericDuration(t *testing.T) {
	path := writeFile(t, "study_time: thirty\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config yaml")
}

func TestSaveConfig_RoundTripAndOverwriteGuard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	config := model.DefaultPomodoroConfig()
	config.StopOnTimeout = true

	require.NoError(t, SaveConfig(path, config, false))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, config, loaded)

	err = SaveConfig(path, model.DefaultPomodoroConfig(), false)
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, SaveConfig(path, model.DefaultPomodoroConfig(), true))
	loaded, err = LoadConfig(path)
	require.NoError(t, err)
	require.False(t, loaded.StopOnTimeout)
}

func TestSaveConfig_WritesSnakeCaseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveConfig(path, model.DefaultPomodoroConfig(), false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "long_break_interval: 4")
	require.Contains(t, string(raw), "stop_on_end: false")
}
