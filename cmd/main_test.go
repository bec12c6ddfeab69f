package main

import (
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

func parseArgs(t *testing.T, args ...string) (*cli, string) {
	t.Helper()
	var parsed cli
	parser, err := kong.New(&parsed, parserOptions()...)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &parsed, ctx.Command()
}

func TestCLI_RunIsDefaultWithoutArgs(t *testing.T) {
	parsed, command := parseArgs(t)
	require.Equal(t, "run", command)
	require.Equal(t, time.Second, parsed.Run.Tick)
	require.False(t, parsed.Run.Mute)
}

func TestCLI_RunFlagsWithoutCommandName(t *testing.T) {
	parsed, command := parseArgs(t, "--tick", "2s", "--mute", "-v")
	require.Equal(t, "run", command)
	require.Equal(t, 2*time.Second, parsed.Run.Tick)
	require.True(t, parsed.Run.Mute)
	require.True(t, parsed.Verbose)
}

func TestCLI_ExplicitCommands(t *testing.T) {
	parsed, command := parseArgs(t, "run", "--tick", "500ms")
	require.Equal(t, "run", command)
	require.Equal(t, 500*time.Millisecond, parsed.Run.Tick)

	parsed, command = parseArgs(t, "init", "--force")
	require.Equal(t, "init", command)
	require.True(t, parsed.Init.Force)
}

func TestResolveConfigPath_PrefersFlag(t *testing.T) {
	path, err := resolveConfigPath("/tmp/minidoro.yaml")
	require.NoError(t, err)
	require.Equal(t, "/tmp/minidoro.yaml", path)
}
