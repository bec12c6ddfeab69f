package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIcon_LoadsEmbeddedSVG(t *testing.T) {
	resource, err := Icon("minidoro.svg")
	require.NoError(t, err)
	require.Equal(t, "minidoro.svg", resource.Name())
	require.Contains(t, string(resource.Content()), "<svg")

	cached, err := Icon("minidoro.svg")
	require.NoError(t, err)
	require.Same(t, resource, cached)
}

func TestIcon_MissingFile(t *testing.T) {
	_, err := Icon("absent.svg")
	require.Error(t, err)
	require.Panics(t, func() { MustIcon("absent.svg") })
}
