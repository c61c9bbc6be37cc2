package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvInt32(t *testing.T) {
	t.Setenv(WindowWidthEnvVar, "800")
	require.Equal(t, int32(800), EnvInt32(WindowWidthEnvVar, 640))

	t.Setenv(WindowWidthEnvVar, "wide")
	require.Equal(t, int32(640), EnvInt32(WindowWidthEnvVar, 640))

	t.Setenv(WindowWidthEnvVar, "")
	require.Equal(t, int32(640), EnvInt32(WindowWidthEnvVar, 640))
}

func TestEnvBool(t *testing.T) {
	t.Setenv(DebugEnvVar, "true")
	v, ok := EnvBool(DebugEnvVar)
	require.True(t, ok)
	require.True(t, v)

	t.Setenv(DebugEnvVar, "maybe")
	_, ok = EnvBool(DebugEnvVar)
	require.False(t, ok)
}
