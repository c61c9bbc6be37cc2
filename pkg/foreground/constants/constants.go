// Package constants defines shared constants and environment variable names
// used throughout the foreground packages.
package constants

import (
	"os"
	"strconv"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Environment variables read by the config package and the SDL host.
const (
	DebugEnvVar        = "FOREGROUND_DEBUG"
	OrderingEnvVar     = "FOREGROUND_ORDERING"
	LogLevelEnvVar     = "FOREGROUND_LOG_LEVEL"
	LogPathEnvVar      = "FOREGROUND_LOG_PATH"
	LanguageEnvVar     = "FOREGROUND_LANG"
	PowerDeviceEnvVar  = "FOREGROUND_POWER_DEVICE"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// ConfigDirName is the directory under the user's home holding config.toml.
const ConfigDirName = ".foreground"

// EnvInt32 reads a 32-bit integer from the environment, returning fallback
// when the variable is unset or malformed.
func EnvInt32(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(n)
}

// EnvBool reads a boolean from the environment. The second result is false
// when the variable is unset or malformed.
func EnvBool(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
