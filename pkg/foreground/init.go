// Package foreground tracks which screen of an application is on top and
// whether the application as a whole is in the foreground.
//
// The package wires the pieces together: it configures logging, builds the
// shared monitor from a config, and re-exports the common types. Screens are
// fed in by a lifecycle source such as the router or the SDL host.
package foreground

import (
	"log/slog"

	"github.com/BrandonKowalski/foreground/pkg/foreground/config"
	"github.com/BrandonKowalski/foreground/pkg/foreground/constants"
	"github.com/BrandonKowalski/foreground/pkg/foreground/internal"
	"github.com/BrandonKowalski/foreground/pkg/foreground/monitor"
)

// Options configures logging for the foreground packages.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // Application log level: debug, info, warn, error
	Debug    bool   // Also surface the library's own debug output
}

// Init sets up logging. Call it once before creating monitors.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	internal.SetRawLogLevel(options.LogLevel)

	if options.Debug || constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}
}

// InitFromConfig calls Init with the logging settings of cfg.
func InitFromConfig(cfg *config.Config) {
	Init(Options{
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
		Debug:    cfg.Debug,
	})
}

// NewMonitor builds the monitor an application shares between its lifecycle
// sources and listeners. Construct it once at start-up and pass it around.
func NewMonitor[T any](cfg *config.Config) *monitor.Monitor[T] {
	if cfg == nil {
		cfg = config.Default()
	}
	return monitor.New[T](cfg.MonitorOptions(internal.GetInternalLogger()))
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
