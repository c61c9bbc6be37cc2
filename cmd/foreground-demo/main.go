// Command foreground-demo shows foreground tracking end to end: lifecycle
// events from an SDL window (or a scripted router run) feed the monitor, and
// every foreground change is announced as a localized toast in the log.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/foreground/pkg/foreground"
	"github.com/BrandonKowalski/foreground/pkg/foreground/config"
	"github.com/BrandonKowalski/foreground/pkg/foreground/host/power"
	"github.com/BrandonKowalski/foreground/pkg/foreground/host/sdlhost"
	"github.com/BrandonKowalski/foreground/pkg/foreground/notify"
)

var (
	foregroundColor = sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}
	backgroundColor = sdl.Color{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
)

func init() {
	// SDL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to config.toml (default ~/.foreground/config.toml)")
	scripted := flag.Bool("router", false, "drive the monitor from a scripted router run instead of a window")
	flag.Parse()

	if err := run(*configPath, *scripted); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, scripted bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	foreground.InitFromConfig(cfg)
	defer foreground.Close()

	logger := foreground.GetLogger()
	logger.Info("Starting", "ordering", cfg.Ordering, "language", cfg.Language, "debug", cfg.Debug)

	toast, err := notify.New(cfg.WindowTitle, cfg.Language, func(message string) {
		logger.Info("Toast", "message", message)
	})
	if err != nil {
		return err
	}

	if scripted {
		return runScripted(cfg, toast, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runWindow(ctx, cfg, toast, logger)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func runWindow(ctx context.Context, cfg *config.Config, toast *notify.Notifier, logger *slog.Logger) error {
	m := foreground.NewMonitor[sdlhost.Window](cfg)
	m.Subscribe(toast)

	if err := sdlhost.Init(); err != nil {
		return err
	}
	defer sdlhost.Quit()

	win, err := sdlhost.OpenWindow(cfg.WindowTitle, sdlhost.WindowOptions{Resizable: true})
	if err != nil {
		return err
	}
	defer win.Close()

	tracker := sdlhost.NewTracker(m)
	tracker.Track(win)
	defer tracker.Untrack(win.ID())

	suspends := make(chan bool, 4)
	if cfg.PowerDevice != "" {
		go watchPower(ctx, cfg.PowerDevice, suspends, logger)
	}

	err = sdlhost.Pump(ctx, tracker, func() {
		select {
		case suspended := <-suspends:
			tracker.SetSuspended(suspended)
		default:
		}

		color := backgroundColor
		if m.IsForeground() {
			color = foregroundColor
		}
		win.Fill(color)
		win.Present()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func watchPower(ctx context.Context, device string, suspends chan<- bool, logger *slog.Logger) {
	err := power.Watch(ctx, power.ButtonConfig{DevicePath: device}, func(suspended bool) {
		select {
		case suspends <- suspended:
		case <-ctx.Done():
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Power key watcher stopped", "device", device, "error", err)
	}
}
