package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minidoro/internal/control"
	"minidoro/internal/core/model"
	"minidoro/internal/core/pomodoro"
	"minidoro/internal/platform"
	"minidoro/internal/storage"
	"minidoro/internal/ui/tray"
	"minidoro/internal/ui/view"
	"minidoro/resources"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/alecthomas/kong"
)

const appName = "Minidoro"

type cli struct {
	Config  string `short:"c" help:"Configuration file path (defaults to the user config directory)" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Run struct {
		Tick time.Duration `help:"Interval between timer ticks" default:"1s"`
		Mute bool          `help:"Disable the notification chime"`
	} `cmd:"" default:"withargs" help:"Start the Pomodoro timer"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Write the default configuration file"`
}

var CLI cli

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name("minidoro"),
		kong.Description("A small Pomodoro timer."),
	}
}

func main() {
	ctx := kong.Parse(&CLI, parserOptions()...)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	configPath, err := resolveConfigPath(CLI.Config)
	if err != nil {
		slog.Error("Failed to resolve configuration path", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "init":
		if err := runInit(configPath, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
	default:
		if err := runTimer(configPath, CLI.Run.Tick, CLI.Run.Mute); err != nil {
			slog.Error("Timer failed", "error", err)
			os.Exit(1)
		}
	}
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return storage.DefaultConfigPath(appName)
}

func runInit(configPath string, force bool) error {
	if err := storage.SaveConfig(configPath, model.DefaultPomodoroConfig(), force); err != nil {
		return err
	}
	slog.Info("Wrote default configuration", "path", configPath)
	return nil
}

func runTimer(configPath string, tick time.Duration, mute bool) error {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			slog.Warn("Another timer is already running", "error", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	config, err := storage.LoadConfig(configPath)
	if err != nil {
		return err
	}
	engine, err := pomodoro.New(config)
	if err != nil {
		return err
	}
	slog.Info("Loaded configuration",
		"path", configPath,
		"total_study_minutes", config.TotalStudyTime,
		"study_minutes", config.StudyTime,
		"short_break_minutes", config.ShortBreakTime,
		"long_break_minutes", config.LongBreakTime,
		"long_break_interval", config.LongBreakInterval,
		"stop_on_timeout", config.StopOnTimeout,
		"stop_on_end", config.StopOnEnd)

	fyneApp := app.NewWithID("com.minidoro.app")
	icon := resources.MustIcon("minidoro.svg")
	fyneApp.SetIcon(icon)

	queue := control.NewQueue()
	window := view.New(fyneApp, appName, queue.Push)
	views := []control.View{window}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, appName, tray.Callbacks{
			OnCommand: queue.Push,
			OnShow:    window.Raise,
			OnQuit:    window.Close,
		})
		desktopApp.SetSystemTrayIcon(icon)
		views = append(views, trayManager)
	} else {
		slog.Debug("System tray unsupported on this platform")
	}

	notifier := newNotifier(platform.NewNotifier(fyneApp), mute)
	driver := control.New(engine, queue, notifier, control.Config{
		TickInterval: tick,
		Logger:       slog.Default(),
	}, views...)

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fyneApp.Lifecycle().SetOnStopped(cancel)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		select {
		case sig := <-signals:
			slog.Info("Received signal, closing", "signal", sig.String())
			window.Close()
		case <-runCtx.Done():
		}
	}()

	go func() {
		err := driver.Run(runCtx)
		switch {
		case err == nil:
			slog.Info("Pomodoro session finished")
		case errors.Is(err, context.Canceled):
			slog.Debug("Driver stopped")
		default:
			slog.Error("Driver stopped", "error", err)
		}
	}()

	window.Show()
	return nil
}

func newNotifier(base platform.Notifier, mute bool) control.Notifier {
	if mute {
		return base
	}
	chime, err := platform.NewChime(base)
	if err != nil {
		slog.Warn("Audio disabled", "error", fmt.Errorf("chime: %w", err))
		return base
	}
	return chime
}
