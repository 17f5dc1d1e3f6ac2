package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridstrike/internal/config"
	"github.com/vovakirdan/gridstrike/internal/games/gridstrike"
)

// setup loads the configuration, builds the logger and applies both to the
// game package. logFallback receives logs when no log file is configured.
// The returned close function releases the log file.
func setup(logFallback io.Writer) (config.Config, *log.Logger, func(), error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, nil, err
	}

	logger, closeLog, err := newLogger(cfg.Log, logFallback)
	if err != nil {
		return cfg, nil, nil, err
	}
	logger.Info("config loaded", "source", src)

	easing, _ := cfg.Gameplay.EasingCurve()
	gridstrike.Configure(gridstrike.Settings{
		MoveDuration: cfg.Gameplay.MoveDuration(),
		RefillEvery:  cfg.Gameplay.RefillEveryTicks,
		Easing:       easing,
		Logger:       logger,
	})
	return cfg, logger, closeLog, nil
}

// newLogger builds the application logger. An empty file logs to fallback.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "gridstrike",
	})
	return logger, closeFn, nil
}
