package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/session"
	"github.com/lox/klondike/internal/statistics"
)

const (
	historyFileName = ".klondike_history"
	statsFileName   = ".klondike_stats.hcl"
)

// app is everything a play command needs, built from config and flags
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	logFile *os.File
	sess    *session.Session
}

// loadConfig reads the config file and applies flag overrides on top
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, g)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Config, g *Globals) {
	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if g.Lenient {
		cfg.SetStrict(false)
	}
	if g.Color != "" {
		cfg.UI.Color = g.Color
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if home, err := os.UserHomeDir(); err == nil {
		if cfg.UI.HistoryFile == "" {
			cfg.UI.HistoryFile = filepath.Join(home, historyFileName)
		}
		if cfg.Game.StatsFile == "" {
			cfg.Game.StatsFile = filepath.Join(home, statsFileName)
		}
	}
}

// newApp loads configuration, opens the log file and deals the first game
func newApp(g *Globals) (*app, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "klondike",
		Level:           cfg.LogLevel(),
	})
	logger.Info("Starting", "version", version, "config", g.Config, "mode", cfg.UI.Mode)

	var stats *statistics.Store
	if cfg.Game.StatsFile != "" {
		if stats, err = statistics.Open(cfg.Game.StatsFile); err != nil {
			// a broken stats file should not stop play
			logger.Warn("Not keeping statistics", "file", cfg.Game.StatsFile, "error", err)
			stats = nil
		}
	}

	sess, err := session.New(session.Options{
		Seed:              cfg.Game.Seed,
		StrictFoundations: cfg.Strict(),
		Stats:             stats,
	}, logger, quartz.NewReal())
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &app{cfg: cfg, logger: logger, logFile: logFile, sess: sess}, nil
}

func (a *app) Close() {
	a.logger.Info("Session finished", "deals", a.sess.Deals(), "elapsed", a.sess.Elapsed())
	if err := a.logFile.Close(); err != nil {
		log.Error("Failed to close log file", "error", err)
	}
}
