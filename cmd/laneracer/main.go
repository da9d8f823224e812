// Package main is the entry point for Lane Racer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/laneracer/internal/config"
	"github.com/Faultbox/laneracer/internal/engine/audio"
	"github.com/Faultbox/laneracer/internal/game"
	"github.com/Faultbox/laneracer/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Lane Racer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// One-shot commands run without opening a window
	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Fatal("failed to save config", zap.Error(err))
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}
	if dir := config.ExportCuesDir(); dir != "" {
		paths, err := audio.ExportCues(dir, audio.DefaultSampleRate)
		if err != nil {
			logger.Fatal("failed to export cues", zap.Error(err))
		}
		logger.Info("cues exported", zap.Strings("files", paths))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Create the game; window, context and shader failures end here
	g, err := game.New(cfg)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}
	defer g.Close()

	// Hot-reload gameplay tunables from the config file
	if path := config.Path(); path != "" {
		go func() {
			if err := config.Watch(ctx, path, g.Reload); err != nil {
				logger.Warn("config watch stopped", zap.String("path", path), zap.Error(err))
			}
		}()
	}

	// Run the game loop
	if err := g.Run(ctx); err != nil {
		logger.Error("game error", zap.Error(err))
		g.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("game closed normally")
}
