package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bouncing-cube/internal/anim"
	"github.com/iburimskiy/bouncing-cube/internal/config"
	"github.com/iburimskiy/bouncing-cube/internal/game"
)

const (
	logDir      = "logs"
	logFileName = "cube.log"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		reportFatal(err, cfg.Headless)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting %dx%d headless=%v seed=%d", cfg.Width, cfg.Height, cfg.Headless, cfg.Seed)

	c := anim.NewContext(cfg.Width, cfg.Height, anim.NewRandom(cfg.Seed))

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := game.RunHeadless(ctx, c, cfg); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
	return game.Run(cfg, c)
}

// setupLogging sends the std logger to logs/cube.log when debug is set and
// discards it otherwise. The returned file, if any, must be closed by the caller.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// reportFatal prints err and, when a desktop is in use, shows it in a dialog.
func reportFatal(err error, headless bool) {
	fmt.Fprintf(os.Stderr, "bouncing-cube: %v\n", err)
	log.Printf("fatal: %v", err)
	if headless {
		return
	}
	_ = zenity.Error(err.Error(),
		zenity.Title("Bouncing Cube"),
		zenity.ErrorIcon,
	)
}
