package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"examine3d/internal/config"
	"examine3d/internal/game"
	"examine3d/internal/logging"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.BindFlags(fs); err != nil {
		return err
	}
	configDir, _ := fs.GetString("config")

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	var logFile io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}

	log := logging.Setup(cfg.LogLevel, os.Stderr, logFile)
	logging.RouteRaylib(log)

	if used := config.Used(); used != "" {
		log.Info().Str("file", used).Msg("config loaded")
	} else {
		log.Info().Str("dir", configDir).Msg("no config file, using defaults")
	}

	return game.New(cfg, log).Run()
}
