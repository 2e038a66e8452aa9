// Command scenecheck loads scene files without opening a window and
// reports examinable items with broken references, unknown UI modes or
// sounds and fonts missing from the config.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"examine3d/internal/config"
	"examine3d/internal/logging"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("scenecheck", pflag.ContinueOnError)
	configDir := fs.String("config", ".", "directory containing "+config.FileName)
	verbose := fs.BoolP("verbose", "v", false, "log every object loaded")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := logging.Setup(level, os.Stderr, nil)

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths, _ = filepath.Glob("assets/scenes/*.json")
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "no scene files given")
		os.Exit(2)
	}

	failed := false
	for _, path := range paths {
		report, err := checkScene(path, cfg, log)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", path, err)
			failed = true
			continue
		}
		if len(report.Problems) == 0 {
			fmt.Printf("✓ %s (%d items)\n", path, report.Items)
			continue
		}
		failed = true
		fmt.Printf("✗ %s (%d items, %d problems)\n", path, report.Items, len(report.Problems))
		for _, p := range report.Problems {
			fmt.Printf("    %v\n", p)
		}
	}
	if failed {
		os.Exit(1)
	}
}
