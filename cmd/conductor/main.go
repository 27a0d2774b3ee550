// Command-line interface to the train conductor world tools.
// Checks and annotates a Tiled world map, once or after every save.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ekohilas/train-conductor-world-tools/config"
	"github.com/ekohilas/train-conductor-world-tools/helper"
	"github.com/ekohilas/train-conductor-world-tools/logging"
	"github.com/ekohilas/train-conductor-world-tools/watch"
)

var (
	// Display usage if true.
	showHelp = flag.Bool("help", false, "")

	// TOML configuration file. Leave unset for defaults.
	configPath = flag.String("config", "", "")

	// Input files, overriding the configuration.
	distancesPath = flag.String("distances", config.DefaultDistances, "")
	tilesPath     = flag.String("tiles", config.DefaultTiles, "")
	tmxPath       = flag.String("tmx", config.DefaultTMX, "")

	// Re-run after every save of the map if true.
	autoUpdate = flag.Bool("auto-update", true, "")

	// Run in verbose mode if true.
	runVerbose = flag.Bool("verbose", false, "")
)

const helpMessage = `
conductor checks a train conductor world map and annotates its connections

Usage: conductor [options]

      -config      =string   TOML configuration file.
      -distances   =string   Path to distances json file.
      -tiles       =string   Path to tile json file.
      -tmx         =string   Path to mapping tmx file.
      -auto-update =bool     Update the tmx file on every change (default true).
      -verbose     (flag)    Enables verbose debug logging output.
  -h, -help        (flag)    Show help message
`

func usage() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if *showHelp || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Logging.SetLogger()
	defer logging.Shutdown()
	logging.Debugf("Configuration: %s", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Criticalf("%v", err)
		logging.Shutdown()
		os.Exit(1)
	}
}

// loadConfig reads -config if given, then applies the flags set explicitly.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "distances":
			cfg.Files.Distances = *distancesPath
		case "tiles":
			cfg.Files.Tiles = *tilesPath
		case "tmx":
			cfg.Files.TMX = *tmxPath
		case "auto-update":
			cfg.Helper.AutoUpdate = *autoUpdate
		case "verbose":
			cfg.Logging.Verbose = *runVerbose
		}
	})
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config) error {
	h, err := helper.New(cfg)
	if err != nil {
		return err
	}
	update := func(ctx context.Context) error {
		r, err := h.UpdateMap(ctx)
		if err != nil {
			return err
		}
		if !r.Passed() {
			logging.Warningf("%d placement and %d distance checks failed.", len(r.Placements), len(r.Distances))
		}
		return nil
	}

	if err := update(ctx); err != nil {
		if !cfg.Helper.AutoUpdate {
			return err
		}
		logging.Errorf("%v", err)
	}
	if !cfg.Helper.AutoUpdate {
		return nil
	}

	w, err := watch.New(cfg.Files.TMX, update)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
