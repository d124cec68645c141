package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-spawner/internal/config"
	"github.com/vovakirdan/tui-spawner/internal/core"
	"github.com/vovakirdan/tui-spawner/internal/platform/tui"
	"github.com/vovakirdan/tui-spawner/internal/playground"
	"github.com/vovakirdan/tui-spawner/internal/registry"
	"github.com/vovakirdan/tui-spawner/internal/storage"
)

var (
	flagConfig string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play <preset>",
	Short: "Run a preset",
	Long: `Run the specified spawner preset interactively.

Controls:
  Space/S      - Spawn if under the live cap
  F/Enter      - Force spawn, ignoring the cap
  X/Backspace  - Remove the oldest entity
  C            - Clear all entities
  P            - Pause
  R            - Restart
  ?            - Toggle full help
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

With --watch the preset file given by --config is watched and the
scenario restarts with the new values every time it is saved.

Examples:
  spawner play rain
  spawner play turret --seed 42
  spawner play manual --config ./my-manual.yaml
  spawner play fountain --config ./fountain.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom preset config YAML")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the --config file when it changes")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	presetID := args[0]

	if !registry.Exists(presetID) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", presetID)
		fmt.Fprintln(os.Stderr, "Run 'spawner list' to see available presets.")
		os.Exit(1)
	}

	if flagWatch && flagConfig == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch requires --config")
		os.Exit(1)
	}

	logger, closeLog := newFileLogger("spawner")
	defer closeLog()

	playground.SetLogger(logger)
	playground.SetConfigPath(flagConfig)

	scenario, err := registry.Create(presetID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scenario: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{Logger: logger}
	if flagWatch {
		watcher, watchErr := config.NewWatcher(flagConfig)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", flagConfig, watchErr)
			os.Exit(1)
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage, the playground still works
		store = nil
	}

	runErr := tui.Run(scenario, store, terminalConfig(), opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", runErr)
		os.Exit(1)
	}
}
