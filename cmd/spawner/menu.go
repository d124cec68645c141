package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spawner/internal/platform/tui"
	"github.com/vovakirdan/tui-spawner/internal/playground"
	"github.com/vovakirdan/tui-spawner/internal/registry"
	"github.com/vovakirdan/tui-spawner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the playground with a preset picker menu",
	Long: `Start the playground in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a preset.
Quitting a preset returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select preset
  Tab          - Session history
  Q            - Quit

Examples:
  spawner menu
  spawner menu --fps 30
  spawner menu --db ./sessions.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newFileLogger("spawner")
	defer closeLog()
	playground.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		store = nil
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(store, "", cfg.ScreenW, cfg.ScreenH)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue
			}
			break
		}

		presetID := menuResult.PresetID
		if presetID == "" {
			break
		}

		scenario, err := registry.Create(presetID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scenario: %v\n", err)
			continue
		}

		// Fresh jitter for each run unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(scenario, store, cfg, tui.Options{Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
