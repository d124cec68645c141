// spawner is a terminal playground for a timed object spawner with a
// capacity limit, randomized placement and FIFO removal.
//
// Usage:
//
//	spawner list              - List available presets
//	spawner play <preset>     - Run a preset interactively
//	spawner menu              - Start menu to pick presets interactively
//	spawner sim <preset>      - Run a preset headless and print counters
//	spawner serve             - Start SSH server for remote play
//	spawner history [preset]  - Show recorded sessions
//	spawner presets show <id> - Print a preset as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible jitter
//	--db <path>     - Set database path (default: ~/.spawner/sessions.db)
//	--debug         - Enable debug logging
//	--log <path>    - Log file for interactive commands (default: ~/.spawner/spawner.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import playground to register presets
	_ "github.com/vovakirdan/tui-spawner/internal/playground"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagDebug   bool
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spawner",
	Short: "TUI Spawner - Watch a timed object spawner in your terminal",
	Long: `TUI Spawner runs object spawner presets in the terminal. Every preset
spawns entities on a timer up to a live cap, randomizes their placement and
lets you force, try, remove or clear spawns by hand.

Available commands:
  list     - Show all available presets
  play     - Run a specific preset directly
  menu     - Interactive preset picker menu
  sim      - Headless run that prints the final counters
  serve    - Start SSH server for remote play
  history  - View recorded sessions
  presets  - Inspect and export preset configs

Examples:
  spawner list
  spawner play rain
  spawner play manual --config ./my-manual.yaml --watch
  spawner sim turret --seconds 30 --seed 7
  spawner serve --ssh :2222
  spawner history rain`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.spawner/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.spawner/spawner.log", "Log file for interactive commands")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(presetsCmd)
}
