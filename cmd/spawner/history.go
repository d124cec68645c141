package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spawner/internal/registry"
	"github.com/vovakirdan/tui-spawner/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [preset]",
	Short: "Show recorded sessions",
	Long: `Display the most recent finished sessions, optionally for one preset,
followed by aggregated totals.

Examples:
  spawner history
  spawner history rain --limit 5
  spawner history rain --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded sessions instead of listing them")
}

func runHistory(_ *cobra.Command, args []string) {
	presetID := ""
	if len(args) == 1 {
		presetID = args[0]
		if !registry.Exists(presetID) {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", presetID)
			fmt.Fprintln(os.Stderr, "Run 'spawner list' to see available presets.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(presetID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("History cleared.")
		return
	}

	sessions, err := store.RecentSessions(presetID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}

	title := "all presets"
	if presetID != "" {
		title = presetID
	}
	fmt.Printf("Session History - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %7s  %7s  %7s  %7s  %8s  %s\n", "Preset", "Spawned", "Blocked", "Removed", "Peak", "Time", "Date")
	fmt.Printf("  %-10s  %7s  %7s  %7s  %7s  %8s  %s\n", "------", "-------", "-------", "-------", "----", "----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-10s  %7d  %7d  %7d  %7d  %7.1fs  %s\n",
			s.PresetID, s.Spawned, s.Blocked, s.Removed, s.PeakLive, s.Duration,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	if presetID == "" {
		return
	}

	stats, err := store.PresetStats(presetID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Spawned: %d  Blocked: %d  Best peak: %d\n",
		stats.Sessions, stats.TotalSpawned, stats.TotalBlocked, stats.BestPeak)
}
