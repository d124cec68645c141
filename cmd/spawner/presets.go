package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spawner/internal/config"
)

var flagPresetForce bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Inspect and export preset configs",
	Long: `Presets are loaded from, in order: the --config file, ~/.spawner/presets/<id>.yaml,
./presets/<id>.yaml and finally the built-in defaults.`,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <preset>",
	Short: "Print the effective preset config as YAML",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsShow,
}

var presetsInitCmd = &cobra.Command{
	Use:   "init <preset>",
	Short: "Write the built-in preset to ~/.spawner/presets for editing",
	Args:  cobra.ExactArgs(1),
	Run:   runPresetsInit,
}

func init() {
	presetsShowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom preset config YAML")
	presetsInitCmd.Flags().BoolVar(&flagPresetForce, "force", false, "Overwrite an existing user preset")

	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsInitCmd)
}

func runPresetsShow(_ *cobra.Command, args []string) {
	cfg, err := config.Load(args[0], flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func runPresetsInit(_ *cobra.Command, args []string) {
	presetID := args[0]

	data := config.GetDefaultYAML(presetID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no built-in preset %q\n", presetID)
		os.Exit(1)
	}

	path := config.UserPresetPath(presetID + ".yaml")
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}

	if _, err := os.Stat(path); err == nil && !flagPresetForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Printf("Edit it and run 'spawner play %s --config %s --watch'.\n", presetID, path)
}
