// consolebird is a flappy-bird style game for the terminal.
//
// Usage:
//
//	consolebird              - Play with the default raw terminal backend
//	consolebird backends     - List available terminal backends
//	consolebird config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (YAML, or TOML by extension)
//	--fps <rate>         - Override timing.target_fps
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--backend <id>       - Terminal backend: raw, tcell, tea
//	--log-file <path>    - Append logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/consolebird/internal/platform/rawterm"
	_ "github.com/vovakirdan/consolebird/internal/platform/tcellterm"
	_ "github.com/vovakirdan/consolebird/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagBackend  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "consolebird",
	Short: "ConsoleBird - fly through the gaps in your terminal",
	Long: `ConsoleBird is a flappy-bird style game played in the terminal.
Flap to stay airborne and fly through the gaps in the walls.

Controls:
  Space      - Flap
  Q/Ctrl+C   - Quit

Examples:
  consolebird
  consolebird --backend tcell
  consolebird --seed 42 --fps 60
  consolebird --config ./my-bird.toml
  consolebird config > ~/.consolebird/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (YAML or .toml)")

	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate override (0 = use config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "raw", "Terminal backend (see 'consolebird backends')")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: no logging)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
