// fireworks is a terminal fireworks show: rockets rise, burst into particles
// under gravity and drag, and some burst a second time before fading out.
//
// Usage:
//
//	fireworks                  - Run the show (same as 'fireworks show')
//	fireworks show             - Run the show
//	fireworks history          - Show statistics of past shows
//	fireworks config           - Print the effective configuration
//	fireworks list             - List renderer backends
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--seed <value>     - RNG seed for a reproducible show
//	--db <path>        - History database (default: from config, ~/.fireworks/history.db)
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-fireworks/internal/platform/term"
	_ "github.com/vovakirdan/tui-fireworks/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagBackend string
)

// logger is set up before any command runs.
var logger = log.New(io.Discard)

// logFile is closed after the command finishes.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fireworks",
	Short: "Fireworks - a particle show in your terminal",
	Long: `Fireworks launches rockets from the bottom of the terminal. Each one
bursts into a cloud of particles that fall under gravity, fade with age and
sometimes burst a second time.

Available commands:
  show     - Run the show (default)
  history  - View statistics of past shows
  config   - Print the effective configuration
  list     - Show renderer backends

Examples:
  fireworks
  fireworks --backend tcell
  fireworks --seed 42
  fireworks history --limit 20`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogger,
	PersistentPostRunE: closeLogger,
	RunE:               runShow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Renderer backend (see 'fireworks list')")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// setupLogger points the logger at --log-file (debug level) or stderr (info level).
// Stderr output only happens before and after the full-screen session.
func setupLogger(cmd *cobra.Command, args []string) error {
	var (
		w     io.Writer = os.Stderr
		level           = log.InfoLevel
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fireworks",
		Level:           level,
	})
	return nil
}

func closeLogger(cmd *cobra.Command, args []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}
