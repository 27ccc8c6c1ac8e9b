// escapezone is a tilt-steered endless driving game for the terminal.
//
// Usage:
//
//	escapezone list               - List game variants
//	escapezone play [variant]     - Play a variant (default: escapezone)
//	escapezone menu               - Pick variants interactively
//	escapezone scores <variant>   - Show high scores and recent runs
//	escapezone sim                - Run the autopilot headless
//	escapezone config             - Print the effective game config
//	escapezone serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.escapezone/scores.db)
//	--log <path>        - Write logs to a file instead of stderr
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the game variants
	_ "github.com/vovakirdan/escapezone/internal/games/escapezone"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "escapezone",
	Short: "Escape Zone - tilt your way down an endless road",
	Long: `Escape Zone is an endless top-down driving game for the terminal.
Tilt the car with the arrow keys, keep it on the road, dodge the
blocks and grab power-ups for a turbo boost.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  scores   - View high scores and recent runs
  sim      - Let the autopilot drive headless
  config   - Print the effective game config
  serve    - Start SSH server for remote play

Examples:
  escapezone play
  escapezone play escapezone_edge --difficulty hard
  escapezone menu
  escapezone sim --ticks 5000 --seed 42
  escapezone serve --ssh :2222`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.escapezone/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (keeps the game screen clean)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging configures the default logger from the global flags.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := os.Stderr
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "escapezone",
	})
	log.SetDefault(logger)
	return nil
}
