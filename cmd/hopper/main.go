// hopper is an endless lane runner for the terminal: hop across grass and
// road lanes without getting hit by traffic or falling behind.
//
// Usage:
//
//	hopper list              - List available modes
//	hopper play [mode]       - Play a mode (default: hopper)
//	hopper menu              - Start menu to pick modes interactively
//	hopper serve             - Start SSH server for remote play
//	hopper scores [mode]     - Show best runs and score statistics
//
// Global flags:
//
//	--fps <rate>           - Set render/input tick rate (default: 60)
//	--physics-rate <rate>  - Set fixed physics steps per second (default: 50)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.hopper/scores.db)
//	--log-file <path>      - Write game logs to a file
//	--log-level <level>    - Minimum log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/games/hopper"
)

var (
	// Global flags
	flagFPS         int
	flagPhysicsRate int
	flagSeed        int64
	flagDBPath      string
	flagLogFile     string
	flagLogLevel    string
)

// logger is configured from the global flags before any command runs
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hopper"})

// logFile is closed after the command finishes
var logFile *os.File

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
	Use:   "hopper",
	Short: "Hopper - an endless lane runner in your terminal",
	Long: `Hopper is an endless lane runner. Hop forward across grass and road
lanes, dodge the traffic, and keep up with the world as it scrolls.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  hopper list
  hopper play
  hopper play hopper_endless --difficulty hard
  hopper menu
  hopper serve --ssh :2222
  hopper scores --csv > runs.csv`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	defaults := core.DefaultConfig()
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.TickRate, "Render and input tick rate (frames per second)")
	rootCmd.PersistentFlags().IntVar(&flagPhysicsRate, "physics-rate", defaults.FixedRate, "Fixed physics steps per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Minimum log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging routes game logs to --log-file. Without it, the terminal UI
// owns the screen and game logs are discarded.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	fileLogger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "hopper",
		Level:           level,
	})
	logger = fileLogger
	hopper.SetLogger(fileLogger)
	return nil
}

// runtimeConfig builds the runtime configuration from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		FixedRate: flagPhysicsRate,
		Seed:      flagSeed,
	}
}
