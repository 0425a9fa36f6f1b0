// catch is a terminal rhythm game: catch fruits falling to the beat.
//
// Usage:
//
//	catch list              - List available modes
//	catch play <mode>       - Play a mode
//	catch menu              - Start menu to pick modes interactively
//	catch serve             - Start SSH server for remote play
//	catch scores <mode>     - Show the best runs of a mode
//	catch replay <mode>     - Replay a map with autopilot and verify the digest
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set map seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.catch/scores.db)
//	--config <path>       - Custom catch.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured before any subcommand runs.
var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "Catch - catch fruits falling to the beat in your terminal",
	Long: `Catch is a terminal rhythm game. Fruits, droplets and bananas fall
towards your catcher; move it left and right to catch them on the beat.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View the best runs
  replay   - Regenerate a map and verify it plays back identically

Examples:
  catch list
  catch play catch
  catch play catch_rain --difficulty hard
  catch menu
  catch serve --ssh :2222
  catch replay catch --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Map seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom catch config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal screens log nowhere otherwise)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup validates global flags and hands them to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	l, err := newLogger(cmd.Name() == serveCmd.Name())
	if err != nil {
		return err
	}
	logger = l

	if flagConfig != "" {
		if _, err := config.LoadCatch(flagConfig); err != nil {
			return err
		}
	}

	catch.SetConfigPath(flagConfig)
	catch.SetDifficultyPreset(flagDifficulty)
	catch.SetLogger(logger.WithPrefix("game"))
	return nil
}

// newLogger builds the application logger. Full-screen commands only log to
// --log-file; the server also logs to stderr.
func newLogger(stderr bool) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = io.Discard
	if stderr {
		out = os.Stderr
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		if stderr {
			out = io.MultiWriter(os.Stderr, f)
		} else {
			out = f
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "catch",
		Level:           level,
	}), nil
}

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
