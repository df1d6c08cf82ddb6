package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/examdeck/internal/config"
	"github.com/abhisek/examdeck/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "examdeck",
	Short: "Timed mock tests in your terminal",
	Long: "Examdeck runs timed mock tests with an exam-hall question palette,\n" +
		"offline-first persistence, and optional sync to a results service.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMDECK_DB env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.PersistentFlags().Int("questions", 10, "Questions per generated test")
	rootCmd.PersistentFlags().Duration("duration", 30*time.Minute, "Test duration")
	rootCmd.PersistentFlags().Bool("shuffle", true, "Shuffle questions when generating a test")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging routes zerolog to a file so log lines never land in the
// terminal the TUI owns.
func setupLogging(cmd *cobra.Command) error {
	level := zerolog.InfoLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	logPath := cfg.LogFile
	if logPath == "" {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		logPath = filepath.Join(filepath.Dir(dbPath), "examdeck.log")
	}
	if err := store.EnsureDir(logPath); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
