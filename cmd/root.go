package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/jotkit/jot/internal/app"
	"github.com/jotkit/jot/internal/config"
	"github.com/jotkit/jot/internal/logger"
	"github.com/jotkit/jot/internal/tabs"
	"github.com/jotkit/jot/internal/ui"
)

var (
	debugMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Tabbed scratchpad for the terminal",
	Long: `Jot is a tabbed scratchpad that lives in your terminal.
Every keystroke is saved automatically, and your tabs come back
exactly as you left them the next time you run it.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("jot %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("jot %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("error resolving app directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating app directory: %w", err)
	}

	// Logging failures should not keep the app from starting
	if err := logger.Init(filepath.Join(dir, "jot.log")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()
	logger.SetDebug(debugMode || cfg.GetDebugLogging())

	m := app.New(cfg, version)

	// Restore the tab ring. A malformed state file is moved aside so the
	// app can start fresh without destroying what was on disk.
	ring, err := config.LoadState()
	if err != nil {
		logger.ComponentLogger("cmd").Error("saved tabs unreadable", "error", err)
		backup, backupErr := config.BackupCorruptState()
		if backupErr != nil {
			logger.ComponentLogger("cmd").Error("backing up state failed", "error", backupErr)
		}
		ring = tabs.New()
		if backup != "" {
			m.QueueStartupFlash(fmt.Sprintf("Could not read saved tabs; moved aside to %s", filepath.Base(backup)), ui.FlashWarning)
		} else {
			m.QueueStartupFlash("Could not read saved tabs, starting fresh", ui.FlashWarning)
		}
	}
	m.SetRing(ring)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
