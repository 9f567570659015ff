package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot/internal/config"
	"github.com/jotkit/jot/internal/logger"
)

var (
	cleanState  bool
	cleanLogs   bool
	cleanAll    bool
	skipConfirm bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved tabs, logs, or the whole app directory",
	Long: `Removes data jot has written to disk: the saved tab state (--state),
log files (--logs), or the entire app directory including the config
file (--all).

It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanState, "state", false, "Remove the saved tab state")
	cleanCmd.Flags().BoolVar(&cleanLogs, "logs", false, "Remove log files")
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Remove the entire app directory")
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	if !cleanState && !cleanLogs && !cleanAll {
		return fmt.Errorf("nothing selected; use --state, --logs, or --all")
	}

	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("error resolving app directory: %w", err)
	}

	// Print summary of what will be removed
	fmt.Println("This will remove:")
	if cleanAll {
		fmt.Printf("  - %s (saved tabs, config, and logs)\n", dir)
	} else {
		if cleanState {
			fmt.Printf("  - %s\n", filepath.Join(dir, "state.json"))
		}
		if cleanLogs {
			fmt.Printf("  - %s\n", filepath.Join(dir, "jot.log"))
			fmt.Println("  - jot log files in /tmp")
		}
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	removed := 0

	if cleanAll {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("error removing %s: %w", dir, err)
		}
		removed++
	} else {
		if cleanState {
			statePath := filepath.Join(dir, "state.json")
			if err := os.Remove(statePath); err == nil {
				removed++
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("error removing %s: %w", statePath, err)
			}
		}
		if cleanLogs {
			logPath := filepath.Join(dir, "jot.log")
			if err := os.Remove(logPath); err == nil {
				removed++
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("error removing %s: %w", logPath, err)
			}
		}
	}

	if cleanLogs || cleanAll {
		cleared, err := logger.ClearLogs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
		}
		removed += cleared
	}

	if removed == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	fmt.Printf("Removed %d item(s).\n", removed)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
