package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot/internal/tabs"
)

var (
	replayStatePath string
	replayOutPath   string
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Apply a script of tab actions to a saved state",
	Long: `Replay drives the tab ring without the TUI: it reads one JSON action
per line from the script file (or stdin when no file is given), applies
each action in order, and prints the resulting state as JSON.

Use --state to start from a saved state file instead of a fresh ring,
and --out to write the result to a file instead of stdout. The first
malformed or unrecognized action aborts the replay with its error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayStatePath, "state", "", "Start from a saved state file")
	replayCmd.Flags().StringVarP(&replayOutPath, "out", "o", "", "Write the final state to a file")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("error opening script: %w", err)
		}
		defer f.Close()
		in = f
	}
	return runReplayStreams(in, cmd.OutOrStdout())
}

// runReplayStreams allows injecting streams for testing
func runReplayStreams(in io.Reader, out io.Writer) error {
	r := tabs.New()
	if replayStatePath != "" {
		data, err := os.ReadFile(replayStatePath)
		if err != nil {
			return fmt.Errorf("error reading state: %w", err)
		}
		r, err = tabs.Unmarshal(data)
		if err != nil {
			return fmt.Errorf("error parsing state: %w", err)
		}
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		action, err := tabs.ParseAction(raw)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		r, err = tabs.Apply(r, action)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading script: %w", err)
	}

	data, err := tabs.Marshal(r)
	if err != nil {
		return err
	}
	if replayOutPath != "" {
		if err := os.WriteFile(replayOutPath, data, 0644); err != nil {
			return fmt.Errorf("error writing state: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
