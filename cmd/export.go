package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jotkit/jot/internal/config"
	"github.com/jotkit/jot/internal/tabs"
)

var (
	exportDir     string
	exportCurrent bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write open tabs to text files",
	Long: `Export writes each saved tab to its own text file. Filenames are a
slug of the tab title plus a short random suffix, so exporting twice
never overwrites an earlier export.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Directory to write files into")
	exportCmd.Flags().BoolVar(&exportCurrent, "current", false, "Export only the current tab")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	r, err := config.LoadState()
	if err != nil {
		return fmt.Errorf("error loading saved tabs: %w", err)
	}

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return fmt.Errorf("error creating %s: %w", exportDir, err)
	}

	toWrite := r.Tabs()
	if exportCurrent {
		toWrite = []tabs.Tab{r.Current}
	}

	for _, t := range toWrite {
		path := filepath.Join(exportDir, exportFilename(t))
		if err := os.WriteFile(path, []byte(t.Doc.Text), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}

func exportFilename(t tabs.Tab) string {
	title := t.Title
	if title == "" {
		title = tabs.Untitled
	}
	return fmt.Sprintf("%s-%s.txt", slug(title), uuid.NewString()[:8])
}

// slug reduces a tab title to a lowercase filename-safe form.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "untitled"
	}
	return out
}
