package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jot.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEnterLogViewerMode(t *testing.T) {
	e := NewEditor()
	e.SetSize(80, 24)
	path := writeTestLog(t, "level=INFO msg=\"app started\"\n")

	e.EnterLogViewerMode(path)

	if !e.IsInLogViewerMode() {
		t.Fatal("Expected log viewer mode after EnterLogViewerMode")
	}
	if !e.GetLogViewerFollowTail() {
		t.Error("Follow tail should default to on")
	}

	view := stripANSI(e.logViewer.Viewport.View())
	if !strings.Contains(view, "app started") {
		t.Errorf("Viewport should show the log content, got: %q", view)
	}
}

func TestLogViewer_MissingFile(t *testing.T) {
	e := NewEditor()
	e.SetSize(80, 24)

	e.EnterLogViewerMode(filepath.Join(t.TempDir(), "missing.log"))

	view := stripANSI(e.logViewer.Viewport.View())
	if !strings.Contains(view, "Error reading log file") {
		t.Errorf("Missing file should show an error in the viewport, got: %q", view)
	}
}

func TestExitLogViewerMode(t *testing.T) {
	e := NewEditor()
	e.SetSize(80, 24)
	e.EnterLogViewerMode(writeTestLog(t, "line\n"))

	e.ExitLogViewerMode()

	if e.IsInLogViewerMode() {
		t.Error("Expected log viewer mode off after ExitLogViewerMode")
	}
}

func TestToggleLogViewerFollowTail(t *testing.T) {
	e := NewEditor()
	e.SetSize(80, 24)
	e.EnterLogViewerMode(writeTestLog(t, "line\n"))

	e.ToggleLogViewerFollowTail()
	if e.GetLogViewerFollowTail() {
		t.Error("Expected follow tail off after first toggle")
	}

	e.ToggleLogViewerFollowTail()
	if !e.GetLogViewerFollowTail() {
		t.Error("Expected follow tail on after second toggle")
	}
}

func TestGetLogViewerFollowTail_OutsideMode(t *testing.T) {
	e := NewEditor()

	if e.GetLogViewerFollowTail() {
		t.Error("Follow tail should report off outside log viewer mode")
	}
}

func TestRefreshLogViewer(t *testing.T) {
	e := NewEditor()
	e.SetSize(80, 24)
	path := writeTestLog(t, "first entry\n")
	e.EnterLogViewerMode(path)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("second entry\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	e.RefreshLogViewer()

	view := stripANSI(e.logViewer.Viewport.View())
	if !strings.Contains(view, "second entry") {
		t.Errorf("Refresh should pick up appended lines, got: %q", view)
	}
}

func TestHighlightLogLine(t *testing.T) {
	line := `level=ERROR msg="something broke"`

	got := highlightLogLine(line)

	if got == line {
		t.Error("Error lines should be styled")
	}
	if !strings.Contains(stripANSI(got), "level=ERROR") {
		t.Errorf("Styling should preserve the text, got: %q", stripANSI(got))
	}
}

func TestHighlightLogLine_Empty(t *testing.T) {
	if got := highlightLogLine(""); got != "" {
		t.Errorf("Empty line should stay empty, got %q", got)
	}
}

func TestHighlightLogContent_AllLevels(t *testing.T) {
	content := strings.Join([]string{
		`level=DEBUG msg="noise"`,
		`level=INFO msg="fine"`,
		`level=WARN msg="hmm"`,
		`level=ERROR msg="bad"`,
	}, "\n")

	got := stripANSI(highlightLogContent(content))

	for _, want := range []string{"noise", "fine", "hmm", "bad"} {
		if !strings.Contains(got, want) {
			t.Errorf("Highlighted content should keep %q, got: %q", want, got)
		}
	}
}
