package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
)

// LogViewerState tracks the log viewer mode state.
// Non-nil when the log viewer is displayed.
type LogViewerState struct {
	Viewport   viewport.Model // Viewport for log scrolling
	Path       string         // Log file path
	FollowTail bool           // Whether to auto-scroll to bottom on updates
}

// EnterLogViewerMode enters the log viewer for the given log file.
func (e *Editor) EnterLogViewerMode(path string) {
	e.logViewer = &LogViewerState{
		Path:       path,
		Viewport:   viewport.New(),
		FollowTail: true, // Default to following tail
	}

	// Configure viewport
	e.logViewer.Viewport.MouseWheelEnabled = true
	e.logViewer.Viewport.MouseWheelDelta = 3
	e.logViewer.Viewport.SoftWrap = true

	ctx := GetViewContext()
	e.logViewer.Viewport.SetWidth(ctx.InnerWidth(e.width))
	e.logViewer.Viewport.SetHeight(ctx.InnerHeight(e.height) - NavBarHeight)

	e.updateLogViewerContent()
}

// updateLogViewerContent updates the log viewport with the file's content.
func (e *Editor) updateLogViewerContent() {
	if e.logViewer == nil {
		return
	}

	// Read the file content
	content, err := os.ReadFile(e.logViewer.Path)
	if err != nil {
		e.logViewer.Viewport.SetContent(fmt.Sprintf("Error reading log file: %v", err))
		return
	}

	// Apply syntax highlighting for log format
	highlighted := highlightLogContent(string(content))
	e.logViewer.Viewport.SetContent(highlighted)

	// Go to bottom if following tail, otherwise go to top
	if e.logViewer.FollowTail {
		e.logViewer.Viewport.GotoBottom()
	} else {
		e.logViewer.Viewport.GotoTop()
	}
}

// highlightLogContent applies syntax highlighting to log content.
func highlightLogContent(content string) string {
	var sb strings.Builder
	lines := strings.SplitSeq(content, "\n")

	for line := range lines {
		highlighted := highlightLogLine(line)
		sb.WriteString(highlighted)
		sb.WriteString("\n")
	}

	return sb.String()
}

// highlightLogLine applies syntax highlighting to a single log line.
func highlightLogLine(line string) string {
	if line == "" {
		return line
	}

	// Define styles
	levelErrorStyle := lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	levelWarnStyle := lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	levelInfoStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	levelDebugStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(ColorText)

	// Check for level indicator and apply appropriate style
	if strings.Contains(line, "level=ERROR") {
		line = strings.Replace(line, "level=ERROR", levelErrorStyle.Render("level=ERROR"), 1)
	} else if strings.Contains(line, "level=WARN") {
		line = strings.Replace(line, "level=WARN", levelWarnStyle.Render("level=WARN"), 1)
	} else if strings.Contains(line, "level=INFO") {
		line = strings.Replace(line, "level=INFO", levelInfoStyle.Render("level=INFO"), 1)
	} else if strings.Contains(line, "level=DEBUG") {
		line = strings.Replace(line, "level=DEBUG", levelDebugStyle.Render("level=DEBUG"), 1)
	}

	// Highlight msg= values
	if idx := strings.Index(line, "msg="); idx >= 0 {
		before := line[:idx]
		rest := line[idx:]

		// Find the msg value (could be quoted or unquoted)
		if len(rest) > 4 && rest[4] == '"' {
			// Quoted message - find closing quote
			endIdx := strings.Index(rest[5:], "\"")
			if endIdx >= 0 {
				msgKey := keyStyle.Render("msg=")
				msgValue := valueStyle.Render(rest[4 : 5+endIdx+1])
				line = before + msgKey + msgValue + rest[5+endIdx+1:]
			}
		}
	}

	return line
}

// ExitLogViewerMode exits the log viewer and returns to editing.
func (e *Editor) ExitLogViewerMode() {
	e.logViewer = nil
}

// IsInLogViewerMode returns whether we're currently showing the log viewer.
func (e *Editor) IsInLogViewerMode() bool {
	return e.logViewer != nil
}

// RefreshLogViewer reloads the log file content.
func (e *Editor) RefreshLogViewer() {
	if e.logViewer != nil {
		e.updateLogViewerContent()
	}
}

// ToggleLogViewerFollowTail toggles the follow tail mode.
func (e *Editor) ToggleLogViewerFollowTail() {
	if e.logViewer != nil {
		e.logViewer.FollowTail = !e.logViewer.FollowTail
		if e.logViewer.FollowTail {
			e.logViewer.Viewport.GotoBottom()
		}
	}
}

// GetLogViewerFollowTail returns whether follow tail mode is enabled.
func (e *Editor) GetLogViewerFollowTail() bool {
	if e.logViewer == nil {
		return false
	}
	return e.logViewer.FollowTail
}

// renderLogViewerMode renders the log viewer with its navigation bar.
func (e *Editor) renderLogViewerMode(panelStyle lipgloss.Style) string {
	if e.logViewer == nil {
		return ""
	}

	// Calculate dimensions
	innerWidth := e.width - 2 // Account for panel border
	innerHeight := e.height - 2

	// Build the navigation bar
	navBar := e.renderLogNavBar(innerWidth)

	// Log viewport gets remaining height
	logHeight := innerHeight - NavBarHeight

	// Update log viewport size
	e.logViewer.Viewport.SetWidth(innerWidth)
	e.logViewer.Viewport.SetHeight(logHeight)

	// Get viewport content and constrain to max height
	logContent := lipgloss.NewStyle().
		MaxHeight(logHeight).
		Render(e.logViewer.Viewport.View())

	// Join navigation bar and log content vertically
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		navBar,
		logContent,
	)

	return panelStyle.Width(e.width).Height(e.height).Render(content)
}

// renderLogNavBar renders the navigation bar for the log viewer.
func (e *Editor) renderLogNavBar(width int) string {
	if e.logViewer == nil {
		return ""
	}

	// Follow indicator
	followIndicator := ""
	if e.logViewer.FollowTail {
		followStyle := lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
		followIndicator = " " + followStyle.Render("[Follow]")
	} else {
		followStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
		followIndicator = " " + followStyle.Render("[f: follow]")
	}

	// Refresh hint
	refreshStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	refreshHint := " " + refreshStyle.Render("[r: refresh]")

	// Calculate available width for filename
	fixedWidth := lipgloss.Width(followIndicator) + lipgloss.Width(refreshHint) + 1
	maxFilenameWidth := max(width-fixedWidth, 10)

	// Truncate filename if needed
	filename := filepath.Base(e.logViewer.Path)
	if len(filename) > maxFilenameWidth {
		filename = filename[:maxFilenameWidth-1] + "…"
	}
	filenameStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	// Assemble the navigation bar
	navContent := filenameStyle.Render(filename) +
		followIndicator +
		refreshHint

	// Style the whole bar
	barStyle := lipgloss.NewStyle().
		Width(width)

	return barStyle.Render(navContent)
}
