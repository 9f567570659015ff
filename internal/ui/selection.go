// Package ui provides terminal user interface components for jot.
//
// # Text Selection Coordinate System
//
// The text selection system uses a coordinate system relative to the preview viewport:
//
//	┌─────────────────────────────────────────────┐
//	│ ← 1px border                                │
//	│  nav bar (1 line)                           │
//	│  ┌─────────────────────────────────────────┐│
//	│  │ (0,0)   Viewport content area           ││
//	│  │                                         ││
//	│  │    Selection coordinates are            ││
//	│  │    relative to this inner area          ││
//	│  │                                         ││
//	│  │                             (width, height)
//	│  └─────────────────────────────────────────┘│
//	│                                 1px border → │
//	└─────────────────────────────────────────────┘
//
// Mouse events from Bubble Tea arrive in terminal coordinates (0,0 = top-left of
// terminal). The Editor receives events pre-adjusted to panel coordinates (0,0 =
// top-left of the editor panel). The selection code then subtracts the border and
// the nav bar line, yielding viewport-relative coordinates. This adjustment happens
// in editor.go's Update() method for MouseClickMsg, MouseMotionMsg, and
// MouseReleaseMsg events.
//
// Selection coordinates (selectionStartCol, selectionStartLine, etc.) are stored in
// viewport-relative coordinates. When rendering the selection highlight, these
// coordinates are used directly with the ultraviolet screen buffer which also
// operates in viewport-relative coordinates.
//
// When extracting selected text, the coordinates are used to index into the
// viewport's content lines. ANSI escape codes are stripped before text extraction
// to ensure coordinates align with visible character positions.
package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/jotkit/jot/internal/clipboard"
	"github.com/jotkit/jot/internal/logger"
	"github.com/rivo/uniseg"
)

// ClipboardErrorMsg is sent when clipboard operations fail
type ClipboardErrorMsg struct {
	Error error
}

// SelectionFlashTickMsg is sent to animate the selection copy flash
type SelectionFlashTickMsg time.Time

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // pixels
)

// previewView returns the rendered preview content the selection operates on.
func (e *Editor) previewView() string {
	if e.preview == nil {
		return ""
	}
	return e.preview.Viewport.View()
}

// StartSelection begins a text selection at the given coordinates
func (e *Editor) StartSelection(col, line int) {
	e.selectionStartCol = col
	e.selectionStartLine = line
	e.selectionEndCol = col
	e.selectionEndLine = line
	e.selectionActive = true
}

// EndSelection updates the end position of the selection during drag
func (e *Editor) EndSelection(col, line int) {
	if !e.selectionActive {
		return
	}
	e.selectionEndCol = col
	e.selectionEndLine = line
}

// SelectionStop ends the drag but keeps the selection visible
func (e *Editor) SelectionStop() {
	e.selectionActive = false
}

// SelectionClear clears the selection entirely
func (e *Editor) SelectionClear() {
	e.selectionStartCol = -1
	e.selectionStartLine = -1
	e.selectionEndCol = -1
	e.selectionEndLine = -1
	e.selectionActive = false
}

// HasTextSelection returns true if there is an active or completed selection
func (e *Editor) HasTextSelection() bool {
	return e.selectionStartCol >= 0 && e.selectionStartLine >= 0 &&
		(e.selectionEndCol != e.selectionStartCol || e.selectionEndLine != e.selectionStartLine)
}

// handleMouseClick handles mouse click events and detects double/triple clicks
func (e *Editor) handleMouseClick(x, y int) tea.Cmd {
	now := time.Now()

	// Check if this is a potential multi-click
	if now.Sub(e.lastClickTime) <= doubleClickThreshold &&
		abs(x-e.lastClickX) <= clickTolerance &&
		abs(y-e.lastClickY) <= clickTolerance {
		e.clickCount++
	} else {
		e.clickCount = 1
	}

	e.lastClickTime = now
	e.lastClickX = x
	e.lastClickY = y

	switch e.clickCount {
	case 1:
		// Single click - start selection
		e.StartSelection(x, y)
	case 2:
		// Double click - select word and copy immediately
		e.SelectWord(x, y)
		return e.CopySelectedText()
	case 3:
		// Triple click - select line/paragraph and copy immediately
		e.SelectParagraph(x, y)
		e.clickCount = 0 // Reset after triple click
		return e.CopySelectedText()
	}

	return nil
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectWord selects the word at the given position
func (e *Editor) SelectWord(col, line int) {
	content := e.previewView()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	currentLine := ansi.Strip(lines[line])
	if col < 0 || col >= len(currentLine) {
		return
	}

	// Find word boundaries using uniseg
	startCol := col
	endCol := col

	// Search backward for word start
	gr := uniseg.NewGraphemes(currentLine[:col])
	pos := 0
	lastBoundary := 0
	for gr.Next() {
		if gr.IsWordBoundary() {
			lastBoundary = pos
		}
		pos += len(gr.Str())
	}
	startCol = lastBoundary

	// Search forward for word end
	gr = uniseg.NewGraphemes(currentLine[col:])
	pos = col
	for gr.Next() {
		if gr.IsWordBoundary() {
			endCol = pos
			break
		}
		pos += len(gr.Str())
	}
	if endCol <= col {
		endCol = len(currentLine)
	}

	e.selectionStartCol = startCol
	e.selectionStartLine = line
	e.selectionEndCol = endCol
	e.selectionEndLine = line
	e.selectionActive = false
}

// SelectParagraph selects the paragraph/line at the given position
func (e *Editor) SelectParagraph(col, line int) {
	content := e.previewView()
	lines := strings.Split(content, "\n")

	if line < 0 || line >= len(lines) {
		return
	}

	// Find paragraph boundaries (search for empty lines)
	startLine := line
	endLine := line

	// Search backward for paragraph start
	for startLine > 0 {
		prevLine := ansi.Strip(lines[startLine-1])
		if strings.TrimSpace(prevLine) == "" {
			break
		}
		startLine--
	}

	// Search forward for paragraph end
	for endLine < len(lines)-1 {
		nextLine := ansi.Strip(lines[endLine+1])
		if strings.TrimSpace(nextLine) == "" {
			break
		}
		endLine++
	}

	// Get the width of the last line in the paragraph
	lastLineWidth := len(ansi.Strip(lines[endLine]))

	e.selectionStartCol = 0
	e.selectionStartLine = startLine
	e.selectionEndCol = lastLineWidth
	e.selectionEndLine = endLine
	e.selectionActive = false
}

// selectionArea returns the normalized selection area (start < end).
//
// Selection can happen in any direction - the user might drag from bottom-right
// to top-left. This function normalizes the coordinates so that (startCol, startLine)
// is always before (endCol, endLine) in reading order.
//
// The normalization handles two cases:
//  1. Multi-line backward selection: startLine > endLine - swap both lines and columns
//  2. Same-line backward selection: startLine == endLine && startCol > endCol - swap columns
//
// This ensures text extraction and rendering always process from start to end.
func (e *Editor) selectionArea() (startCol, startLine, endCol, endLine int) {
	startCol = e.selectionStartCol
	startLine = e.selectionStartLine
	endCol = e.selectionEndCol
	endLine = e.selectionEndLine

	// Normalize so start is before end in reading order (top-to-bottom, left-to-right)
	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}

	return
}

// GetSelectedText returns the currently selected text.
//
// The text extraction process:
//  1. Get the viewport's rendered content (which contains ANSI escape codes)
//  2. Split into lines
//  3. For each line in the selection range, strip ANSI codes before extracting substring
//  4. Join lines with newlines
//
// ANSI codes are stripped because selection coordinates correspond to visible character
// positions, not raw string positions. For example, a bold "Hello" might be stored as
// "\x1b[1mHello\x1b[0m" (15 bytes) but displays as 5 characters. When the user selects
// characters 0-5, they expect "Hello", not a partial escape sequence.
func (e *Editor) GetSelectedText() string {
	if !e.HasTextSelection() {
		return ""
	}

	content := e.previewView()
	lines := strings.Split(content, "\n")

	startCol, startLine, endCol, endLine := e.selectionArea()

	// A drag onto the panel border arrives as line -1
	if startLine < 0 {
		startLine = 0
	}

	var result strings.Builder

	for y := startLine; y <= endLine && y < len(lines); y++ {
		line := ansi.Strip(lines[y])

		var lineStart, lineEnd int
		if y == startLine {
			lineStart = startCol
		} else {
			lineStart = 0
		}
		if y == endLine {
			lineEnd = endCol
		} else {
			lineEnd = len(line)
		}

		// Ensure bounds are valid
		if lineStart < 0 {
			lineStart = 0
		}
		if lineEnd > len(line) {
			lineEnd = len(line)
		}
		if lineStart > lineEnd {
			lineStart = lineEnd
		}

		if lineStart < len(line) {
			result.WriteString(line[lineStart:lineEnd])
		}
		if y < endLine {
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String())
}

// CopySelectedText copies the selected text to the clipboard and starts flash animation
func (e *Editor) CopySelectedText() tea.Cmd {
	if !e.HasTextSelection() {
		return nil
	}

	selectedText := e.GetSelectedText()
	if selectedText == "" {
		return nil
	}

	// Start the selection flash animation
	e.selectionFlashFrame = 0

	return tea.Batch(
		// OSC 52 escape sequence (works in modern terminals)
		tea.SetClipboard(selectedText),
		// Native clipboard fallback - returns error message if it fails
		func() tea.Msg {
			if err := clipboard.Copy(selectedText); err != nil {
				logger.Debug("Failed to write to clipboard: %v", err)
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		// Start flash animation timer
		SelectionFlashTick(),
	)
}

// selectionView applies selection highlighting to the rendered view using ultraviolet
func (e *Editor) selectionView(view string) string {
	if !e.HasTextSelection() {
		return view
	}

	width := e.preview.Viewport.Width()
	height := e.preview.Viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	// Create screen buffer from the rendered view
	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	// Get normalized selection coordinates
	startCol, startLine, endCol, endLine := e.selectionArea()
	if startLine < 0 {
		startLine = 0
	}

	// Get selection style colors - use flash style during copy animation
	var selBg, selFg color.Color
	if e.selectionFlashFrame == 0 {
		// Flash frame - use the success color to indicate the copy landed
		selBg = TextSelectionFlashStyle.GetBackground()
		selFg = TextSelectionFlashStyle.GetForeground()
	} else {
		// Normal selection
		selBg = TextSelectionStyle.GetBackground()
		selFg = TextSelectionStyle.GetForeground()
	}

	// Apply selection highlighting
	for y := startLine; y <= endLine && y < height; y++ {
		var xStart, xEnd int
		if y == startLine && y == endLine {
			// Single line selection
			xStart = startCol
			xEnd = endCol
		} else if y == startLine {
			// First line of multi-line selection
			xStart = startCol
			xEnd = width
		} else if y == endLine {
			// Last line of multi-line selection
			xStart = 0
			xEnd = endCol
		} else {
			// Middle lines
			xStart = 0
			xEnd = width
		}

		for x := xStart; x < xEnd && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = selBg
				cell.Style.Fg = selFg
				scr.SetCell(x, y, cell)
			}
		}
	}

	return scr.Render()
}
