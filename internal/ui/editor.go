package ui

import (
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// Editor represents the main text panel editing the current tab's document.
// Besides normal editing it has two overlay modes: a read-only preview with
// syntax highlighting and text selection, and a log viewer that tails the
// application log.
type Editor struct {
	textarea textarea.Model
	width    int
	height   int
	focused  bool

	// Preview mode state (nil when inactive)
	preview *PreviewState
	// Log viewer mode state (nil when inactive)
	logViewer *LogViewerState

	// Text selection state for preview mode. Coordinates are viewport-relative;
	// -1 means no selection.
	selectionStartCol  int
	selectionStartLine int
	selectionEndCol    int
	selectionEndLine   int
	selectionActive    bool

	// Click tracking for double/triple click detection
	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int

	// Selection flash animation (brief highlight after copy, then clear).
	// -1 = inactive, 0 = flash visible.
	selectionFlashFrame int
}

// NewEditor creates a new editor panel
func NewEditor() *Editor {
	ta := textarea.New()
	ta.Placeholder = "Jot something down..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.Prompt = ""

	e := &Editor{
		textarea:            ta,
		selectionFlashFrame: -1,
	}
	e.SelectionClear()
	return e
}

// SetSize sets the editor panel dimensions
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height

	ctx := GetViewContext()

	innerWidth := ctx.InnerWidth(width)
	innerHeight := ctx.InnerHeight(height)
	if innerHeight < 1 {
		innerHeight = 1
	}

	// The textarea sits inside the panel padding
	e.textarea.SetWidth(innerWidth - EditorPaddingWidth)
	e.textarea.SetHeight(innerHeight)

	// Mode viewports use the full inner area minus their nav bar
	if e.preview != nil {
		e.preview.Viewport.SetWidth(innerWidth)
		e.preview.Viewport.SetHeight(innerHeight - NavBarHeight)
		e.updatePreviewContent()
	}
	if e.logViewer != nil {
		e.logViewer.Viewport.SetWidth(innerWidth)
		e.logViewer.Viewport.SetHeight(innerHeight - NavBarHeight)
	}

	ctx.Log("Editor.SetSize: outer=%dx%d, textarea=%dx%d", width, height, innerWidth-EditorPaddingWidth, innerHeight)
}

// SetFocused sets the focus state
func (e *Editor) SetFocused(focused bool) {
	e.focused = focused
	if focused {
		e.textarea.Focus()
	} else {
		e.textarea.Blur()
	}
}

// IsFocused returns the focus state
func (e *Editor) IsFocused() bool {
	return e.focused
}

// SetText replaces the editor content, moving the cursor to the end.
// Used when switching tabs or restoring state.
func (e *Editor) SetText(text string) {
	e.textarea.SetValue(text)
}

// Value returns the current document text
func (e *Editor) Value() string {
	return e.textarea.Value()
}

// Update handles messages
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case SelectionFlashTickMsg:
		// Flash finished: clear the highlight and the selection with it
		if e.selectionFlashFrame == 0 {
			e.selectionFlashFrame = -1
			e.SelectionClear()
		}
		return e, nil

	case tea.MouseClickMsg:
		if e.IsInPreviewMode() && msg.Button == tea.MouseLeft {
			// Adjust for the panel border and the nav bar above the viewport
			x := msg.X - 1
			y := msg.Y - 1 - NavBarHeight
			if cmd := e.handleMouseClick(x, y); cmd != nil {
				cmds = append(cmds, cmd)
			}
			return e, tea.Batch(cmds...)
		}

	case tea.MouseMotionMsg:
		if e.IsInPreviewMode() && msg.Button == tea.MouseLeft {
			e.EndSelection(msg.X-1, msg.Y-1-NavBarHeight)
			return e, nil
		}

	case tea.MouseReleaseMsg:
		if e.IsInPreviewMode() {
			e.SelectionStop()
			return e, nil
		}
	}

	// Mode viewports handle scrolling (keys and mouse wheel)
	if e.preview != nil {
		var cmd tea.Cmd
		e.preview.Viewport, cmd = e.preview.Viewport.Update(msg)
		cmds = append(cmds, cmd)
		return e, tea.Batch(cmds...)
	}
	if e.logViewer != nil {
		var cmd tea.Cmd
		e.logViewer.Viewport, cmd = e.logViewer.Viewport.Update(msg)
		cmds = append(cmds, cmd)
		return e, tea.Batch(cmds...)
	}

	if e.focused {
		var cmd tea.Cmd
		e.textarea, cmd = e.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return e, tea.Batch(cmds...)
}

// View renders the editor panel
func (e *Editor) View() string {
	panelStyle := PanelStyle
	if e.focused {
		panelStyle = PanelFocusedStyle
	}

	if e.preview != nil {
		return e.renderPreviewMode(panelStyle)
	}
	if e.logViewer != nil {
		return e.renderLogViewerMode(panelStyle)
	}

	return panelStyle.Padding(0, 1).Width(e.width).Height(e.height).Render(e.textarea.View())
}
