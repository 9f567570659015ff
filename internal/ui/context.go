package ui

import (
	"sync"

	"github.com/jotkit/jot/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	TabBarHeight  int
	FooterHeight  int
	ContentHeight int
	EditorWidth   int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			TabBarHeight: TabBarHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using printf-style formatting.
// For new code, prefer using logger.ComponentLogger("ui") directly.
func (v *ViewContext) Log(msg string, args ...interface{}) {
	logger.Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	// Header, tab bar, and footer each take exactly 1 line of content
	v.HeaderHeight = HeaderHeight
	v.TabBarHeight = TabBarHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between the tab bar and the footer
	v.ContentHeight = height - v.HeaderHeight - v.TabBarHeight - v.FooterHeight

	// The editor panel spans the full terminal width
	v.EditorWidth = width

	log := logger.ComponentLogger("ui")
	log.Debug("Terminal size updated",
		"width", width,
		"height", height,
		"headerHeight", v.HeaderHeight,
		"tabBarHeight", v.TabBarHeight,
		"footerHeight", v.FooterHeight,
		"contentHeight", v.ContentHeight,
		"editorWidth", v.EditorWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
