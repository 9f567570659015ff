package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width    int
	tabTitle string
	position int // 1-based index of the current tab in the ring
	count    int // total number of open tabs
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTabTitle sets the current tab's title to display
func (h *Header) SetTabTitle(title string) {
	h.tabTitle = title
}

// SetTabPosition sets the tab position indicator (1-based position, total count)
func (h *Header) SetTabPosition(position, count int) {
	h.position = position
	h.count = count
}

// View renders the header
func (h *Header) View() string {
	// Build the content string (without styling)
	titleText := " jot"
	var positionText string
	var rightText string
	if h.count > 0 {
		if h.tabTitle != "" {
			rightText = h.tabTitle + " "
		}
		positionText = fmt.Sprintf("(%d/%d)", h.position, h.count)
		rightText += positionText + " "
	}

	// Calculate padding on display width so wide runes line up
	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	// Render with gradient background
	return h.renderGradient(fullContent, positionText)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// positionText identifies the tab position portion of the text, which renders muted.
func (h *Header) renderGradient(content string, positionText string) string {
	if len(content) == 0 {
		return ""
	}

	// Get colors from current theme
	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	// Text color from theme
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	// Find where the position indicator starts (if present)
	positionStart := -1
	if positionText != "" {
		if idx := strings.Index(content, positionText); idx >= 0 {
			positionStart = len([]rune(content[:idx]))
		}
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		// Calculate interpolation factor (0.0 to 1.0)
		t := float64(i) / float64(width)

		// Interpolate colors
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		// Create color string
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		// Determine if this character is in the position indicator portion
		inPosition := positionStart >= 0 && i >= positionStart

		// Style for this character
		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 4) // Bold for "jot" title

		if inPosition {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
