package ui

import (
	"bytes"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// PreviewState tracks the document preview mode state.
// Non-nil when the preview is displayed.
type PreviewState struct {
	Viewport viewport.Model // Viewport for scrolling the rendered document
	Source   string         // Raw document text the preview renders
	Title    string         // Document title for the nav bar
}

// EnterPreviewMode enters the read-only preview of the given document.
func (e *Editor) EnterPreviewMode(title, text string) {
	e.preview = &PreviewState{
		Source:   text,
		Title:    title,
		Viewport: viewport.New(),
	}

	// Configure viewport
	e.preview.Viewport.MouseWheelEnabled = true
	e.preview.Viewport.MouseWheelDelta = 3

	ctx := GetViewContext()
	e.preview.Viewport.SetWidth(ctx.InnerWidth(e.width))
	e.preview.Viewport.SetHeight(ctx.InnerHeight(e.height) - NavBarHeight)

	e.updatePreviewContent()
	e.preview.Viewport.GotoTop()
}

// updatePreviewContent re-renders the preview viewport from the source text.
func (e *Editor) updatePreviewContent() {
	if e.preview == nil {
		return
	}

	wrapWidth := e.preview.Viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if strings.TrimSpace(e.preview.Source) == "" {
		placeholder := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("Nothing to preview yet")
		e.preview.Viewport.SetContent(placeholder)
		return
	}

	e.preview.Viewport.SetContent(renderDocument(e.preview.Source, wrapWidth))
}

// SetPreviewSource updates the previewed document, keeping the scroll position.
func (e *Editor) SetPreviewSource(title, text string) {
	if e.preview == nil {
		return
	}
	e.preview.Title = title
	e.preview.Source = text
	e.updatePreviewContent()
}

// ExitPreviewMode exits the preview and returns to editing.
func (e *Editor) ExitPreviewMode() {
	e.preview = nil
	e.SelectionClear()
	e.selectionFlashFrame = -1
}

// IsInPreviewMode returns whether we're currently showing the preview.
func (e *Editor) IsInPreviewMode() bool {
	return e.preview != nil
}

// highlightCode applies syntax highlighting to code using chroma.
// The chroma style follows the active theme.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CurrentTheme().SyntaxStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderDocument renders document text with syntax-highlighted code fences.
// Text outside fences is passed through unstyled.
func renderDocument(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	lines := strings.Split(content, "\n")
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	for _, line := range lines {
		// Check for code block start/end
		if strings.HasPrefix(line, "```") {
			if !inCodeBlock {
				// Starting a code block
				inCodeBlock = true
				codeBlockLang = strings.TrimPrefix(line, "```")
				codeBlockLang = strings.TrimSpace(codeBlockLang)
				codeBlockContent.Reset()
			} else {
				// Ending a code block - render with syntax highlighting
				inCodeBlock = false
				highlighted := highlightCode(codeBlockContent.String(), codeBlockLang)
				result.WriteString(highlighted)
				result.WriteString("\n")
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
		} else {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	// If we ended while still in a code block, output whatever we have
	if inCodeBlock {
		highlighted := highlightCode(codeBlockContent.String(), codeBlockLang)
		result.WriteString(highlighted)
	}

	return strings.TrimRight(result.String(), "\n")
}

// renderPreviewMode renders the preview overlay with its navigation bar.
func (e *Editor) renderPreviewMode(panelStyle lipgloss.Style) string {
	if e.preview == nil {
		return ""
	}

	// Calculate dimensions
	innerWidth := e.width - 2 // Account for panel border
	innerHeight := e.height - 2

	// Build the navigation bar
	navBar := e.renderPreviewNavBar(innerWidth)

	// Preview viewport gets remaining height
	previewHeight := innerHeight - NavBarHeight

	// Update preview viewport size
	e.preview.Viewport.SetWidth(innerWidth)
	e.preview.Viewport.SetHeight(previewHeight)

	// Apply any active selection highlight to the rendered view
	view := e.selectionView(e.preview.Viewport.View())

	previewContent := lipgloss.NewStyle().
		MaxHeight(previewHeight).
		Render(view)

	// Join navigation bar and preview content vertically
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		navBar,
		previewContent,
	)

	return panelStyle.Width(e.width).Height(e.height).Render(content)
}

// renderPreviewNavBar renders the navigation bar for the preview.
func (e *Editor) renderPreviewNavBar(width int) string {
	title := e.preview.Title
	if title == "" {
		title = UntitledTabLabel
	}

	// Scroll percentage
	percentStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	percent := percentStyle.Render(fmt.Sprintf("(%d%%)", int(e.preview.Viewport.ScrollPercent()*100)))

	// Copy and close hints
	hintStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	copyHint := " " + hintStyle.Render("[drag: select]")
	closeHint := " " + hintStyle.Render("[esc: close]")

	// Calculate available width for the title
	fixedWidth := lipgloss.Width(percent) + lipgloss.Width(copyHint) + lipgloss.Width(closeHint) + 1
	maxTitleWidth := max(width-fixedWidth, 10)

	// Truncate title if needed
	if len(title) > maxTitleWidth {
		title = title[:maxTitleWidth-1] + "…"
	}
	titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	// Assemble the navigation bar
	navContent := titleStyle.Render(title) + " " +
		percent +
		copyHint +
		closeHint

	barStyle := lipgloss.NewStyle().
		Width(width)

	return barStyle.Render(navContent)
}
