package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jotkit/jot/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.render()
}

// render composes header / tab bar / editor / footer, with an open modal
// replacing the stack (the modal view centers itself over the full screen).
func (m *Model) render() string {
	// Update footer context for conditional bindings
	m.updateFooterContext()

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.tabBar.View(),
		m.editor.View(),
		m.footer.View(),
	)
}

// updateFooterContext updates the footer with current context for
// conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.modal.IsVisible(),
		m.editor.IsInPreviewMode(),
		m.editor.IsInLogViewerMode(),
	)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.tabBar.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.editor.SetSize(ctx.EditorWidth, ctx.ContentHeight)
}
