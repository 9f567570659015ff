package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/jotkit/jot/internal/ui/modals"
)

// Modal represents a popup dialog with type-safe state management.
// The dialog-specific state and behavior live in the modals subpackage;
// this container handles visibility, chrome, and centering.
// The State field is nil when no modal is visible.
type Modal struct {
	State modals.ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered over the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	// Add error if present
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	style := ModalStyle
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		style = style.Width(pw.PreferredWidth())
	}

	modal := style.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// RefreshModalStyles pushes the current theme's styles into the modals
// package. Called once at startup and again whenever the theme changes.
func RefreshModalStyles() {
	t := CurrentTheme()

	listItem := lipgloss.NewStyle().
		Padding(0, 1)

	listSelected := lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, listItem, listSelected, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorSuccess, ColorWarning, ColorError,
		ModalInputWidth, ModalInputCharLimit, ModalWidth,
	)
}
