package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/jotkit/jot/internal/keys"
)

// =============================================================================
// ConfirmState - State for destructive-action confirmations
// =============================================================================

// ConfirmKind identifies which action a ConfirmState guards.
type ConfirmKind int

const (
	// ConfirmCloseTab guards closing a tab that still has text.
	ConfirmCloseTab ConfirmKind = iota
	// ConfirmQuit guards quitting when the confirm-quit setting is on.
	ConfirmQuit
)

// ConfirmState presents a safe/destructive choice. The first option is
// always the safe one and is selected by default; the last option carries
// out the action.
type ConfirmState struct {
	Kind          ConfirmKind
	Subject       string // Shown prominently under the title, e.g. a tab title
	Message       string
	Options       []string
	SelectedIndex int
	titleText     string
}

func (*ConfirmState) modalState() {}

func (s *ConfirmState) Title() string { return s.titleText }

func (s *ConfirmState) Help() string {
	return "up/down to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	parts := []string{title}

	if s.Subject != "" {
		subject := lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			MarginBottom(1).
			Render(s.Subject)
		parts = append(parts, subject)
	}

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render(s.Message)
	parts = append(parts, message)

	var optionList string
	for i, opt := range s.Options {
		style := ListItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			prefix = "> "
			style = ListSelectedStyle
			if i == len(s.Options)-1 {
				// Destructive choice gets a red highlight when selected
				style = lipgloss.NewStyle().
					Foreground(ColorTextInverse).
					Background(ColorError).
					Bold(true).
					Padding(0, 1)
			}
		}
		optionList += style.Render(prefix+opt) + "\n"
	}
	parts = append(parts, optionList)

	parts = append(parts, ModalHelpStyle.Render(s.Help()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *ConfirmState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Confirmed returns true if the destructive option is selected.
func (s *ConfirmState) Confirmed() bool {
	return s.SelectedIndex == len(s.Options)-1
}

// NewConfirmCloseTabState creates a confirmation for closing a tab that
// still has text. tabTitle is the display title of the tab.
func NewConfirmCloseTabState(tabTitle string) *ConfirmState {
	return &ConfirmState{
		Kind:      ConfirmCloseTab,
		Subject:   tabTitle,
		Message:   "This tab still has text. Closing it discards the text.",
		Options:   []string{"Keep tab", "Close tab"},
		titleText: "Close Tab?",
	}
}

// NewConfirmQuitState creates a confirmation for quitting the app.
func NewConfirmQuitState() *ConfirmState {
	return &ConfirmState{
		Kind:      ConfirmQuit,
		Message:   "Your tabs are saved and will be restored next time.",
		Options:   []string{"Stay", "Quit"},
		titleText: "Quit jot?",
	}
}
