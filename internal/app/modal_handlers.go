package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jotkit/jot/internal/keys"
	"github.com/jotkit/jot/internal/logger"
	"github.com/jotkit/jot/internal/tabs"
	"github.com/jotkit/jot/internal/ui"
	"github.com/jotkit/jot/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on
// the modal state type. Escape and Enter are decided here; everything else
// is delegated to the modal state's own Update.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *modals.SearchTabsState:
		return m.handleSearchTabsModal(msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(msg, s)
	case *modals.ConfirmState:
		return m.handleConfirmModal(msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(msg, s)
	}

	// Unknown modal state: escape closes, the rest goes to the modal
	if msg.String() == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSearchTabsModal drives the search modal. Enter jumps to the selected
// result by dispatching a Navigate with the signed distance to it.
func (m *Model) handleSearchTabsModal(msg tea.KeyPressMsg, s *modals.SearchTabsState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		if s.GetSelectedResult() == nil {
			return m, nil
		}
		distance := s.NavigateDistance()
		m.modal.Hide()
		logger.ComponentLogger("app").Debug("search jump", "distance", distance)
		return m, m.dispatchAndSync(tabs.Navigate{Direction: distance})
	}

	// Typing and up/down go to the modal state
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleSettingsModal drives the settings form. Enter applies and saves,
// escape cancels without touching the config.
func (m *Model) handleSettingsModal(msg tea.KeyPressMsg, s *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		return m.applySettings(s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// applySettings copies the form values into the config, re-themes live,
// and persists
func (m *Model) applySettings(s *modals.SettingsState) (tea.Model, tea.Cmd) {
	m.config.SetTheme(s.GetSelectedTheme())
	m.config.SetAutosaveDelayMS(s.GetAutosaveDelayMS())
	m.config.SetConfirmQuit(s.GetConfirmQuit())
	m.config.SetShowTabNumbers(s.GetShowTabNumbers())
	m.config.SetDebugLogging(s.GetDebugLogging())

	ui.SetThemeByName(s.GetSelectedTheme())
	logger.SetDebug(s.GetDebugLogging())
	m.tabBar.SetShowNumbers(s.GetShowTabNumbers())

	m.modal.Hide()

	if err := m.config.Save(); err != nil {
		logger.ComponentLogger("app").Error("saving config failed", "error", err)
		return m, m.ShowFlashError("Failed to save settings")
	}
	return m, m.ShowFlashSuccess("Settings saved")
}

// handleConfirmModal drives the close-tab and quit confirmations
func (m *Model) handleConfirmModal(msg tea.KeyPressMsg, s *modals.ConfirmState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		confirmed := s.Confirmed()
		kind := s.Kind
		m.modal.Hide()
		if !confirmed {
			return m, nil
		}
		switch kind {
		case modals.ConfirmCloseTab:
			return m, m.dispatchAndSync(tabs.Close{})
		case modals.ConfirmQuit:
			return m, m.quitNow()
		}
		return m, nil
	}

	// Up/down selection movement
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal drives the help modal; selecting a shortcut triggers it
func (m *Model) handleHelpModal(msg tea.KeyPressMsg, s *modals.HelpState) (tea.Model, tea.Cmd) {
	// While the user is typing a filter, the list owns every key
	if s.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		shortcut := s.GetSelectedShortcut()
		if shortcut == nil {
			return m, nil
		}
		key := shortcut.Key
		m.modal.Hide()
		return m, func() tea.Msg {
			return modals.HelpShortcutTriggeredMsg{Key: key}
		}
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
