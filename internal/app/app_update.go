package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jotkit/jot/internal/keys"
	"github.com/jotkit/jot/internal/logger"
	"github.com/jotkit/jot/internal/ui"
	"github.com/jotkit/jot/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Key not handled globally, let it fall through to the editor

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case SaveTickMsg:
		return m, m.handleSaveTick(msg)

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()

	case ui.ClipboardErrorMsg:
		logger.ComponentLogger("app").Warn("clipboard write failed", "error", msg.Error)
		m.footer.SetFlash("Failed to copy to clipboard", ui.FlashError)
		return m, ui.FlashTick()
	}

	// An open modal consumes everything else (form input, cursor blink)
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	// Everything else drives the editor panel: typing, mouse selection,
	// viewport scrolling, selection flash ticks
	ed, cmd := m.editor.Update(msg)
	m.editor = ed
	cmds = append(cmds, cmd)

	// If the message changed the document text, record it in the ring
	if cmd := m.syncEditedText(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should
// fall through to the editor.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.ComponentLogger("app").Debug("key press", "key", key, "modalVisible", m.modal.IsVisible())

	// Handle modal first if visible
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// The log viewer is read-only, so plain letters drive it directly
	if m.editor.IsInLogViewerMode() {
		if result, cmd, handled := m.handleLogViewerKey(key); handled {
			return result, cmd
		}
	}

	// Escape backs out of overlay modes
	if key == keys.Escape {
		if result, cmd, handled := m.handleEscapeKey(); handled {
			return result, cmd
		}
	}

	// ctrl+c always quits, flushing unsaved changes on the way out
	if key == keys.CtrlC {
		return m, m.quitNow()
	}

	// Try executing from the shortcut registry
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	return nil, nil
}

// handleEscapeKey backs out of the overlay modes.
// In plain editing mode escape is not ours to handle.
func (m *Model) handleEscapeKey() (tea.Model, tea.Cmd, bool) {
	switch {
	case m.editor.IsInPreviewMode():
		// First escape drops an active selection, the second leaves preview
		if m.editor.HasTextSelection() {
			m.editor.SelectionClear()
		} else {
			m.editor.ExitPreviewMode()
		}
		return m, nil, true

	case m.editor.IsInLogViewerMode():
		m.editor.ExitLogViewerMode()
		return m, nil, true
	}
	return nil, nil, false
}

// handleLogViewerKey handles the log viewer's own keys; scrolling keys fall
// through to the viewport.
func (m *Model) handleLogViewerKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "f":
		m.editor.ToggleLogViewerFollowTail()
		return m, nil, true
	case "r":
		m.editor.RefreshLogViewer()
		return m, nil, true
	}
	return nil, nil, false
}

// handleFlashTick expires the footer flash message, re-arming the timer
// while one is still showing
func (m *Model) handleFlashTick() tea.Cmd {
	if m.footer.ClearIfExpired() {
		return nil
	}
	if m.footer.HasFlash() {
		return ui.FlashTick()
	}
	return nil
}

// handleHelpShortcutTrigger executes a shortcut selected in the help modal
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	m.modal.Hide()
	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return m, nil
}
