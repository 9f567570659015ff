package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jotkit/jot/internal/clipboard"
	"github.com/jotkit/jot/internal/keys"
	"github.com/jotkit/jot/internal/logger"
	"github.com/jotkit/jot/internal/tabs"
	"github.com/jotkit/jot/internal/ui"
	"github.com/jotkit/jot/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+t")
	AltKey      string                              // Optional second binding for the same action
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryTabs        = "Tabs"
	CategoryNavigation  = "Navigation"
	CategoryView        = "View"
	CategoryClipboard   = "Clipboard"
	CategoryApplication = "Application"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryTabs,
	CategoryNavigation,
	CategoryView,
	CategoryClipboard,
	CategoryApplication,
}

// shortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help
// modal and be executable from both direct key presses and the help modal.
// Plain letters are reserved for typing; everything here is a chord.
// Assigned in init to avoid an initialization cycle with shortcutHelp.
var shortcutRegistry []Shortcut

func init() {
	shortcutRegistry = []Shortcut{
		// Tabs
		{
			Key:         keys.CtrlT,
			Description: "Open a new tab",
			Category:    CategoryTabs,
			Handler:     shortcutNewTab,
		},
		{
			Key:         keys.CtrlW,
			Description: "Close the current tab",
			Category:    CategoryTabs,
			Handler:     shortcutCloseTab,
		},
		{
			Key:         keys.CtrlP,
			Description: "Search tabs",
			Category:    CategoryTabs,
			Handler:     shortcutSearchTabs,
		},

		// Navigation
		{
			Key:         keys.CtrlRight,
			AltKey:      keys.CtrlRBracket,
			Description: "Go to the tab on the right (also ctrl+])",
			Category:    CategoryNavigation,
			Handler:     shortcutNextTab,
		},
		{
			Key:         keys.CtrlLeft,
			AltKey:      keys.CtrlLBracket,
			Description: "Go to the tab on the left (also ctrl+[)",
			Category:    CategoryNavigation,
			Handler:     shortcutPrevTab,
		},

		// View
		{
			Key:         keys.CtrlR,
			Description: "Toggle document preview",
			Category:    CategoryView,
			Handler:     shortcutTogglePreview,
		},
		{
			Key:         keys.CtrlL,
			Description: "Toggle log viewer",
			Category:    CategoryView,
			Handler:     shortcutToggleLogViewer,
		},

		// Clipboard
		{
			Key:         keys.CtrlY,
			Description: "Copy document (or preview selection)",
			Category:    CategoryClipboard,
			Handler:     shortcutCopy,
		},

		// Application
		{
			Key:         keys.CtrlComma,
			AltKey:      keys.CtrlO,
			Description: "Open settings (also ctrl+o)",
			Category:    CategoryApplication,
			Handler:     shortcutSettings,
		},
		{
			Key:         keys.CtrlH,
			Description: "Show this help",
			Category:    CategoryApplication,
			Handler:     shortcutHelp,
		},
		{
			Key:         keys.CtrlQ,
			Description: "Quit",
			Category:    CategoryApplication,
			Handler:     shortcutQuit,
		},
	}
}

// displayOnlyShortcuts appear in the help modal but are handled outside the
// registry (or by the components themselves).
var displayOnlyShortcuts = []Shortcut{
	{
		Key:         keys.Escape,
		Description: "Dismiss modal / leave preview or log viewer",
		Category:    CategoryApplication,
	},
	{
		Key:         keys.CtrlC,
		Description: "Quit immediately",
		Category:    CategoryApplication,
	},
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (nil, nil, false) if the key is not bound or its condition failed,
// letting the key propagate to the editor.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range shortcutRegistry {
		if s.Key != key && (s.AltKey == "" || s.AltKey != key) {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			logger.ComponentLogger("app").Debug("shortcut condition failed", "key", key)
			return nil, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return nil, nil, false
}

// helpSections builds the help modal sections from the registry, keeping
// category order stable.
func (m *Model) helpSections() []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range shortcutRegistry {
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  s.Key,
			Desc: s.Description,
		})
	}
	for _, s := range displayOnlyShortcuts {
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  s.Key,
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutNewTab(m *Model) (tea.Model, tea.Cmd) {
	return m, m.dispatchAndSync(tabs.NewTab{})
}

func shortcutCloseTab(m *Model) (tea.Model, tea.Cmd) {
	// Closing an empty tab discards nothing, so skip the confirmation
	if m.ring.Current.Doc.Text == "" {
		return m, m.dispatchAndSync(tabs.Close{})
	}
	m.modal.Show(modals.NewConfirmCloseTabState(m.currentTitle()))
	return m, nil
}

func shortcutNextTab(m *Model) (tea.Model, tea.Cmd) {
	return m, m.dispatchAndSync(tabs.Navigate{Direction: 1})
}

func shortcutPrevTab(m *Model) (tea.Model, tea.Cmd) {
	return m, m.dispatchAndSync(tabs.Navigate{Direction: -1})
}

func shortcutSearchTabs(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewSearchTabsState(m.searchEntries(), m.ring.Index()))
	return m, nil
}

// searchEntries flattens the ring into searchable entries, with display
// titles already resolved
func (m *Model) searchEntries() []modals.TabEntry {
	all := m.ring.Tabs()
	entries := make([]modals.TabEntry, len(all))
	for i, t := range all {
		entries[i] = modals.TabEntry{
			Title:   displayTitle(t),
			Content: t.Doc.Text,
		}
	}
	return entries
}

func shortcutTogglePreview(m *Model) (tea.Model, tea.Cmd) {
	if m.editor.IsInPreviewMode() {
		m.editor.ExitPreviewMode()
		return m, nil
	}
	if m.editor.IsInLogViewerMode() {
		m.editor.ExitLogViewerMode()
	}
	m.editor.EnterPreviewMode(m.currentTitle(), m.ring.Current.Doc.Text)
	return m, nil
}

func shortcutToggleLogViewer(m *Model) (tea.Model, tea.Cmd) {
	if m.editor.IsInLogViewerMode() {
		m.editor.ExitLogViewerMode()
		return m, nil
	}
	if m.editor.IsInPreviewMode() {
		m.editor.ExitPreviewMode()
	}
	m.editor.EnterLogViewerMode(logger.Path())
	return m, nil
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	// In preview mode with a mouse selection, copy just the selection
	if m.editor.IsInPreviewMode() && m.editor.HasTextSelection() {
		return m, m.editor.CopySelectedText()
	}

	text := m.ring.Current.Doc.Text
	if text == "" {
		return m, m.ShowFlashInfo("Nothing to copy")
	}
	if err := clipboard.Copy(text); err != nil {
		logger.ComponentLogger("app").Warn("clipboard write failed", "error", err)
		return m, m.ShowFlashError("Failed to copy to clipboard")
	}
	return m, m.ShowFlashSuccess("Copied document to clipboard")
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themeKeys := make([]string, len(names))
	themeLabels := make([]string, len(names))
	for i, name := range names {
		themeKeys[i] = string(name)
		themeLabels[i] = ui.GetTheme(name).Name
	}

	m.modal.Show(modals.NewSettingsState(
		themeKeys,
		themeLabels,
		string(ui.CurrentThemeName()),
		int(m.config.GetAutosaveDelay().Milliseconds()),
		m.config.GetConfirmQuit(),
		m.config.GetShowTabNumbers(),
		m.config.GetDebugLogging(),
	))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpStateFromSections(m.helpSections()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m.requestQuit()
}
