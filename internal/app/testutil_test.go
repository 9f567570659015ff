package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jotkit/jot/internal/config"
	"github.com/jotkit/jot/internal/keys"
)

// testConfig creates a config backed by a temp directory, so saves in tests
// never touch the real ~/.jot. Autosave is immediate so tests can observe
// state.json right after an action.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("JOT_CONFIG_DIR", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	cfg.SetAutosaveDelayMS(0)
	return cfg
}

// testModel creates a test Model with the given config.
func testModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	return New(cfg, "0.0.0-test")
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, cfg *config.Config, width, height int) *Model {
	t.Helper()
	m := testModel(t, cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "esc", "ctrl+t", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlQ:
		return tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlW:
		return tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}
	case keys.CtrlP:
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlH:
		return tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlComma:
		return tea.KeyPressMsg{Code: ',', Mod: tea.ModCtrl}
	case keys.CtrlLBracket:
		return tea.KeyPressMsg{Code: '[', Mod: tea.ModCtrl}
	case keys.CtrlRBracket:
		return tea.KeyPressMsg{Code: ']', Mod: tea.ModCtrl}
	case keys.CtrlLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}
	case keys.CtrlRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// typeText simulates typing a string by sending individual character key
// presses through the full update loop.
func typeText(m *Model, text string) *Model {
	for _, r := range text {
		if r == '\n' {
			m = sendKey(m, keys.Enter)
			continue
		}
		m = sendKey(m, string(r))
	}
	return m
}

// tabTexts returns the document texts of all tabs in display order.
func tabTexts(m *Model) []string {
	all := m.ring.Tabs()
	texts := make([]string, len(all))
	for i, tab := range all {
		texts[i] = tab.Doc.Text
	}
	return texts
}
