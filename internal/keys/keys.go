// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "a", "y", "?" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Delete    = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                   // "delete"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC        = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()         // "ctrl+c"
	CtrlQ        = (tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}).String()         // "ctrl+q"
	CtrlT        = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String()         // "ctrl+t"
	CtrlW        = (tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}).String()         // "ctrl+w"
	CtrlP        = (tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}).String()         // "ctrl+p"
	CtrlR        = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()         // "ctrl+r"
	CtrlH        = (tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl}).String()         // "ctrl+h"
	CtrlL        = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String()         // "ctrl+l"
	CtrlO        = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String()         // "ctrl+o"
	CtrlY        = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()         // "ctrl+y"
	CtrlComma    = (tea.KeyPressMsg{Code: ',', Mod: tea.ModCtrl}).String()         // "ctrl+,"
	CtrlLBracket = (tea.KeyPressMsg{Code: '[', Mod: tea.ModCtrl}).String()         // "ctrl+["
	CtrlRBracket = (tea.KeyPressMsg{Code: ']', Mod: tea.ModCtrl}).String()         // "ctrl+]"
	CtrlLeft     = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}).String() // "ctrl+left"
	CtrlRight    = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}).String() // "ctrl+right"
)
