package modals

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

type SettingsState struct {
	// Bound form values
	selectedTheme  string
	OriginalTheme  string // To detect if theme changed
	autosaveMS     int
	ConfirmQuit    bool
	ShowTabNumbers bool
	DebugLogging   bool

	// MultiSelect bindings
	generalOptions []string

	form *huh.Form
}

const (
	optionConfirmQuit  = "confirm-quit"
	optionTabNumbers   = "tab-numbers"
	optionDebugLogging = "debug-logging"
)

// autosaveChoices are the offered write-debounce values in milliseconds.
var autosaveChoices = []struct {
	Label string
	MS    int
}{
	{"Immediately", 0},
	{"After 250ms", 250},
	{"After 750ms", 750},
	{"After 1.5s", 1500},
	{"After 3s", 3000},
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

// syncFromMultiSelect updates boolean fields from the MultiSelect bindings.
func (s *SettingsState) syncFromMultiSelect() {
	s.ConfirmQuit = slices.Contains(s.generalOptions, optionConfirmQuit)
	s.ShowTabNumbers = slices.Contains(s.generalOptions, optionTabNumbers)
	s.DebugLogging = slices.Contains(s.generalOptions, optionDebugLogging)
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetAutosaveDelayMS returns the selected autosave debounce in milliseconds.
func (s *SettingsState) GetAutosaveDelayMS() int {
	return s.autosaveMS
}

// GetConfirmQuit returns whether quitting should ask for confirmation.
func (s *SettingsState) GetConfirmQuit() bool {
	return s.ConfirmQuit
}

// GetShowTabNumbers returns whether the tab bar shows numeric prefixes.
func (s *SettingsState) GetShowTabNumbers() bool {
	return s.ShowTabNumbers
}

// GetDebugLogging returns whether debug logging is enabled.
func (s *SettingsState) GetDebugLogging() bool {
	return s.DebugLogging
}

// NewSettingsState creates a new SettingsState with the current settings values.
// themes and themeDisplayNames are parallel slices of theme keys and labels.
func NewSettingsState(themes []string, themeDisplayNames []string, currentTheme string,
	autosaveMS int, confirmQuit, showTabNumbers, debugLogging bool) *SettingsState {

	s := &SettingsState{
		selectedTheme:  currentTheme,
		OriginalTheme:  currentTheme,
		autosaveMS:     autosaveMS,
		ConfirmQuit:    confirmQuit,
		ShowTabNumbers: showTabNumbers,
		DebugLogging:   debugLogging,
	}

	// Build theme options
	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	// Build autosave options, keeping a hand-edited config value selectable
	var autosaveOptions []huh.Option[int]
	known := false
	for _, c := range autosaveChoices {
		autosaveOptions = append(autosaveOptions, huh.NewOption(c.Label, c.MS))
		if c.MS == autosaveMS {
			known = true
		}
	}
	if !known {
		autosaveOptions = append(autosaveOptions, huh.NewOption(fmt.Sprintf("Custom (%dms)", autosaveMS), autosaveMS))
	}

	// Build general options MultiSelect
	generalOpts := []huh.Option[string]{
		huh.NewOption("Confirm before quitting", optionConfirmQuit).
			Selected(confirmQuit),
		huh.NewOption("Show tab numbers", optionTabNumbers).
			Selected(showTabNumbers),
		huh.NewOption("Debug logging", optionDebugLogging).
			Selected(debugLogging),
	}
	// Initialize the bound slice to match
	if confirmQuit {
		s.generalOptions = append(s.generalOptions, optionConfirmQuit)
	}
	if showTabNumbers {
		s.generalOptions = append(s.generalOptions, optionTabNumbers)
	}
	if debugLogging {
		s.generalOptions = append(s.generalOptions, optionDebugLogging)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewSelect[int]().
			Title("Autosave").
			Description("How long to wait after a change before writing to disk").
			Options(autosaveOptions...).
			Value(&s.autosaveMS),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
