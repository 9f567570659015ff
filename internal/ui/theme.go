// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of jot.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
// Each theme provides colors for all UI elements, ensuring visual consistency.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for key hints, accents)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Success string // Confirmation flashes, save indicators
	Warning string // Warnings, unsaved state
	Error   string // Error messages
	Info    string // Information

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Text selection colors (preview mode mouse selection)
	TextSelectionBg string // Selection background (defaults to BgSelected if empty)
	TextSelectionFg string // Selection foreground (defaults to Text if empty)

	// SyntaxStyle is the chroma style name used for highlighting code fences
	// in preview mode
	SyntaxStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// GetTextSelectionBg returns the selection background, defaulting to BgSelected
func (t Theme) GetTextSelectionBg() string {
	if t.TextSelectionBg != "" {
		return t.TextSelectionBg
	}
	return t.GetBgSelected()
}

// GetTextSelectionFg returns the selection foreground, defaulting to Text
func (t Theme) GetTextSelectionFg() string {
	if t.TextSelectionFg != "" {
		return t.TextSelectionFg
	}
	return t.Text
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeCatppuccin ThemeName = "catppuccin"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:            "Dark Purple",
		Primary:         "#7C3AED",
		Secondary:       "#06B6D4",
		Bg:              "#1F2937",
		Text:            "#F9FAFB",
		TextMuted:       "#9CA3AF",
		TextInverse:     "#1F2937",
		Success:         "#10B981",
		Warning:         "#F59E0B",
		Error:           "#EF4444",
		Info:            "#06B6D4",
		Border:          "#374151",
		TextSelectionBg: "#4C1D95",
		TextSelectionFg: "#F9FAFB",
		SyntaxStyle:     "doom-one",
	},
	ThemeNord: {
		Name:            "Nord",
		Primary:         "#88C0D0",
		Secondary:       "#81A1C1",
		Bg:              "#2E3440",
		Text:            "#ECEFF4",
		TextMuted:       "#D8DEE9",
		TextInverse:     "#2E3440",
		Success:         "#A3BE8C",
		Warning:         "#EBCB8B",
		Error:           "#BF616A",
		Info:            "#81A1C1",
		Border:          "#4C566A",
		TextSelectionBg: "#434C5E",
		TextSelectionFg: "#ECEFF4",
		SyntaxStyle:     "nord",
	},
	ThemeDracula: {
		Name:            "Dracula",
		Primary:         "#BD93F9",
		Secondary:       "#8BE9FD",
		Bg:              "#282A36",
		Text:            "#F8F8F2",
		TextMuted:       "#6272A4",
		TextInverse:     "#282A36",
		Success:         "#50FA7B",
		Warning:         "#FFB86C",
		Error:           "#FF5555",
		Info:            "#8BE9FD",
		Border:          "#44475A",
		TextSelectionBg: "#44475A",
		TextSelectionFg: "#F8F8F2",
		SyntaxStyle:     "dracula",
	},
	ThemeGruvbox: {
		Name:            "Gruvbox Dark",
		Primary:         "#FE8019",
		Secondary:       "#83A598",
		Bg:              "#282828",
		Text:            "#EBDBB2",
		TextMuted:       "#A89984",
		TextInverse:     "#282828",
		Success:         "#B8BB26",
		Warning:         "#FE8019",
		Error:           "#FB4934",
		Info:            "#83A598",
		Border:          "#504945",
		TextSelectionBg: "#504945",
		TextSelectionFg: "#EBDBB2",
		SyntaxStyle:     "gruvbox",
	},
	ThemeTokyoNight: {
		Name:            "Tokyo Night",
		Primary:         "#7AA2F7",
		Secondary:       "#BB9AF7",
		Bg:              "#1A1B26",
		Text:            "#C0CAF5",
		TextMuted:       "#565F89",
		TextInverse:     "#1A1B26",
		Success:         "#9ECE6A",
		Warning:         "#E0AF68",
		Error:           "#F7768E",
		Info:            "#7DCFFF",
		Border:          "#3B4261",
		TextSelectionBg: "#33467C",
		TextSelectionFg: "#C0CAF5",
		SyntaxStyle:     "tokyonight-night",
	},
	ThemeCatppuccin: {
		Name:            "Catppuccin Mocha",
		Primary:         "#CBA6F7",
		Secondary:       "#89DCEB",
		Bg:              "#1E1E2E",
		Text:            "#CDD6F4",
		TextMuted:       "#6C7086",
		TextInverse:     "#1E1E2E",
		Success:         "#A6E3A1",
		Warning:         "#FAB387",
		Error:           "#F38BA8",
		Info:            "#89DCEB",
		Border:          "#313244",
		TextSelectionBg: "#45475A",
		TextSelectionFg: "#CDD6F4",
		SyntaxStyle:     "catppuccin-mocha",
	},
	ThemeLight: {
		Name:            "Light",
		Primary:         "#6366F1",
		Secondary:       "#0891B2",
		Bg:              "#FFFFFF",
		BgSelected:      "#E0E7FF",
		Text:            "#1F2937",
		TextMuted:       "#6B7280",
		TextInverse:     "#FFFFFF",
		Success:         "#16A34A",
		Warning:         "#D97706",
		Error:           "#DC2626",
		Info:            "#0891B2",
		Border:          "#D1D5DB",
		BorderFocus:     "#6366F1",
		TextSelectionBg: "#C7D2FE",
		TextSelectionFg: "#1F2937",
		SyntaxStyle:     "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeTokyoNight,
		ThemeCatppuccin,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	// Update color variables
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)

	// Update header styles
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	// Update tab bar styles
	TabBarStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	TabNumberStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	TabOverflowStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// Update footer styles
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Update panel styles
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	// Update modal styles
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	// Update status styles
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	// Update text selection styles
	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetTextSelectionBg())).
		Foreground(lipgloss.Color(t.GetTextSelectionFg()))

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.Success)).
		Foreground(lipgloss.Color(t.TextInverse))
}
