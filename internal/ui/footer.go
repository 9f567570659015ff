package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a flash message for icon and color selection
type FlashType int

// Flash message types
const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 5 * time.Second

// FlashMessage is a transient message shown in place of the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns whether the message has outlived its duration
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg is sent periodically while a flash message is visible
type FlashTickMsg time.Time

// FlashTick returns a command that sends a flash tick after a delay
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width         int
	bindings      []KeyBinding
	modalOpen     bool // Whether a modal dialog is open
	previewMode   bool // Whether the editor is in preview mode
	logViewerMode bool // Whether the editor is in log viewer mode
	flashMessage  *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "ctrl+t", Desc: "new tab"},
			{Key: "ctrl+w", Desc: "close tab"},
			{Key: "ctrl+←/→", Desc: "switch tab"},
			{Key: "ctrl+p", Desc: "search"},
			{Key: "ctrl+r", Desc: "preview"},
			{Key: "ctrl+o", Desc: "settings"},
			{Key: "ctrl+h", Desc: "help"},
			{Key: "ctrl+q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(modalOpen, previewMode, logViewerMode bool) {
	f.modalOpen = modalOpen
	f.previewMode = previewMode
	f.logViewerMode = logViewerMode
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message with the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message with a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the flash message immediately
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash returns whether a flash message is currently set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears the flash message if it has expired.
// Returns true if a message was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// flashIcon returns the icon for a flash type
func flashIcon(flashType FlashType) string {
	switch flashType {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashInfo:
		return "ℹ"
	case FlashSuccess:
		return "✓"
	}
	return ""
}

// flashStyle returns the text style for a flash type
func flashStyle(flashType FlashType) lipgloss.Style {
	switch flashType {
	case FlashError:
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashInfo:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	case FlashSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	}
	return lipgloss.NewStyle()
}

// View renders the footer
func (f *Footer) View() string {
	// A flash message takes priority over the key bindings
	if f.flashMessage != nil {
		style := flashStyle(f.flashMessage.Type)
		content := style.Render(flashIcon(f.flashMessage.Type) + " " + f.flashMessage.Text)
		return FooterStyle.Width(f.width).Render(content)
	}

	var bindings []KeyBinding
	switch {
	case f.modalOpen:
		bindings = []KeyBinding{
			{Key: "esc", Desc: "close"},
			{Key: "enter", Desc: "confirm"},
			{Key: "tab", Desc: "next field"},
		}
	case f.previewMode:
		bindings = []KeyBinding{
			{Key: "esc", Desc: "close"},
			{Key: "↑/↓", Desc: "scroll"},
			{Key: "pgup/dn", Desc: "page"},
			{Key: "drag", Desc: "select"},
			{Key: "ctrl+y", Desc: "copy all"},
		}
	case f.logViewerMode:
		bindings = []KeyBinding{
			{Key: "esc", Desc: "close"},
			{Key: "f", Desc: "follow"},
			{Key: "r", Desc: "refresh"},
			{Key: "↑/↓", Desc: "scroll"},
		}
	default:
		bindings = f.bindings
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
