package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestMain(m *testing.M) {
	// Styles are normally injected by the ui package at startup; tests run
	// without that wiring, so set a minimal palette here.
	SetStyles(
		lipgloss.NewStyle().Bold(true),
		lipgloss.NewStyle(),
		lipgloss.NewStyle().Padding(0, 1),
		lipgloss.NewStyle().Bold(true).Padding(0, 1),
		lipgloss.NewStyle(),
		lipgloss.Color("#7C3AED"),
		lipgloss.Color("#06B6D4"),
		lipgloss.Color("#E5E7EB"),
		lipgloss.Color("#B0B8C4"),
		lipgloss.Color("#111827"),
		lipgloss.Color("#10B981"),
		lipgloss.Color("#F59E0B"),
		lipgloss.Color("#EF4444"),
		50, 256, 60,
	)

	os.Exit(m.Run())
}
