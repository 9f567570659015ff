package ui

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}

	if header.tabTitle != "" {
		t.Error("Expected empty tab title initially")
	}

	if header.count != 0 {
		t.Error("Expected zero tab count initially")
	}
}

func TestHeader_SetWidth(t *testing.T) {
	header := NewHeader()

	header.SetWidth(120)

	if header.width != 120 {
		t.Errorf("Expected width 120, got %d", header.width)
	}
}

func TestHeader_SetTabTitle(t *testing.T) {
	header := NewHeader()

	header.SetTabTitle("groceries")

	if header.tabTitle != "groceries" {
		t.Errorf("Expected tab title 'groceries', got %q", header.tabTitle)
	}
}

func TestHeader_SetTabPosition(t *testing.T) {
	header := NewHeader()

	header.SetTabPosition(2, 5)

	if header.position != 2 {
		t.Errorf("Expected position 2, got %d", header.position)
	}
	if header.count != 5 {
		t.Errorf("Expected count 5, got %d", header.count)
	}
}

func TestHeader_View_TitleOnly(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := stripANSI(header.View())

	if !strings.Contains(view, "jot") {
		t.Errorf("Header should contain 'jot' title, got: %q", view)
	}

	if strings.Contains(view, "(") {
		t.Error("Header should not show a position indicator before any tabs are set")
	}

	runeCount := utf8.RuneCountInString(view)
	if runeCount != 80 {
		t.Errorf("Header rune width should be 80, got %d", runeCount)
	}
}

func TestHeader_View_WithTabPosition(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)
	header.SetTabTitle("groceries")
	header.SetTabPosition(2, 3)

	view := stripANSI(header.View())

	if !strings.Contains(view, "jot") {
		t.Error("Header should contain 'jot' title")
	}

	if !strings.Contains(view, "groceries") {
		t.Errorf("Header should contain the tab title, got: %q", view)
	}

	if !strings.Contains(view, "(2/3)") {
		t.Errorf("Header should contain the position indicator, got: %q", view)
	}
}

func TestHeader_View_UntitledTab(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetTabTitle("")
	header.SetTabPosition(1, 1)

	view := stripANSI(header.View())

	// The indicator still shows even when the tab has no title yet
	if !strings.Contains(view, "(1/1)") {
		t.Errorf("Header should contain the position indicator, got: %q", view)
	}
}

func TestHeader_View_UnicodeTitle(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)
	header.SetTabTitle("買い物リスト")
	header.SetTabPosition(1, 2)

	view := stripANSI(header.View())

	if !strings.Contains(view, "買い物リスト") {
		t.Errorf("Header should contain Unicode tab title, got: %q", view)
	}

	// Padding is computed on display width so wide runes still line up
	if got := runewidth.StringWidth(view); got != 80 {
		t.Errorf("Header display width should be 80, got %d", got)
	}
}

func TestHeader_View_NarrowTerminal(t *testing.T) {
	header := NewHeader()
	header.SetWidth(10)
	header.SetTabTitle("a very long tab title that cannot fit")
	header.SetTabPosition(1, 1)

	// Should not panic when the content overflows the width
	view := stripANSI(header.View())
	if view == "" {
		t.Error("Header should still render something in a narrow terminal")
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := parseHexColor("#7C3AED")
	if r != 0x7C || g != 0x3A || b != 0xED {
		t.Errorf("parseHexColor(#7C3AED) = (%d, %d, %d), want (124, 58, 237)", r, g, b)
	}

	r, g, b = parseHexColor("not-a-color")
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("parseHexColor(invalid) = (%d, %d, %d), want zeros", r, g, b)
	}
}
