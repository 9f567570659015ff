// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// TabBarHeight is the height of the tab bar in lines
	TabBarHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// EditorPaddingWidth is the horizontal padding inside the editor panel (Padding(0, 1) = 1 left + 1 right)
	EditorPaddingWidth = 2

	// NavBarHeight is the height of the navigation bar inside preview and log viewer modes
	NavBarHeight = 1

	// MinTerminalWidth is the narrowest terminal the layout math accepts
	MinTerminalWidth = 24

	// MinTerminalHeight is the shortest terminal the layout math accepts
	MinTerminalHeight = 8

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Tab bar limits
const (
	// TabMaxTitleWidth is the widest a single tab label renders, in cells.
	// Titles are already clipped to ten grapheme clusters upstream, but wide
	// runes can still exceed this, so the bar truncates on display width.
	TabMaxTitleWidth = 16
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
