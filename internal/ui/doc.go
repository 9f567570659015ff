// Package ui provides the user interface components for the jot TUI.
//
// # Overview
//
// The ui package implements the visual components of jot using the Bubble Tea
// framework and Lipgloss styling library. It follows the Model-Update-View pattern
// established by Bubble Tea.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Tab bar (1 line)                                    │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│                 Editor Panel                        │
//	│                 (full width)                        │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title, the current tab's title, and the
// tab position indicator. Uses a gradient background with the primary color.
//
// TabBar: Shows every open tab in ring order with the current tab highlighted.
// When the tabs overflow the terminal width, the bar keeps the current tab
// visible and shows overflow counts at the edges.
//
// Editor: The main text panel. In normal mode it hosts the textarea that edits
// the current tab's document. It also has two overlay modes:
//   - Preview: read-only render of the document with syntax-highlighted code
//     fences and mouse-driven text selection for copying.
//   - Log viewer: tails the application log file with level highlighting.
//
// Footer: Shows context-aware keyboard shortcuts, or a transient flash
// message (error, warning, info, success) that takes priority over the
// shortcut hints until it expires.
//
// Modal: Popup container for dialog states defined in the modals subpackage
// (search, settings, help, confirmations).
//
// # Constants
//
// Layout constants are defined in constants.go:
//   - HeaderHeight, TabBarHeight, FooterHeight: Fixed at 1 line each
//   - BorderSize: 2 (1 on each side)
//   - MinTerminalWidth, MinTerminalHeight: Lower bounds for layout math
//
// # Styles
//
// All styles are defined in styles.go using Lipgloss and are regenerated when
// the theme changes. The default palette uses:
//   - ColorPrimary (#7C3AED): Purple, used for highlights and focused elements
//   - ColorSecondary (#06B6D4): Cyan, used for key hints and accents
//   - ColorBg (#1F2937): Dark background
//   - ColorText (#F9FAFB): Light text
//   - ColorTextMuted (#9CA3AF): Muted text for secondary content
package ui
