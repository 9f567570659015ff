package modals

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jotkit/jot/internal/keys"
)

const (
	// SearchInputCharLimit bounds the query length.
	SearchInputCharLimit = 128
	// SearchModalMaxVisible is the number of results shown before scrolling.
	SearchModalMaxVisible = 8
	// SearchModalWidth is wider than the default modal so a result row's
	// title column and snippet fit on one line.
	SearchModalWidth = 80
	// searchSnippetWidth is the room given to each result's text snippet.
	searchSnippetWidth = 48
	// searchTitleWidth is the room given to each result's tab title.
	searchTitleWidth = 16
)

// =============================================================================
// SearchTabsState - State for searching across all open tabs
// =============================================================================

type SearchTabsState struct {
	Query         string
	Input         textinput.Model
	AllTabs       []TabEntry // Every tab in left-to-right order
	CurrentIndex  int        // Position of the current tab in AllTabs
	Results       []SearchResult
	SelectedIndex int // Currently selected result
	ScrollOffset  int // For scrolling through results
	maxVisible    int // Maximum visible results
}

func (*SearchTabsState) modalState() {}

func (s *SearchTabsState) Title() string { return "Search Tabs" }

func (s *SearchTabsState) PreferredWidth() int { return SearchModalWidth }

func (s *SearchTabsState) Help() string {
	if len(s.Results) == 0 && s.Query != "" {
		return "No matches found. Esc: close"
	}
	return "Type to search  up/down: navigate  Enter: go to tab  Esc: close"
}

func (s *SearchTabsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	// Search input
	inputLabel := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Search:")

	inputStyle := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	inputView := inputStyle.Render(s.Input.View())

	// Results section
	var resultsSection string
	if s.Query == "" {
		resultsSection = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render("Start typing to search across every tab...")
	} else if len(s.Results) == 0 {
		resultsSection = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1).
			Render("No matches found")
	} else {
		// Show result count
		countStyle := lipgloss.NewStyle().
			Foreground(ColorSuccess).
			MarginTop(1).
			MarginBottom(1)
		resultsSection = countStyle.Render(fmt.Sprintf("%d match(es) found", len(s.Results)))

		// Build results list with scrolling
		visibleEnd := s.ScrollOffset + s.maxVisible
		if visibleEnd > len(s.Results) {
			visibleEnd = len(s.Results)
		}

		// Scroll indicators
		if s.ScrollOffset > 0 {
			resultsSection += "\n" + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  up more above")
		}

		for i := s.ScrollOffset; i < visibleEnd; i++ {
			result := s.Results[i]
			isSelected := i == s.SelectedIndex

			titleStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
			tabNum := fmt.Sprintf("[%d]", result.TabIndex+1)
			marker := ""
			if result.TabIndex == s.CurrentIndex {
				marker = "*"
			}

			tabTitle := TruncateString(result.Title, searchTitleWidth)
			snippet := s.snippet(result, searchSnippetWidth)

			prefix := "  "
			style := ListItemStyle
			if isSelected {
				prefix = "> "
				style = ListSelectedStyle
			}

			line := fmt.Sprintf("%s %s%s %s: %s", prefix, tabNum, marker, titleStyle.Render(tabTitle), snippet)
			resultsSection += "\n" + style.Render(line)
		}

		// More below indicator
		if visibleEnd < len(s.Results) {
			resultsSection += "\n" + lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  down more below")
		}
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, inputLabel, inputView, resultsSection, help)
}

// snippet builds the display text for a result row. Body matches get a
// window around the match with the match highlighted; title-only matches
// fall back to the start of the document.
func (s *SearchTabsState) snippet(result SearchResult, maxLen int) string {
	content := collapseWhitespace(result.Content)
	if content == "" {
		return lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("(empty)")
	}

	if result.MatchStart < 0 {
		return TruncateString(content, maxLen)
	}
	return s.extractSnippet(result, content, maxLen)
}

// extractSnippet extracts a window of text around the match. Match offsets
// are positions in the original content; collapsing whitespace only shrinks
// runs after the match, so recomputing the match in the collapsed text keeps
// the highlight accurate without tracking offset deltas.
func (s *SearchTabsState) extractSnippet(result SearchResult, content string, maxLen int) string {
	matchStart := strings.Index(strings.ToLower(content), strings.ToLower(s.Query))
	if matchStart == -1 {
		return TruncateString(content, maxLen)
	}
	matchEnd := matchStart + len(s.Query)

	if len(content) <= maxLen {
		return s.highlightMatch(content, matchStart, matchEnd)
	}

	// Center the snippet around the match
	matchMid := (matchStart + matchEnd) / 2
	halfLen := maxLen / 2

	start := matchMid - halfLen
	end := matchMid + halfLen

	if start < 0 {
		start = 0
		end = maxLen
	}
	if end > len(content) {
		end = len(content)
		start = end - maxLen
		if start < 0 {
			start = 0
		}
	}

	snippet := content[start:end]

	// Adjust match positions for the snippet
	newMatchStart := matchStart - start
	newMatchEnd := matchEnd - start
	if newMatchStart < 0 {
		newMatchStart = 0
	}
	if newMatchEnd > len(snippet) {
		newMatchEnd = len(snippet)
	}

	// Add ellipsis if truncated
	prefix := ""
	suffix := ""
	if start > 0 {
		prefix = "..."
	}
	if end < len(content) {
		suffix = "..."
	}

	return prefix + s.highlightMatch(snippet, newMatchStart, newMatchEnd) + suffix
}

// highlightMatch highlights the matched portion of text
func (s *SearchTabsState) highlightMatch(text string, start, end int) string {
	if start < 0 || end > len(text) || start >= end {
		return text
	}

	before := text[:start]
	match := text[start:end]
	after := text[end:]

	highlightStyle := lipgloss.NewStyle().
		Background(ColorWarning).
		Foreground(ColorTextInverse).
		Bold(true)

	return before + highlightStyle.Render(match) + after
}

// collapseWhitespace flattens newlines, tabs, and runs of spaces so a
// document renders as a single snippet line.
func collapseWhitespace(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\t", " ")
	for strings.Contains(content, "  ") {
		content = strings.ReplaceAll(content, "  ", " ")
	}
	return strings.TrimSpace(content)
}

func (s *SearchTabsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
				// Scroll up if needed
				if s.SelectedIndex < s.ScrollOffset {
					s.ScrollOffset = s.SelectedIndex
				}
			}
			return s, nil
		case keys.Down:
			if s.SelectedIndex < len(s.Results)-1 {
				s.SelectedIndex++
				// Scroll down if needed
				if s.SelectedIndex >= s.ScrollOffset+s.maxVisible {
					s.ScrollOffset = s.SelectedIndex - s.maxVisible + 1
				}
			}
			return s, nil
		}
	}

	// Update text input
	var cmd tea.Cmd
	oldQuery := s.Input.Value()
	s.Input, cmd = s.Input.Update(msg)
	newQuery := s.Input.Value()

	// Re-filter if query changed
	if newQuery != oldQuery {
		s.Query = newQuery
		s.filterResults()
	}

	return s, cmd
}

// filterResults filters tabs based on the current query. A tab matches when
// its document contains the query as a substring, or failing that, when the
// query fuzzy-matches its title (so "mtg" still finds "Meeting notes").
func (s *SearchTabsState) filterResults() {
	s.Results = nil
	s.SelectedIndex = 0
	s.ScrollOffset = 0

	if s.Query == "" {
		return
	}

	query := strings.ToLower(s.Query)

	for i, tab := range s.AllTabs {
		content := strings.ToLower(tab.Content)
		if idx := strings.Index(content, query); idx != -1 {
			s.Results = append(s.Results, SearchResult{
				TabIndex:   i,
				Title:      tab.Title,
				Content:    tab.Content,
				MatchStart: idx,
				MatchEnd:   idx + len(s.Query),
			})
			continue
		}
		if fuzzy.MatchNormalizedFold(s.Query, tab.Title) {
			s.Results = append(s.Results, SearchResult{
				TabIndex:   i,
				Title:      tab.Title,
				Content:    tab.Content,
				MatchStart: -1,
				MatchEnd:   -1,
			})
		}
	}
}

// GetSelectedResult returns the currently selected search result
func (s *SearchTabsState) GetSelectedResult() *SearchResult {
	if len(s.Results) == 0 || s.SelectedIndex >= len(s.Results) {
		return nil
	}
	return &s.Results[s.SelectedIndex]
}

// NavigateDistance returns the signed number of tab steps from the current
// tab to the selected result. Zero when nothing is selected or the selection
// is the current tab.
func (s *SearchTabsState) NavigateDistance() int {
	result := s.GetSelectedResult()
	if result == nil {
		return 0
	}
	return result.TabIndex - s.CurrentIndex
}

// NewSearchTabsState creates a new SearchTabsState.
// tabs must be in left-to-right display order; currentIndex is the position
// of the current tab within it.
func NewSearchTabsState(tabs []TabEntry, currentIndex int) *SearchTabsState {
	input := textinput.New()
	input.Placeholder = "Type to search..."
	input.CharLimit = SearchInputCharLimit
	input.SetWidth(ModalInputWidth)
	input.Focus()

	return &SearchTabsState{
		Input:        input,
		AllTabs:      tabs,
		CurrentIndex: currentIndex,
		maxVisible:   SearchModalMaxVisible,
	}
}
