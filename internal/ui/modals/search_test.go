package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func searchState(tabs []TabEntry, currentIndex int) *SearchTabsState {
	s := NewSearchTabsState(tabs, currentIndex)
	return s
}

func setQuery(s *SearchTabsState, query string) {
	s.Query = query
	s.Input.SetValue(query)
	s.filterResults()
}

func TestNewSearchTabsState(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Groceries", Content: "milk\neggs"},
		{Title: "Untitled", Content: ""},
	}
	s := NewSearchTabsState(tabs, 1)

	if len(s.AllTabs) != 2 {
		t.Errorf("expected 2 tabs, got %d", len(s.AllTabs))
	}
	if s.CurrentIndex != 1 {
		t.Errorf("expected current index 1, got %d", s.CurrentIndex)
	}
	if s.Query != "" {
		t.Errorf("expected empty initial query, got %q", s.Query)
	}
	if len(s.Results) != 0 {
		t.Errorf("expected no initial results, got %d", len(s.Results))
	}
	if s.maxVisible != SearchModalMaxVisible {
		t.Errorf("expected maxVisible %d, got %d", SearchModalMaxVisible, s.maxVisible)
	}
}

func TestSearchTabsState_Title(t *testing.T) {
	s := searchState(nil, 0)
	if s.Title() != "Search Tabs" {
		t.Errorf("expected title 'Search Tabs', got %q", s.Title())
	}
}

func TestSearchTabsState_FilterBodyMatch(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Groceries", Content: "milk\neggs"},
		{Title: "Ideas", Content: "a terminal scratchpad"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "egg")

	if len(s.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(s.Results))
	}
	r := s.Results[0]
	if r.TabIndex != 0 {
		t.Errorf("expected tab index 0, got %d", r.TabIndex)
	}
	if r.MatchStart != 5 || r.MatchEnd != 8 {
		t.Errorf("expected match at [5,8), got [%d,%d)", r.MatchStart, r.MatchEnd)
	}
}

func TestSearchTabsState_FilterCaseInsensitive(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Groceries", Content: "Milk and Eggs"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "MILK")

	if len(s.Results) != 1 {
		t.Fatalf("expected 1 result for case-insensitive match, got %d", len(s.Results))
	}
	if s.Results[0].MatchStart != 0 {
		t.Errorf("expected match at 0, got %d", s.Results[0].MatchStart)
	}
}

func TestSearchTabsState_FilterFuzzyTitleMatch(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Meeting notes", Content: "agenda items"},
		{Title: "Groceries", Content: "milk"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "mtg")

	if len(s.Results) != 1 {
		t.Fatalf("expected 1 fuzzy title result, got %d", len(s.Results))
	}
	r := s.Results[0]
	if r.TabIndex != 0 {
		t.Errorf("expected tab index 0, got %d", r.TabIndex)
	}
	if r.MatchStart != -1 {
		t.Errorf("expected MatchStart -1 for title-only match, got %d", r.MatchStart)
	}
}

func TestSearchTabsState_FilterNoMatch(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Groceries", Content: "milk"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "zzz")

	if len(s.Results) != 0 {
		t.Errorf("expected no results, got %d", len(s.Results))
	}
}

func TestSearchTabsState_FilterPreservesTabOrder(t *testing.T) {
	tabs := []TabEntry{
		{Title: "One", Content: "note alpha"},
		{Title: "Two", Content: "other"},
		{Title: "Three", Content: "note beta"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "note")

	if len(s.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(s.Results))
	}
	if s.Results[0].TabIndex != 0 || s.Results[1].TabIndex != 2 {
		t.Errorf("expected results for tabs 0 and 2, got %d and %d",
			s.Results[0].TabIndex, s.Results[1].TabIndex)
	}
}

func TestSearchTabsState_FilterResetsSelection(t *testing.T) {
	tabs := []TabEntry{
		{Title: "One", Content: "note alpha"},
		{Title: "Two", Content: "note beta"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "note")
	s.SelectedIndex = 1
	s.ScrollOffset = 1

	setQuery(s, "alpha")

	if s.SelectedIndex != 0 {
		t.Errorf("expected selection reset to 0, got %d", s.SelectedIndex)
	}
	if s.ScrollOffset != 0 {
		t.Errorf("expected scroll reset to 0, got %d", s.ScrollOffset)
	}
}

func TestSearchTabsState_Update_Typing(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Groceries", Content: "milk"},
	}
	s := searchState(tabs, 0)

	newState, _ := s.Update(tea.KeyPressMsg{Code: 'm', Text: "m"})
	s = newState.(*SearchTabsState)

	if s.Query != "m" {
		t.Errorf("expected query 'm' after typing, got %q", s.Query)
	}
	if len(s.Results) != 1 {
		t.Errorf("expected 1 result after typing, got %d", len(s.Results))
	}
}

func TestSearchTabsState_Update_Navigation(t *testing.T) {
	tabs := []TabEntry{
		{Title: "One", Content: "note a"},
		{Title: "Two", Content: "note b"},
		{Title: "Three", Content: "note c"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "note")

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	up := tea.KeyPressMsg{Code: tea.KeyUp}

	s.Update(down)
	if s.SelectedIndex != 1 {
		t.Errorf("expected selected index 1 after down, got %d", s.SelectedIndex)
	}

	s.Update(up)
	if s.SelectedIndex != 0 {
		t.Errorf("expected selected index 0 after up, got %d", s.SelectedIndex)
	}

	// Up at the top stays put
	s.Update(up)
	if s.SelectedIndex != 0 {
		t.Errorf("expected selected index to stay 0 at top, got %d", s.SelectedIndex)
	}

	// Down clamps at the last result
	s.Update(down)
	s.Update(down)
	s.Update(down)
	if s.SelectedIndex != 2 {
		t.Errorf("expected selected index to clamp at 2, got %d", s.SelectedIndex)
	}
}

func TestSearchTabsState_Update_Scrolling(t *testing.T) {
	var tabs []TabEntry
	for i := 0; i < SearchModalMaxVisible+2; i++ {
		tabs = append(tabs, TabEntry{Title: "Tab", Content: "note"})
	}
	s := searchState(tabs, 0)
	setQuery(s, "note")

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	for i := 0; i < SearchModalMaxVisible+1; i++ {
		s.Update(down)
	}

	if s.SelectedIndex != SearchModalMaxVisible+1 {
		t.Errorf("expected selected index %d, got %d", SearchModalMaxVisible+1, s.SelectedIndex)
	}
	if s.ScrollOffset != 2 {
		t.Errorf("expected scroll offset 2, got %d", s.ScrollOffset)
	}
}

func TestSearchTabsState_GetSelectedResult(t *testing.T) {
	tabs := []TabEntry{
		{Title: "One", Content: "note a"},
		{Title: "Two", Content: "note b"},
	}
	s := searchState(tabs, 0)
	setQuery(s, "note")

	r := s.GetSelectedResult()
	if r == nil {
		t.Fatal("expected non-nil result")
	}
	if r.TabIndex != 0 {
		t.Errorf("expected tab index 0, got %d", r.TabIndex)
	}

	s.SelectedIndex = 1
	r = s.GetSelectedResult()
	if r == nil || r.TabIndex != 1 {
		t.Errorf("expected result for tab 1 after selection change")
	}
}

func TestSearchTabsState_GetSelectedResult_Empty(t *testing.T) {
	s := searchState(nil, 0)
	if s.GetSelectedResult() != nil {
		t.Error("expected nil result with no matches")
	}
}

func TestSearchTabsState_NavigateDistance(t *testing.T) {
	tabs := []TabEntry{
		{Title: "A", Content: "alpha"},
		{Title: "B", Content: "beta"},
		{Title: "C", Content: "gamma"},
	}

	// Match to the right of current
	s := searchState(tabs, 1)
	setQuery(s, "gamma")
	if got := s.NavigateDistance(); got != 1 {
		t.Errorf("expected distance 1, got %d", got)
	}

	// Match to the left of current
	s = searchState(tabs, 1)
	setQuery(s, "alpha")
	if got := s.NavigateDistance(); got != -1 {
		t.Errorf("expected distance -1, got %d", got)
	}

	// Match on the current tab
	s = searchState(tabs, 1)
	setQuery(s, "beta")
	if got := s.NavigateDistance(); got != 0 {
		t.Errorf("expected distance 0, got %d", got)
	}

	// No selection
	s = searchState(tabs, 1)
	if got := s.NavigateDistance(); got != 0 {
		t.Errorf("expected distance 0 with no results, got %d", got)
	}
}

func TestSearchTabsState_Render(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Groceries", Content: "milk\neggs"},
	}

	// Empty query prompt
	s := searchState(tabs, 0)
	if s.Render() == "" {
		t.Error("expected non-empty render with empty query")
	}

	// No matches
	setQuery(s, "zzz")
	if !strings.Contains(s.Render(), "No matches") {
		t.Error("expected 'No matches' in render")
	}

	// With matches
	setQuery(s, "milk")
	out := s.Render()
	if !strings.Contains(out, "match(es) found") {
		t.Error("expected match count in render")
	}
	if !strings.Contains(out, "milk") {
		t.Error("expected matched text in render")
	}
}

func TestSearchTabsState_Render_EmptyTabSnippet(t *testing.T) {
	tabs := []TabEntry{
		{Title: "Fresh", Content: ""},
	}
	s := searchState(tabs, 0)
	setQuery(s, "fr")

	if len(s.Results) != 1 {
		t.Fatalf("expected fuzzy title match on empty tab, got %d results", len(s.Results))
	}
	if !strings.Contains(s.Render(), "(empty)") {
		t.Error("expected empty-document placeholder in render")
	}
}

func TestSearchTabsState_ExtractSnippet_Window(t *testing.T) {
	content := strings.Repeat("x", 100) + " needle " + strings.Repeat("y", 100)
	tabs := []TabEntry{{Title: "Long", Content: content}}
	s := searchState(tabs, 0)
	setQuery(s, "needle")

	if len(s.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(s.Results))
	}

	snippet := s.snippet(s.Results[0], 48)
	if !strings.Contains(snippet, "needle") {
		t.Error("expected snippet to contain the match")
	}
	if !strings.HasPrefix(snippet, "...") {
		t.Error("expected leading ellipsis for a mid-document match")
	}
	if !strings.HasSuffix(snippet, "...") {
		t.Error("expected trailing ellipsis for a mid-document match")
	}
}

func TestSearchTabsState_HighlightMatch_Invalid(t *testing.T) {
	s := searchState(nil, 0)

	if got := s.highlightMatch("hello", -1, 3); got != "hello" {
		t.Errorf("expected unchanged text for negative start, got %q", got)
	}
	if got := s.highlightMatch("hello", 3, 10); got != "hello" {
		t.Errorf("expected unchanged text for out-of-range end, got %q", got)
	}
	if got := s.highlightMatch("hello", 3, 3); got != "hello" {
		t.Errorf("expected unchanged text for empty range, got %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a\nb", "a b"},
		{"a\t\tb", "a b"},
		{"  a   b  ", "a b"},
		{"a\n\n\nb", "a b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := collapseWhitespace(tt.input); got != tt.expected {
			t.Errorf("collapseWhitespace(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
