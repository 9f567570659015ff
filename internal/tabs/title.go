package tabs

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Untitled is the display fallback for tabs whose title is empty.
const Untitled = "Untitled"

// titleLimit is how many grapheme clusters of the first line survive
// before truncation.
const titleLimit = 10

const titleEllipsis = "..."

// DeriveTitle computes a tab's display title from its document text:
// the first line, cut to titleLimit grapheme clusters with a trailing
// ellipsis when longer, or Untitled when the first line is empty.
func DeriveTitle(text string) string {
	first, _, _ := strings.Cut(text, "\n")
	if first == "" {
		return Untitled
	}
	if uniseg.GraphemeClusterCount(first) <= titleLimit {
		return first
	}
	return truncateGraphemes(first, titleLimit) + titleEllipsis
}

// truncateGraphemes returns the leading n grapheme clusters of s.
func truncateGraphemes(s string, n int) string {
	g := uniseg.NewGraphemes(s)
	end := 0
	for i := 0; i < n && g.Next(); i++ {
		_, end = g.Positions()
	}
	return s[:end]
}
