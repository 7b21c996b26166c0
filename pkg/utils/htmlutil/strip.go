// ABOUTME: HTML utilities for reducing markup to plain text
// ABOUTME: Used for bounded content previews and extractor excerpts

package htmlutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strip removes markup from a fragment and returns its readable text with
// collapsed whitespace. Unparseable input falls back to the raw string.
func Strip(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return collapseWhitespace(markup)
	}

	doc.Find("script, style").Remove()

	return collapseWhitespace(doc.Text())
}

// Truncate bounds text to at most limit characters, appending an ellipsis
// when anything was cut
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return strings.TrimSpace(string(runes[:limit])) + "..."
}

// collapseWhitespace trims and squeezes runs of whitespace to single spaces
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
