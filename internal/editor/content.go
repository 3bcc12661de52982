package editor

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagRe   = regexp.MustCompile(`(?s)<[^>]*>`)
	blockRe = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote)>|<br\s*/?>`)
)

// plainToMarkup wraps plain text in minimal HTML so a plain document can be
// saved to a markup extension: entities escaped, one paragraph per line.
func plainToMarkup(plain string) string {
	if plain == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(plain, "\n") {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>")
	}
	return b.String()
}

// plainFromMarkup derives the flattened plain-text projection of a markup
// document: block-level closers become newlines, remaining tags are dropped,
// entities are decoded. Good enough for the .txt save path; fidelity beyond
// that is the rich-text widget's job, not ours.
func plainFromMarkup(markup string) string {
	s := blockRe.ReplaceAllString(markup, "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s = strings.Join(lines, "\n")
	return strings.Trim(s, "\n")
}

// wordCount counts whitespace-separated words.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
