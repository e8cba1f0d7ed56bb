package util

import "strings"

// SanitizeText removes bytes and control characters that Postgres text
// columns reject (especially NUL / 0x00 from some PDF extractors), keeping
// common whitespace.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	// NUL bytes are not valid in PostgreSQL text.
	s = strings.ReplaceAll(s, "\x00", "")

	r := make([]rune, 0, len(s))
	for _, ch := range s {
		if ch == '\n' || ch == '\r' || ch == '\t' {
			r = append(r, ch)
			continue
		}
		if ch < 0x20 {
			continue
		}
		r = append(r, ch)
	}
	return strings.TrimSpace(string(r))
}

// DisplaySnippet trims s to a short single-line preview for listings.
func DisplaySnippet(s string, maxRunes int) string {
	s = strings.Join(strings.Fields(SanitizeText(s)), " ")
	runes := []rune(s)
	if maxRunes > 0 && len(runes) > maxRunes {
		return strings.TrimSpace(string(runes[:maxRunes])) + "..."
	}
	return s
}

// TruncateWords caps s at max whitespace-separated words. max <= 0 means no
// cap. Used to bound analysis latency on very large documents before the
// core runs.
func TruncateWords(s string, max int) string {
	if max <= 0 {
		return s
	}
	fields := strings.Fields(s)
	if len(fields) <= max {
		return s
	}
	return strings.Join(fields[:max], " ")
}
