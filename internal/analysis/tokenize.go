package analysis

import (
	"strings"
	"unicode"
)

// Sentence is one ordered unit of the document. Index is the 0-based position
// in document order and fixes the summary output order. Words holds the
// lower-cased tokens of the sentence with attached punctuation stripped.
type Sentence struct {
	Index int
	Text  string
	Words []string
}

// abbreviations suppresses false sentence breaks after common abbreviated
// words (lower-cased, with trailing dot). Invoices are full of "no." and
// "inc."-style tokens.
var abbreviations = map[string]bool{
	"mr.": true, "mrs.": true, "ms.": true, "dr.": true, "prof.": true,
	"inc.": true, "ltd.": true, "co.": true, "corp.": true,
	"no.": true, "vs.": true, "etc.": true, "e.g.": true, "i.e.": true,
	"st.": true, "dept.": true, "qty.": true, "approx.": true,
}

// Tokenize splits text into ordered sentences and tokenizes each one.
// Sentence boundaries are terminal punctuation (. ! ?) and blank lines; a dot
// that ends a known abbreviation does not break. Over-splitting is tolerated.
// Empty or whitespace-only input returns no sentences.
func Tokenize(text string) []Sentence {
	out := make([]Sentence, 0)
	emit := func(span string) {
		span = strings.TrimSpace(span)
		if span == "" {
			return
		}
		out = append(out, Sentence{Index: len(out), Text: span, Words: Words(span)})
	}

	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Blank line forces a break regardless of punctuation.
		if r == '\n' && i+1 < len(runes) && runes[i+1] == '\n' {
			emit(string(runes[start : i+1]))
			for i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			start = i + 1
			continue
		}

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && endsWithAbbreviation(runes, i) {
			continue
		}
		// Consume the whole punctuation cluster ("...", "?!").
		for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
			i++
		}
		// Break only when followed by whitespace or end of input, so
		// "1.5" and "a.b@c" stay intact.
		if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
			emit(string(runes[start : i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		emit(string(runes[start:]))
	}
	return out
}

// Words splits s on whitespace, strips punctuation attached to word edges,
// and lower-cases the result. Internal punctuation ("don't", "t-100") is kept.
func Words(s string) []string {
	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w == "" {
			continue
		}
		words = append(words, strings.ToLower(w))
	}
	return words
}

func endsWithAbbreviation(runes []rune, dot int) bool {
	// Walk back to the start of the word containing the dot.
	start := dot
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	word := strings.ToLower(string(runes[start : dot+1]))
	return abbreviations[word]
}
