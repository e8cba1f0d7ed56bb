package analysis

import (
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"
)

// filter reduces word tokens to canonical keyword lemmas. Stopwords, short
// tokens, and tokens with no letters are discarded; survivors are stemmed.
type filter struct {
	stopwords map[string]struct{}
	minLen    int
}

func newFilter(stopwords map[string]struct{}, minLen int) *filter {
	return &filter{stopwords: stopwords, minLen: minLen}
}

// Keep returns the canonical lemma for word and true, or "" and false when
// the token is noise. word is expected lower-cased (Words does that).
func (f *filter) Keep(word string) (string, bool) {
	if utf8.RuneCountInString(word) < f.minLen {
		return "", false
	}
	if !hasLetter(word) {
		return "", false
	}
	if f.stopwords != nil {
		if _, ok := f.stopwords[word]; ok {
			return "", false
		}
	} else if english.IsStopWord(word) {
		return "", false
	}
	return Lemmatize(word), true
}

// Lemmatize reduces word to its canonical base form via snowball stemming.
// Stemming failures fall back to the surface form unchanged; this never
// errors so a bad token cannot abort a pipeline run.
func Lemmatize(word string) string {
	stem, err := snowball.Stem(word, "english", false)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
