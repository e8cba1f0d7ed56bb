package analysis

import (
	"strings"
	"unicode/utf8"
)

// Stats describes one document. All counts are taken before keyword
// filtering, so WordCount covers every token including stopwords.
type Stats struct {
	CharCount         int         `json:"char_count"`
	WordCount         int         `json:"word_count"`
	SentenceCount     int         `json:"sentence_count"`
	ParagraphCount    int         `json:"paragraph_count"`
	AvgWordLength     float64     `json:"avg_word_length"`
	AvgSentenceLength float64     `json:"avg_sentence_length"`
	WordLengths       map[int]int `json:"word_lengths"`
}

// ComputeStats aggregates document metrics from the raw text and the
// tokenized sentences. Empty input yields all-zero stats.
func ComputeStats(text string, sentences []Sentence) Stats {
	s := Stats{
		CharCount:      utf8.RuneCountInString(text),
		SentenceCount:  len(sentences),
		ParagraphCount: countParagraphs(text),
		WordLengths:    map[int]int{},
	}
	totalRunes := 0
	for _, sent := range sentences {
		for _, w := range sent.Words {
			n := utf8.RuneCountInString(w)
			s.WordCount++
			totalRunes += n
			s.WordLengths[n]++
		}
	}
	if s.WordCount > 0 {
		s.AvgWordLength = float64(totalRunes) / float64(s.WordCount)
	}
	if s.SentenceCount > 0 {
		s.AvgSentenceLength = float64(s.WordCount) / float64(s.SentenceCount)
	}
	return s
}

// countParagraphs counts maximal runs of non-blank lines. Text without blank
// lines is one paragraph when non-empty, zero when empty.
func countParagraphs(text string) int {
	count := 0
	inPara := false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			inPara = false
			continue
		}
		if !inPara {
			count++
			inPara = true
		}
	}
	return count
}
