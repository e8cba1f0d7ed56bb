package analysis

import "testing"

func TestComputeStatsCounts(t *testing.T) {
	text := "One two three.\n\nFour five."
	s := ComputeStats(text, Tokenize(text))
	if s.WordCount != 5 {
		t.Fatalf("expected 5 words, got %d", s.WordCount)
	}
	if s.SentenceCount != 2 {
		t.Fatalf("expected 2 sentences, got %d", s.SentenceCount)
	}
	if s.ParagraphCount != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", s.ParagraphCount)
	}
	if s.CharCount != len([]rune(text)) {
		t.Fatalf("char count must include whitespace, got %d", s.CharCount)
	}
	if s.AvgSentenceLength != 2.5 {
		t.Fatalf("expected avg sentence length 2.5, got %f", s.AvgSentenceLength)
	}
	// one:3 two:3 three:5 four:4 five:4
	if s.WordLengths[3] != 2 || s.WordLengths[4] != 2 || s.WordLengths[5] != 1 {
		t.Fatalf("unexpected word-length histogram: %#v", s.WordLengths)
	}
	if s.AvgWordLength != 19.0/5.0 {
		t.Fatalf("unexpected avg word length: %f", s.AvgWordLength)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats("", nil)
	if s.CharCount != 0 || s.WordCount != 0 || s.SentenceCount != 0 || s.ParagraphCount != 0 {
		t.Fatalf("empty document must produce zero counts: %#v", s)
	}
	if s.AvgWordLength != 0 || s.AvgSentenceLength != 0 {
		t.Fatalf("empty document must not divide by zero: %#v", s)
	}
}

func TestCountParagraphsSingleBlock(t *testing.T) {
	if got := countParagraphs("line one\nline two"); got != 1 {
		t.Fatalf("document without blank lines is one paragraph, got %d", got)
	}
	if got := countParagraphs("\n\n\n"); got != 0 {
		t.Fatalf("only blank lines means zero paragraphs, got %d", got)
	}
}
