package analysis

import (
	"reflect"
	"testing"
)

func summaryFixture() ([]Sentence, [][]string, map[string]float64) {
	sentences := []Sentence{
		{Index: 0, Text: "low"},
		{Index: 1, Text: "high"},
		{Index: 2, Text: "mid"},
		{Index: 3, Text: "none"},
	}
	perSentence := [][]string{
		{"bank"},
		{"pay", "pay"},
		{"pay"},
		{},
	}
	scores := map[string]float64{"pay": 1.0, "bank": 0.25}
	return sentences, perSentence, scores
}

func TestSelectSummaryPicksTopScoresInDocumentOrder(t *testing.T) {
	sentences, perSentence, scores := summaryFixture()
	got := SelectSummary(sentences, perSentence, scores, 2)
	// "high" (2.0) and "mid" (1.0) win, emitted by index not by score.
	want := []string{"high", "mid"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSelectSummaryTieBreaksOnLowerIndex(t *testing.T) {
	sentences := []Sentence{
		{Index: 0, Text: "first"},
		{Index: 1, Text: "second"},
	}
	perSentence := [][]string{{"pay"}, {"pay"}}
	scores := map[string]float64{"pay": 1.0}
	got := SelectSummary(sentences, perSentence, scores, 1)
	if !reflect.DeepEqual(got, []string{"first"}) {
		t.Fatalf("equal scores must prefer the earlier sentence, got %v", got)
	}
}

func TestSelectSummaryShortDocumentReturnsAll(t *testing.T) {
	sentences, perSentence, scores := summaryFixture()
	got := SelectSummary(sentences, perSentence, scores, 10)
	want := []string{"low", "high", "mid", "none"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected all sentences in order, got %v", got)
	}
}

func TestSelectSummaryNonPositiveN(t *testing.T) {
	sentences, perSentence, scores := summaryFixture()
	if got := SelectSummary(sentences, perSentence, scores, 0); len(got) != 0 {
		t.Fatalf("n=0 must yield empty summary, got %v", got)
	}
	if got := SelectSummary(sentences, perSentence, scores, -1); len(got) != 0 {
		t.Fatalf("negative n must yield empty summary, got %v", got)
	}
}
