package analysis

import (
	"reflect"
	"testing"
)

func TestRankKeywordsOrdersByCountThenLemma(t *testing.T) {
	counts := map[string]int{"zebra": 2, "apple": 2, "pay": 5, "bank": 1}
	got := RankKeywords(counts, 10)
	want := []Keyword{
		{Lemma: "pay", Count: 5},
		{Lemma: "apple", Count: 2},
		{Lemma: "zebra", Count: 2},
		{Lemma: "bank", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRankKeywordsTruncatesToK(t *testing.T) {
	counts := map[string]int{"a1x": 1, "b2x": 2, "c3x": 3}
	if got := RankKeywords(counts, 2); len(got) != 2 || got[0].Lemma != "c3x" {
		t.Fatalf("unexpected top-2: %#v", got)
	}
	if got := RankKeywords(counts, 0); len(got) != 0 {
		t.Fatalf("k=0 must yield no keywords, got %#v", got)
	}
}
