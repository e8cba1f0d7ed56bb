package analysis

import "testing"

func TestCountLemmasMergesRepeats(t *testing.T) {
	counts := CountLemmas([]string{"pay", "invoice", "pay", "pay"})
	if counts["pay"] != 3 || counts["invoice"] != 1 {
		t.Fatalf("unexpected counts: %#v", counts)
	}
}

func TestNormalizeCountsScalesMaxToOne(t *testing.T) {
	scores := NormalizeCounts(map[string]int{"pay": 4, "invoice": 2, "bank": 1})
	if scores["pay"] != 1.0 {
		t.Fatalf("max count must normalize to 1.0, got %f", scores["pay"])
	}
	if scores["invoice"] != 0.5 || scores["bank"] != 0.25 {
		t.Fatalf("unexpected normalized scores: %#v", scores)
	}
	for lemma, v := range scores {
		if v < 0 || v > 1 {
			t.Fatalf("score out of [0,1] for %s: %f", lemma, v)
		}
	}
}

func TestNormalizeCountsEmpty(t *testing.T) {
	scores := NormalizeCounts(map[string]int{})
	if len(scores) != 0 {
		t.Fatalf("empty counts must yield empty scores, got %#v", scores)
	}
}
