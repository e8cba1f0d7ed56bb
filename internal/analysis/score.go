package analysis

import "sort"

// SelectSummary scores every sentence as the sum of the normalized scores of
// its surviving lemmas (perSentence[i] holds the lemmas of sentences[i]) and
// returns the text of the top-n sentences. Ranking is by score descending
// with the lower original index winning ties; the selected sentences are
// emitted in original document order, not score order, to preserve flow.
func SelectSummary(sentences []Sentence, perSentence [][]string, scores map[string]float64, n int) []string {
	if n <= 0 || len(sentences) == 0 {
		return []string{}
	}
	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i := range sentences {
		total := 0.0
		for _, lemma := range perSentence[i] {
			total += scores[lemma]
		}
		ranked[i] = scored{idx: i, score: total}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].idx < ranked[j].idx
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	picked := ranked[:n]
	sort.Slice(picked, func(i, j int) bool { return picked[i].idx < picked[j].idx })

	out := make([]string, 0, n)
	for _, p := range picked {
		out = append(out, sentences[p.idx].Text)
	}
	return out
}
