package analysis

import "sort"

// Keyword is one ranked keyword: the canonical lemma and its raw count.
type Keyword struct {
	Lemma string `json:"lemma"`
	Count int    `json:"count"`
}

// RankKeywords returns the top-k keywords by raw count, descending, with
// count ties broken ascending by lemma. The explicit sort makes the output
// reproducible regardless of map iteration order.
func RankKeywords(counts map[string]int, k int) []Keyword {
	if k <= 0 || len(counts) == 0 {
		return []Keyword{}
	}
	ranked := make([]Keyword, 0, len(counts))
	for lemma, count := range counts {
		ranked = append(ranked, Keyword{Lemma: lemma, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Lemma < ranked[j].Lemma
	})
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}
