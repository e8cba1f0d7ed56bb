package analysis

// CountLemmas builds the raw frequency mapping from the ordered stream of
// surviving lemmas. Distinct surface forms that stem identically merge into
// one count.
func CountLemmas(lemmas []string) map[string]int {
	counts := make(map[string]int, len(lemmas))
	for _, l := range lemmas {
		counts[l]++
	}
	return counts
}

// NormalizeCounts scales raw counts so the maximum maps to 1.0 and the rest
// proportionally. No keywords means an empty mapping, never a zero division.
// Normalization is a pure scalar transform: ties in raw counts stay tied.
func NormalizeCounts(counts map[string]int) map[string]float64 {
	if len(counts) == 0 {
		return map[string]float64{}
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	scores := make(map[string]float64, len(counts))
	for l, c := range counts {
		scores[l] = float64(c) / float64(max)
	}
	return scores
}
