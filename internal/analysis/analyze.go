// Package analysis implements the deterministic text-analysis core: it turns
// the raw text of one extracted invoice into an extractive summary, a ranked
// keyword set, and document statistics. Every stage is a pure function of its
// input; empty input yields empty output, never an error.
package analysis

// Config holds the caller-tunable knobs for one pipeline run. The zero value
// is usable: unset fields fall back to the defaults below.
type Config struct {
	// SummarySentences is the number of sentences selected into the summary.
	SummarySentences int
	// KeywordCount is the number of ranked keywords returned.
	KeywordCount int
	// MinKeywordLength is the minimum surface-token length (in runes) for a
	// token to become a keyword candidate.
	MinKeywordLength int
	// Stopwords overrides the built-in English stopword list when non-nil.
	Stopwords map[string]struct{}
}

const (
	DefaultSummarySentences = 3
	DefaultKeywordCount     = 10
	DefaultMinKeywordLength = 3
)

// withDefaults resolves unset or negative fields. Negative counts clamp to
// zero rather than erroring, so the pipeline stays total.
func (c Config) withDefaults() Config {
	if c.SummarySentences == 0 {
		c.SummarySentences = DefaultSummarySentences
	}
	if c.SummarySentences < 0 {
		c.SummarySentences = 0
	}
	if c.KeywordCount == 0 {
		c.KeywordCount = DefaultKeywordCount
	}
	if c.KeywordCount < 0 {
		c.KeywordCount = 0
	}
	if c.MinKeywordLength <= 0 {
		c.MinKeywordLength = DefaultMinKeywordLength
	}
	return c
}

// Result is the complete output of one run over one document.
type Result struct {
	Summary  []string  `json:"summary"`
	Keywords []Keyword `json:"keywords"`
	Stats    Stats     `json:"stats"`
}

// Analyze runs the full pipeline over text: tokenize, filter, count, score,
// select, aggregate. Two calls with identical input and config produce
// identical results.
func Analyze(text string, cfg Config) Result {
	cfg = cfg.withDefaults()
	f := newFilter(cfg.Stopwords, cfg.MinKeywordLength)

	sentences := Tokenize(text)
	lemmas := make([]string, 0)
	perSentence := make([][]string, len(sentences))
	for i, s := range sentences {
		for _, w := range s.Words {
			lemma, ok := f.Keep(w)
			if !ok {
				continue
			}
			lemmas = append(lemmas, lemma)
			perSentence[i] = append(perSentence[i], lemma)
		}
	}

	counts := CountLemmas(lemmas)
	scores := NormalizeCounts(counts)

	return Result{
		Summary:  SelectSummary(sentences, perSentence, scores, cfg.SummarySentences),
		Keywords: RankKeywords(counts, cfg.KeywordCount),
		Stats:    ComputeStats(text, sentences),
	}
}
