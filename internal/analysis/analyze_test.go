package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const invoiceText = "Invoice 123 was paid. The customer paid on time. Payment was received by the bank."

func TestAnalyzeInvoiceExample(t *testing.T) {
	res := Analyze(invoiceText, Config{SummarySentences: 2})

	require.Len(t, res.Summary, 2)
	// Selected sentences keep their original relative order.
	all := Tokenize(invoiceText)
	idx := make(map[string]int, len(all))
	for _, s := range all {
		idx[s.Text] = s.Index
	}
	require.Less(t, idx[res.Summary[0]], idx[res.Summary[1]])

	// "paid" occurs in two sentences and survives stemming unchanged.
	var paid *Keyword
	for i := range res.Keywords {
		if res.Keywords[i].Lemma == "paid" {
			paid = &res.Keywords[i]
		}
	}
	require.NotNil(t, paid, "expected keyword paid in %v", res.Keywords)
	require.Equal(t, 2, paid.Count)

	require.Equal(t, 3, res.Stats.SentenceCount)
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	res := Analyze("", Config{})
	require.Empty(t, res.Summary)
	require.Empty(t, res.Keywords)
	require.Zero(t, res.Stats.WordCount)
	require.Zero(t, res.Stats.SentenceCount)
	require.Zero(t, res.Stats.ParagraphCount)
}

func TestAnalyzeSingleSentenceShortSummary(t *testing.T) {
	res := Analyze("Only one sentence here.", Config{SummarySentences: 5})
	require.Len(t, res.Summary, 1)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := Analyze(invoiceText, Config{})
	b := Analyze(invoiceText, Config{})
	require.Equal(t, a, b)
}

func TestAnalyzeNormalizationBound(t *testing.T) {
	lemmas := make([]string, 0)
	for _, s := range Tokenize(invoiceText) {
		f := newFilter(nil, DefaultMinKeywordLength)
		for _, w := range s.Words {
			if lemma, ok := f.Keep(w); ok {
				lemmas = append(lemmas, lemma)
			}
		}
	}
	scores := NormalizeCounts(CountLemmas(lemmas))
	require.NotEmpty(t, scores)
	sawMax := false
	for _, v := range scores {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
		if v == 1.0 {
			sawMax = true
		}
	}
	require.True(t, sawMax, "the most frequent lemma must normalize to 1.0")
}

func TestAnalyzeMinLengthWidensKeywordSet(t *testing.T) {
	text := "An ox and an ax met. The ox paid the ax twice. Ox and ax shook on it."
	wide := Analyze(text, Config{MinKeywordLength: 1, KeywordCount: 100})
	narrow := Analyze(text, Config{MinKeywordLength: 3, KeywordCount: 100})
	require.GreaterOrEqual(t, len(wide.Keywords), len(narrow.Keywords))
}

func TestAnalyzeNegativeCountsClampToZero(t *testing.T) {
	res := Analyze(invoiceText, Config{SummarySentences: -1, KeywordCount: -1})
	require.Empty(t, res.Summary)
	require.Empty(t, res.Keywords)
}

func TestAnalyzeStopwordOverride(t *testing.T) {
	stop := map[string]struct{}{"invoice": {}}
	res := Analyze("Invoice invoice invoice. Ledger ledger.", Config{Stopwords: stop})
	require.Len(t, res.Keywords, 1)
	require.Equal(t, 2, res.Keywords[0].Count)
}
