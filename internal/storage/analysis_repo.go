package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"invoiceflow/internal/analysis"
	"invoiceflow/internal/models"
)

type AnalysisRepo struct {
	db *DB
}

func NewAnalysisRepo(db *DB) *AnalysisRepo {
	return &AnalysisRepo{db: db}
}

// UpsertAnalysis stores one analysis row per document. Summary, keywords and
// stats go into jsonb columns; a re-run overwrites the previous result.
func (r *AnalysisRepo) UpsertAnalysis(ctx context.Context, documentID string, res analysis.Result) error {
	summaryJSON, _ := json.Marshal(res.Summary)
	keywordJSON, _ := json.Marshal(res.Keywords)
	statsJSON, _ := json.Marshal(res.Stats)
	_, err := r.db.Pool.Exec(ctx, `
INSERT INTO document_analysis (document_id, summary, keywords, stats)
VALUES ($1, $2::jsonb, $3::jsonb, $4::jsonb)
ON CONFLICT (document_id)
DO UPDATE SET
  summary = EXCLUDED.summary,
  keywords = EXCLUDED.keywords,
  stats = EXCLUDED.stats,
  created_at = NOW()`,
		documentID, string(summaryJSON), string(keywordJSON), string(statsJSON))
	if err != nil {
		return fmt.Errorf("upsert analysis: %w", err)
	}
	return nil
}

func (r *AnalysisRepo) GetAnalysis(ctx context.Context, documentID string) (models.Analysis, error) {
	var a models.Analysis
	var summaryJSON, keywordJSON, statsJSON []byte
	err := r.db.Pool.QueryRow(ctx, `
SELECT document_id, summary, keywords, stats, created_at
FROM document_analysis
WHERE document_id=$1`, documentID).
		Scan(&a.DocumentID, &summaryJSON, &keywordJSON, &statsJSON, &a.CreatedAt)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("get analysis: %w", err)
	}
	if err := json.Unmarshal(summaryJSON, &a.Summary); err != nil {
		return models.Analysis{}, fmt.Errorf("decode summary: %w", err)
	}
	if err := json.Unmarshal(keywordJSON, &a.Keywords); err != nil {
		return models.Analysis{}, fmt.Errorf("decode keywords: %w", err)
	}
	if err := json.Unmarshal(statsJSON, &a.Stats); err != nil {
		return models.Analysis{}, fmt.Errorf("decode stats: %w", err)
	}
	return a, nil
}
