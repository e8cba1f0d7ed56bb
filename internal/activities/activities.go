package activities

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"invoiceflow/internal/analysis"
	"invoiceflow/internal/config"
	"invoiceflow/internal/extract"
	"invoiceflow/internal/models"
	"invoiceflow/internal/storage"
	"invoiceflow/internal/util"
)

type Activities struct {
	cfg          config.Config
	documentRepo *storage.DocumentRepo
	itemRepo     *storage.ItemRepo
	analysisRepo *storage.AnalysisRepo
	texts        extract.TextExtractor
	tables       extract.TableExtractor
}

func New(cfg config.Config, db *storage.DB) *Activities {
	return &Activities{
		cfg:          cfg,
		documentRepo: storage.NewDocumentRepo(db),
		itemRepo:     storage.NewItemRepo(db),
		analysisRepo: storage.NewAnalysisRepo(db),
		texts:        extract.PDFTextExtractor{},
		tables:       extract.LineTableExtractor{},
	}
}

func (a *Activities) ListPDFsActivity(ctx context.Context, in ListPDFsInput) (ListPDFsOutput, error) {
	_ = ctx
	entries, err := os.ReadDir(in.InputDir)
	if err != nil {
		return ListPDFsOutput{}, fmt.Errorf("read input dir: %w", err)
	}
	paths := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			paths = append(paths, filepath.Join(in.InputDir, e.Name()))
		}
	}
	sort.Strings(paths)
	return ListPDFsOutput{Paths: paths}, nil
}

func (a *Activities) ComputeDocumentIDActivity(ctx context.Context, in ComputeDocumentIDInput) (ComputeDocumentIDOutput, error) {
	_ = ctx
	f, err := os.Open(in.Path)
	if err != nil {
		return ComputeDocumentIDOutput{}, fmt.Errorf("open file for hash: %w", err)
	}
	defer f.Close()
	id, err := util.SHA256HexFromReader(f)
	if err != nil {
		return ComputeDocumentIDOutput{}, fmt.Errorf("hash file: %w", err)
	}
	return ComputeDocumentIDOutput{DocumentID: id}, nil
}

func (a *Activities) UpdateDocumentStatusActivity(ctx context.Context, in UpdateDocumentStatusInput) error {
	if in.Filename != "" {
		return a.documentRepo.UpsertDocument(ctx, models.Document{
			DocumentID: in.DocumentID,
			Filename:   in.Filename,
			Status:     in.Status,
			FailReason: in.FailReason,
		})
	}
	return a.documentRepo.UpdateDocumentStatus(ctx, in.DocumentID, in.Status, in.FailReason)
}

func (a *Activities) ExtractTextActivity(ctx context.Context, in ExtractTextInput) (ExtractTextOutput, error) {
	_ = ctx
	text, err := a.texts.ExtractText(in.Path)
	if err != nil {
		return ExtractTextOutput{}, err
	}
	return ExtractTextOutput{Text: text}, nil
}

func (a *Activities) ExtractLineItemsActivity(ctx context.Context, in ExtractLineItemsInput) (ExtractLineItemsOutput, error) {
	_ = ctx
	items := a.tables.ExtractLineItems(in.Text)
	for i := range items {
		items[i].DocumentID = in.DocumentID
	}
	return ExtractLineItemsOutput{Items: items}, nil
}

// AnalyzeTextActivity runs the pure analysis core. The optional word cap from
// config is applied here, at the boundary, so the core itself stays total
// and untruncated.
func (a *Activities) AnalyzeTextActivity(ctx context.Context, in AnalyzeTextInput) (AnalyzeTextOutput, error) {
	_ = ctx
	text := util.TruncateWords(in.Text, a.cfg.AnalysisMaxWords)
	cfg := analysis.Config{
		SummarySentences: in.SummarySentences,
		KeywordCount:     in.KeywordCount,
		MinKeywordLength: in.MinKeywordLength,
	}
	if cfg.SummarySentences == 0 {
		cfg.SummarySentences = a.cfg.SummarySentences
	}
	if cfg.KeywordCount == 0 {
		cfg.KeywordCount = a.cfg.KeywordCount
	}
	if cfg.MinKeywordLength == 0 {
		cfg.MinKeywordLength = a.cfg.MinKeywordLength
	}
	return AnalyzeTextOutput{Result: analysis.Analyze(text, cfg)}, nil
}

func (a *Activities) UpsertLineItemsActivity(ctx context.Context, in UpsertLineItemsInput) error {
	return a.itemRepo.ReplaceLineItems(ctx, in.DocumentID, in.Items)
}

func (a *Activities) UpsertAnalysisActivity(ctx context.Context, in UpsertAnalysisInput) error {
	return a.analysisRepo.UpsertAnalysis(ctx, in.DocumentID, in.Result)
}

func (a *Activities) WriteDocumentArtifactsActivity(ctx context.Context, in WriteDocumentArtifactsInput) error {
	_ = ctx
	dir := filepath.Join(a.cfg.DataOutRoot, "documents", in.DocumentID)
	if err := util.WriteTextAtomic(filepath.Join(dir, "text.txt"), in.Text); err != nil {
		return err
	}
	rows := make([]any, 0, len(in.Items))
	for _, it := range in.Items {
		rows = append(rows, it)
	}
	if err := util.WriteJSONLinesAtomic(filepath.Join(dir, "items.jsonl"), rows); err != nil {
		return err
	}
	return util.WriteJSONAtomic(filepath.Join(dir, "analysis.json"), map[string]any{
		"document_id": in.DocumentID,
		"filename":    in.Filename,
		"summary":     in.Result.Summary,
		"keywords":    in.Result.Keywords,
		"stats":       in.Result.Stats,
	})
}

func (a *Activities) WriteBatchSummaryActivity(ctx context.Context, in WriteBatchSummaryInput) error {
	_ = ctx
	path := filepath.Join(a.cfg.DataOutRoot, "runs", in.RunID, "batch_summary.json")
	return util.WriteJSONAtomic(path, in.Summary)
}
