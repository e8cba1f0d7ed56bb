package activities

import (
	"invoiceflow/internal/analysis"
	"invoiceflow/internal/models"
)

type ListPDFsInput struct {
	InputDir string `json:"input_dir"`
}

type ListPDFsOutput struct {
	Paths []string `json:"paths"`
}

type ComputeDocumentIDInput struct {
	Path string `json:"path"`
}

type ComputeDocumentIDOutput struct {
	DocumentID string `json:"document_id"`
}

type UpdateDocumentStatusInput struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Status     string `json:"status"`
	FailReason string `json:"fail_reason,omitempty"`
}

type ExtractTextInput struct {
	Path string `json:"path"`
}

type ExtractTextOutput struct {
	Text string `json:"text"`
}

type ExtractLineItemsInput struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
}

type ExtractLineItemsOutput struct {
	Items []models.LineItem `json:"items"`
}

type AnalyzeTextInput struct {
	Text             string `json:"text"`
	SummarySentences int    `json:"summary_sentences,omitempty"`
	KeywordCount     int    `json:"keyword_count,omitempty"`
	MinKeywordLength int    `json:"min_keyword_length,omitempty"`
}

type AnalyzeTextOutput struct {
	Result analysis.Result `json:"result"`
}

type UpsertLineItemsInput struct {
	DocumentID string            `json:"document_id"`
	Items      []models.LineItem `json:"items"`
}

type UpsertAnalysisInput struct {
	DocumentID string          `json:"document_id"`
	Result     analysis.Result `json:"result"`
}

type WriteDocumentArtifactsInput struct {
	DocumentID string            `json:"document_id"`
	Filename   string            `json:"filename"`
	Text       string            `json:"text"`
	Items      []models.LineItem `json:"items"`
	Result     analysis.Result   `json:"result"`
}

type WriteBatchSummaryInput struct {
	RunID   string         `json:"run_id"`
	Summary map[string]any `json:"summary"`
}
