package workflows

type BatchIngestInput struct {
	RunID                 string `json:"run_id"`
	InputDir              string `json:"input_dir"`
	MaxConcurrentChildren int    `json:"max_concurrent_children"`
	SummarySentences      int    `json:"summary_sentences,omitempty"`
	KeywordCount          int    `json:"keyword_count,omitempty"`
	MinKeywordLength      int    `json:"min_keyword_length,omitempty"`
}

type InvoiceProcessInput struct {
	Path             string `json:"path"`
	SummarySentences int    `json:"summary_sentences,omitempty"`
	KeywordCount     int    `json:"keyword_count,omitempty"`
	MinKeywordLength int    `json:"min_keyword_length,omitempty"`
}

type InvoiceStatus struct {
	DocumentID  string            `json:"document_id"`
	Path        string            `json:"path"`
	CurrentStep string            `json:"current_step"`
	Status      string            `json:"status"`
	FailReason  string            `json:"fail_reason,omitempty"`
	Steps       map[string]string `json:"steps"`
}

type BatchIngestProgress struct {
	RunID         string            `json:"run_id"`
	Total         int               `json:"total"`
	Done          int               `json:"done"`
	Failed        int               `json:"failed"`
	PerDocument   map[string]string `json:"per_document_status"`
	ChildWorkflow map[string]string `json:"child_workflow_ids,omitempty"`
}
