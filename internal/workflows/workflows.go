package workflows

import (
	"strings"
	"time"

	"invoiceflow/internal/activities"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	QueryGetInvoiceStatus = "GetInvoiceStatus"
	QueryGetProgress      = "GetProgress"
)

// BatchIngestWorkflow lists the PDFs in the inbox and fans out one
// InvoiceProcessWorkflow child per file, at most MaxConcurrentChildren at a
// time. A per-file failure is recorded in the progress, not fatal to the
// batch.
func BatchIngestWorkflow(ctx workflow.Context, input BatchIngestInput) (string, error) {
	progress := BatchIngestProgress{
		RunID:         input.RunID,
		PerDocument:   map[string]string{},
		ChildWorkflow: map[string]string{},
	}
	if err := workflow.SetQueryHandler(ctx, QueryGetProgress, func() (BatchIngestProgress, error) {
		return progress, nil
	}); err != nil {
		return "", err
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var listOut activities.ListPDFsOutput
	if err := workflow.ExecuteActivity(ctx, "ListPDFsActivity", activities.ListPDFsInput{InputDir: input.InputDir}).Get(ctx, &listOut); err != nil {
		return "", err
	}
	paths := listOut.Paths
	progress.Total = len(paths)
	maxChildren := input.MaxConcurrentChildren
	if maxChildren <= 0 {
		maxChildren = 3
	}

	for i := 0; i < len(paths); i += maxChildren {
		end := i + maxChildren
		if end > len(paths) {
			end = len(paths)
		}
		futures := make([]workflow.ChildWorkflowFuture, 0, end-i)
		childPaths := make([]string, 0, end-i)
		for _, path := range paths[i:end] {
			progress.PerDocument[path] = "processing"
			workflowID := "invoice-" + sanitizeID(input.RunID) + "-" + sanitizeID(filepathBase(path))
			cwo := workflow.ChildWorkflowOptions{WorkflowID: workflowID}
			childCtx := workflow.WithChildOptions(ctx, cwo)
			f := workflow.ExecuteChildWorkflow(childCtx, InvoiceProcessWorkflow, InvoiceProcessInput{
				Path:             path,
				SummarySentences: input.SummarySentences,
				KeywordCount:     input.KeywordCount,
				MinKeywordLength: input.MinKeywordLength,
			})
			futures = append(futures, f)
			childPaths = append(childPaths, path)
			progress.ChildWorkflow[path] = workflowID
		}

		for idx, f := range futures {
			var childStatus string
			err := f.Get(ctx, &childStatus)
			path := childPaths[idx]
			if err != nil {
				progress.Failed++
				progress.PerDocument[path] = "failed"
				continue
			}
			if childStatus == "failed" {
				progress.Failed++
			}
			progress.Done++
			progress.PerDocument[path] = childStatus
		}
	}

	_ = workflow.ExecuteActivity(ctx, "WriteBatchSummaryActivity", activities.WriteBatchSummaryInput{
		RunID: input.RunID,
		Summary: map[string]any{
			"run_id":              input.RunID,
			"total":               progress.Total,
			"done":                progress.Done,
			"failed":              progress.Failed,
			"per_document_status": progress.PerDocument,
			"generated_at":        workflow.Now(ctx),
		},
	}).Get(ctx, nil)

	return "completed", nil
}

// InvoiceProcessWorkflow runs one document end to end: identify, extract,
// analyze, persist, archive. Extraction and analysis results are computed
// before any persistence, so storage failures never change what was
// analyzed.
func InvoiceProcessWorkflow(ctx workflow.Context, input InvoiceProcessInput) (string, error) {
	status := InvoiceStatus{
		Path:        input.Path,
		CurrentStep: "init",
		Status:      "processing",
		Steps:       map[string]string{},
	}
	if err := workflow.SetQueryHandler(ctx, QueryGetInvoiceStatus, func() (InvoiceStatus, error) {
		return status, nil
	}); err != nil {
		return "", err
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2,
			MaximumInterval:    20 * time.Second,
			MaximumAttempts:    2,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)
	filename := filepathBase(input.Path)

	status.CurrentStep = "compute_document_id"
	status.Steps[status.CurrentStep] = "processing"
	var idOut activities.ComputeDocumentIDOutput
	if err := workflow.ExecuteActivity(ctx, "ComputeDocumentIDActivity", activities.ComputeDocumentIDInput{Path: input.Path}).Get(ctx, &idOut); err != nil {
		return "", err
	}
	status.DocumentID = idOut.DocumentID
	status.Steps[status.CurrentStep] = "done"

	_ = workflow.ExecuteActivity(ctx, "UpdateDocumentStatusActivity", activities.UpdateDocumentStatusInput{DocumentID: idOut.DocumentID, Filename: filename, Status: "processing"})

	status.CurrentStep = "extract_text"
	status.Steps[status.CurrentStep] = "processing"
	var textOut activities.ExtractTextOutput
	if err := workflow.ExecuteActivity(ctx, "ExtractTextActivity", activities.ExtractTextInput{Path: input.Path}).Get(ctx, &textOut); err != nil {
		if isNoTextError(err) {
			status.Status = "failed"
			status.FailReason = "no extractable text found (OCR not enabled)"
			status.Steps[status.CurrentStep] = "failed"
			_ = workflow.ExecuteActivity(ctx, "UpdateDocumentStatusActivity", activities.UpdateDocumentStatusInput{DocumentID: idOut.DocumentID, Filename: filename, Status: "failed", FailReason: status.FailReason}).Get(ctx, nil)
			return status.Status, nil
		}
		return "", err
	}
	status.Steps[status.CurrentStep] = "done"

	status.CurrentStep = "extract_line_items"
	status.Steps[status.CurrentStep] = "processing"
	var itemsOut activities.ExtractLineItemsOutput
	if err := workflow.ExecuteActivity(ctx, "ExtractLineItemsActivity", activities.ExtractLineItemsInput{DocumentID: idOut.DocumentID, Text: textOut.Text}).Get(ctx, &itemsOut); err != nil {
		return "", err
	}
	status.Steps[status.CurrentStep] = "done"

	status.CurrentStep = "analyze_text"
	status.Steps[status.CurrentStep] = "processing"
	var analyzeOut activities.AnalyzeTextOutput
	if err := workflow.ExecuteActivity(ctx, "AnalyzeTextActivity", activities.AnalyzeTextInput{
		Text:             textOut.Text,
		SummarySentences: input.SummarySentences,
		KeywordCount:     input.KeywordCount,
		MinKeywordLength: input.MinKeywordLength,
	}).Get(ctx, &analyzeOut); err != nil {
		return "", err
	}
	status.Steps[status.CurrentStep] = "done"

	status.CurrentStep = "persist_line_items"
	status.Steps[status.CurrentStep] = "processing"
	if err := workflow.ExecuteActivity(ctx, "UpsertLineItemsActivity", activities.UpsertLineItemsInput{DocumentID: idOut.DocumentID, Items: itemsOut.Items}).Get(ctx, nil); err != nil {
		return "", err
	}
	status.Steps[status.CurrentStep] = "done"

	status.CurrentStep = "persist_analysis"
	status.Steps[status.CurrentStep] = "processing"
	if err := workflow.ExecuteActivity(ctx, "UpsertAnalysisActivity", activities.UpsertAnalysisInput{DocumentID: idOut.DocumentID, Result: analyzeOut.Result}).Get(ctx, nil); err != nil {
		return "", err
	}
	status.Steps[status.CurrentStep] = "done"

	status.CurrentStep = "write_artifacts"
	status.Steps[status.CurrentStep] = "processing"
	if err := workflow.ExecuteActivity(ctx, "WriteDocumentArtifactsActivity", activities.WriteDocumentArtifactsInput{
		DocumentID: idOut.DocumentID,
		Filename:   filename,
		Text:       textOut.Text,
		Items:      itemsOut.Items,
		Result:     analyzeOut.Result,
	}).Get(ctx, nil); err != nil {
		return "", err
	}
	status.Steps[status.CurrentStep] = "done"

	status.CurrentStep = "mark_processed"
	status.Steps[status.CurrentStep] = "processing"
	if err := workflow.ExecuteActivity(ctx, "UpdateDocumentStatusActivity", activities.UpdateDocumentStatusInput{DocumentID: idOut.DocumentID, Filename: filename, Status: "processed"}).Get(ctx, nil); err != nil {
		return "", err
	}
	status.Steps[status.CurrentStep] = "done"
	status.CurrentStep = "done"
	status.Status = "processed"
	return status.Status, nil
}

func isNoTextError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "no extractable text")
}

func filepathBase(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) == 0 {
		return path
	}
	return parts[len(parts)-1]
}

func sanitizeID(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, ".", "-")
	s = strings.ReplaceAll(s, "/", "-")
	return s
}
