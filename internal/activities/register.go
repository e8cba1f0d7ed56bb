package activities

import "go.temporal.io/sdk/worker"

func Register(w worker.Worker, a *Activities) {
	w.RegisterActivity(a.ListPDFsActivity)
	w.RegisterActivity(a.ComputeDocumentIDActivity)
	w.RegisterActivity(a.UpdateDocumentStatusActivity)
	w.RegisterActivity(a.ExtractTextActivity)
	w.RegisterActivity(a.ExtractLineItemsActivity)
	w.RegisterActivity(a.AnalyzeTextActivity)
	w.RegisterActivity(a.UpsertLineItemsActivity)
	w.RegisterActivity(a.UpsertAnalysisActivity)
	w.RegisterActivity(a.WriteDocumentArtifactsActivity)
	w.RegisterActivity(a.WriteBatchSummaryActivity)
}
