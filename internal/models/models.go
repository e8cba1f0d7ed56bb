package models

import (
	"time"

	"invoiceflow/internal/analysis"
)

type Document struct {
	DocumentID string    `json:"document_id"`
	Filename   string    `json:"filename"`
	Status     string    `json:"status"`
	FailReason string    `json:"fail_reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LineItem is one row of an extracted invoice table. Quantity and UnitPrice
// are zero when the source table did not carry those columns.
type LineItem struct {
	DocumentID  string  `json:"document_id"`
	LineNo      int     `json:"line_no"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity,omitempty"`
	UnitPrice   float64 `json:"unit_price,omitempty"`
	Total       float64 `json:"total"`
}

// Analysis is the persisted output of one text-analysis run.
type Analysis struct {
	DocumentID string             `json:"document_id"`
	Summary    []string           `json:"summary"`
	Keywords   []analysis.Keyword `json:"keywords"`
	Stats      analysis.Stats     `json:"stats"`
	CreatedAt  time.Time          `json:"created_at"`
}

// InvoiceOverview backs the dashboard headline metrics.
type InvoiceOverview struct {
	TotalAmount   float64 `json:"total_amount"`
	ItemCount     int     `json:"item_count"`
	DocumentCount int     `json:"document_count"`
}
