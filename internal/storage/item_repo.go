package storage

import (
	"context"
	"fmt"

	"invoiceflow/internal/models"
)

type ItemRepo struct {
	db *DB
}

func NewItemRepo(db *DB) *ItemRepo {
	return &ItemRepo{db: db}
}

// ReplaceLineItems swaps the stored line items of one document for the
// freshly extracted set in a single transaction, so a re-run never leaves
// stale rows behind.
func (r *ItemRepo) ReplaceLineItems(ctx context.Context, documentID string, items []models.LineItem) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace line items: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE document_id=$1`, documentID); err != nil {
		return fmt.Errorf("delete line items: %w", err)
	}
	for _, it := range items {
		_, err := tx.Exec(ctx, `
INSERT INTO invoice_items (document_id, line_no, item_description, quantity, unit_price, total)
VALUES ($1, $2, $3, $4, $5, $6)`,
			documentID, it.LineNo, it.Description, it.Quantity, it.UnitPrice, it.Total)
		if err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit line items: %w", err)
	}
	return nil
}

func (r *ItemRepo) ListLineItems(ctx context.Context, documentID string) ([]models.LineItem, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT document_id, line_no, item_description, quantity, unit_price, total
FROM invoice_items
WHERE document_id=$1
ORDER BY line_no`, documentID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	out := make([]models.LineItem, 0)
	for rows.Next() {
		var it models.LineItem
		if err := rows.Scan(&it.DocumentID, &it.LineNo, &it.Description, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line items: %w", err)
	}
	return out, nil
}

// Overview aggregates the headline dashboard metrics across all documents.
func (r *ItemRepo) Overview(ctx context.Context) (models.InvoiceOverview, error) {
	var o models.InvoiceOverview
	err := r.db.Pool.QueryRow(ctx, `
SELECT COALESCE(SUM(total),0), COUNT(*), COUNT(DISTINCT document_id)
FROM invoice_items`).Scan(&o.TotalAmount, &o.ItemCount, &o.DocumentCount)
	if err != nil {
		return models.InvoiceOverview{}, fmt.Errorf("invoice overview: %w", err)
	}
	return o, nil
}
