package driving

import (
	"context"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
)

// CreditorService manages imported creditor records.
type CreditorService interface {
	// ImportJSON parses a JSON object or array of creditor entries,
	// cleans and validates them, and stores them for their debtor.
	// Returns the number of records imported.
	ImportJSON(ctx context.Context, data []byte) (int, error)

	// ListByDebtor returns a debtor's records in import order.
	ListByDebtor(ctx context.Context, debtorName string) ([]domain.CreditorRecord, error)

	// ListDebtors returns all debtor names with stored records.
	ListDebtors(ctx context.Context) ([]string, error)

	// Delete removes all records for a debtor.
	Delete(ctx context.Context, debtorName string) error
}
