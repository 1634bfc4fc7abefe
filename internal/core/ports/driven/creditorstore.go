package driven

import (
	"context"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
)

// CreditorStore persists imported creditor records grouped by debtor.
// Listing preserves import order; that order is the canonical creditor
// ranking used throughout rendering.
type CreditorStore interface {
	// ImportRecords appends records for a debtor in the given order.
	ImportRecords(ctx context.Context, debtorName string, records []domain.CreditorRecord) error

	// ListByDebtor returns a debtor's records in import order.
	ListByDebtor(ctx context.Context, debtorName string) ([]domain.CreditorRecord, error)

	// ListDebtors returns all debtor names with stored records, sorted.
	ListDebtors(ctx context.Context) ([]string, error)

	// DeleteByDebtor removes all records for a debtor. Returns
	// ErrNotFound when the debtor has no records.
	DeleteByDebtor(ctx context.Context, debtorName string) error

	// Close releases store resources.
	Close() error
}
