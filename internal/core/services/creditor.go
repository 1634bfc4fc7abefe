package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driving"
	"github.com/aikawa-legal/saikengen/internal/dataio"
	"github.com/aikawa-legal/saikengen/internal/logger"
)

// Ensure CreditorService implements the interface.
var _ driving.CreditorService = (*CreditorService)(nil)

// CreditorService manages imported creditor records.
type CreditorService struct {
	store driven.CreditorStore
	now   func() time.Time
}

// NewCreditorService creates a new creditor service.
func NewCreditorService(store driven.CreditorStore) *CreditorService {
	return &CreditorService{
		store: store,
		now:   time.Now,
	}
}

// ImportJSON parses a JSON object or array of creditor entries, assigns
// identifiers and registration dates, and stores the records grouped by
// debtor. Input order is preserved per debtor. Returns the number of
// records imported.
func (s *CreditorService) ImportJSON(ctx context.Context, data []byte) (int, error) {
	entries, err := dataio.ParseEntries(data)
	if err != nil {
		return 0, err
	}

	registrationDate := s.now().Format("2006-01-02")

	// Group by debtor, keeping first-seen debtor order and entry order
	// within each debtor.
	var debtors []string
	grouped := make(map[string][]domain.CreditorRecord)
	for _, e := range entries {
		record := e.Record
		record.ID = uuid.New().String()
		record.RegistrationDate = registrationDate

		if _, ok := grouped[e.DebtorName]; !ok {
			debtors = append(debtors, e.DebtorName)
		}
		grouped[e.DebtorName] = append(grouped[e.DebtorName], record)
	}

	for _, debtor := range debtors {
		if err := s.store.ImportRecords(ctx, debtor, grouped[debtor]); err != nil {
			return 0, fmt.Errorf("storing records for %q: %w", debtor, err)
		}
		logger.Debug("Imported %d record(s) for %s", len(grouped[debtor]), debtor)
	}

	return len(entries), nil
}

// ListByDebtor returns a debtor's records in import order.
func (s *CreditorService) ListByDebtor(ctx context.Context, debtorName string) ([]domain.CreditorRecord, error) {
	debtorName = strings.TrimSpace(debtorName)
	if debtorName == "" {
		return nil, fmt.Errorf("%w: debtor name is required", domain.ErrInvalidInput)
	}
	return s.store.ListByDebtor(ctx, debtorName)
}

// ListDebtors returns all debtor names with stored records.
func (s *CreditorService) ListDebtors(ctx context.Context) ([]string, error) {
	return s.store.ListDebtors(ctx)
}

// Delete removes all records for a debtor.
func (s *CreditorService) Delete(ctx context.Context, debtorName string) error {
	debtorName = strings.TrimSpace(debtorName)
	if debtorName == "" {
		return fmt.Errorf("%w: debtor name is required", domain.ErrInvalidInput)
	}
	if err := s.store.DeleteByDebtor(ctx, debtorName); err != nil {
		return err
	}
	logger.Info("Deleted records for %s", debtorName)
	return nil
}
