// Package memory implements driven.CreditorStore in memory.
// Used by tests and anywhere persistence is not needed.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CreditorStore = (*Store)(nil)

// Store is an in-memory creditor store.
type Store struct {
	mu      sync.RWMutex
	records map[string][]domain.CreditorRecord
}

// NewStore creates an empty in-memory creditor store.
func NewStore() *Store {
	return &Store{
		records: make(map[string][]domain.CreditorRecord),
	}
}

// ImportRecords appends records for a debtor in the given order.
func (s *Store) ImportRecords(_ context.Context, debtorName string, records []domain.CreditorRecord) error {
	if debtorName == "" {
		return fmt.Errorf("%w: empty debtor name", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[debtorName] = append(s.records[debtorName], records...)
	return nil
}

// ListByDebtor returns a debtor's records in import order.
func (s *Store) ListByDebtor(_ context.Context, debtorName string) ([]domain.CreditorRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.records[debtorName]
	out := make([]domain.CreditorRecord, len(records))
	copy(out, records)
	return out, nil
}

// ListDebtors returns all debtor names with stored records, sorted.
func (s *Store) ListDebtors(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	debtors := make([]string, 0, len(s.records))
	for name := range s.records {
		debtors = append(debtors, name)
	}
	sort.Strings(debtors)
	return debtors, nil
}

// DeleteByDebtor removes all records for a debtor.
func (s *Store) DeleteByDebtor(_ context.Context, debtorName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[debtorName]; !ok {
		return fmt.Errorf("%w: no records for debtor %q", domain.ErrNotFound, debtorName)
	}
	delete(s.records, debtorName)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
