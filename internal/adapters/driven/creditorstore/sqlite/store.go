// Package sqlite implements driven.CreditorStore on a local SQLite
// database. Records keep their import order in an explicit position
// column; listing by debtor returns that order, which is the canonical
// creditor ranking used while rendering.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/aikawa-legal/saikengen/internal/adapters/driven/creditorstore/sqlite/migrations"
	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CreditorStore = (*Store)(nil)

// creditorColumns lists the record columns in insert/select order,
// after id, debtor_name, and position.
const creditorColumns = `company_name, branch_name, postal_code, address,
	phone_number, fax_number, claim_name, claim_amount, contract_date,
	first_borrowing_date, last_borrowing_date, last_payment_date,
	original_creditor, substitution_or_transfer, transfer_date,
	status, notes, registration_date`

// Store is a SQLite-backed creditor store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a creditor store at the specified data directory.
// If dataDir is empty, defaults to ~/.saikengen/data/creditors.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".saikengen", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "creditors.db")

	// WAL mode for better concurrency between CLI invocations.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies any pending embedded migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ImportRecords appends records for a debtor, preserving their order
// after any existing records.
func (s *Store) ImportRecords(ctx context.Context, debtorName string, records []domain.CreditorRecord) error {
	if debtorName == "" {
		return fmt.Errorf("%w: empty debtor name", domain.ErrInvalidInput)
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var nextPosition int
	row := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), -1) + 1 FROM creditors WHERE debtor_name = ?", debtorName)
	if err := row.Scan(&nextPosition); err != nil {
		return fmt.Errorf("getting next position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO creditors (id, debtor_name, position, `+creditorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.ID, debtorName, nextPosition+i,
			r.CompanyName, r.BranchName, r.PostalCode, r.Address,
			r.PhoneNumber, r.FaxNumber, r.ClaimName, r.ClaimAmount, r.ContractDate,
			r.FirstBorrowingDate, r.LastBorrowingDate, r.LastPaymentDate,
			r.OriginalCreditor, r.SubstitutionOrTransfer, r.TransferDate,
			r.Status, r.Notes, r.RegistrationDate,
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// ListByDebtor returns a debtor's records in import order.
func (s *Store) ListByDebtor(ctx context.Context, debtorName string) ([]domain.CreditorRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, `+creditorColumns+`
		FROM creditors
		WHERE debtor_name = ?
		ORDER BY position
	`, debtorName)
	if err != nil {
		return nil, fmt.Errorf("querying creditors: %w", err)
	}
	defer rows.Close()

	var records []domain.CreditorRecord
	for rows.Next() {
		var r domain.CreditorRecord
		err := rows.Scan(
			&r.ID,
			&r.CompanyName, &r.BranchName, &r.PostalCode, &r.Address,
			&r.PhoneNumber, &r.FaxNumber, &r.ClaimName, &r.ClaimAmount, &r.ContractDate,
			&r.FirstBorrowingDate, &r.LastBorrowingDate, &r.LastPaymentDate,
			&r.OriginalCreditor, &r.SubstitutionOrTransfer, &r.TransferDate,
			&r.Status, &r.Notes, &r.RegistrationDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ListDebtors returns all debtor names with stored records, sorted.
func (s *Store) ListDebtors(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT debtor_name FROM creditors ORDER BY debtor_name")
	if err != nil {
		return nil, fmt.Errorf("querying debtors: %w", err)
	}
	defer rows.Close()

	var debtors []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning debtor name: %w", err)
		}
		debtors = append(debtors, name)
	}
	return debtors, rows.Err()
}

// DeleteByDebtor removes all records for a debtor.
func (s *Store) DeleteByDebtor(ctx context.Context, debtorName string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM creditors WHERE debtor_name = ?", debtorName)
	if err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no records for debtor %q", domain.ErrNotFound, debtorName)
	}
	return nil
}
