// Package dataio parses creditor data supplied as JSON at the import
// boundary. Input is a single entry object or an array of entries;
// values are cleaned into the typed record used everywhere else, so
// the core never sees missing keys or nulls.
package dataio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
)

// Entry is one parsed import row: the debtor it belongs to plus the
// creditor record itself.
type Entry struct {
	// DebtorName is the debtor this record belongs to.
	DebtorName string

	// Record is the cleaned creditor record. ID and RegistrationDate
	// are left empty for the importer to assign.
	Record domain.CreditorRecord
}

// flexString accepts JSON strings, numbers, and null, all read as a
// trimmed string. Amount fields in particular arrive both quoted and
// unquoted.
type flexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// jsonEntry mirrors the import JSON field names.
type jsonEntry struct {
	DebtorName             flexString `json:"debtor_name"`
	CompanyName            flexString `json:"company_name"`
	BranchName             flexString `json:"branch_name"`
	PostalCode             flexString `json:"postal_code"`
	Address                flexString `json:"address"`
	PhoneNumber            flexString `json:"phone_number"`
	FaxNumber              flexString `json:"fax_number"`
	ClaimName              flexString `json:"claim_name"`
	ClaimAmount            flexString `json:"claim_amount"`
	ContractDate           flexString `json:"contract_date"`
	FirstBorrowingDate     flexString `json:"first_borrowing_date"`
	LastBorrowingDate      flexString `json:"last_borrowing_date"`
	LastPaymentDate        flexString `json:"last_payment_date"`
	OriginalCreditor       flexString `json:"original_creditor"`
	SubstitutionOrTransfer flexString `json:"substitution_or_transfer"`
	TransferDate           flexString `json:"transfer_date"`
	Status                 flexString `json:"status"`
	Notes                  flexString `json:"notes"`
}

// ParseEntries reads a JSON object or array of objects into validated
// entries. Every entry must name its debtor; all other fields default
// to the empty string.
func ParseEntries(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty import data", domain.ErrInvalidInput)
	}

	var raw []jsonEntry
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("%w: parsing JSON array: %v", domain.ErrInvalidInput, err)
		}
	} else {
		var one jsonEntry
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, fmt.Errorf("%w: parsing JSON object: %v", domain.ErrInvalidInput, err)
		}
		raw = []jsonEntry{one}
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no entries in import data", domain.ErrInvalidInput)
	}

	entries := make([]Entry, 0, len(raw))
	for i, e := range raw {
		debtor := strings.TrimSpace(string(e.DebtorName))
		if debtor == "" {
			return nil, fmt.Errorf("%w: entry %d is missing debtor_name", domain.ErrInvalidInput, i+1)
		}

		entries = append(entries, Entry{
			DebtorName: debtor,
			Record: domain.CreditorRecord{
				CompanyName:            string(e.CompanyName),
				BranchName:             string(e.BranchName),
				PostalCode:             string(e.PostalCode),
				Address:                string(e.Address),
				PhoneNumber:            string(e.PhoneNumber),
				FaxNumber:              string(e.FaxNumber),
				ClaimName:              string(e.ClaimName),
				ClaimAmount:            string(e.ClaimAmount),
				ContractDate:           string(e.ContractDate),
				FirstBorrowingDate:     string(e.FirstBorrowingDate),
				LastBorrowingDate:      string(e.LastBorrowingDate),
				LastPaymentDate:        string(e.LastPaymentDate),
				OriginalCreditor:       string(e.OriginalCreditor),
				SubstitutionOrTransfer: string(e.SubstitutionOrTransfer),
				TransferDate:           string(e.TransferDate),
				Status:                 string(e.Status),
				Notes:                  string(e.Notes),
			},
		})
	}

	return entries, nil
}
