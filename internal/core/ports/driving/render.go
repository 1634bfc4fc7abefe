package driving

import (
	"context"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
)

// RenderRequest carries everything one render call needs.
type RenderRequest struct {
	// CourtName selects the template and, with ProcedureType, the
	// slot-allocation rule.
	CourtName string

	// ProcedureType is the procedure; may be empty for courts with a
	// single registered template.
	ProcedureType string

	// CaseNumber is the optional court case number.
	CaseNumber string

	// DebtorName is the debtor whose creditor list is rendered.
	DebtorName string

	// Records optionally supplies the creditor sequence inline. When
	// nil, the service loads the debtor's stored records.
	Records []domain.CreditorRecord
}

// RenderService renders creditor-list documents from registered
// templates.
type RenderService interface {
	// Render resolves the template for the request's court/procedure,
	// substitutes all placeholder tokens, and returns the document.
	Render(ctx context.Context, req RenderRequest) (*domain.RenderedDocument, error)
}
