package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driving"
	"github.com/aikawa-legal/saikengen/internal/logger"
	"github.com/aikawa-legal/saikengen/internal/renderers"
	"github.com/aikawa-legal/saikengen/internal/substitute"
)

// Ensure RenderService implements the interface.
var _ driving.RenderService = (*RenderService)(nil)

// RenderService renders creditor-list documents from registered
// templates.
type RenderService struct {
	templates driven.TemplateStore
	creditors driven.CreditorStore
	renderers *renderers.Registry
	subOpts   []substitute.Option
}

// NewRenderService creates a new render service.
func NewRenderService(
	templates driven.TemplateStore,
	creditors driven.CreditorStore,
	registry *renderers.Registry,
) *RenderService {
	return &RenderService{
		templates: templates,
		creditors: creditors,
		renderers: registry,
	}
}

// Render resolves the template for the request's court/procedure,
// substitutes all placeholder tokens, and returns the document.
func (s *RenderService) Render(ctx context.Context, req driving.RenderRequest) (*domain.RenderedDocument, error) {
	courtName := strings.TrimSpace(req.CourtName)
	if courtName == "" {
		return nil, fmt.Errorf("%w: court name is required", domain.ErrInvalidInput)
	}

	procedureType := strings.TrimSpace(req.ProcedureType)
	if procedureType != "" && !domain.IsValidProcedure(procedureType) {
		return nil, fmt.Errorf("%w: unknown procedure type %q", domain.ErrInvalidInput, procedureType)
	}

	debtorName := strings.TrimSpace(req.DebtorName)

	records := req.Records
	if records == nil {
		if debtorName == "" {
			return nil, fmt.Errorf("%w: debtor name is required", domain.ErrInvalidInput)
		}
		stored, err := s.creditors.ListByDebtor(ctx, debtorName)
		if err != nil {
			return nil, fmt.Errorf("loading creditor records: %w", err)
		}
		records = stored
	}
	logger.Debug("Rendering for %s / %s with %d creditor(s)", courtName, procedureType, len(records))

	key := domain.TemplateKey(courtName, procedureType)
	templatePath, err := s.templates.Resolve(key)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved template: %s", templatePath)

	renderer, err := s.renderers.ForPath(templatePath)
	if err != nil {
		return nil, err
	}

	sub, err := substitute.New(records, domain.RenderContext{
		CourtName:     courtName,
		ProcedureType: procedureType,
		CaseNumber:    req.CaseNumber,
		DebtorName:    debtorName,
	}, s.subOpts...)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(ctx, templatePath, sub.Apply)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	return &domain.RenderedDocument{
		Content:    content,
		MIMEType:   renderer.MIMEType(),
		Extension:  strings.TrimPrefix(strings.ToLower(filepath.Ext(templatePath)), "."),
		FormatName: renderer.FormatName(),
	}, nil
}
