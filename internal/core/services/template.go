package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driving"
	"github.com/aikawa-legal/saikengen/internal/logger"
	"github.com/aikawa-legal/saikengen/internal/renderers"
)

// Ensure TemplateService implements the interface.
var _ driving.TemplateService = (*TemplateService)(nil)

// TemplateService manages the template registry.
type TemplateService struct {
	store    driven.TemplateStore
	registry *renderers.Registry
}

// NewTemplateService creates a new template service.
func NewTemplateService(store driven.TemplateStore, registry *renderers.Registry) *TemplateService {
	return &TemplateService{
		store:    store,
		registry: registry,
	}
}

// Register stores a template file for a court/procedure pair. The file
// extension must belong to a registered renderer.
func (s *TemplateService) Register(courtName, procedureType, sourcePath, description string) error {
	courtName = strings.TrimSpace(courtName)
	if courtName == "" {
		return fmt.Errorf("%w: court name is required", domain.ErrInvalidInput)
	}
	procedureType = strings.TrimSpace(procedureType)
	if procedureType != "" && !domain.IsValidProcedure(procedureType) {
		return fmt.Errorf("%w: unknown procedure type %q", domain.ErrInvalidInput, procedureType)
	}

	if _, err := s.registry.ForPath(sourcePath); err != nil {
		return err
	}
	extension := strings.TrimPrefix(strings.ToLower(filepath.Ext(sourcePath)), ".")

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("reading template file: %w", err)
	}

	key := domain.TemplateKey(courtName, procedureType)
	if err := s.store.Save(key, extension, data, description); err != nil {
		return err
	}
	logger.Info("Registered template %q (%s, %d bytes)", key, extension, len(data))
	return nil
}

// List returns all registered templates.
func (s *TemplateService) List() ([]driven.TemplateInfo, error) {
	return s.store.List()
}

// Info returns the registry entry for a court/procedure pair. A miss on
// the composite key falls back to the bare court name, matching how
// Resolve treats entries registered before procedure types existed.
func (s *TemplateService) Info(courtName, procedureType string) (*driven.TemplateInfo, error) {
	courtName = strings.TrimSpace(courtName)
	if courtName == "" {
		return nil, fmt.Errorf("%w: court name is required", domain.ErrInvalidInput)
	}

	procedureType = strings.TrimSpace(procedureType)
	info, err := s.store.Info(domain.TemplateKey(courtName, procedureType))
	if errors.Is(err, domain.ErrTemplateNotFound) && procedureType != "" {
		return s.store.Info(courtName)
	}
	return info, err
}

// Delete removes the template for a court/procedure pair. Only the
// exact key is removed; bare-court-name entries stay untouched so a
// composite delete cannot take out another procedure's fallback.
func (s *TemplateService) Delete(courtName, procedureType string) error {
	courtName = strings.TrimSpace(courtName)
	if courtName == "" {
		return fmt.Errorf("%w: court name is required", domain.ErrInvalidInput)
	}

	key := domain.TemplateKey(courtName, strings.TrimSpace(procedureType))
	if err := s.store.Delete(key); err != nil {
		return err
	}
	logger.Info("Deleted template %q", key)
	return nil
}
