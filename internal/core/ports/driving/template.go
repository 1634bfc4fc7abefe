package driving

import (
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

// TemplateService manages the template registry.
type TemplateService interface {
	// Register stores a template file for a court/procedure pair.
	Register(courtName, procedureType, sourcePath, description string) error

	// List returns all registered templates.
	List() ([]driven.TemplateInfo, error)

	// Info returns the registry entry for a court/procedure pair,
	// honouring the bare-court-name fallback.
	Info(courtName, procedureType string) (*driven.TemplateInfo, error)

	// Delete removes the template for a court/procedure pair.
	Delete(courtName, procedureType string) error
}
