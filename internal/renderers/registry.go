package renderers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

// Registry selects a renderer by template file extension.
type Registry struct {
	byExt map[string]driven.Renderer
}

// NewRegistry creates a registry over the given renderers. A later
// renderer claiming an already-registered extension replaces the
// earlier one.
func NewRegistry(renderers ...driven.Renderer) *Registry {
	byExt := make(map[string]driven.Renderer)
	for _, r := range renderers {
		for _, ext := range r.Extensions() {
			byExt[strings.ToLower(ext)] = r
		}
	}
	return &Registry{byExt: byExt}
}

// ForPath returns the renderer for a template path's extension.
// Returns ErrUnsupportedFormat for unknown extensions.
func (r *Registry) ForPath(path string) (driven.Renderer, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	renderer, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	return renderer, nil
}

// Extensions returns all registered extensions, unordered.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}
