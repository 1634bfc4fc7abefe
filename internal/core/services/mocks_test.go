package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

// --- Mock implementations ---

func domainTemplateNotFound(key string) error {
	return fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, key)
}

// mockTemplateStore implements driven.TemplateStore for testing.
// Templates are keyed in memory; Resolve mimics the bare-court-name
// fallback of the file-backed store.
type mockTemplateStore struct {
	paths map[string]string
	infos map[string]driven.TemplateInfo

	savedKey  string
	savedExt  string
	savedData []byte
	savedDesc string

	saveErr    error
	deleteErr  error
	deletedKey string
}

func newMockTemplateStore() *mockTemplateStore {
	return &mockTemplateStore{
		paths: make(map[string]string),
		infos: make(map[string]driven.TemplateInfo),
	}
}

func (m *mockTemplateStore) Resolve(key string) (string, error) {
	if path, ok := m.paths[key]; ok {
		return path, nil
	}
	if idx := strings.Index(key, "_"); idx > 0 {
		if path, ok := m.paths[key[:idx]]; ok {
			return path, nil
		}
	}
	return "", domainTemplateNotFound(key)
}

func (m *mockTemplateStore) Save(key, extension string, data []byte, description string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedKey = key
	m.savedExt = extension
	m.savedData = data
	m.savedDesc = description
	m.paths[key] = key + "." + extension
	return nil
}

func (m *mockTemplateStore) Delete(key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.paths[key]; !ok {
		return domainTemplateNotFound(key)
	}
	delete(m.paths, key)
	delete(m.infos, key)
	m.deletedKey = key
	return nil
}

func (m *mockTemplateStore) List() ([]driven.TemplateInfo, error) {
	infos := make([]driven.TemplateInfo, 0, len(m.infos))
	for _, info := range m.infos {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}

func (m *mockTemplateStore) Info(key string) (*driven.TemplateInfo, error) {
	info, ok := m.infos[key]
	if !ok {
		return nil, domainTemplateNotFound(key)
	}
	return &info, nil
}

// mockRenderer implements driven.Renderer for testing. Render applies
// the substitution to each configured text fragment and joins the
// results with newlines.
type mockRenderer struct {
	exts      []string
	mimeType  string
	name      string
	texts     []string
	renderErr error

	renderedPath string
}

func (m *mockRenderer) Extensions() []string { return m.exts }
func (m *mockRenderer) MIMEType() string     { return m.mimeType }
func (m *mockRenderer) FormatName() string   { return m.name }

func (m *mockRenderer) Render(_ context.Context, templatePath string, apply func(string) string) ([]byte, error) {
	if m.renderErr != nil {
		return nil, m.renderErr
	}
	m.renderedPath = templatePath

	out := make([]string, len(m.texts))
	for i, text := range m.texts {
		out[i] = apply(text)
	}
	return []byte(strings.Join(out, "\n")), nil
}
