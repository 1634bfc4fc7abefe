// Package file implements driven.TemplateStore on the local filesystem.
// Template files live in per-key directories under a base directory and
// a JSON registry file indexes them. The registry follows last-writer-
// wins semantics; each CLI invocation re-reads it from disk.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TemplateStore = (*Store)(nil)

// templateFileName is the fixed base name for stored templates,
// matching the document they produce.
const templateFileName = "債権者一覧表"

// registryFileName indexes the stored templates.
const registryFileName = "template_registry.json"

// registryEntry is the on-disk registry record for one template.
type registryEntry struct {
	FilePath     string `json:"file_path"`
	Extension    string `json:"extension"`
	Description  string `json:"description"`
	CreatedDate  string `json:"created_date"`
	LastModified string `json:"last_modified"`
}

// Store is a file-based template store.
type Store struct {
	mu       sync.RWMutex
	basePath string
	now      func() time.Time
}

// NewStore creates a template store rooted at baseDir. If baseDir is
// empty, defaults to ~/.saikengen/templates.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".saikengen", "templates")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("creating templates directory: %w", err)
	}

	s := &Store{
		basePath: baseDir,
		now:      time.Now,
	}

	// Initialise an empty registry on first use.
	if _, err := os.Stat(s.registryPath()); os.IsNotExist(err) {
		if err := s.writeRegistry(map[string]registryEntry{}); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) registryPath() string {
	return filepath.Join(s.basePath, registryFileName)
}

// readRegistry loads the registry file. A missing or corrupt registry
// reads as empty rather than failing resolution outright.
func (s *Store) readRegistry() map[string]registryEntry {
	data, err := os.ReadFile(s.registryPath())
	if err != nil {
		return map[string]registryEntry{}
	}

	registry := map[string]registryEntry{}
	if err := json.Unmarshal(data, &registry); err != nil {
		logger.Warn("corrupt template registry, treating as empty: %v", err)
		return map[string]registryEntry{}
	}
	return registry
}

func (s *Store) writeRegistry(registry map[string]registryEntry) error {
	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	if err := os.WriteFile(s.registryPath(), data, 0600); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}

// Resolve returns the template file path for a key. A composite
// "{court}_{procedure}" key that has no entry falls back to the bare
// court name, covering registrations made before procedure types.
func (s *Store) Resolve(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registry := s.readRegistry()

	for _, candidate := range resolutionOrder(key) {
		entry, ok := registry[candidate]
		if !ok {
			continue
		}
		if _, err := os.Stat(entry.FilePath); err != nil {
			logger.Warn("registry entry %q points at missing file %s", candidate, entry.FilePath)
			continue
		}
		logger.Debug("resolved template %q -> %s", candidate, entry.FilePath)
		return entry.FilePath, nil
	}

	return "", fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
}

// resolutionOrder lists the registry keys tried for a lookup key.
func resolutionOrder(key string) []string {
	if i := strings.Index(key, "_"); i > 0 {
		return []string{key, key[:i]}
	}
	return []string{key}
}

// Save stores template data under a key, replacing any previous
// template for that key.
func (s *Store) Save(key, extension string, data []byte, description string) error {
	if key == "" {
		return fmt.Errorf("%w: empty template key", domain.ErrInvalidInput)
	}
	extension = strings.TrimPrefix(strings.ToLower(extension), ".")
	if extension == "" {
		return fmt.Errorf("%w: empty template extension", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.basePath, key)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating template directory: %w", err)
	}

	registry := s.readRegistry()

	// A re-registration in a different format leaves the old file behind
	// otherwise.
	if previous, ok := registry[key]; ok && previous.FilePath != "" {
		if err := os.Remove(previous.FilePath); err != nil && !os.IsNotExist(err) {
			logger.Warn("removing replaced template %s: %v", previous.FilePath, err)
		}
	}

	path := filepath.Join(dir, templateFileName+"."+extension)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing template file: %w", err)
	}

	now := s.now()
	entry := registryEntry{
		FilePath:     path,
		Extension:    extension,
		Description:  description,
		CreatedDate:  now.Format("2006-01-02"),
		LastModified: now.Format("2006-01-02 15:04:05"),
	}
	if previous, ok := registry[key]; ok && previous.CreatedDate != "" {
		entry.CreatedDate = previous.CreatedDate
	}
	registry[key] = entry

	return s.writeRegistry(registry)
}

// Delete removes a template file and its registry entry.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry := s.readRegistry()
	entry, ok := registry[key]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
	}

	if err := os.Remove(entry.FilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing template file: %w", err)
	}

	delete(registry, key)
	return s.writeRegistry(registry)
}

// List returns every registered template, sorted by key.
func (s *Store) List() ([]driven.TemplateInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registry := s.readRegistry()

	infos := make([]driven.TemplateInfo, 0, len(registry))
	for key, entry := range registry {
		infos = append(infos, toInfo(key, entry))
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Key < infos[j].Key
	})
	return infos, nil
}

// Info returns the registry entry for a key, honouring the same
// fallback as Resolve.
func (s *Store) Info(key string) (*driven.TemplateInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registry := s.readRegistry()

	for _, candidate := range resolutionOrder(key) {
		if entry, ok := registry[candidate]; ok {
			info := toInfo(candidate, entry)
			return &info, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, key)
}

func toInfo(key string, entry registryEntry) driven.TemplateInfo {
	return driven.TemplateInfo{
		Key:          key,
		FilePath:     entry.FilePath,
		Extension:    entry.Extension,
		Description:  entry.Description,
		CreatedDate:  entry.CreatedDate,
		LastModified: entry.LastModified,
	}
}
