package driven

// TemplateInfo describes one registered template.
type TemplateInfo struct {
	// Key is the registry key, "{court}_{procedure}" or a bare court
	// name for entries registered before procedure types existed.
	Key string

	// FilePath is the stored template file.
	FilePath string

	// Extension is the file extension without the dot, e.g. "xlsx".
	Extension string

	// Description is the free-form registration note.
	Description string

	// CreatedDate is the registration date (YYYY-MM-DD).
	CreatedDate string

	// LastModified is the last update timestamp (YYYY-MM-DD HH:MM:SS).
	LastModified string
}

// TemplateStore resolves and manages stored template files.
// Implementations own the registry bookkeeping; the rendering core only
// ever asks for a resolved path.
type TemplateStore interface {
	// Resolve returns the file path for a registry key, falling back
	// from "{court}_{procedure}" to the bare court name for entries
	// registered under the old key format. Returns ErrTemplateNotFound
	// when neither key has a template.
	Resolve(key string) (string, error)

	// Save stores template file data under a key, replacing any
	// existing template for that key.
	Save(key, extension string, data []byte, description string) error

	// Delete removes a template and its registry entry.
	// Returns ErrTemplateNotFound when the key has no template.
	Delete(key string) error

	// List returns every registered template, sorted by key.
	List() ([]TemplateInfo, error)

	// Info returns the registry entry for a key. Returns
	// ErrTemplateNotFound when the key has no template.
	Info(key string) (*TemplateInfo, error)
}
