package driven

// Well-known configuration keys.
const (
	// ConfigKeyTemplatesDir overrides the template storage directory.
	ConfigKeyTemplatesDir = "templates_dir"

	// ConfigKeyDataDir overrides the creditor database directory.
	ConfigKeyDataDir = "data_dir"

	// ConfigKeyDefaultCourt is the court used when --court is omitted.
	ConfigKeyDefaultCourt = "default_court"

	// ConfigKeyDefaultProcedure is the procedure used when --procedure
	// is omitted.
	ConfigKeyDefaultProcedure = "default_procedure"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
