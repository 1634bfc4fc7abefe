// Package cli implements the cobra command tree. Commands call into
// the driving port services; wiring happens in main via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driving"
	"github.com/aikawa-legal/saikengen/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	renderService   driving.RenderService
	templateService driving.TemplateService
	creditorService driving.CreditorService
	configStore     driven.ConfigStore
)

// initServices is called after flag parsing so wiring can honour
// --config-dir. Set by main; nil in tests.
var initServices func(configDir string) error

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "saikengen",
	Short: "Court creditor-list document generator",
	Long: `saikengen renders creditor-list documents (債権者一覧表) for court
filings from registered Excel and Word templates.

Import creditor records as JSON, register a template per court and
procedure, then render the filled document for a debtor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		if initServices != nil {
			return initServices(flagConfigDir)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Configuration directory (default ~/.saikengen)")
}

// SetServices injects the service implementations used by commands.
func SetServices(
	render driving.RenderService,
	template driving.TemplateService,
	creditor driving.CreditorService,
	config driven.ConfigStore,
) {
	renderService = render
	templateService = template
	creditorService = creditor
	configStore = config
}

// SetInitializer registers the wiring function run after flag parsing.
func SetInitializer(fn func(configDir string) error) {
	initServices = fn
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
