// Command saikengen renders creditor-list documents for court filings.
package main

import (
	"fmt"
	"os"

	configfile "github.com/aikawa-legal/saikengen/internal/adapters/driven/config/file"
	"github.com/aikawa-legal/saikengen/internal/adapters/driven/creditorstore/sqlite"
	templatefile "github.com/aikawa-legal/saikengen/internal/adapters/driven/templatestore/file"
	"github.com/aikawa-legal/saikengen/internal/adapters/driving/cli"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/core/services"
	"github.com/aikawa-legal/saikengen/internal/renderers"
	"github.com/aikawa-legal/saikengen/internal/renderers/docx"
	"github.com/aikawa-legal/saikengen/internal/renderers/xlsx"
)

func main() {
	var creditorStore *sqlite.Store

	cli.SetInitializer(func(configDir string) error {
		configStore, err := configfile.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}

		templateStore, err := templatefile.NewStore(configStore.GetString(driven.ConfigKeyTemplatesDir))
		if err != nil {
			return fmt.Errorf("opening template store: %w", err)
		}

		creditorStore, err = sqlite.NewStore(configStore.GetString(driven.ConfigKeyDataDir))
		if err != nil {
			return fmt.Errorf("opening creditor store: %w", err)
		}

		registry := renderers.NewRegistry(xlsx.New(), docx.New())

		cli.SetServices(
			services.NewRenderService(templateStore, creditorStore, registry),
			services.NewTemplateService(templateStore, registry),
			services.NewCreditorService(creditorStore),
			configStore,
		)
		return nil
	})

	err := cli.Execute()

	if creditorStore != nil {
		creditorStore.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
