package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
	"github.com/aikawa-legal/saikengen/internal/core/ports/driving"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a creditor-list document",
	Long: `Render the creditor-list document for a debtor using the template
registered for the given court and procedure. The debtor's stored
creditor records fill the template's placeholder tokens.`,
	RunE: runRender,
}

// Flags for the render command.
var (
	renderCourt      string
	renderProcedure  string
	renderDebtor     string
	renderCaseNumber string
	renderOutput     string
)

func init() {
	renderCmd.Flags().StringVarP(&renderCourt, "court", "c", "", "Court name, e.g. 東京地方裁判所")
	renderCmd.Flags().StringVarP(&renderProcedure, "procedure", "p", "", "Procedure type (個人再生 or 自己破産)")
	renderCmd.Flags().StringVarP(&renderDebtor, "debtor", "d", "", "Debtor name")
	renderCmd.Flags().StringVar(&renderCaseNumber, "case-number", "", "Court case number")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (default 債権者一覧表_<debtor>.<ext>)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	if renderService == nil {
		return errors.New("render service not configured")
	}

	court := renderCourt
	procedure := renderProcedure
	if configStore != nil {
		if court == "" {
			court = configStore.GetString(driven.ConfigKeyDefaultCourt)
		}
		if procedure == "" {
			procedure = configStore.GetString(driven.ConfigKeyDefaultProcedure)
		}
	}
	if court == "" {
		return errors.New("court name is required (--court or default_court in config)")
	}
	if renderDebtor == "" {
		return errors.New("debtor name is required (--debtor)")
	}

	doc, err := renderService.Render(context.Background(), driving.RenderRequest{
		CourtName:     court,
		ProcedureType: procedure,
		CaseNumber:    renderCaseNumber,
		DebtorName:    renderDebtor,
	})
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	outPath := renderOutput
	if outPath == "" {
		outPath = fmt.Sprintf("債権者一覧表_%s.%s", strings.TrimSpace(renderDebtor), doc.Extension)
	}

	if err := os.WriteFile(outPath, doc.Content, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	cmd.Printf("Rendered %s document: %s\n", doc.FormatName, outPath)
	return nil
}
