package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage document templates",
	Long:  `Register, inspect, and remove the templates used for rendering.`,
}

var templateRegisterCmd = &cobra.Command{
	Use:   "register [file]",
	Short: "Register a template file for a court",
	Long: `Store a template file for a court/procedure pair, replacing any
existing template for that pair. Excel (.xlsx) and Word (.docx)
templates are supported.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateRegister,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered templates",
	RunE:  runTemplateList,
}

var templateInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a template's registry entry",
	RunE:  runTemplateInfo,
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a registered template",
	RunE:  runTemplateDelete,
}

// Flags shared by the template subcommands.
var (
	templateCourt       string
	templateProcedure   string
	templateDescription string
)

func init() {
	for _, c := range []*cobra.Command{templateRegisterCmd, templateInfoCmd, templateDeleteCmd} {
		c.Flags().StringVarP(&templateCourt, "court", "c", "", "Court name")
		c.Flags().StringVarP(&templateProcedure, "procedure", "p", "", "Procedure type")
	}
	templateRegisterCmd.Flags().StringVar(&templateDescription, "description", "", "Registration note")

	templateCmd.AddCommand(templateRegisterCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateInfoCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateRegister(cmd *cobra.Command, args []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}
	if templateCourt == "" {
		return errors.New("court name is required (--court)")
	}

	if err := templateService.Register(templateCourt, templateProcedure, args[0], templateDescription); err != nil {
		return fmt.Errorf("failed to register template: %w", err)
	}

	cmd.Printf("Registered template for %s", templateCourt)
	if templateProcedure != "" {
		cmd.Printf(" (%s)", templateProcedure)
	}
	cmd.Println()
	return nil
}

func runTemplateList(cmd *cobra.Command, _ []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}

	infos, err := templateService.List()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	if len(infos) == 0 {
		cmd.Println("No templates registered")
		return nil
	}

	cmd.Println("Registered templates:")
	cmd.Println()
	for _, info := range infos {
		cmd.Printf("  %s\n", info.Key)
		cmd.Printf("    Format:     %s\n", info.Extension)
		if info.Description != "" {
			cmd.Printf("    Note:       %s\n", info.Description)
		}
		cmd.Printf("    Registered: %s\n", info.CreatedDate)
		cmd.Println()
	}

	cmd.Printf("Total: %d template(s)\n", len(infos))
	return nil
}

func runTemplateInfo(cmd *cobra.Command, _ []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}
	if templateCourt == "" {
		return errors.New("court name is required (--court)")
	}

	info, err := templateService.Info(templateCourt, templateProcedure)
	if err != nil {
		return fmt.Errorf("failed to get template info: %w", err)
	}

	cmd.Printf("Template: %s\n\n", info.Key)
	cmd.Printf("  File:          %s\n", info.FilePath)
	cmd.Printf("  Format:        %s\n", info.Extension)
	if info.Description != "" {
		cmd.Printf("  Note:          %s\n", info.Description)
	}
	cmd.Printf("  Registered:    %s\n", info.CreatedDate)
	cmd.Printf("  Last modified: %s\n", info.LastModified)
	return nil
}

func runTemplateDelete(cmd *cobra.Command, _ []string) error {
	if templateService == nil {
		return errors.New("template service not configured")
	}
	if templateCourt == "" {
		return errors.New("court name is required (--court)")
	}

	if err := templateService.Delete(templateCourt, templateProcedure); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	cmd.Printf("Deleted template for %s", templateCourt)
	if templateProcedure != "" {
		cmd.Printf(" (%s)", templateProcedure)
	}
	cmd.Println()
	return nil
}
