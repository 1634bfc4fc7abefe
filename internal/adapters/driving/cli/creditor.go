package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var creditorCmd = &cobra.Command{
	Use:   "creditor",
	Short: "Manage imported creditor records",
	Long:  `Import, list, and delete the creditor records used for rendering.`,
}

var creditorImportCmd = &cobra.Command{
	Use:   "import [json-file]",
	Short: "Import creditor records from a JSON file",
	Long: `Import creditor records from a JSON file holding a single entry
object or an array of entries. Records are stored per debtor, in file
order.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreditorImport,
}

var creditorListCmd = &cobra.Command{
	Use:   "list [debtor]",
	Short: "List a debtor's creditor records",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreditorList,
}

var creditorDebtorsCmd = &cobra.Command{
	Use:   "debtors",
	Short: "List debtors with stored records",
	RunE:  runCreditorDebtors,
}

var creditorDeleteCmd = &cobra.Command{
	Use:   "delete [debtor]",
	Short: "Delete all records for a debtor",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreditorDelete,
}

func init() {
	creditorCmd.AddCommand(creditorImportCmd)
	creditorCmd.AddCommand(creditorListCmd)
	creditorCmd.AddCommand(creditorDebtorsCmd)
	creditorCmd.AddCommand(creditorDeleteCmd)
	rootCmd.AddCommand(creditorCmd)
}

func runCreditorImport(cmd *cobra.Command, args []string) error {
	if creditorService == nil {
		return errors.New("creditor service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	count, err := creditorService.ImportJSON(context.Background(), data)
	if err != nil {
		return fmt.Errorf("failed to import records: %w", err)
	}

	cmd.Printf("Imported %d record(s)\n", count)
	return nil
}

func runCreditorList(cmd *cobra.Command, args []string) error {
	if creditorService == nil {
		return errors.New("creditor service not configured")
	}

	debtor := args[0]
	records, err := creditorService.ListByDebtor(context.Background(), debtor)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		cmd.Printf("No records found for debtor: %s\n", debtor)
		return nil
	}

	cmd.Printf("Creditor records for %s:\n\n", debtor)
	for i, r := range records {
		cmd.Printf("  %d. %s", i+1, r.CompanyName)
		if r.BranchName != "" {
			cmd.Printf(" %s", r.BranchName)
		}
		cmd.Println()
		if r.ClaimName != "" {
			cmd.Printf("     Claim:  %s\n", r.ClaimName)
		}
		if r.ClaimAmount != "" {
			cmd.Printf("     Amount: %s\n", r.ClaimAmount)
		}
		if r.RegistrationDate != "" {
			cmd.Printf("     Added:  %s\n", r.RegistrationDate)
		}
	}

	cmd.Printf("\nTotal: %d record(s)\n", len(records))
	return nil
}

func runCreditorDebtors(cmd *cobra.Command, _ []string) error {
	if creditorService == nil {
		return errors.New("creditor service not configured")
	}

	debtors, err := creditorService.ListDebtors(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list debtors: %w", err)
	}

	if len(debtors) == 0 {
		cmd.Println("No debtors stored")
		return nil
	}

	for _, d := range debtors {
		cmd.Println(d)
	}
	return nil
}

func runCreditorDelete(cmd *cobra.Command, args []string) error {
	if creditorService == nil {
		return errors.New("creditor service not configured")
	}

	if err := creditorService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}

	cmd.Printf("Deleted records for %s\n", args[0])
	return nil
}
