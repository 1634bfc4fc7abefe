package cli

import (
	"github.com/spf13/cobra"

	"github.com/aikawa-legal/saikengen/internal/core/domain"
)

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List supported courts and procedure types",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("Courts:")
		for _, court := range domain.Courts {
			if court == domain.TokyoDistrictCourt {
				cmd.Printf("  %s (自己破産はA/B頁割当様式)\n", court)
				continue
			}
			cmd.Printf("  %s\n", court)
		}

		cmd.Println()
		cmd.Println("Procedure types:")
		for _, p := range domain.ProcedureTypes {
			cmd.Printf("  %s\n", p)
		}
	},
}

func init() {
	rootCmd.AddCommand(courtsCmd)
}
