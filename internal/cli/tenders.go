package cli

import (
	"os"

	"github.com/spf13/cobra"

	"tender-dapp/services/tender/helpers"
	"tender-dapp/utils"
)

func newTendersCmd() *cobra.Command {
	tendersCmd := &cobra.Command{
		Use:   "tenders",
		Short: "Tender commands",
	}
	tendersCmd.AddCommand(newTendersListCmd())
	return tendersCmd
}

func newTendersListCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Load every tender from the contract and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.SetOutput(os.Stderr)

			a, err := loadApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Service.Connect(cmd.Context()); err != nil {
				return err
			}

			tenders := a.Service.Tenders()
			resp := make([]helpers.TenderResponse, 0, len(tenders))
			for _, t := range tenders {
				resp = append(resp, helpers.NewTenderResponse(t))
			}
			return printOutput(cmd.OutOrStdout(), output, resp)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format (json|yaml)")
	return cmd
}
