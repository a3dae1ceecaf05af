package cli

import (
	"os"

	"github.com/spf13/cobra"

	"tender-dapp/internal/models"
	tendering "tender-dapp/internal/tenderService"
	"tender-dapp/utils"
)

type accountRow struct {
	Address string      `json:"address" yaml:"address"`
	Role    models.Role `json:"role" yaml:"role"`
	Active  bool        `json:"active" yaml:"active"`
}

func newAccountsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the wallet accounts and their roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.SetOutput(os.Stderr)

			a, err := loadApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			active := a.Wallet.Active()
			accounts := a.Wallet.RequestAccounts()
			rows := make([]accountRow, 0, len(accounts))
			for _, addr := range accounts {
				role := models.RoleBidder
				if tendering.IsOfficial(addr, a.Official) {
					role = models.RoleOfficial
				}
				rows = append(rows, accountRow{Address: addr.Hex(), Role: role, Active: addr == active})
			}
			return printOutput(cmd.OutOrStdout(), output, rows)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format (json|yaml)")
	return cmd
}
