package cmd

import (
	"net/http"

	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var registerOpt struct {
	Document string `json:"document"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "register a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodPost, "/api/customers", &registerOpt, nil)
	},
}

var rechargeOpt struct {
	Document string          `json:"document"`
	Phone    string          `json:"phone"`
	Amount   decimal.Decimal `json:"amount"`
}

var rechargeCmd = &cobra.Command{
	Use:   "recharge <amount>",
	Short: "top up a wallet balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rechargeOpt.Amount = generic.Try(decimal.NewFromString(args[0]))
		return callAPI(cmd, http.MethodPost, "/api/wallet/recharge", &rechargeOpt, nil)
	},
}

var balanceOpt struct {
	document string
	phone    string
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "query a wallet balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodGet, "/api/wallet/balance", nil, map[string]string{
			"document": balanceOpt.document,
			"phone":    balanceOpt.phone,
		})
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, rechargeCmd, balanceCmd)

	registerCmd.Flags().StringVar(&registerOpt.Document, "document", "", "document number")
	registerCmd.Flags().StringVar(&registerOpt.Name, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerOpt.Email, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerOpt.Phone, "phone", "", "phone number")

	rechargeCmd.Flags().StringVar(&rechargeOpt.Document, "document", "", "document number")
	rechargeCmd.Flags().StringVar(&rechargeOpt.Phone, "phone", "", "phone number")

	balanceCmd.Flags().StringVar(&balanceOpt.document, "document", "", "document number")
	balanceCmd.Flags().StringVar(&balanceOpt.phone, "phone", "", "phone number")
}
