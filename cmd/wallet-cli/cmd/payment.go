package cmd

import (
	"net/http"

	"github.com/pandodao/generic"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var payOpt struct {
	Document string          `json:"document"`
	Phone    string          `json:"phone"`
	Amount   decimal.Decimal `json:"amount"`
}

var payCmd = &cobra.Command{
	Use:   "pay <amount>",
	Short: "initiate a purchase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payOpt.Amount = generic.Try(decimal.NewFromString(args[0]))
		return callAPI(cmd, http.MethodPost, "/api/payments", &payOpt, nil)
	},
}

var confirmOpt struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "confirm a purchase with session id and token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return callAPI(cmd, http.MethodPost, "/api/payments/confirm", &confirmOpt, nil)
	},
}

func init() {
	rootCmd.AddCommand(payCmd, confirmCmd)

	payCmd.Flags().StringVar(&payOpt.Document, "document", "", "document number")
	payCmd.Flags().StringVar(&payOpt.Phone, "phone", "", "phone number")

	confirmCmd.Flags().StringVar(&confirmOpt.SessionID, "session", "", "session id")
	confirmCmd.Flags().StringVar(&confirmOpt.Token, "token", "", "confirmation code")
}
