package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wallet-cli",
	Short: "api cmd for the wallet service",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("endpoint", "l", "http://localhost:8080", "api endpoint")
	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}

func callAPI(cmd *cobra.Command, method, path string, body any, query map[string]string) error {
	rc := resty.New().SetBaseURL(viper.GetString("endpoint"))

	req := rc.R().SetContext(cmd.Context()).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	if query != nil {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	var out map[string]any
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return fmt.Errorf("unexpected response: %s", resp.Body())
	}

	return printJson(cmd, out)
}

func printJson(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	cmd.Println(string(b))
	return nil
}
