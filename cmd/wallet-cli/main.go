package main

import "github.com/idelsangithub/business-logic-service/cmd/wallet-cli/cmd"

func main() {
	cmd.Execute()
}
