package main

import "github.com/EO-DataHub/eodhp-admin-services/cmd"

func main() {
	cmd.Execute()
}
