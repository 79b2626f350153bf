package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/thanos/cmd/thanos/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
