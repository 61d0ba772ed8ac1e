package main

import (
	"os"

	"region-directory/cmd/api/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
