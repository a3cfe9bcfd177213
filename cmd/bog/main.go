package main

import (
	"os"

	"bog/cmd/bog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
