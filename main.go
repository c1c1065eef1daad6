package main

import (
	"os"

	"github.com/umalmyha/authflow/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
