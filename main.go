package main

import (
	"os"

	"github.com/rishiiv/team-62/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
