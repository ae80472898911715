package main

import (
	"os"

	"weatheradvisor/cmd/weather/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
