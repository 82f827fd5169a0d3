package main

import (
	"os"

	"utcs.dev/utcs/cmd/utcs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
