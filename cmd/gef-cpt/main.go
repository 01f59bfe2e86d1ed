package main

import (
	"os"

	"github.com/rcliao/gef-cpt/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
