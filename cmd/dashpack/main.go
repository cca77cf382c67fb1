// Package main is the entry point for the dashpack CLI.
package main

import (
	"os"

	"github.com/dashpack/dashpack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
