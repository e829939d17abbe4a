// Package main provides the sqlshift CLI entry point.
package main

import (
	"os"

	"github.com/sqlshift/sqlshift/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
