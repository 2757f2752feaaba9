// Package main is the entry point for the shq CLI.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/unrss/shq/internal/cmd"
)

//go:embed version.txt
var version string

func main() {
	if err := cmd.Execute(cmd.Assets{
		Version: version,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
