// Package main is the entry point for fresh-maven-project.
package main

import (
	"os"

	"github.com/freshmaven/cli/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	rootCmd.SetArgs(cmd.NormalizeArgs(os.Args[1:]))
	os.Exit(cmd.Execute(rootCmd))
}
