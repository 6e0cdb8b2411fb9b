package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "gozipmend",
	Short:   "go-zipmend - central directory repair for raw-repacked zip archives",
	Long:    "go-zipmend rebuilds the central directory and EOCD record of zip archives whose index was destroyed by raw repacking tools, and verifies the result.",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
