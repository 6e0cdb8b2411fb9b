// cmd/gozipmend/verify_cmd.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-zipmend/pkg/verify"
)

func init() {
	rootCmd.AddCommand(verifyCmd())
}

func verifyCmd() *cobra.Command {
	var inputPath string
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify zip archive structure",
		Long: `Verify the structural soundness of a zip archive.

Locates the EOCD record, follows its central directory offset, and
independently re-counts the local file headers against the declared entry
count. Payload data is never decompressed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &verify.Options{
				InputPath: inputPath,
				Verbose:   verbose,
				Quiet:     quiet,
			}

			if err := opts.Validate(); err != nil {
				return err
			}

			// Logging helper
			log := func(format string, args ...interface{}) {
				if !quiet {
					fmt.Printf(format+"\n", args...)
				}
			}

			log("Verifying archive: %s", inputPath)
			log("")

			// Create progress callback
			var progressCb verify.ProgressCallback
			if verbose {
				progressCb = func(event verify.ProgressEvent) {
					switch event.Type {
					case verify.EventStart:
						fmt.Printf("Starting verification: %s\n", event.Message)
					case verify.EventEntry:
						fmt.Printf("  [%d/%d] local header\n", event.Current, event.Total)
					case verify.EventComplete:
						fmt.Printf("Verification complete\n")
					}
				}
			}

			// Perform verification
			result, err := verify.Verify(opts, progressCb)
			if err != nil {
				return err
			}

			// Print summary
			fmt.Println()
			fmt.Print(result.Summary())

			// Return error if invalid
			if !result.IsValid() {
				return fmt.Errorf("archive verification failed")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input archive file (required)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}
