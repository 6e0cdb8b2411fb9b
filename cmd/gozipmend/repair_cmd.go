// cmd/gozipmend/repair_cmd.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-zipmend/pkg/repair"
	"github.com/creativeyann17/go-zipmend/pkg/zipmend"
)

func init() {
	rootCmd.AddCommand(repairCmd())
}

func repairCmd() *cobra.Command {
	var inputPath string
	var backup bool
	var noVerify bool
	var allowEmpty bool
	var useGitignore bool
	var dryRun bool
	var verbose bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Rebuild the central directory of zip archives",
		Long: `Rebuild the central directory and EOCD record of one or more zip archives.

Scans the local file headers, writes a fresh central directory after them and
discards whatever trailed the local entries before. Each archive is verified
after the rewrite unless --no-verify is given. With a directory input, every
*.zip file underneath is repaired.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &repair.Options{
				InputPath:    inputPath,
				Backup:       backup,
				SkipVerify:   noVerify,
				AllowEmpty:   allowEmpty,
				UseGitignore: useGitignore,
				DryRun:       dryRun,
				Verbose:      verbose,
				Quiet:        quiet,
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

			log("Repairing: %s", inputPath)
			if dryRun {
				log("Mode: dry run - nothing will be written")
			}
			if backup {
				log("Backups: enabled (.bak alongside each archive)")
			}
			log("")

			// Create progress callback
			var progressCb repair.ProgressCallback
			var progress *mpb.Progress
			if !quiet && !verbose {
				progressCb, progress = repair.ProgressBarCallback()
			} else if verbose {
				progressCb = func(event repair.ProgressEvent) {
					switch event.Type {
					case repair.EventArchiveStart:
						fmt.Printf("  [%d/%d] %s\n", event.Current, event.Total,
							zipmend.TruncateLeft(event.ArchivePath, 60))
					case repair.EventError:
						fmt.Printf("  [%d/%d] %s: FAILED\n", event.Current, event.Total,
							zipmend.TruncateLeft(event.ArchivePath, 60))
					case repair.EventComplete:
						fmt.Printf("Repair complete\n")
					}
				}
			}

			// Perform repair
			result, err := repair.Repair(opts, progressCb)
			if progress != nil {
				progress.Wait()
			}
			if err != nil {
				return err
			}

			// Print summary
			fmt.Println()
			fmt.Print(result.Summary())

			// Return error if any archive failed
			if !result.Success() {
				return fmt.Errorf("repair failed for %d of %d archives",
					len(result.Errors), result.ArchivesTotal)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input archive or directory (required)")
	cmd.Flags().BoolVar(&backup, "backup", false, "Write a .bak copy before overwriting each archive")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip structural verification after repair")
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "Proceed even when no local entries are found")
	cmd.Flags().BoolVar(&useGitignore, "gitignore", false, "Respect .gitignore files during directory discovery")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Scan and rebuild without writing")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed output")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Minimal output (overrides verbose)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}
