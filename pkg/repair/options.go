// pkg/repair/options.go
package repair

// Options configures the repair operation
type Options struct {
	// InputPath is a single .zip archive or a directory to scan for archives
	// Ignored if Archives is provided
	InputPath string

	// Archives allows library users to provide an explicit list of archive
	// paths to repair
	// When set, InputPath is ignored
	Archives []string

	// AllowEmpty proceeds even when the scan finds zero local entries.
	// An empty scan usually means the archive was stripped already or is not
	// a raw-repacked zip, so the default is to abort that archive untouched.
	AllowEmpty bool

	// Backup writes a .bak copy of each archive before overwriting it
	// The copy is integrity-checked against the source before the overwrite
	Backup bool

	// SkipVerify disables the structural verification pass that normally
	// runs on each rewritten archive
	SkipVerify bool

	// UseGitignore respects .gitignore files during directory discovery
	UseGitignore bool

	// DryRun scans and rebuilds without writing anything
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool

	// Quiet suppresses all output except errors
	Quiet bool
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.InputPath == "" && len(o.Archives) == 0 {
		return ErrInputRequired
	}
	if o.Quiet {
		o.Verbose = false
	}
	return nil
}
