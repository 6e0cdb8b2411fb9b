// pkg/repair/result.go
package repair

import (
	"fmt"
	"strings"

	"github.com/creativeyann17/go-zipmend/pkg/zipmend"
)

// ArchiveInfo describes the repair outcome for a single archive
type ArchiveInfo struct {
	Path         string
	EntryCount   int    // local entries found by the scan
	OriginalSize uint64 // input size in bytes
	RepairedSize uint64 // output size in bytes
	CDOffset     uint32 // offset of the rebuilt central directory
	CDSize       uint32 // size of the rebuilt central directory block

	// TrailingDiscarded is how many input bytes beyond the local entries
	// region (stale central directory, old EOCD, garbage) were dropped
	TrailingDiscarded uint64

	BackupPath string // path of the .bak copy, if one was written
	Verified   bool   // post-repair verification ran and passed
	Error      error  // non-nil when this archive could not be repaired
}

// Result contains statistics about the repair operation
type Result struct {
	// Total number of archives selected for repair
	ArchivesTotal int

	// Number of archives successfully rewritten
	ArchivesRepaired int

	// Sum of local entries indexed across repaired archives
	EntriesTotal int

	// Per-archive details, in processing order
	Archives []ArchiveInfo

	// List of errors encountered (non-fatal)
	Errors []error
}

// Success returns true if all archives were repaired without errors
func (r *Result) Success() bool {
	return len(r.Errors) == 0 && r.ArchivesRepaired == r.ArchivesTotal
}

// Summary returns a human-readable summary of the repair result
func (r *Result) Summary() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		fmt.Fprintf(&sb, "Completed with %d errors:\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(&sb, "  - %v\n", e)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary:\n")
	fmt.Fprintf(&sb, "  Archives repaired: %d / %d\n", r.ArchivesRepaired, r.ArchivesTotal)
	fmt.Fprintf(&sb, "  Entries indexed:   %d\n", r.EntriesTotal)

	for _, a := range r.Archives {
		if a.Error != nil {
			continue
		}
		fmt.Fprintf(&sb, "  %s: %d entries, CD %s at 0x%08x",
			a.Path, a.EntryCount, zipmend.FormatSize(uint64(a.CDSize)), a.CDOffset)
		if a.TrailingDiscarded > 0 {
			fmt.Fprintf(&sb, ", %s stale trailer dropped", zipmend.FormatSize(a.TrailingDiscarded))
		}
		if a.BackupPath != "" {
			fmt.Fprintf(&sb, ", backup %s", a.BackupPath)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
