// pkg/verify/result.go
package verify

import (
	"fmt"

	"github.com/creativeyann17/go-zipmend/pkg/zipmend"
)

// Result contains the outcome of a single verification pass. It is reported,
// never thrown: a structurally invalid archive comes back with Valid false
// and the failing check in Err, not an error return.
type Result struct {
	// Valid is true when every structural check passed
	Valid bool

	// Err identifies the failing check (ErrNoEOCD, ErrOffsetOutOfBounds,
	// ErrBadCDSignature, ErrEntryCountMismatch); nil when Valid
	Err error

	// Message is a human-readable one-liner describing the outcome
	Message string

	// Archive metadata
	ArchivePath string // path of the verified archive (file-level Verify only)
	ArchiveSize uint64 // buffer length in bytes

	// Locations read from the archive
	EOCDOffset uint32 // offset of the EOCD signature
	CDOffset   uint32 // central directory offset the EOCD declares
	CDSize     uint32 // central directory size the EOCD declares

	// Entry counts
	DeclaredCount int // total entries the EOCD declares
	EntryCount    int // local headers independently re-counted
}

// IsValid returns true if the archive passed all structural checks
func (r *Result) IsValid() bool {
	return r.Valid
}

// fail marks the result invalid with the failing check and message
func (r *Result) fail(err error, message string) *Result {
	r.Valid = false
	r.Err = err
	r.Message = message
	return r
}

// Summary returns a human-readable summary of the verification result
func (r *Result) Summary() string {
	status := "VALID"
	if !r.Valid {
		status = "INVALID"
	}

	s := fmt.Sprintf("Archive: %s [%s]\n", r.ArchivePath, status)
	s += fmt.Sprintf("Size:    %s\n", zipmend.FormatSize(r.ArchiveSize))
	s += fmt.Sprintf("Entries: %d\n", r.EntryCount)

	if r.Valid {
		s += fmt.Sprintf("CD:      %d bytes at 0x%08x\n", r.CDSize, r.CDOffset)
		s += fmt.Sprintf("EOCD:    at 0x%08x\n", r.EOCDOffset)
	} else {
		s += fmt.Sprintf("Error:   %s\n", r.Message)
	}

	return s
}
