// pkg/verify/verify.go
package verify

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/creativeyann17/go-zipmend/internal/format"
)

// ProgressCallback is called for progress updates during verification
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type    EventType
	Current int
	Total   int
	Message string
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventEntry
	EventComplete
)

// Verify reads the archive at opts.InputPath and checks its structure.
// The returned error covers option validation and I/O only; structural
// failures land in the Result so the caller decides whether to retry the
// repair, restore a backup or surface the failure.
func Verify(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	buf, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	result := verifyBuffer(buf, progressCb)
	result.ArchivePath = opts.InputPath
	return result, nil
}

// VerifyBuffer checks the structural soundness of an in-memory archive: it
// locates the EOCD record, follows its central directory offset, and
// independently re-counts local headers against the declared entry count.
// It is a pure predicate over buf and is usable on any archive, repaired or
// not.
func VerifyBuffer(buf []byte) *Result {
	return verifyBuffer(buf, nil)
}

func verifyBuffer(buf []byte, progressCb ProgressCallback) *Result {
	result := &Result{ArchiveSize: uint64(len(buf))}

	// The EOCD signature is searched as raw bytes from the end; comments are
	// never preserved by the rebuild, so the last occurrence is the record.
	eocdPos := bytes.LastIndex(buf, format.EOCDSigBytes)
	if eocdPos < 0 {
		return result.fail(ErrNoEOCD, "no EOCD record found")
	}
	if len(buf)-eocdPos < format.EOCDLen {
		// Signature bytes without a full record behind them
		return result.fail(ErrNoEOCD, fmt.Sprintf("EOCD record at 0x%08x truncated", eocdPos))
	}
	result.EOCDOffset = uint32(eocdPos)

	cdOffset := binary.LittleEndian.Uint32(buf[eocdPos+16:])
	result.CDOffset = cdOffset
	if uint64(cdOffset) >= uint64(len(buf)) {
		return result.fail(ErrOffsetOutOfBounds,
			fmt.Sprintf("CD offset 0x%08x beyond archive size", cdOffset))
	}

	if int(cdOffset)+len(format.CentralDirSigBytes) > len(buf) ||
		!bytes.Equal(buf[cdOffset:int(cdOffset)+4], format.CentralDirSigBytes) {
		return result.fail(ErrBadCDSignature,
			fmt.Sprintf("invalid CD signature at 0x%08x", cdOffset))
	}

	declared := int(binary.LittleEndian.Uint16(buf[eocdPos+10:]))
	result.DeclaredCount = declared
	result.CDSize = binary.LittleEndian.Uint32(buf[eocdPos+12:])

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventStart,
			Total:   declared,
			Message: fmt.Sprintf("Re-counting %d entries", declared),
		})
	}

	// Independent re-count of local headers up to the central directory.
	// Deliberately not shared with the rebuild path, so offset arithmetic
	// drift shows up here instead of being echoed back. A repaired region is
	// expected to be clean: the first signature that is not a local header
	// ends the count, with no one-byte resynchronization.
	counted := 0
	offset := 0
	for offset+format.LocalHeaderLen <= int(cdOffset) {
		if binary.LittleEndian.Uint32(buf[offset:]) != format.LocalHeaderSignature {
			break
		}
		compSize := binary.LittleEndian.Uint32(buf[offset+18:])
		nameLen := binary.LittleEndian.Uint16(buf[offset+26:])
		extraLen := binary.LittleEndian.Uint16(buf[offset+28:])
		counted++
		if progressCb != nil {
			progressCb(ProgressEvent{Type: EventEntry, Current: counted, Total: declared})
		}
		offset += format.LocalHeaderLen + int(nameLen) + int(extraLen) + int(compSize)
	}
	result.EntryCount = counted

	if counted != declared {
		return result.fail(ErrEntryCountMismatch,
			fmt.Sprintf("local headers (%d) != CD entries (%d)", counted, declared))
	}

	result.Valid = true
	result.Message = fmt.Sprintf("valid: %d entries, CD at 0x%08x", counted, cdOffset)

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventComplete,
			Current: counted,
			Total:   counted,
			Message: "Verification complete",
		})
	}

	return result
}
