// pkg/verify/verify_test.go
package verify_test

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creativeyann17/go-zipmend/internal/ziptest"
	"github.com/creativeyann17/go-zipmend/pkg/repair"
	"github.com/creativeyann17/go-zipmend/pkg/verify"
)

// repairedTwoEntries returns a rebuilt archive with the canonical two-entry
// layout: local region 78 bytes, CD 102 bytes, EOCD at 180.
func repairedTwoEntries(t *testing.T) []byte {
	t.Helper()
	buf := ziptest.Archive(
		ziptest.Stored("a.txt", []byte("12345")),
		ziptest.Stored("b.txt", []byte("abc")),
	)
	out, entries := repair.Rebuild(buf)
	if len(entries) != 2 {
		t.Fatalf("Fixture drifted: expected 2 entries, got %d", len(entries))
	}
	return out
}

func TestVerifyRepairedBuffer(t *testing.T) {
	out := repairedTwoEntries(t)

	result := verify.VerifyBuffer(out)
	if !result.Valid {
		t.Fatalf("Expected valid archive, got: %s", result.Message)
	}
	if result.Err != nil {
		t.Errorf("Expected nil Err, got %v", result.Err)
	}
	if result.EntryCount != 2 || result.DeclaredCount != 2 {
		t.Errorf("Expected counts 2/2, got %d/%d", result.EntryCount, result.DeclaredCount)
	}
	if result.CDOffset != 78 {
		t.Errorf("Expected CD offset 78, got %d", result.CDOffset)
	}
	if result.CDSize != 102 {
		t.Errorf("Expected CD size 102, got %d", result.CDSize)
	}
	if result.EOCDOffset != 180 {
		t.Errorf("Expected EOCD at 180, got %d", result.EOCDOffset)
	}
	if !strings.Contains(result.Message, "2 entries") {
		t.Errorf("Message should mention entry count, got %q", result.Message)
	}
}

func TestVerifyNoEOCD(t *testing.T) {
	result := verify.VerifyBuffer([]byte("this buffer carries no trailer records at all"))
	if result.Valid {
		t.Fatal("Expected invalid result")
	}
	if !errors.Is(result.Err, verify.ErrNoEOCD) {
		t.Errorf("Expected ErrNoEOCD, got %v", result.Err)
	}
}

func TestVerifyTruncatedEOCD(t *testing.T) {
	// Signature bytes right at the end, with no room for the record
	buf := append([]byte("xxxx"), 'P', 'K', 0x05, 0x06)

	result := verify.VerifyBuffer(buf)
	if result.Valid {
		t.Fatal("Expected invalid result")
	}
	if !errors.Is(result.Err, verify.ErrNoEOCD) {
		t.Errorf("Expected ErrNoEOCD for truncated record, got %v", result.Err)
	}
}

func TestVerifyOffsetOutOfBounds(t *testing.T) {
	out := repairedTwoEntries(t)
	eocdPos := len(out) - 22

	binary.LittleEndian.PutUint32(out[eocdPos+16:], uint32(len(out)))

	result := verify.VerifyBuffer(out)
	if result.Valid {
		t.Fatal("Expected invalid result")
	}
	if !errors.Is(result.Err, verify.ErrOffsetOutOfBounds) {
		t.Errorf("Expected ErrOffsetOutOfBounds, got %v", result.Err)
	}
}

func TestVerifyBadCDSignature(t *testing.T) {
	out := repairedTwoEntries(t)
	eocdPos := len(out) - 22

	// Point the CD offset at the first local header instead
	binary.LittleEndian.PutUint32(out[eocdPos+16:], 0)

	result := verify.VerifyBuffer(out)
	if result.Valid {
		t.Fatal("Expected invalid result")
	}
	if !errors.Is(result.Err, verify.ErrBadCDSignature) {
		t.Errorf("Expected ErrBadCDSignature, got %v", result.Err)
	}
}

// TestVerifySplicedByte shifts everything after the first entry by one byte,
// the classic symptom of a repack gone wrong. Depending on where the byte
// lands the failure surfaces as a bad CD signature or as a count mismatch;
// both are correct detections.
func TestVerifySplicedByte(t *testing.T) {
	out := repairedTwoEntries(t)

	spliced := append([]byte{}, out[:40]...)
	spliced = append(spliced, 0xAA)
	spliced = append(spliced, out[40:]...)

	result := verify.VerifyBuffer(spliced)
	if result.Valid {
		t.Fatal("Expected invalid result")
	}
	if !errors.Is(result.Err, verify.ErrBadCDSignature) && !errors.Is(result.Err, verify.ErrEntryCountMismatch) {
		t.Errorf("Expected ErrBadCDSignature or ErrEntryCountMismatch, got %v", result.Err)
	}
}

func TestVerifyEntryCountMismatch(t *testing.T) {
	out := repairedTwoEntries(t)
	eocdPos := len(out) - 22

	// Inflate the declared counts without touching the local entries
	binary.LittleEndian.PutUint16(out[eocdPos+8:], 3)
	binary.LittleEndian.PutUint16(out[eocdPos+10:], 3)

	result := verify.VerifyBuffer(out)
	if result.Valid {
		t.Fatal("Expected invalid result")
	}
	if !errors.Is(result.Err, verify.ErrEntryCountMismatch) {
		t.Errorf("Expected ErrEntryCountMismatch, got %v", result.Err)
	}
	if result.EntryCount != 2 || result.DeclaredCount != 3 {
		t.Errorf("Expected counts 2/3, got %d/%d", result.EntryCount, result.DeclaredCount)
	}
}

func TestVerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repaired.zip")
	if err := os.WriteFile(path, repairedTwoEntries(t), 0644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	var starts, entries, completes int
	progressCb := func(event verify.ProgressEvent) {
		switch event.Type {
		case verify.EventStart:
			starts++
		case verify.EventEntry:
			entries++
		case verify.EventComplete:
			completes++
		}
	}

	result, err := verify.Verify(&verify.Options{InputPath: path}, progressCb)
	if err != nil {
		t.Fatalf("Verification failed: %v", err)
	}
	if !result.IsValid() {
		t.Fatalf("Expected valid archive, got: %s", result.Message)
	}
	if result.ArchivePath != path {
		t.Errorf("Expected archive path %q, got %q", path, result.ArchivePath)
	}
	if result.ArchiveSize != 202 {
		t.Errorf("Expected archive size 202, got %d", result.ArchiveSize)
	}
	if starts != 1 || entries != 2 || completes != 1 {
		t.Errorf("Unexpected event counts: starts=%d entries=%d completes=%d", starts, entries, completes)
	}
}

func TestVerifyMissingFile(t *testing.T) {
	_, err := verify.Verify(&verify.Options{InputPath: filepath.Join(t.TempDir(), "nope.zip")}, nil)
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestVerifyOptionsValidate(t *testing.T) {
	if _, err := verify.Verify(&verify.Options{}, nil); !errors.Is(err, verify.ErrInputRequired) {
		t.Errorf("Expected ErrInputRequired, got %v", err)
	}

	opts := &verify.Options{InputPath: "x", Quiet: true, Verbose: true}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if opts.Verbose {
		t.Error("Quiet should override Verbose")
	}
}
