// pkg/verify/errors.go
package verify

import "errors"

var (
	// ErrInputRequired is returned when input path is not specified
	ErrInputRequired = errors.New("input path is required")

	// ErrNoEOCD is returned when no EOCD signature exists anywhere in the archive
	ErrNoEOCD = errors.New("no EOCD record found")

	// ErrOffsetOutOfBounds is returned when the declared central directory
	// offset points past the end of the archive
	ErrOffsetOutOfBounds = errors.New("central directory offset beyond archive size")

	// ErrBadCDSignature is returned when the bytes at the declared central
	// directory offset are not a central directory entry signature
	ErrBadCDSignature = errors.New("invalid central directory signature")

	// ErrEntryCountMismatch is returned when the re-counted local headers
	// disagree with the entry count the EOCD declares
	ErrEntryCountMismatch = errors.New("local header count does not match declared entry count")
)
