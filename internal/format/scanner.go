// internal/format/scanner.go
package format

import (
	"encoding/binary"
	"strings"
)

// LocalFileEntry is one local file header as found in the archive.
// Everything except HeaderOffset and Name is copied verbatim from the header
// and never reinterpreted.
type LocalFileEntry struct {
	HeaderOffset uint32 // offset of the header signature within the buffer
	Name         string // filename, ASCII with non-ASCII bytes replaced by '?'

	VersionNeeded uint16
	Flags         uint16
	Method        uint16
	ModTime       uint16
	ModDate       uint16

	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32

	NameLen  uint16
	ExtraLen uint16
}

// ScanLocalEntries walks buf from offset 0 collecting local file headers in
// archive order. It returns the entries and the offset where the local
// entries region ends: the first central directory signature, the first
// header whose declared lengths run past the buffer, or wherever fewer than
// LocalHeaderLen bytes remain.
//
// Bytes matching neither signature advance the scan by exactly one byte.
// Raw repacking tools leave non-standard filler between entries, so the scan
// resynchronizes instead of failing; worst case is a full pass over buf.
func ScanLocalEntries(buf []byte) ([]LocalFileEntry, int) {
	var entries []LocalFileEntry
	offset := 0
	for len(buf)-offset >= LocalHeaderLen {
		switch binary.LittleEndian.Uint32(buf[offset:]) {
		case CentralDirSignature:
			return entries, offset
		case LocalHeaderSignature:
			entry, next, ok := parseLocalHeader(buf, offset)
			if !ok {
				// Header claims more bytes than the buffer holds. Stop
				// without emitting the partial entry.
				return entries, offset
			}
			entries = append(entries, entry)
			offset = next
		default:
			offset++
		}
	}
	return entries, offset
}

// parseLocalHeader decodes the fixed header at offset plus its filename.
// ok is false when the declared name, extra or payload length runs past the
// end of buf. next is the offset of whatever follows the entry's payload.
func parseLocalHeader(buf []byte, offset int) (entry LocalFileEntry, next int, ok bool) {
	f := buf[offset+4 : offset+LocalHeaderLen]
	entry = LocalFileEntry{
		HeaderOffset:     uint32(offset),
		VersionNeeded:    binary.LittleEndian.Uint16(f[0:]),
		Flags:            binary.LittleEndian.Uint16(f[2:]),
		Method:           binary.LittleEndian.Uint16(f[4:]),
		ModTime:          binary.LittleEndian.Uint16(f[6:]),
		ModDate:          binary.LittleEndian.Uint16(f[8:]),
		CRC32:            binary.LittleEndian.Uint32(f[10:]),
		CompressedSize:   binary.LittleEndian.Uint32(f[14:]),
		UncompressedSize: binary.LittleEndian.Uint32(f[18:]),
		NameLen:          binary.LittleEndian.Uint16(f[22:]),
		ExtraLen:         binary.LittleEndian.Uint16(f[24:]),
	}

	nameEnd := offset + LocalHeaderLen + int(entry.NameLen)
	next = nameEnd + int(entry.ExtraLen) + int(entry.CompressedSize)
	if nameEnd > len(buf) || next > len(buf) {
		return LocalFileEntry{}, 0, false
	}
	entry.Name = decodeName(buf[offset+LocalHeaderLen : nameEnd])
	return entry, next, true
}

// decodeName decodes filename bytes as ASCII. Bytes outside the 7-bit range
// are substituted with '?' so the decoded string keeps the declared byte
// length and the name can be re-emitted into the central directory verbatim
// in size. Name decoding never fails.
func decodeName(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c < 0x80 {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}
