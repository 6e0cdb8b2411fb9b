// internal/format/eocd.go
package format

import "encoding/binary"

// BuildEOCD serializes the fixed 22-byte end of central directory record.
// Single-disk archives only: both disk fields are zero and entryCount fills
// the per-disk and total slots. No trailing comment is ever emitted.
func BuildEOCD(entryCount uint16, cdSize, cdOffset uint32) []byte {
	out := make([]byte, 0, EOCDLen)
	out = binary.LittleEndian.AppendUint32(out, EOCDSignature)
	out = binary.LittleEndian.AppendUint16(out, 0) // disk number
	out = binary.LittleEndian.AppendUint16(out, 0) // disk with central directory start
	out = binary.LittleEndian.AppendUint16(out, entryCount)
	out = binary.LittleEndian.AppendUint16(out, entryCount)
	out = binary.LittleEndian.AppendUint32(out, cdSize)
	out = binary.LittleEndian.AppendUint32(out, cdOffset)
	out = binary.LittleEndian.AppendUint16(out, 0) // comment length
	return out
}
