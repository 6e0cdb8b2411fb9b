// internal/format/central.go
package format

import "encoding/binary"

// BuildCentralDirectory serializes one central directory record per entry, in
// scan order, and returns the concatenated block. Order mirrors each entry's
// position in the archive; no sorting is applied.
//
// The record reuses the entry's single version field for both the
// version-made-by and version-needed slots, and forces extra length, comment
// length, disk number and both attribute fields to zero. Extra-field bytes
// present in the local header are dropped: central directory extensions
// (ZIP64 and friends) are out of scope.
func BuildCentralDirectory(entries []LocalFileEntry) []byte {
	size := 0
	for i := range entries {
		size += CentralDirEntryLen + len(entries[i].Name)
	}

	out := make([]byte, 0, size)
	for i := range entries {
		out = appendCentralDirEntry(out, &entries[i])
	}
	return out
}

func appendCentralDirEntry(out []byte, e *LocalFileEntry) []byte {
	out = binary.LittleEndian.AppendUint32(out, CentralDirSignature)
	out = binary.LittleEndian.AppendUint16(out, e.VersionNeeded) // version made by
	out = binary.LittleEndian.AppendUint16(out, e.VersionNeeded)
	out = binary.LittleEndian.AppendUint16(out, e.Flags)
	out = binary.LittleEndian.AppendUint16(out, e.Method)
	out = binary.LittleEndian.AppendUint16(out, e.ModTime)
	out = binary.LittleEndian.AppendUint16(out, e.ModDate)
	out = binary.LittleEndian.AppendUint32(out, e.CRC32)
	out = binary.LittleEndian.AppendUint32(out, e.CompressedSize)
	out = binary.LittleEndian.AppendUint32(out, e.UncompressedSize)
	out = binary.LittleEndian.AppendUint16(out, e.NameLen)
	out = binary.LittleEndian.AppendUint16(out, 0) // extra field length
	out = binary.LittleEndian.AppendUint16(out, 0) // comment length
	out = binary.LittleEndian.AppendUint16(out, 0) // disk number start
	out = binary.LittleEndian.AppendUint16(out, 0) // internal attributes
	out = binary.LittleEndian.AppendUint32(out, 0) // external attributes
	out = binary.LittleEndian.AppendUint32(out, e.HeaderOffset)
	return append(out, e.Name...)
}
