// pkg/repair/rebuild.go
package repair

import "github.com/creativeyann17/go-zipmend/internal/format"

// Rebuild scans buf for local file entries and returns a new archive buffer:
// the original bytes up to the end of the local entries region, a freshly
// built central directory, and a new EOCD record. Whatever followed the local
// entries in buf (a stale central directory, an old EOCD, trailing garbage)
// is discarded.
//
// buf is never modified; concurrent rebuilds of different buffers are safe.
// Rebuilding an already rebuilt archive is a no-op with respect to validity:
// the scan finds the same entries and stops at the same region end.
func Rebuild(buf []byte) ([]byte, []format.LocalFileEntry) {
	entries, end := format.ScanLocalEntries(buf)
	cd := format.BuildCentralDirectory(entries)
	eocd := format.BuildEOCD(uint16(len(entries)), uint32(len(cd)), uint32(end))

	out := make([]byte, 0, end+len(cd)+len(eocd))
	out = append(out, buf[:end]...)
	out = append(out, cd...)
	out = append(out, eocd...)
	return out, entries
}
