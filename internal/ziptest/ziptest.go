// Package ziptest builds synthetic archive buffers for tests: raw local
// entries laid out back to back, the way a raw repacking tool leaves them,
// with no central directory and no EOCD record.
package ziptest

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/flate"

	"github.com/creativeyann17/go-zipmend/internal/format"
)

// Entry describes one synthetic local file entry
type Entry struct {
	Name             string
	Payload          []byte // bytes stored after the header, already compressed for method 8
	Extra            []byte
	Method           uint16
	ModTime          uint16
	ModDate          uint16
	CRC              uint32
	UncompressedSize uint32
}

// Stored returns an entry whose payload is stored uncompressed (method 0),
// with a real CRC over the payload
func Stored(name string, payload []byte) Entry {
	return Entry{
		Name:             name,
		Payload:          payload,
		CRC:              crc32.ChecksumIEEE(payload),
		UncompressedSize: uint32(len(payload)),
	}
}

// Deflated returns an entry whose payload is data compressed with deflate
// (method 8), so the method and size fields look like real archiver output
func Deflated(name string, data []byte) Entry {
	var buf bytes.Buffer
	w, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	_, _ = w.Write(data)
	_ = w.Close()
	return Entry{
		Name:             name,
		Payload:          buf.Bytes(),
		Method:           8,
		CRC:              crc32.ChecksumIEEE(data),
		UncompressedSize: uint32(len(data)),
	}
}

// AppendLocal serializes the entry's local file header, name, extra field and
// payload onto buf
func AppendLocal(buf []byte, e Entry) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, format.LocalHeaderSignature)
	buf = binary.LittleEndian.AppendUint16(buf, 20) // version needed
	buf = binary.LittleEndian.AppendUint16(buf, 0)  // flags
	buf = binary.LittleEndian.AppendUint16(buf, e.Method)
	buf = binary.LittleEndian.AppendUint16(buf, e.ModTime)
	buf = binary.LittleEndian.AppendUint16(buf, e.ModDate)
	buf = binary.LittleEndian.AppendUint32(buf, e.CRC)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Payload)))
	buf = binary.LittleEndian.AppendUint32(buf, e.UncompressedSize)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(e.Name)))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(e.Extra)))
	buf = append(buf, e.Name...)
	buf = append(buf, e.Extra...)
	return append(buf, e.Payload...)
}

// Archive serializes the entries back to back and returns the raw buffer
func Archive(entries ...Entry) []byte {
	var buf []byte
	for _, e := range entries {
		buf = AppendLocal(buf, e)
	}
	return buf
}
