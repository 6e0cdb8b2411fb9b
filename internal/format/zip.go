// internal/format/zip.go
package format

// Record signatures and fixed sizes of the three ZIP structures this package
// rebuilds. All multi-byte fields in the format are little-endian.
const (
	LocalHeaderSignature = 0x04034b50
	CentralDirSignature  = 0x02014b50
	EOCDSignature        = 0x06054b50

	// Fixed record sizes, excluding the variable-length name/extra/comment tails
	LocalHeaderLen     = 30
	CentralDirEntryLen = 46
	EOCDLen            = 22
)

// Raw little-endian signature bytes, for substring searches over archive buffers
var (
	LocalHeaderSigBytes = []byte{'P', 'K', 0x03, 0x04}
	CentralDirSigBytes  = []byte{'P', 'K', 0x01, 0x02}
	EOCDSigBytes        = []byte{'P', 'K', 0x05, 0x06}
)
