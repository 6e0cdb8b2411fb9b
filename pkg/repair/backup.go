// pkg/repair/backup.go
package repair

import (
	"fmt"
	"os"

	"github.com/zeebo/blake3"
)

// writeBackup writes a .bak copy of the archive next to it and re-reads the
// copy, comparing blake3 sums, so a torn or short copy is caught before the
// original gets overwritten.
func writeBackup(path string, data []byte) (string, error) {
	bakPath := path + ".bak"

	if err := os.WriteFile(bakPath, data, 0644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	copied, err := os.ReadFile(bakPath)
	if err != nil {
		return "", fmt.Errorf("read back backup: %w", err)
	}

	if blake3.Sum256(copied) != blake3.Sum256(data) {
		return "", fmt.Errorf("%w: %s", ErrBackupMismatch, bakPath)
	}

	return bakPath, nil
}
