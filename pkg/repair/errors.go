// pkg/repair/errors.go
package repair

import "errors"

var (
	// ErrInputRequired is returned when input path is not specified
	ErrInputRequired = errors.New("input path is required")

	// ErrNoArchives is returned when directory discovery finds nothing to repair
	ErrNoArchives = errors.New("no zip archives found to repair")

	// ErrNoEntries is returned for an archive whose scan found zero local
	// entries; such an archive was likely stripped already or is not a
	// raw-repacked zip at all
	ErrNoEntries = errors.New("no local file entries found")

	// ErrBackupMismatch is returned when the backup copy read back from disk
	// does not match the source archive
	ErrBackupMismatch = errors.New("backup copy does not match source archive")

	// ErrVerifyFailed is returned when the post-repair verification pass
	// reports the rewritten archive as invalid
	ErrVerifyFailed = errors.New("archive verification failed after repair")
)
