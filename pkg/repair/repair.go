// pkg/repair/repair.go
package repair

import (
	"fmt"
	"os"

	"github.com/creativeyann17/go-zipmend/internal/format"
	"github.com/creativeyann17/go-zipmend/pkg/verify"
)

// Repair rebuilds the central directory of every archive selected by opts
// and returns per-archive results.
//
// Archives are processed sequentially. Each one is read fully into memory,
// rebuilt, optionally backed up, then overwritten in a single whole-file
// write. The rewrite looks atomic to readers that open the file afterwards
// but is not crash safe; callers that need a rollback point should enable
// Backup. Concurrent repairs of the same archive must be serialized by the
// caller.
func Repair(opts *Options, progressCb ProgressCallback) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	archives, err := collectArchives(opts)
	if err != nil {
		return nil, err
	}
	if len(archives) == 0 {
		return nil, ErrNoArchives
	}

	result := &Result{ArchivesTotal: len(archives)}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventStart,
			Total:   len(archives),
			Message: fmt.Sprintf("Repairing %d archives", len(archives)),
		})
	}

	for i, path := range archives {
		if progressCb != nil {
			progressCb(ProgressEvent{
				Type:        EventArchiveStart,
				ArchivePath: path,
				Current:     i + 1,
				Total:       len(archives),
			})
		}

		info := repairArchive(path, opts)
		result.Archives = append(result.Archives, info)

		if info.Error != nil {
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", path, info.Error))
			if progressCb != nil {
				progressCb(ProgressEvent{
					Type:        EventError,
					ArchivePath: path,
					Current:     i + 1,
					Total:       len(archives),
				})
			}
			continue
		}

		result.ArchivesRepaired++
		result.EntriesTotal += info.EntryCount
		if progressCb != nil {
			progressCb(ProgressEvent{
				Type:        EventArchiveDone,
				ArchivePath: path,
				Current:     i + 1,
				Total:       len(archives),
			})
		}
	}

	if progressCb != nil {
		progressCb(ProgressEvent{
			Type:    EventComplete,
			Current: len(archives),
			Total:   len(archives),
			Message: "Repair complete",
		})
	}

	return result, nil
}

// repairArchive runs the scan/rebuild/backup/overwrite/verify pipeline for a
// single archive. Nothing is written until the whole rebuild succeeded.
func repairArchive(path string, opts *Options) ArchiveInfo {
	info := ArchiveInfo{Path: path}

	buf, err := os.ReadFile(path)
	if err != nil {
		info.Error = fmt.Errorf("read archive: %w", err)
		return info
	}
	info.OriginalSize = uint64(len(buf))

	out, entries := Rebuild(buf)
	info.EntryCount = len(entries)
	info.RepairedSize = uint64(len(out))

	if len(entries) == 0 && !opts.AllowEmpty {
		info.Error = ErrNoEntries
		return info
	}

	cdSize := 0
	for i := range entries {
		cdSize += format.CentralDirEntryLen + len(entries[i].Name)
	}
	info.CDSize = uint32(cdSize)

	localEnd := len(out) - format.EOCDLen - cdSize
	info.CDOffset = uint32(localEnd)
	if uint64(localEnd) < info.OriginalSize {
		info.TrailingDiscarded = info.OriginalSize - uint64(localEnd)
	}

	if opts.DryRun {
		return info
	}

	if opts.Backup {
		bakPath, err := writeBackup(path, buf)
		if err != nil {
			info.Error = err
			return info
		}
		info.BackupPath = bakPath
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		info.Error = fmt.Errorf("write archive: %w", err)
		return info
	}

	if !opts.SkipVerify {
		vr := verify.VerifyBuffer(out)
		if !vr.Valid {
			info.Error = fmt.Errorf("%w: %s", ErrVerifyFailed, vr.Message)
			return info
		}
		info.Verified = true
	}

	return info
}
