// pkg/zipmend/helpers.go
package zipmend

import (
	"fmt"
	"path/filepath"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressEvent is a generic progress event shared by the repair and verify packages
type ProgressEvent struct {
	Type    EventType
	Path    string
	Current int64
	Total   int64
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventItemStart
	EventItemDone
	EventComplete
	EventError
)

// ProgressBarCallback creates a progress callback that displays an overall
// progress bar across the processed archives.
// Returns the callback function and the progress container (call Wait() after
// the operation).
func ProgressBarCallback() (func(ProgressEvent), *mpb.Progress) {
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100),
	)

	var bar *mpb.Bar

	callback := func(event ProgressEvent) {
		switch event.Type {
		case EventStart:
			bar = progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name("Archives", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
				),
			)

		case EventItemDone, EventError:
			if bar != nil {
				bar.Increment()
			}

		case EventComplete:
			if bar != nil {
				bar.SetCurrent(event.Total)
			}
		}
	}

	return callback, progress
}

// FormatSize formats bytes into human-readable string
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	filename := filepath.Base(path)
	if len(filename) >= maxLen-3 {
		return "..." + filename[len(filename)-(maxLen-3):]
	}

	return "..." + path[len(path)-(maxLen-3):]
}
