// pkg/repair/progress.go
package repair

import (
	"github.com/vbauerster/mpb/v8"

	"github.com/creativeyann17/go-zipmend/pkg/zipmend"
)

// ProgressCallback is called for progress updates during repair
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent struct {
	Type        EventType
	ArchivePath string
	Current     int
	Total       int
	Message     string
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventArchiveStart
	EventArchiveDone
	EventComplete
	EventError
)

// ProgressBarCallback creates a progress callback that displays a progress bar
// Returns the callback function and the progress container (call Wait() after repair)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	genericCb, progress := zipmend.ProgressBarCallback()

	// Adapt repair.ProgressEvent to the generic zipmend.ProgressEvent
	callback := func(event ProgressEvent) {
		genericCb(zipmend.ProgressEvent{
			Type:    zipmend.EventType(event.Type),
			Path:    event.ArchivePath,
			Current: int64(event.Current),
			Total:   int64(event.Total),
		})
	}

	return callback, progress
}
