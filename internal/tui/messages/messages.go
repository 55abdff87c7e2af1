// Package messages defines the bubbletea messages produced by the
// asynchronous commands of the TUI: listing fetches, mutating
// actions, uploads and timers.
package messages

import (
	"glance/pkg/types"
)

// ListingLoadedMsg carries a folder or trash listing. Generation is
// the navigation stamp captured when the fetch started; stale
// listings are discarded.
type ListingLoadedMsg struct {
	Generation uint64
	Folders    []types.FolderEntry
	Media      []types.MediaItem
	TrashCount int
	Err        error
}

// RecursiveMediaMsg carries the recursive media listing that backs a
// slideshow.
type RecursiveMediaMsg struct {
	Generation uint64
	Media      []types.MediaItem
	Err        error
}

// TrashCountMsg carries the advisory trash count shown on the trash
// tile of the root view.
type TrashCountMsg struct {
	Count int
	Err   error
}

// ActionDoneMsg reports the outcome of a confirmed modal action.
type ActionDoneMsg struct {
	Notice string // success notice to display
	Err    error
}

// FolderCreatedMsg reports the outcome of the create-folder modal.
type FolderCreatedMsg struct {
	Name string
	Err  error
}

// UploadStepMsg reports one completed (or failed) file of a
// sequential upload batch.
type UploadStepMsg struct {
	Filename string
	Err      error
}

// ThumbLoadedMsg reports a lazily fetched thumbnail.
type ThumbLoadedMsg struct {
	Key string
	Err error
}

// MediaLoadedMsg reports that the lightbox media for Key finished
// loading.
type MediaLoadedMsg struct {
	Key string
	Err error
}

// FadeDoneMsg fires when the media-swap fade-out elapses.
type FadeDoneMsg struct{}

// SlideshowTickMsg fires when the slideshow advance delay elapses.
// Generation guards against ticks armed before a navigation.
type SlideshowTickMsg struct {
	Generation uint64
}

// NoticeExpiredMsg dismisses the transient status notice.
type NoticeExpiredMsg struct {
	ID int
}

// RawSavedMsg reports the outcome of a RAW download.
type RawSavedMsg struct {
	Path string
	Err  error
}
