// Package types holds the value types shared between the API client,
// the navigation state and the terminal UI.
package types

import (
	"path/filepath"
	"strings"
)

// TrashFolderName is the reserved folder name denoting the trash
// container. It must match the server's trash folder; servers
// configured with a different name override it at startup through
// SetTrashFolderName.
var TrashFolderName = "_Trash"

// SetTrashFolderName overrides the trash sentinel. Blank names are
// ignored so a missing config value never erases the sentinel.
func SetTrashFolderName(name string) {
	if name != "" {
		TrashFolderName = name
	}
}

// Extension sets recognised by the client. These mirror the server's
// media classification.
var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic", ".avif"}

	RawExtensions = []string{".nef", ".nrw", ".cr2", ".cr3", ".crw", ".arw", ".srf", ".sr2",
		".orf", ".raf", ".rw2", ".raw", ".dng", ".kdc", ".dcr", ".erf",
		".3fr", ".mef", ".pef", ".x3f"}

	VideoExtensions = []string{".mp4", ".mov", ".webm", ".ogg", ".avi", ".mkv"}
)

var (
	imageSet = makeSet(ImageExtensions)
	rawSet   = makeSet(RawExtensions)
	videoSet = makeSet(VideoExtensions)
)

func makeSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[ext] = true
	}
	return set
}

// Ext returns the lowercased extension of name, including the dot.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// IsImage reports whether name has a displayable image extension.
func IsImage(name string) bool { return imageSet[Ext(name)] }

// IsRaw reports whether name has a camera RAW extension.
func IsRaw(name string) bool { return rawSet[Ext(name)] }

// IsVideo reports whether name has a video extension.
func IsVideo(name string) bool { return videoSet[Ext(name)] }

// IsMedia reports whether name belongs to any recognised media set.
func IsMedia(name string) bool {
	ext := Ext(name)
	return imageSet[ext] || rawSet[ext] || videoSet[ext]
}

// MediaItem is a single file entry as reported by the server. Exactly
// one of OriginalPath / TrashPath is populated depending on whether
// the item is listed in its live location or in the trash.
type MediaItem struct {
	Filename                 string `json:"filename"`
	OriginalPath             string `json:"original_path,omitempty"`
	TrashPath                string `json:"relative_path_in_trash,omitempty"`
	OriginalPathFromMetadata string `json:"original_path_from_metadata,omitempty"`
}

// APIPath returns the path used to address this item against the
// media endpoints: the in-trash path when viewing the trash, the live
// path otherwise. The second return is false when the expected path
// is missing.
func (m MediaItem) APIPath(inTrash bool) (string, bool) {
	if inTrash {
		return m.TrashPath, m.TrashPath != ""
	}
	return m.OriginalPath, m.OriginalPath != ""
}

// IsVideo reports whether the item renders as a video.
func (m MediaItem) IsVideo() bool { return IsVideo(m.Filename) }

// IsRaw reports whether the item is a camera RAW file.
func (m MediaItem) IsRaw() bool { return IsRaw(m.Filename) }

// FolderEntry is a folder as reported by the server. Count is
// advisory.
type FolderEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
