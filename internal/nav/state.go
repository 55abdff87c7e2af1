// Package nav holds the navigation state machine: the current path,
// the displayed listing and the selection set. It is deliberately
// free of any UI or network dependency so the transition logic is
// testable on its own; loaders fetch through the API client and feed
// results back in.
package nav

import (
	"sort"
	"strings"

	"glance/internal/errors"
	"glance/pkg/types"
)

// Mode is the view mode derived from the current path.
type Mode int

const (
	// ModeRoot is the top-level folder view.
	ModeRoot Mode = iota
	// ModeFolder is a non-trash sub-folder view.
	ModeFolder
	// ModeTrash is the trash container view.
	ModeTrash
)

// State is the navigation state. All mutation goes through named
// transition functions; the single bubbletea loop is the only writer.
type State struct {
	path       types.Path
	folders    []types.FolderEntry
	media      []types.MediaItem
	trashCount int
	selected   map[string]bool
	generation uint64
}

// NewState returns a State positioned at the root with nothing
// loaded.
func NewState() *State {
	return &State{
		path:     types.Path{},
		selected: make(map[string]bool),
	}
}

// Mode derives the view mode from the current path.
func (s *State) Mode() Mode {
	switch {
	case s.path.IsTrash():
		return ModeTrash
	case s.path.IsRoot():
		return ModeRoot
	default:
		return ModeFolder
	}
}

// Path returns the current path.
func (s *State) Path() types.Path { return s.path }

// Generation returns the stamp of the most recent navigation. Loader
// results carrying an older stamp are stale and must be discarded.
func (s *State) Generation() uint64 { return s.generation }

// Navigate moves to path: it clears the selection and bumps the
// generation, invalidating any in-flight listing fetch. The trash
// sentinel is rejected anywhere but as the sole segment.
func (s *State) Navigate(path types.Path) (uint64, error) {
	for i, seg := range path {
		if seg == types.TrashFolderName && (i != 0 || len(path) != 1) {
			return s.generation, errors.NewKind("trash folder cannot be nested", errors.InvalidPath)
		}
	}
	s.path = path.Clone()
	s.selected = make(map[string]bool)
	s.generation++
	return s.generation, nil
}

// ApplyListing installs a folder/trash listing fetched under gen.
// Media items are sorted case-insensitively by filename; items
// without a filename are dropped. Returns false when the listing is
// stale.
func (s *State) ApplyListing(gen uint64, folders []types.FolderEntry, media []types.MediaItem) bool {
	if gen != s.generation {
		return false
	}
	s.folders = folders
	s.media = SortMediaByFilename(media)
	return true
}

// ApplyRecursive installs a recursive (slideshow) listing fetched
// under gen, sorted case-insensitively by full original path.
// Returns false when the listing is stale.
func (s *State) ApplyRecursive(gen uint64, media []types.MediaItem) bool {
	if gen != s.generation {
		return false
	}
	s.media = SortMediaByOriginalPath(media)
	return true
}

// SetTrashCount records the advisory trash item count shown on the
// trash tile.
func (s *State) SetTrashCount(n int) { s.trashCount = n }

// TrashCount returns the advisory trash item count.
func (s *State) TrashCount() int { return s.trashCount }

// Folders returns the displayed folder entries.
func (s *State) Folders() []types.FolderEntry { return s.folders }

// Media returns the displayed media items.
func (s *State) Media() []types.MediaItem { return s.media }

// MediaAt returns the media item at index i, if in range.
func (s *State) MediaAt(i int) (types.MediaItem, bool) {
	if i < 0 || i >= len(s.media) {
		return types.MediaItem{}, false
	}
	return s.media[i], true
}

// selectionKey addresses an item in the selection set: the in-trash
// path when viewing the trash, the live path otherwise.
func (s *State) selectionKey(item types.MediaItem) (string, bool) {
	return item.APIPath(s.Mode() == ModeTrash)
}

// ToggleSelect flips the selection of the media item at index i.
func (s *State) ToggleSelect(i int) {
	item, ok := s.MediaAt(i)
	if !ok {
		return
	}
	key, ok := s.selectionKey(item)
	if !ok {
		return
	}
	if s.selected[key] {
		delete(s.selected, key)
	} else {
		s.selected[key] = true
	}
}

// IsSelected reports whether the media item at index i is selected.
func (s *State) IsSelected(i int) bool {
	item, ok := s.MediaAt(i)
	if !ok {
		return false
	}
	key, ok := s.selectionKey(item)
	if !ok {
		return false
	}
	return s.selected[key]
}

// ToggleSelectAll selects every displayed item, or clears the
// selection when everything is already selected.
func (s *State) ToggleSelectAll() {
	selectable := 0
	for _, item := range s.media {
		if _, ok := s.selectionKey(item); ok {
			selectable++
		}
	}
	if selectable > 0 && len(s.selected) == selectable {
		s.selected = make(map[string]bool)
		return
	}
	for _, item := range s.media {
		if key, ok := s.selectionKey(item); ok {
			s.selected[key] = true
		}
	}
}

// ClearSelection empties the selection set.
func (s *State) ClearSelection() {
	s.selected = make(map[string]bool)
}

// SelectedCount returns the number of selected items.
func (s *State) SelectedCount() int { return len(s.selected) }

// Selected returns the selected paths in stable order.
func (s *State) Selected() []string {
	paths := make([]string, 0, len(s.selected))
	for key := range s.selected {
		paths = append(paths, key)
	}
	sort.Strings(paths)
	return paths
}

// SortMediaByFilename sorts items case-insensitively by filename,
// dropping items with a missing filename. Used for folder and trash
// listings.
func SortMediaByFilename(media []types.MediaItem) []types.MediaItem {
	out := make([]types.MediaItem, 0, len(media))
	for _, item := range media {
		if item.Filename != "" {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Filename) < strings.ToLower(out[j].Filename)
	})
	return out
}

// SortMediaByOriginalPath sorts items case-insensitively by full
// original path, dropping items with a missing filename. Used for
// slideshow (recursive) listings.
func SortMediaByOriginalPath(media []types.MediaItem) []types.MediaItem {
	out := make([]types.MediaItem, 0, len(media))
	for _, item := range media {
		if item.Filename != "" {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].OriginalPath) < strings.ToLower(out[j].OriginalPath)
	})
	return out
}
