package components

import (
	"fmt"
	"strings"

	"glance/internal/tui/styles"
	"glance/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// EntryKind discriminates the tiles of the browsing grid.
type EntryKind int

const (
	// EntryFolder is a navigable folder tile.
	EntryFolder EntryKind = iota
	// EntryCreateFolder is the synthetic "create folder" tile.
	EntryCreateFolder
	// EntryTrash is the trash tile shown at the root.
	EntryTrash
	// EntryMedia is a media thumbnail tile.
	EntryMedia
)

// Entry is one tile the cursor can land on.
type Entry struct {
	Kind       EntryKind
	Folder     types.FolderEntry
	MediaIndex int
}

// BuildEntries assembles the tile list for the current view: real
// folders first, then the synthetic create-folder tile (absent in the
// trash, which forbids folder creation), the trash tile at the root,
// and finally one tile per media item.
func BuildEntries(viewingTrash, atRoot bool, folders []types.FolderEntry, mediaCount, trashCount int) []Entry {
	entries := make([]Entry, 0, len(folders)+mediaCount+2)
	for _, folder := range folders {
		entries = append(entries, Entry{Kind: EntryFolder, Folder: folder})
	}
	if !viewingTrash {
		entries = append(entries, Entry{Kind: EntryCreateFolder})
	}
	if atRoot {
		entries = append(entries, Entry{
			Kind:   EntryTrash,
			Folder: types.FolderEntry{Name: types.TrashFolderName, Count: trashCount},
		})
	}
	for i := 0; i < mediaCount; i++ {
		entries = append(entries, Entry{Kind: EntryMedia, MediaIndex: i})
	}
	return entries
}

// MediaEntryIndex returns the entry index of media item i, or -1.
func MediaEntryIndex(entries []Entry, mediaIndex int) int {
	for i, e := range entries {
		if e.Kind == EntryMedia && e.MediaIndex == mediaIndex {
			return i
		}
	}
	return -1
}

const (
	tileWidth = 24
	// thumbMarginRows is the lazy-load proximity margin: media tiles
	// within this many rows of the visible window get their
	// thumbnail fetched.
	thumbMarginRows = 2
)

// GridColumns returns how many tiles fit in width.
func GridColumns(width int) int {
	cols := width / (tileWidth + 2)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// ThumbWindow computes the half-open range of media indices whose
// thumbnails should be fetched: the rows scrolled into view extended
// by the proximity margin. firstVisibleRow/visibleRows describe the
// scrolled grid viewport in tile rows.
func ThumbWindow(mediaCount, cols, firstVisibleRow, visibleRows int) (lo, hi int) {
	if mediaCount == 0 || cols < 1 {
		return 0, 0
	}
	lo = (firstVisibleRow - thumbMarginRows) * cols
	hi = (firstVisibleRow + visibleRows + thumbMarginRows) * cols
	if lo < 0 {
		lo = 0
	}
	if hi > mediaCount {
		hi = mediaCount
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// GridContext supplies per-item state lookups to the renderer.
type GridContext struct {
	Media       []types.MediaItem
	Cursor      int // entry index under the cursor
	IsSelected  func(mediaIndex int) bool
	ThumbLoaded func(mediaIndex int) bool
}

// RenderGrid renders the tiles in rows of cols.
func RenderGrid(entries []Entry, ctx GridContext, cols int, st styles.Set) string {
	if len(entries) == 0 {
		return st.Muted.Render("Nothing here.")
	}

	rows := make([]string, 0, len(entries)/cols+1)
	for rowStart := 0; rowStart < len(entries); rowStart += cols {
		rowEnd := rowStart + cols
		if rowEnd > len(entries) {
			rowEnd = len(entries)
		}
		tiles := make([]string, 0, rowEnd-rowStart)
		for i := rowStart; i < rowEnd; i++ {
			tiles = append(tiles, renderTile(entries[i], ctx, i == ctx.Cursor, st))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n")
}

func renderTile(entry Entry, ctx GridContext, underCursor bool, st styles.Set) string {
	style := st.Tile
	if underCursor {
		style = st.TileCursor
	}

	var label string
	switch entry.Kind {
	case EntryFolder:
		label = fmt.Sprintf("📁 %s\n%s", truncate(entry.Folder.Name), itemCount(entry.Folder.Count))
	case EntryCreateFolder:
		label = "＋ New Folder\n"
	case EntryTrash:
		label = fmt.Sprintf("🗑 %s\n%s", truncate(entry.Folder.Name), itemCount(entry.Folder.Count))
	case EntryMedia:
		item := ctx.Media[entry.MediaIndex]
		label = mediaTileLabel(item, ctx, entry.MediaIndex, st)
	}

	return style.Width(tileWidth).Render(label)
}

func mediaTileLabel(item types.MediaItem, ctx GridContext, mediaIndex int, st styles.Set) string {
	check := st.Unselected.Render("[ ]")
	if ctx.IsSelected != nil && ctx.IsSelected(mediaIndex) {
		check = st.Selected.Render("[✓]")
	}

	marker := " "
	switch {
	case item.IsVideo():
		marker = "▶"
	case item.IsRaw():
		marker = "R"
	}

	// Thumbnails load lazily: a dot until the tile has scrolled near
	// the viewport and its fetch finished.
	thumb := "·"
	if ctx.ThumbLoaded != nil && ctx.ThumbLoaded(mediaIndex) {
		thumb = "▦"
	}

	return fmt.Sprintf("%s %s %s\n%s", check, marker, thumb, truncate(item.Filename))
}

func itemCount(n int) string {
	return fmt.Sprintf("(%d items)", n)
}

func truncate(s string) string {
	const max = tileWidth - 4
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
