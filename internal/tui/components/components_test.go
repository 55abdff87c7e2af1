package components

import (
	"strings"
	"testing"

	"glance/internal/tui/styles"
	"glance/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleActionsFolderView(t *testing.T) {
	a := VisibleActions(ActionContext{})

	assert.True(t, a.SlideshowBreadcrumb)
	assert.True(t, a.Upload)
	assert.True(t, a.CreateFolder)
	assert.False(t, a.EmptyTrash)
	assert.False(t, a.RestoreAll)
	assert.False(t, a.TrashDelete)
	assert.False(t, a.DeleteSelected)
}

func TestVisibleActionsTrashView(t *testing.T) {
	a := VisibleActions(ActionContext{ViewingTrash: true})

	assert.False(t, a.SlideshowBreadcrumb)
	assert.False(t, a.Upload)
	assert.False(t, a.CreateFolder)
	assert.True(t, a.EmptyTrash)
	assert.True(t, a.RestoreAll)
}

func TestVisibleActionsLightbox(t *testing.T) {
	a := VisibleActions(ActionContext{LightboxActive: true, CurrentFilename: "shot.cr2"})
	assert.True(t, a.SlideshowLightbox)
	assert.True(t, a.TrashDelete)
	assert.False(t, a.TrashRestore)
	assert.True(t, a.DownloadRaw)

	a = VisibleActions(ActionContext{LightboxActive: true, ViewingTrash: true, CurrentFilename: "shot.cr2"})
	assert.True(t, a.TrashRestore)
	assert.False(t, a.DownloadRaw, "no RAW download inside the trash")

	a = VisibleActions(ActionContext{LightboxActive: true, CurrentFilename: "shot.jpg"})
	assert.False(t, a.DownloadRaw)
}

func TestVisibleActionsSelection(t *testing.T) {
	a := VisibleActions(ActionContext{SelectionCount: 2})
	assert.True(t, a.DeleteSelected)
	assert.False(t, a.RestoreSelected)
	assert.False(t, a.DeleteSelectedForever)

	a = VisibleActions(ActionContext{SelectionCount: 2, ViewingTrash: true})
	assert.False(t, a.DeleteSelected)
	assert.True(t, a.RestoreSelected)
	assert.True(t, a.DeleteSelectedForever)
}

func TestBuildEntriesRoot(t *testing.T) {
	folders := []types.FolderEntry{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	entries := BuildEntries(false, true, folders, 3, 7)

	require.Len(t, entries, 2+1+1+3)
	assert.Equal(t, EntryFolder, entries[0].Kind)
	assert.Equal(t, EntryCreateFolder, entries[2].Kind)
	assert.Equal(t, EntryTrash, entries[3].Kind)
	assert.Equal(t, types.TrashFolderName, entries[3].Folder.Name)
	assert.Equal(t, 7, entries[3].Folder.Count)
	assert.Equal(t, EntryMedia, entries[4].Kind)
	assert.Equal(t, 0, entries[4].MediaIndex)
	assert.Equal(t, 2, entries[6].MediaIndex)
}

func TestBuildEntriesTrashHasNoCreateTile(t *testing.T) {
	entries := BuildEntries(true, false, nil, 2, 0)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, EntryCreateFolder, e.Kind)
		assert.NotEqual(t, EntryTrash, e.Kind)
	}
}

func TestBuildEntriesSubfolder(t *testing.T) {
	entries := BuildEntries(false, false, nil, 1, 0)
	require.Len(t, entries, 2)
	assert.Equal(t, EntryCreateFolder, entries[0].Kind)
	assert.Equal(t, EntryMedia, entries[1].Kind)
}

func TestMediaEntryIndex(t *testing.T) {
	entries := BuildEntries(false, true, []types.FolderEntry{{Name: "a"}}, 2, 0)
	assert.Equal(t, 3, MediaEntryIndex(entries, 0))
	assert.Equal(t, 4, MediaEntryIndex(entries, 1))
	assert.Equal(t, -1, MediaEntryIndex(entries, 9))
}

func TestThumbWindow(t *testing.T) {
	lo, hi := ThumbWindow(100, 4, 0, 3)
	assert.Equal(t, 0, lo)
	assert.Equal(t, (3+thumbMarginRows)*4, hi)

	lo, hi = ThumbWindow(100, 4, 10, 3)
	assert.Equal(t, (10-thumbMarginRows)*4, lo)
	assert.Equal(t, (10+3+thumbMarginRows)*4, hi)

	// clamped at the tail
	lo, hi = ThumbWindow(10, 4, 10, 3)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 10, hi)

	lo, hi = ThumbWindow(0, 4, 0, 3)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func TestPendingActionTexts(t *testing.T) {
	cases := []struct {
		action PendingAction
		msg    string
		label  string
	}{
		{
			PendingAction{Kind: ActionEmptyTrash},
			"Are you sure you want to permanently delete ALL items in the trash? This action cannot be undone.",
			"Empty Trash",
		},
		{
			PendingAction{Kind: ActionRestoreAll},
			"Are you sure you want to restore ALL items from the trash to their original locations?",
			"Restore All",
		},
		{
			PendingAction{Kind: ActionRestoreMany, Paths: []string{"a", "b"}},
			"Are you sure you want to restore 2 selected item(s)?",
			"Restore 2 Item(s)",
		},
		{
			PendingAction{Kind: ActionDeleteMany, Paths: []string{"a", "b", "c"}},
			"Are you sure you want to delete 3 selected item(s)?",
			"Delete 3 Item(s)",
		},
		{
			PendingAction{Kind: ActionDeleteMany, Paths: []string{"a"}, Permanent: true},
			"Are you sure you want to permanently delete 1 selected item(s)?",
			"Delete 1 Item(s)",
		},
		{
			PendingAction{Kind: ActionDeleteFolder, FolderPath: types.Path{"2023", "summer"}},
			`Delete folder "2023/summer" and move its contents to Trash?`,
			"Delete Folder",
		},
		{
			PendingAction{Kind: ActionRestoreOne, FilePath: "x.jpg"},
			"Are you sure you want to restore this file?",
			"Restore",
		},
		{
			PendingAction{Kind: ActionDeleteForeverOne, FilePath: "x.jpg"},
			"Are you sure you want to permanently delete this? This action cannot be undone.",
			"Delete Forever",
		},
		{
			PendingAction{Kind: ActionTrashOne, FilePath: "x.jpg"},
			"Are you sure you want to move this file to Trash?",
			"Move to Trash",
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.msg, tc.action.Message(), tc.label)
		assert.Equal(t, tc.label, tc.action.ConfirmLabel())
	}
}

func TestCrumbTargets(t *testing.T) {
	path := types.Path{"2023", "summer", "beach"}
	targets := CrumbTargets(path)

	require.Len(t, targets, 4)
	assert.True(t, targets[0].IsRoot())
	assert.Equal(t, "2023", targets[1].String())
	assert.Equal(t, "2023/summer", targets[2].String())
	assert.Equal(t, "2023/summer/beach", targets[3].String())
}

func TestRenderBreadcrumbHighlightsCurrent(t *testing.T) {
	st := styles.ForTheme("dark")
	out := RenderBreadcrumb(types.Path{"2023", "summer"}, st)
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "2023")
	assert.Contains(t, out, "summer")
	assert.Contains(t, out, "⮕")
}

func TestRenderGridMarksCursorAndSelection(t *testing.T) {
	st := styles.ForTheme("dark")
	media := []types.MediaItem{
		{Filename: "a.jpg"},
		{Filename: "clip.mp4"},
		{Filename: "shot.nef"},
	}
	entries := BuildEntries(false, false, nil, len(media), 0)
	ctx := GridContext{
		Media:       media,
		Cursor:      1,
		IsSelected:  func(i int) bool { return i == 0 },
		ThumbLoaded: func(i int) bool { return i == 0 },
	}

	out := RenderGrid(entries, ctx, 2, st)
	assert.Contains(t, out, "a.jpg")
	assert.Contains(t, out, "[✓]")
	assert.Contains(t, out, "▶")
	assert.Contains(t, out, "New Folder")
}

func TestRenderGridEmpty(t *testing.T) {
	st := styles.ForTheme("dark")
	out := RenderGrid(nil, GridContext{}, 3, st)
	assert.Contains(t, out, "Nothing here")
}

func TestRenderStatusBar(t *testing.T) {
	st := styles.ForTheme("dark")
	actions := VisibleActions(ActionContext{ViewingTrash: true, SelectionCount: 2})
	out := RenderStatusBar(2, Notice{Text: "Trash emptied successfully.", IsErr: false}, actions, st)

	assert.Contains(t, out, "2 selected")
	assert.Contains(t, out, "Trash emptied successfully.")
	assert.Contains(t, out, "empty trash")
	assert.Contains(t, out, "restore all")
}

func TestTruncateLongName(t *testing.T) {
	long := strings.Repeat("x", 60)
	got := truncate(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), tileWidth-4)
}
