package nav_test

import (
	"testing"

	"glance/internal/errors"
	"glance/internal/nav"
	"glance/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(names ...string) []types.MediaItem {
	media := make([]types.MediaItem, 0, len(names))
	for _, name := range names {
		media = append(media, types.MediaItem{Filename: name, OriginalPath: name})
	}
	return media
}

func TestModeDerivation(t *testing.T) {
	s := nav.NewState()
	assert.Equal(t, nav.ModeRoot, s.Mode())

	_, err := s.Navigate(types.Path{"2023", "01"})
	require.NoError(t, err)
	assert.Equal(t, nav.ModeFolder, s.Mode())

	_, err = s.Navigate(types.TrashPath())
	require.NoError(t, err)
	assert.Equal(t, nav.ModeTrash, s.Mode())
}

func TestNavigateRejectsNestedTrash(t *testing.T) {
	s := nav.NewState()
	_, err := s.Navigate(types.Path{"2023", types.TrashFolderName})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidPath(err))
	assert.True(t, s.Path().IsRoot(), "failed navigation must not move the path")
}

func TestNavigateClearsSelectionAndBumpsGeneration(t *testing.T) {
	s := nav.NewState()
	gen, err := s.Navigate(types.Path{"2023"})
	require.NoError(t, err)
	require.True(t, s.ApplyListing(gen, nil, items("a.jpg", "b.jpg")))

	s.ToggleSelect(0)
	assert.Equal(t, 1, s.SelectedCount())

	gen2, err := s.Navigate(types.Path{"2023"})
	require.NoError(t, err)
	assert.Equal(t, gen+1, gen2)
	assert.Zero(t, s.SelectedCount())
}

func TestStaleListingDiscarded(t *testing.T) {
	s := nav.NewState()
	oldGen, err := s.Navigate(types.Path{"2023"})
	require.NoError(t, err)

	// A second navigation supersedes the first fetch.
	newGen, err := s.Navigate(types.Path{"2024"})
	require.NoError(t, err)

	assert.False(t, s.ApplyListing(oldGen, nil, items("stale.jpg")))
	assert.Empty(t, s.Media())

	assert.True(t, s.ApplyListing(newGen, nil, items("fresh.jpg")))
	require.Len(t, s.Media(), 1)
	assert.Equal(t, "fresh.jpg", s.Media()[0].Filename)

	assert.False(t, s.ApplyRecursive(oldGen, items("stale.jpg")))
}

func TestListingSortedCaseInsensitive(t *testing.T) {
	s := nav.NewState()
	gen, err := s.Navigate(types.Path{"2023"})
	require.NoError(t, err)

	media := []types.MediaItem{
		{Filename: "b.jpg", OriginalPath: "2023/b.jpg"},
		{Filename: ""}, // nameless entries are dropped
		{Filename: "A.jpg", OriginalPath: "2023/A.jpg"},
		{Filename: "c.jpg", OriginalPath: "2023/c.jpg"},
	}
	require.True(t, s.ApplyListing(gen, nil, media))

	got := s.Media()
	require.Len(t, got, 3)
	assert.Equal(t, "A.jpg", got[0].Filename)
	assert.Equal(t, "b.jpg", got[1].Filename)
	assert.Equal(t, "c.jpg", got[2].Filename)
}

func TestRecursiveSortedByOriginalPath(t *testing.T) {
	s := nav.NewState()
	gen, err := s.Navigate(types.Path{})
	require.NoError(t, err)

	media := []types.MediaItem{
		{Filename: "z.jpg", OriginalPath: "2022/z.jpg"},
		{Filename: "a.jpg", OriginalPath: "2023/a.jpg"},
		{Filename: "m.jpg", OriginalPath: "2022/01/m.jpg"},
	}
	require.True(t, s.ApplyRecursive(gen, media))

	got := s.Media()
	require.Len(t, got, 3)
	assert.Equal(t, "2022/01/m.jpg", got[0].OriginalPath)
	assert.Equal(t, "2022/z.jpg", got[1].OriginalPath)
	assert.Equal(t, "2023/a.jpg", got[2].OriginalPath)
}

func TestNavigateTwiceYieldsIdenticalListing(t *testing.T) {
	// Idempotence against an unchanged backend: applying the same
	// listing after re-navigating renders the same media.
	s := nav.NewState()
	listing := items("b.jpg", "a.jpg")

	gen, err := s.Navigate(types.Path{"2023"})
	require.NoError(t, err)
	require.True(t, s.ApplyListing(gen, nil, listing))
	first := s.Media()

	gen, err = s.Navigate(types.Path{"2023"})
	require.NoError(t, err)
	require.True(t, s.ApplyListing(gen, nil, listing))
	assert.Equal(t, first, s.Media())
}

func TestToggleSelectAllInvolution(t *testing.T) {
	s := nav.NewState()
	gen, err := s.Navigate(types.Path{"2023"})
	require.NoError(t, err)
	require.True(t, s.ApplyListing(gen, nil, items("a.jpg", "b.jpg", "c.jpg")))

	s.ToggleSelectAll()
	assert.Equal(t, 3, s.SelectedCount())
	s.ToggleSelectAll()
	assert.Zero(t, s.SelectedCount())
}

func TestSelectionUsesTrashPathInTrash(t *testing.T) {
	s := nav.NewState()
	gen, err := s.Navigate(types.TrashPath())
	require.NoError(t, err)
	media := []types.MediaItem{
		{Filename: "img1.jpg", TrashPath: "img1.jpg", OriginalPathFromMetadata: "2023/img1.jpg"},
	}
	require.True(t, s.ApplyListing(gen, nil, media))

	s.ToggleSelect(0)
	assert.Equal(t, []string{"img1.jpg"}, s.Selected())
	assert.True(t, s.IsSelected(0))

	s.ToggleSelect(0)
	assert.Empty(t, s.Selected())
}

func TestToggleSelectOutOfRange(t *testing.T) {
	s := nav.NewState()
	s.ToggleSelect(5)
	assert.Zero(t, s.SelectedCount())
	assert.False(t, s.IsSelected(0))
}
