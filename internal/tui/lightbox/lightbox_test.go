package lightbox

import (
	"testing"

	"glance/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenValidatesBounds(t *testing.T) {
	l := New()
	assert.False(t, l.Open(-1, 3))
	assert.False(t, l.Open(3, 3))
	assert.Equal(t, PhaseClosed, l.Phase())

	require.True(t, l.Open(2, 3))
	assert.Equal(t, PhaseStatic, l.Phase())
	assert.Equal(t, 2, l.Index())
	assert.False(t, l.Loaded())
}

func TestOpenCancelsSlideshow(t *testing.T) {
	l := New()
	require.True(t, l.StartSlideshow(0, 3))
	require.Equal(t, PhaseSlideshow, l.Phase())

	require.True(t, l.Open(1, 3))
	assert.Equal(t, PhaseStatic, l.Phase())
}

func TestNextPrevWrap(t *testing.T) {
	l := New()
	require.True(t, l.Open(0, 3))

	l.Prev(nil, 3)
	assert.Equal(t, 2, l.Index())
	l.Next(nil, 3)
	assert.Equal(t, 0, l.Index())

	// composing Next count times returns to the start
	for i := 0; i < 3; i++ {
		l.Next(nil, 3)
	}
	assert.Equal(t, 0, l.Index())
}

func TestSwapStartsFadeAndResetsZoom(t *testing.T) {
	l := New()
	require.True(t, l.Open(0, 2))
	l.MediaLoaded()
	l.Zoom().Wheel(true, 50, 50, 100, 100, 100, 100)
	require.True(t, l.Zoom().Zoomed)

	current := types.MediaItem{Filename: "a.jpg"}
	l.Next(&current, 2)

	assert.False(t, l.Zoom().Zoomed)
	assert.False(t, l.Loaded())
	require.Len(t, l.Fading(), 1)
	assert.Equal(t, "a.jpg", l.Fading()[0].Filename)

	l.FadeComplete()
	assert.Empty(t, l.Fading())
}

func TestCloseClearsEverything(t *testing.T) {
	l := New()
	require.True(t, l.Open(1, 3))
	item := types.MediaItem{Filename: "b.jpg"}
	l.Next(&item, 3)

	l.Close()
	assert.Equal(t, PhaseClosed, l.Phase())
	assert.False(t, l.Active())
	assert.Equal(t, 0, l.Index())
	assert.Empty(t, l.Fading())
}

func TestSlideshowLifecycle(t *testing.T) {
	l := New()
	assert.False(t, l.StartSlideshow(0, 0), "empty list rejected")

	require.True(t, l.StartSlideshow(1, 3))
	assert.Equal(t, 1, l.Index())
	assert.True(t, l.Active())

	l.StopSlideshow()
	assert.Equal(t, PhaseStatic, l.Phase())
	assert.Equal(t, 1, l.Index(), "current item stays on screen")

	// StopSlideshow is a no-op outside a slideshow
	l.Close()
	l.StopSlideshow()
	assert.Equal(t, PhaseClosed, l.Phase())
}

func TestSetIndexAfterListShrinks(t *testing.T) {
	l := New()
	require.True(t, l.Open(4, 5))
	l.MediaLoaded()

	l.SetIndex(3)
	assert.Equal(t, 3, l.Index())
	assert.False(t, l.Loaded())
	assert.Equal(t, PhaseStatic, l.Phase())
}
