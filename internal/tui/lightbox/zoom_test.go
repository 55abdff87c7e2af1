package lightbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centerWheel(z *Zoom, in bool) {
	z.Wheel(in, 50, 50, 100, 100, 100, 100)
}

func TestWheelInOutIsInverse(t *testing.T) {
	var z Zoom
	z.Reset()

	for i := 0; i < 7; i++ {
		centerWheel(&z, true)
	}
	require.InDelta(t, 1.7, z.Scale, 1e-9)

	for i := 0; i < 7; i++ {
		centerWheel(&z, false)
	}
	assert.Equal(t, 1.0, z.Scale, "stepping back down lands exactly on 1")
	assert.False(t, z.Zoomed)
	assert.Zero(t, z.OffsetX)
	assert.Zero(t, z.OffsetY)
}

func TestWheelClampsAtMax(t *testing.T) {
	var z Zoom
	z.Reset()
	for i := 0; i < 50; i++ {
		centerWheel(&z, true)
	}
	assert.Equal(t, 4.0, z.Scale)
}

func TestWheelOutAtMinStaysReset(t *testing.T) {
	var z Zoom
	z.Reset()
	centerWheel(&z, false)
	assert.Equal(t, 1.0, z.Scale)
	assert.False(t, z.Zoomed)
}

func TestWheelZoomTowardsPointer(t *testing.T) {
	var z Zoom
	z.Reset()
	// zoom at the right edge of a 100x100 element in a 100x100 view
	z.Wheel(true, 100, 50, 100, 100, 100, 100)

	assert.InDelta(t, 1.1, z.Scale, 1e-9)
	// offset moves left so the right edge stays near the pointer,
	// clamped to half the overflow
	assert.InDelta(t, -5.0, z.OffsetX, 1e-9)
	assert.Zero(t, z.OffsetY)
}

func TestClampNoSlackWhenSmallerThanViewport(t *testing.T) {
	var z Zoom
	z.Reset()
	// element 50x50 in a 200x200 viewport stays centered at 1.1x
	z.Wheel(true, 0, 0, 50, 50, 200, 200)
	assert.Zero(t, z.OffsetX)
	assert.Zero(t, z.OffsetY)
}

func TestPanFlow(t *testing.T) {
	var z Zoom
	z.Reset()
	for i := 0; i < 10; i++ {
		centerWheel(&z, true)
	}
	require.InDelta(t, 2.0, z.Scale, 1e-9)

	require.True(t, z.StartPan(10, 10))
	z.PanMove(40, -10, 100, 100, 100, 100)
	assert.InDelta(t, 30.0, z.OffsetX, 1e-9)
	assert.InDelta(t, -20.0, z.OffsetY, 1e-9)

	z.EndPan()
	assert.False(t, z.Panning)
	assert.InDelta(t, 30.0, z.OffsetX, 1e-9, "offset survives pan end")
}

func TestPanRequiresZoom(t *testing.T) {
	var z Zoom
	z.Reset()
	assert.False(t, z.StartPan(0, 0))
	z.PanMove(50, 50, 100, 100, 100, 100)
	assert.Zero(t, z.OffsetX)
}

func TestPanClampedToHalfOverflow(t *testing.T) {
	var z Zoom
	z.Reset()
	for i := 0; i < 10; i++ {
		centerWheel(&z, true)
	}
	// 100px element at 2x over a 100px viewport overflows 100px, so
	// the offset clamps at 50 either way
	require.True(t, z.StartPan(0, 0))
	z.PanMove(500, -500, 100, 100, 100, 100)
	assert.InDelta(t, 50.0, z.OffsetX, 1e-9)
	assert.InDelta(t, -50.0, z.OffsetY, 1e-9)
}

func TestTransformString(t *testing.T) {
	var z Zoom
	z.Reset()
	assert.Equal(t, "translate(-50%, -50%) translate(0.0px, 0.0px) scale(1.0)", z.Transform())

	for i := 0; i < 10; i++ {
		centerWheel(&z, true)
	}
	z.StartPan(0, 0)
	z.PanMove(30, -20, 100, 100, 100, 100)
	assert.Equal(t, "translate(-50%, -50%) translate(30.0px, -20.0px) scale(2.0)", z.Transform())
}
