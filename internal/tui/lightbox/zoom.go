package lightbox

import (
	"fmt"
	"math"
)

const (
	minScale  = 1.0
	maxScale  = 4.0
	wheelStep = 0.1
)

// Zoom tracks the scale and pan offset of the displayed media. The
// offset is in display pixels relative to the centered position.
type Zoom struct {
	Zoomed  bool
	Scale   float64
	OffsetX float64
	OffsetY float64
	Panning bool

	panOriginX float64
	panOriginY float64
}

// Reset returns to unzoomed, centered.
func (z *Zoom) Reset() {
	*z = Zoom{Scale: minScale}
}

// Wheel applies one zoom step around the pointer at (px, py). The
// media occupies elemW x elemH, centered inside a viewW x viewH
// viewport. Scale steps by a tenth within [1, 4]; reaching exactly 1
// resets the zoom entirely.
func (z *Zoom) Wheel(in bool, px, py, elemW, elemH, viewW, viewH float64) {
	if z.Scale == 0 {
		z.Scale = minScale
	}

	step := -wheelStep
	if in {
		step = wheelStep
	}
	// Snap onto the step grid so repeated in/out lands back on 1.0.
	newScale := math.Round((z.Scale+step)*10) / 10
	if newScale < minScale {
		newScale = minScale
	}
	if newScale > maxScale {
		newScale = maxScale
	}

	if newScale == minScale {
		z.Reset()
		return
	}

	// Keep the point under the pointer fixed while the media grows.
	centerX := viewW/2 + z.OffsetX
	centerY := viewH/2 + z.OffsetY
	growth := newScale/z.Scale - 1
	z.OffsetX -= (px - centerX) * growth
	z.OffsetY -= (py - centerY) * growth

	z.Zoomed = true
	z.Scale = newScale
	z.clamp(elemW, elemH, viewW, viewH)
}

// StartPan begins a drag at pointer (px, py). Panning requires an
// active zoom.
func (z *Zoom) StartPan(px, py float64) bool {
	if !z.Zoomed {
		return false
	}
	z.Panning = true
	z.panOriginX = px - z.OffsetX
	z.panOriginY = py - z.OffsetY
	return true
}

// PanMove updates the offset during a drag.
func (z *Zoom) PanMove(px, py, elemW, elemH, viewW, viewH float64) {
	if !z.Panning {
		return
	}
	z.OffsetX = px - z.panOriginX
	z.OffsetY = py - z.panOriginY
	z.clamp(elemW, elemH, viewW, viewH)
}

// EndPan finishes the drag.
func (z *Zoom) EndPan() {
	z.Panning = false
}

// clamp keeps the offset within half the overflow of the scaled
// media over the viewport, so an edge never crosses the viewport
// center.
func (z *Zoom) clamp(elemW, elemH, viewW, viewH float64) {
	maxX := math.Max(0, (elemW*z.Scale-viewW)/2)
	maxY := math.Max(0, (elemH*z.Scale-viewH)/2)
	z.OffsetX = math.Max(-maxX, math.Min(maxX, z.OffsetX))
	z.OffsetY = math.Max(-maxY, math.Min(maxY, z.OffsetY))
}

// Transform renders the CSS-style transform string describing the
// current zoom, useful for logging and tests.
func (z *Zoom) Transform() string {
	return fmt.Sprintf("translate(-50%%, -50%%) translate(%.1fpx, %.1fpx) scale(%.1f)",
		z.OffsetX, z.OffsetY, z.Scale)
}
