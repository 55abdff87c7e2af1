// Package lightbox holds the media viewer state machine: which item
// is shown, the fade of the previous item on swap, zoom and pan, and
// the slideshow phase. It knows nothing about rendering or the
// network.
package lightbox

import "glance/pkg/types"

// Phase is the viewer phase.
type Phase int

const (
	// PhaseClosed means no media is being viewed.
	PhaseClosed Phase = iota
	// PhaseStatic shows one item under manual navigation.
	PhaseStatic
	// PhaseSlideshow advances automatically on a timer.
	PhaseSlideshow
)

// Lightbox is the viewer state.
type Lightbox struct {
	phase  Phase
	index  int
	zoom   Zoom
	fading []types.MediaItem
	loaded bool
}

// New returns a closed lightbox.
func New() *Lightbox {
	return &Lightbox{}
}

// Phase returns the current phase.
func (l *Lightbox) Phase() Phase { return l.phase }

// Active reports whether the viewer is open in any phase.
func (l *Lightbox) Active() bool { return l.phase != PhaseClosed }

// Index returns the index of the item being shown.
func (l *Lightbox) Index() int { return l.index }

// Zoom exposes the zoom state for mutation by input handlers.
func (l *Lightbox) Zoom() *Zoom { return &l.zoom }

// Loaded reports whether the current media finished loading.
func (l *Lightbox) Loaded() bool { return l.loaded }

// Open shows item index out of count. Opening from a running
// slideshow cancels it. Returns false for out-of-range indices.
func (l *Lightbox) Open(index, count int) bool {
	if index < 0 || index >= count {
		return false
	}
	l.phase = PhaseStatic
	l.index = index
	l.zoom.Reset()
	l.loaded = false
	return true
}

// Close resets the viewer completely.
func (l *Lightbox) Close() {
	l.phase = PhaseClosed
	l.index = 0
	l.zoom.Reset()
	l.fading = nil
	l.loaded = false
}

// Next advances to the following item, wrapping at the end. The
// outgoing item starts fading.
func (l *Lightbox) Next(current *types.MediaItem, count int) {
	if !l.Active() || count == 0 {
		return
	}
	l.beginSwap(current)
	l.index = (l.index + 1) % count
}

// Prev steps back to the preceding item, wrapping at the start.
func (l *Lightbox) Prev(current *types.MediaItem, count int) {
	if !l.Active() || count == 0 {
		return
	}
	l.beginSwap(current)
	l.index = (l.index - 1 + count) % count
}

// SetIndex repositions the viewer after the backing list changed,
// keeping phase and zoom reset semantics of a swap.
func (l *Lightbox) SetIndex(index int) {
	l.index = index
	l.zoom.Reset()
	l.loaded = false
}

func (l *Lightbox) beginSwap(current *types.MediaItem) {
	l.zoom.Reset()
	l.loaded = false
	if current != nil {
		l.fading = append(l.fading, *current)
	}
}

// MediaLoaded marks the incoming media as displayed.
func (l *Lightbox) MediaLoaded() { l.loaded = true }

// Fading returns the items still fading out.
func (l *Lightbox) Fading() []types.MediaItem { return l.fading }

// FadeComplete drops the finished fade-outs.
func (l *Lightbox) FadeComplete() { l.fading = nil }

// StartSlideshow begins auto-advance at index. Returns false when
// the list is empty or index is out of range.
func (l *Lightbox) StartSlideshow(index, count int) bool {
	if index < 0 || index >= count {
		return false
	}
	l.phase = PhaseSlideshow
	l.index = index
	l.zoom.Reset()
	l.loaded = false
	return true
}

// StopSlideshow drops back to manual viewing, keeping the current
// item on screen.
func (l *Lightbox) StopSlideshow() {
	if l.phase == PhaseSlideshow {
		l.phase = PhaseStatic
	}
}
