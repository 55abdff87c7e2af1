// Package components contains the pure state-to-view helpers of the
// TUI: action visibility, breadcrumb, tile grids and modal dialogs.
// Nothing in here touches the network or the terminal; everything is
// a function of the navigation and lightbox state.
package components

import "glance/pkg/types"

// ActionContext is the state that decides which affordances are
// visible.
type ActionContext struct {
	LightboxActive  bool
	ViewingTrash    bool
	SelectionCount  int
	CurrentFilename string // filename under the lightbox, if active
}

// Actions lists every affordance with its visibility.
type Actions struct {
	SlideshowBreadcrumb   bool
	SlideshowLightbox     bool
	TrashDelete           bool // move-to-trash, or permanent delete in trash view
	TrashRestore          bool
	DownloadRaw           bool
	Upload                bool
	CreateFolder          bool
	EmptyTrash            bool
	RestoreAll            bool
	DeleteSelected        bool
	RestoreSelected       bool
	DeleteSelectedForever bool
}

// VisibleActions computes affordance visibility. It is deterministic
// in the context: the same state always yields the same buttons.
func VisibleActions(ctx ActionContext) Actions {
	a := Actions{
		SlideshowBreadcrumb: !ctx.ViewingTrash,
		Upload:              !ctx.ViewingTrash,
		CreateFolder:        !ctx.ViewingTrash,
		EmptyTrash:          ctx.ViewingTrash,
		RestoreAll:          ctx.ViewingTrash,
	}

	if ctx.LightboxActive {
		a.SlideshowLightbox = true
		a.TrashDelete = true
		a.TrashRestore = ctx.ViewingTrash
		a.DownloadRaw = types.IsRaw(ctx.CurrentFilename) && !ctx.ViewingTrash
	}

	if ctx.SelectionCount > 0 {
		a.DeleteSelected = !ctx.ViewingTrash
		a.RestoreSelected = ctx.ViewingTrash
		a.DeleteSelectedForever = ctx.ViewingTrash
	}

	return a
}
