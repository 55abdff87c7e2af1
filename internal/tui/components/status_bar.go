package components

import (
	"fmt"
	"strings"

	"glance/internal/tui/styles"
)

// Notice is a transient status message.
type Notice struct {
	ID    int
	Text  string
	IsErr bool
}

// RenderStatusBar composes the bottom bar: selection count, the
// current notice if any, and the key help for the visible actions.
func RenderStatusBar(selected int, notice Notice, actions Actions, st styles.Set) string {
	parts := make([]string, 0, 3)
	if selected > 0 {
		parts = append(parts, st.Selected.Render(fmt.Sprintf("%d selected", selected)))
	}
	if notice.Text != "" {
		style := st.Notice
		if notice.IsErr {
			style = st.NoticeErr
		}
		parts = append(parts, style.Render(notice.Text))
	}
	if help := helpLine(actions); help != "" {
		parts = append(parts, st.Help.Render(help))
	}
	return strings.Join(parts, "  ")
}

func helpLine(a Actions) string {
	var keys []string
	add := func(ok bool, s string) {
		if ok {
			keys = append(keys, s)
		}
	}
	add(a.SlideshowBreadcrumb || a.SlideshowLightbox, "p:slideshow")
	add(a.Upload, "u:upload")
	add(a.CreateFolder, "n:new folder")
	add(a.DeleteSelected, "d:delete sel")
	add(a.RestoreSelected, "r:restore sel")
	add(a.DeleteSelectedForever, "D:delete sel forever")
	add(a.EmptyTrash, "E:empty trash")
	add(a.RestoreAll, "R:restore all")
	add(a.TrashDelete, "d:delete")
	add(a.TrashRestore, "r:restore")
	add(a.DownloadRaw, "o:save RAW")
	return strings.Join(keys, " ")
}
