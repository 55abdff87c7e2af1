package tui

import (
	"fmt"
	"strings"

	"glance/internal/nav"
	"glance/internal/tui/components"
	"glance/internal/tui/lightbox"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current screen. It reads model state only.
func (m *Model) View() string {
	if m.screen == screenLogin {
		return m.viewLogin()
	}

	var body string
	switch {
	case m.modal == modalConfirm:
		body = components.RenderConfirm(m.pending, m.styles, m.width)
	case m.modal == modalCreateFolder:
		body = components.RenderPrompt("Create folder", m.input.Value(), m.styles)
	case m.modal == modalUpload:
		body = components.RenderPrompt("Upload files", m.input.Value(), m.styles)
	case m.box.Active():
		body = m.viewLightbox()
	default:
		body = m.viewGrid()
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("glance"),
		components.RenderBreadcrumb(m.nav.Path(), m.styles),
	)

	actions := components.VisibleActions(components.ActionContext{
		LightboxActive:  m.box.Active(),
		ViewingTrash:    m.nav.Mode() == nav.ModeTrash,
		SelectionCount:  m.nav.SelectedCount(),
		CurrentFilename: m.currentFilename(),
	})
	status := components.RenderStatusBar(m.nav.SelectedCount(), m.notice, actions, m.styles)
	if m.uploadTotal > 0 {
		finished := m.uploadDone + len(m.uploadFail)
		progress := m.styles.Notice.Render(
			fmt.Sprintf("uploading %d/%d (%d%%)", finished, m.uploadTotal, finished*100/m.uploadTotal))
		status = progress + "  " + status
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", status))
}

func (m *Model) currentFilename() string {
	if !m.box.Active() {
		return ""
	}
	if item, ok := m.currentMedia(); ok {
		return item.Filename
	}
	return ""
}

func (m *Model) viewGrid() string {
	if m.loading {
		return m.styles.Muted.Render("Loading...")
	}

	inTrash := m.nav.Mode() == nav.ModeTrash
	ctx := components.GridContext{
		Media:  m.nav.Media(),
		Cursor: m.cursor,
		IsSelected: func(i int) bool {
			return m.nav.IsSelected(i)
		},
		ThumbLoaded: func(i int) bool {
			item, ok := m.nav.MediaAt(i)
			if !ok {
				return false
			}
			key, keyOK := item.APIPath(inTrash)
			return keyOK && m.thumbs[key]
		},
	}
	return components.RenderGrid(m.entries, ctx, components.GridColumns(m.width), m.styles)
}

func (m *Model) viewLightbox() string {
	item, ok := m.currentMedia()
	if !ok {
		return m.styles.Muted.Render("No media.")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(item.Filename))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d / %d", m.box.Index()+1, len(m.nav.Media()))))
	b.WriteString("\n\n")

	switch {
	case !m.box.Loaded():
		b.WriteString(m.styles.Muted.Render("Loading media..."))
	case item.IsVideo():
		b.WriteString("▶ video")
	default:
		b.WriteString("▦ " + m.box.Zoom().Transform())
	}

	if fading := m.box.Fading(); len(fading) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("fading: " + fading[len(fading)-1].Filename))
	}

	b.WriteString("\n\n")
	if m.box.Phase() == lightbox.PhaseSlideshow {
		b.WriteString(m.styles.Notice.Render("slideshow"))
		b.WriteString("  ")
		b.WriteString(m.styles.Help.Render("p:stop  esc:close"))
	} else {
		b.WriteString(m.styles.Help.Render("←/→:navigate  +/-:zoom  p:slideshow  esc:close"))
	}

	return m.styles.Overlay.Render(b.String())
}

func (m *Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("glance login"))
	b.WriteString("\n\n")
	b.WriteString(m.loginUser.View())
	b.WriteString("\n")
	b.WriteString(m.loginPass.View())
	b.WriteString("\n\n")
	if m.loginNotice != "" {
		b.WriteString(m.styles.NoticeErr.Render(m.loginNotice))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Help.Render("tab:switch field  enter:log in  ctrl+c:quit"))
	return m.styles.App.Render(m.styles.Overlay.Render(b.String()))
}
