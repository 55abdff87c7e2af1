// Package tui implements the interactive gallery browser. The model
// follows the Elm shape: all state lives here, messages from
// asynchronous commands mutate it, and View renders it without side
// effects.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"glance/internal/api"
	"glance/internal/config"
	"glance/internal/errors"
	"glance/internal/log"
	"glance/internal/nav"
	"glance/internal/tui/components"
	"glance/internal/tui/lightbox"
	"glance/internal/tui/messages"
	"glance/internal/tui/styles"
	"glance/pkg/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Backend is the slice of the API client the browser uses. It is an
// interface so tests can drive the model without a server;
// *api.Client satisfies it.
type Backend interface {
	Folders(ctx context.Context, path types.Path) (*api.FolderListing, error)
	RecursiveMedia(ctx context.Context, path types.Path) ([]types.MediaItem, error)
	TrashContent(ctx context.Context) (*api.TrashListing, error)
	MoveToTrash(ctx context.Context, filePath string) error
	RestoreFile(ctx context.Context, filePath string) error
	DeleteFileForever(ctx context.Context, filePath string) error
	DeleteFolder(ctx context.Context, folderPath types.Path) error
	EmptyTrash(ctx context.Context) error
	RestoreAll(ctx context.Context) error
	CreateFolder(ctx context.Context, parent types.Path, name string) error
	DeleteMultiple(ctx context.Context, paths []string, permanent bool) error
	RestoreMultiple(ctx context.Context, paths []string) error
	UploadFile(ctx context.Context, dest types.Path, filename string, content io.Reader) error
	Thumbnail(ctx context.Context, path string) (io.ReadCloser, error)
	Media(ctx context.Context, path string) (io.ReadCloser, error)
	DownloadOriginalRAW(ctx context.Context, path string) (io.ReadCloser, error)
}

// Credentials persists or clears the login used by the backend.
type Credentials interface {
	Set(user, pass string) error
	Clear() error
	Has() bool
}

type screen int

const (
	screenLogin screen = iota
	screenBrowse
)

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirm
	modalCreateFolder
	modalUpload
)

var noticeDuration = 4 * time.Second

// Model is the bubbletea model of the browser.
type Model struct {
	cfg     *config.Config
	client  Backend
	creds   Credentials
	nav     *nav.State
	box     *lightbox.Lightbox
	styles  styles.Set
	screen  screen
	width   int
	height  int
	scroll  int // first visible grid row
	cursor  int // entry index
	entries []components.Entry

	modal   modalKind
	pending components.PendingAction
	input   textinput.Model

	loginUser   textinput.Model
	loginPass   textinput.Model
	loginField  int
	loginNotice string

	notice    components.Notice
	noticeSeq int

	thumbs    map[string]bool
	requested map[string]bool

	uploadQueue []string
	uploadDest  types.Path
	uploadTotal int
	uploadDone  int
	uploadFail  []string

	// lastAction remembers the confirmed action so the refresh can
	// tell whether the folder being viewed was just deleted.
	lastAction components.PendingAction

	// slideshowFrom is the index the next slideshow starts at, set
	// when the toggle is pressed.
	slideshowFrom int

	// keepLightbox holds the lightbox open across the refresh that
	// follows a mutating action, clamping its index to the new list.
	keepLightbox bool
	loading      bool
}

// New builds the model. The session decides the starting screen.
func New(cfg *config.Config, client Backend, creds Credentials) *Model {
	m := &Model{
		cfg:       cfg,
		client:    client,
		creds:     creds,
		nav:       nav.NewState(),
		box:       lightbox.New(),
		styles:    styles.ForTheme(cfg.Theme.Name),
		thumbs:    map[string]bool{},
		requested: map[string]bool{},
		width:     80,
		height:    24,
	}

	m.loginUser = textinput.New()
	m.loginUser.Placeholder = "username"
	m.loginUser.Focus()
	m.loginPass = textinput.New()
	m.loginPass.Placeholder = "password"
	m.loginPass.EchoMode = textinput.EchoPassword

	if creds.Has() {
		m.screen = screenBrowse
	} else {
		m.screen = screenLogin
	}
	return m
}

// Init starts the first listing fetch when already logged in.
func (m *Model) Init() tea.Cmd {
	if m.screen == screenBrowse {
		return m.navigateCmd(m.nav.Path())
	}
	return textinput.Blink
}

// navigateCmd bumps the navigation generation and fetches the
// listing for path. Invalid paths surface as a notice.
func (m *Model) navigateCmd(path types.Path) tea.Cmd {
	gen, err := m.nav.Navigate(path)
	if err != nil {
		return m.showError(err)
	}
	m.cursor = 0
	m.scroll = 0
	m.loading = true
	if !m.keepLightbox {
		m.box.Close()
	}
	cmds := []tea.Cmd{m.fetchListing(gen, m.nav.Path())}
	if m.nav.Path().IsRoot() {
		cmds = append(cmds, m.fetchTrashCount())
	}
	return tea.Batch(cmds...)
}

func (m *Model) fetchListing(gen uint64, path types.Path) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		if path.IsTrash() {
			listing, err := client.TrashContent(ctx)
			if err != nil {
				return messages.ListingLoadedMsg{Generation: gen, Err: err}
			}
			return messages.ListingLoadedMsg{Generation: gen, Media: listing.Files, TrashCount: listing.Count}
		}
		listing, err := client.Folders(ctx, path)
		if err != nil {
			return messages.ListingLoadedMsg{Generation: gen, Err: err}
		}
		return messages.ListingLoadedMsg{Generation: gen, Folders: listing.Folders, Media: listing.Files}
	}
}

func (m *Model) fetchTrashCount() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		listing, err := client.TrashContent(context.Background())
		if err != nil {
			return messages.TrashCountMsg{Err: err}
		}
		return messages.TrashCountMsg{Count: listing.Count}
	}
}

func (m *Model) fetchRecursive(gen uint64, path types.Path) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		media, err := client.RecursiveMedia(context.Background(), path)
		return messages.RecursiveMediaMsg{Generation: gen, Media: media, Err: err}
	}
}

func (m *Model) fetchThumb(key string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		rc, err := client.Thumbnail(context.Background(), key)
		if err == nil {
			_, err = io.Copy(io.Discard, rc)
			rc.Close()
		}
		return messages.ThumbLoadedMsg{Key: key, Err: err}
	}
}

func (m *Model) fetchMedia(item types.MediaItem) tea.Cmd {
	key, ok := item.APIPath(m.nav.Mode() == nav.ModeTrash)
	if !ok {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		rc, err := client.Media(context.Background(), key)
		if err == nil {
			_, err = io.Copy(io.Discard, rc)
			rc.Close()
		}
		return messages.MediaLoadedMsg{Key: key, Err: err}
	}
}

func (m *Model) fadeCmd() tea.Cmd {
	return tea.Tick(time.Duration(m.cfg.Lightbox.FadeMS)*time.Millisecond, func(time.Time) tea.Msg {
		return messages.FadeDoneMsg{}
	})
}

func (m *Model) slideshowTick() tea.Cmd {
	gen := m.nav.Generation()
	return tea.Tick(time.Duration(m.cfg.Slideshow.DelayMS)*time.Millisecond, func(time.Time) tea.Msg {
		return messages.SlideshowTickMsg{Generation: gen}
	})
}

func (m *Model) showNotice(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	m.notice = components.Notice{ID: m.noticeSeq, Text: text, IsErr: isErr}
	id := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return messages.NoticeExpiredMsg{ID: id}
	})
}

func (m *Model) showError(err error) tea.Cmd {
	log.Errorf("action failed: %v", err)
	return m.showNotice(fmt.Sprintf("Action failed: %v", err), true)
}

// runAction executes a confirmed pending action.
func (m *Model) runAction(a components.PendingAction) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		notice := "Action completed."
		switch a.Kind {
		case components.ActionEmptyTrash:
			err = client.EmptyTrash(ctx)
			notice = "Trash emptied successfully."
		case components.ActionRestoreAll:
			err = client.RestoreAll(ctx)
			notice = "All items restored."
		case components.ActionRestoreMany:
			err = client.RestoreMultiple(ctx, a.Paths)
			notice = fmt.Sprintf("%d item(s) restored.", len(a.Paths))
		case components.ActionDeleteMany:
			err = client.DeleteMultiple(ctx, a.Paths, a.Permanent)
			notice = fmt.Sprintf("%d item(s) deleted.", len(a.Paths))
		case components.ActionDeleteFolder:
			err = client.DeleteFolder(ctx, a.FolderPath)
			notice = "Folder moved to trash."
		case components.ActionRestoreOne:
			err = client.RestoreFile(ctx, a.FilePath)
			notice = "File restored."
		case components.ActionDeleteForeverOne:
			err = client.DeleteFileForever(ctx, a.FilePath)
			notice = "File permanently deleted."
		case components.ActionTrashOne:
			err = client.MoveToTrash(ctx, a.FilePath)
			notice = "File moved to trash."
		}
		return messages.ActionDoneMsg{Notice: notice, Err: err}
	}
}

func (m *Model) createFolderCmd(parent types.Path, name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.CreateFolder(context.Background(), parent, name)
		return messages.FolderCreatedMsg{Name: name, Err: err}
	}
}

// uploadNext uploads the head of the queue. Failures are tolerated
// per file so one bad upload never aborts the batch.
func (m *Model) uploadNext() tea.Cmd {
	if len(m.uploadQueue) == 0 {
		return nil
	}
	local := m.uploadQueue[0]
	m.uploadQueue = m.uploadQueue[1:]
	dest := m.uploadDest
	client := m.client
	return func() tea.Msg {
		name := filepath.Base(local)
		f, err := os.Open(local)
		if err != nil {
			return messages.UploadStepMsg{Filename: name, Err: err}
		}
		defer f.Close()
		err = client.UploadFile(context.Background(), dest, name, f)
		return messages.UploadStepMsg{Filename: name, Err: err}
	}
}

func (m *Model) saveRAW(item types.MediaItem) tea.Cmd {
	key, ok := item.APIPath(false)
	if !ok {
		return nil
	}
	client := m.client
	name := item.Filename
	return func() tea.Msg {
		rc, err := client.DownloadOriginalRAW(context.Background(), key)
		if err != nil {
			return messages.RawSavedMsg{Err: err}
		}
		defer rc.Close()
		out, err := os.Create(name)
		if err != nil {
			return messages.RawSavedMsg{Err: err}
		}
		defer out.Close()
		if _, err := io.Copy(out, rc); err != nil {
			return messages.RawSavedMsg{Err: err}
		}
		return messages.RawSavedMsg{Path: name}
	}
}

// rebuildEntries recomputes the tile list and clamps the cursor.
func (m *Model) rebuildEntries() {
	mode := m.nav.Mode()
	m.entries = components.BuildEntries(
		mode == nav.ModeTrash,
		mode == nav.ModeRoot,
		m.nav.Folders(),
		len(m.nav.Media()),
		m.nav.TrashCount(),
	)
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// thumbCmds requests thumbnails for media near the visible rows,
// once each.
func (m *Model) thumbCmds() tea.Cmd {
	media := m.nav.Media()
	cols := components.GridColumns(m.width)
	lo, hi := components.ThumbWindow(len(media), cols, m.scroll, m.visibleRows())
	inTrash := m.nav.Mode() == nav.ModeTrash
	var cmds []tea.Cmd
	for i := lo; i < hi; i++ {
		key, ok := media[i].APIPath(inTrash)
		if !ok || m.requested[key] {
			continue
		}
		m.requested[key] = true
		cmds = append(cmds, m.fetchThumb(key))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) visibleRows() int {
	// four terminal rows per tile row, minus header and status chrome
	rows := (m.height - 6) / 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) currentMedia() (types.MediaItem, bool) {
	return m.nav.MediaAt(m.box.Index())
}

// Update is the single message handler.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.thumbCmds()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenLogin {
			return m.updateLogin(msg)
		}
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		if m.box.Active() {
			return m.updateLightbox(msg)
		}
		return m.updateBrowse(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case messages.ListingLoadedMsg:
		return m.onListing(msg)

	case messages.RecursiveMediaMsg:
		return m.onRecursive(msg)

	case messages.TrashCountMsg:
		if msg.Err == nil {
			m.nav.SetTrashCount(msg.Count)
			m.rebuildEntries()
		}
		return m, nil

	case messages.ActionDoneMsg:
		if msg.Err != nil {
			return m.onBackendError(msg.Err)
		}
		cmd := m.showNotice(msg.Notice, false)
		// deleting the folder being viewed leaves the path dangling;
		// step up one segment before reloading
		if m.lastAction.Kind == components.ActionDeleteFolder && m.lastAction.FolderPath.Equal(m.nav.Path()) {
			return m, tea.Batch(cmd, m.navigateCmd(m.nav.Path().Parent()))
		}
		return m, tea.Batch(cmd, m.refreshAfterAction())

	case messages.FolderCreatedMsg:
		m.modal = modalNone
		if msg.Err != nil {
			return m.onBackendError(msg.Err)
		}
		cmd := m.showNotice(fmt.Sprintf("Folder %q created.", msg.Name), false)
		return m, tea.Batch(cmd, m.navigateCmd(m.nav.Path()))

	case messages.UploadStepMsg:
		return m.onUploadStep(msg)

	case messages.ThumbLoadedMsg:
		if msg.Err == nil {
			m.thumbs[msg.Key] = true
		}
		return m, nil

	case messages.MediaLoadedMsg:
		if current, ok := m.currentMedia(); ok {
			if key, keyOK := current.APIPath(m.nav.Mode() == nav.ModeTrash); keyOK && key == msg.Key {
				m.box.MediaLoaded()
			}
		}
		return m, nil

	case messages.FadeDoneMsg:
		m.box.FadeComplete()
		return m, nil

	case messages.SlideshowTickMsg:
		return m.onSlideshowTick(msg)

	case messages.NoticeExpiredMsg:
		if m.notice.ID == msg.ID {
			m.notice = components.Notice{}
		}
		return m, nil

	case messages.RawSavedMsg:
		if msg.Err != nil {
			return m.onBackendError(msg.Err)
		}
		return m, m.showNotice(fmt.Sprintf("Saved %s.", msg.Path), false)
	}

	return m, nil
}

func (m *Model) onListing(msg messages.ListingLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.loading = false
		m.keepLightbox = false
		return m.onBackendError(msg.Err)
	}
	if !m.nav.ApplyListing(msg.Generation, msg.Folders, msg.Media) {
		return m, nil
	}
	m.loading = false
	if m.nav.Mode() == nav.ModeTrash {
		m.nav.SetTrashCount(msg.TrashCount)
	}
	m.rebuildEntries()

	var cmds []tea.Cmd
	if m.keepLightbox {
		m.keepLightbox = false
		count := len(m.nav.Media())
		if count == 0 {
			m.box.Close()
		} else {
			idx := m.box.Index()
			if idx > count-1 {
				idx = count - 1
			}
			m.box.SetIndex(idx)
			if item, ok := m.nav.MediaAt(idx); ok {
				cmds = append(cmds, m.fetchMedia(item))
			}
		}
	}
	if cmd := m.thumbCmds(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) onRecursive(msg messages.RecursiveMediaMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.onBackendError(msg.Err)
	}
	if !m.nav.ApplyRecursive(msg.Generation, msg.Media) {
		return m, nil
	}
	m.rebuildEntries()
	count := len(m.nav.Media())
	if count == 0 {
		return m, m.showNotice("No media to play.", false)
	}
	// resume from the item that was on screen when the toggle was
	// pressed, falling back to the start
	idx := m.slideshowFrom
	if idx < 0 || idx >= count {
		idx = 0
	}
	if !m.box.StartSlideshow(idx, count) {
		return m, nil
	}
	var cmds []tea.Cmd
	if item, ok := m.nav.MediaAt(idx); ok {
		cmds = append(cmds, m.fetchMedia(item))
	}
	cmds = append(cmds, m.slideshowTick())
	return m, tea.Batch(cmds...)
}

func (m *Model) onSlideshowTick(msg messages.SlideshowTickMsg) (tea.Model, tea.Cmd) {
	if m.box.Phase() != lightbox.PhaseSlideshow || msg.Generation != m.nav.Generation() {
		return m, nil
	}
	count := len(m.nav.Media())
	if count == 0 {
		m.box.Close()
		return m, nil
	}
	current, _ := m.currentMedia()
	m.box.Next(&current, count)
	var cmds []tea.Cmd
	if item, ok := m.currentMedia(); ok {
		cmds = append(cmds, m.fetchMedia(item))
	}
	cmds = append(cmds, m.fadeCmd(), m.slideshowTick())
	return m, tea.Batch(cmds...)
}

func (m *Model) onUploadStep(msg messages.UploadStepMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Warnf("upload failed for %s: %v", msg.Filename, msg.Err)
		m.uploadFail = append(m.uploadFail, msg.Filename)
	} else {
		m.uploadDone++
	}
	if next := m.uploadNext(); next != nil {
		return m, next
	}

	var cmd tea.Cmd
	if len(m.uploadFail) == 0 {
		cmd = m.showNotice(fmt.Sprintf("Uploaded %d file(s).", m.uploadDone), false)
	} else {
		cmd = m.showNotice(
			fmt.Sprintf("Uploaded %d file(s), %d failed: %v", m.uploadDone, len(m.uploadFail), m.uploadFail),
			true,
		)
	}
	m.uploadTotal = 0
	m.uploadDone = 0
	m.uploadFail = nil
	return m, tea.Batch(cmd, m.navigateCmd(m.nav.Path()))
}

// onBackendError routes errors: expired credentials drop back to the
// login screen, everything else becomes a notice.
func (m *Model) onBackendError(err error) (tea.Model, tea.Cmd) {
	if errors.IsUnauthorized(err) {
		if clearErr := m.creds.Clear(); clearErr != nil {
			log.Warnf("clearing credentials: %v", clearErr)
		}
		m.screen = screenLogin
		m.loginNotice = "Session expired, log in again."
		m.box.Close()
		m.modal = modalNone
		return m, textinput.Blink
	}
	return m, m.showError(err)
}

// refreshAfterAction reloads the current listing while holding the
// lightbox open so its index can be clamped to the new list.
func (m *Model) refreshAfterAction() tea.Cmd {
	if m.box.Active() {
		m.keepLightbox = true
	}
	return m.navigateCmd(m.nav.Path())
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := components.GridColumns(m.width)

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-cols)
	case "down", "j":
		m.moveCursor(cols)
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)

	case "enter":
		return m.activateEntry()

	case " ":
		if e, ok := m.entryAtCursor(); ok && e.Kind == components.EntryMedia {
			m.nav.ToggleSelect(e.MediaIndex)
		}

	case "a":
		m.nav.ToggleSelectAll()

	case "esc":
		if m.nav.SelectedCount() > 0 {
			m.nav.ClearSelection()
			return m, nil
		}
		return m.goUp()

	case "backspace":
		return m.goUp()

	case "p":
		if m.nav.Mode() != nav.ModeTrash {
			m.slideshowFrom = 0
			return m, m.fetchRecursive(m.nav.Generation(), m.nav.Path())
		}

	case "n":
		if m.nav.Mode() != nav.ModeTrash {
			m.openCreateFolder()
			return m, textinput.Blink
		}

	case "u":
		if m.nav.Mode() != nav.ModeTrash {
			m.openUpload()
			return m, textinput.Blink
		}

	case "d":
		return m.requestDelete()

	case "r":
		return m.requestRestore()

	case "D":
		// delete the folder currently being viewed
		if m.nav.Mode() == nav.ModeFolder {
			m.confirm(components.PendingAction{
				Kind:       components.ActionDeleteFolder,
				FolderPath: m.nav.Path(),
			})
		}

	case "E":
		if m.nav.Mode() == nav.ModeTrash {
			m.confirm(components.PendingAction{Kind: components.ActionEmptyTrash})
		}

	case "R":
		if m.nav.Mode() == nav.ModeTrash {
			m.confirm(components.PendingAction{Kind: components.ActionRestoreAll})
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.entries) {
		return
	}
	m.cursor = next

	cols := components.GridColumns(m.width)
	row := m.cursor / cols
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+m.visibleRows() {
		m.scroll = row - m.visibleRows() + 1
	}
}

func (m *Model) entryAtCursor() (components.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return components.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) activateEntry() (tea.Model, tea.Cmd) {
	e, ok := m.entryAtCursor()
	if !ok {
		return m, nil
	}
	switch e.Kind {
	case components.EntryFolder:
		return m, m.navigateCmd(m.nav.Path().Child(e.Folder.Name))
	case components.EntryTrash:
		return m, m.navigateCmd(types.TrashPath())
	case components.EntryCreateFolder:
		m.openCreateFolder()
		return m, textinput.Blink
	case components.EntryMedia:
		if m.box.Open(e.MediaIndex, len(m.nav.Media())) {
			if item, itemOK := m.nav.MediaAt(e.MediaIndex); itemOK {
				return m, m.fetchMedia(item)
			}
		}
	}
	return m, nil
}

func (m *Model) goUp() (tea.Model, tea.Cmd) {
	if m.nav.Path().IsRoot() {
		return m, nil
	}
	return m, m.navigateCmd(m.nav.Path().Parent())
}

func (m *Model) requestDelete() (tea.Model, tea.Cmd) {
	inTrash := m.nav.Mode() == nav.ModeTrash
	if m.nav.SelectedCount() > 0 {
		m.confirm(components.PendingAction{
			Kind:      components.ActionDeleteMany,
			Paths:     m.nav.Selected(),
			Permanent: inTrash,
		})
		return m, nil
	}
	e, ok := m.entryAtCursor()
	if !ok {
		return m, nil
	}
	switch e.Kind {
	case components.EntryFolder:
		if !inTrash {
			m.confirm(components.PendingAction{
				Kind:       components.ActionDeleteFolder,
				FolderPath: m.nav.Path().Child(e.Folder.Name),
			})
		}
	case components.EntryMedia:
		item, itemOK := m.nav.MediaAt(e.MediaIndex)
		if !itemOK {
			return m, nil
		}
		key, keyOK := item.APIPath(inTrash)
		if !keyOK {
			return m, nil
		}
		kind := components.ActionTrashOne
		if inTrash {
			kind = components.ActionDeleteForeverOne
		}
		m.confirm(components.PendingAction{Kind: kind, FilePath: key})
	}
	return m, nil
}

func (m *Model) requestRestore() (tea.Model, tea.Cmd) {
	if m.nav.Mode() != nav.ModeTrash {
		return m, nil
	}
	if m.nav.SelectedCount() > 0 {
		m.confirm(components.PendingAction{
			Kind:  components.ActionRestoreMany,
			Paths: m.nav.Selected(),
		})
		return m, nil
	}
	e, ok := m.entryAtCursor()
	if !ok || e.Kind != components.EntryMedia {
		return m, nil
	}
	item, itemOK := m.nav.MediaAt(e.MediaIndex)
	if !itemOK {
		return m, nil
	}
	if key, keyOK := item.APIPath(true); keyOK {
		m.confirm(components.PendingAction{Kind: components.ActionRestoreOne, FilePath: key})
	}
	return m, nil
}

func (m *Model) confirm(a components.PendingAction) {
	m.pending = a
	m.modal = modalConfirm
}

func (m *Model) openCreateFolder() {
	m.input = textinput.New()
	m.input.Placeholder = "folder name"
	m.input.Focus()
	m.modal = modalCreateFolder
}

func (m *Model) openUpload() {
	m.input = textinput.New()
	m.input.Placeholder = "local file or glob, e.g. ~/photos/*.jpg"
	m.input.Focus()
	m.modal = modalUpload
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "enter":
		return m.submitModal()
	}
	if m.modal == modalCreateFolder || m.modal == modalUpload {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) submitModal() (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirm:
		m.modal = modalNone
		action := m.pending
		m.pending = components.PendingAction{}
		m.lastAction = action
		m.nav.ClearSelection()
		return m, m.runAction(action)

	case modalCreateFolder:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, m.showNotice("Folder name cannot be empty.", true)
		}
		return m, m.createFolderCmd(m.nav.Path(), name)

	case modalUpload:
		pattern := m.input.Value()
		m.modal = modalNone
		if pattern == "" {
			return m, nil
		}
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			return m, m.showNotice("No files matched.", true)
		}
		sort.Strings(matches)
		m.uploadQueue = matches
		m.uploadDest = m.nav.Path()
		m.uploadTotal = len(matches)
		m.uploadDone = 0
		m.uploadFail = nil
		return m, m.uploadNext()
	}
	m.modal = modalNone
	return m, nil
}

func (m *Model) updateLightbox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.nav.Media())
	running := m.box.Phase() == lightbox.PhaseSlideshow

	switch msg.String() {
	case "esc", "q":
		m.box.Close()
		return m, nil

	case "right", "l", "n":
		if running || count == 0 {
			return m, nil
		}
		current, _ := m.currentMedia()
		m.box.Next(&current, count)
		return m.afterSwap()

	case "left", "h":
		if running || count == 0 {
			return m, nil
		}
		current, _ := m.currentMedia()
		m.box.Prev(&current, count)
		return m.afterSwap()

	case "p":
		if running {
			m.box.StopSlideshow()
			return m, nil
		}
		// the slideshow always plays the recursive listing; keep the
		// item currently on screen as the starting point
		m.slideshowFrom = m.box.Index()
		return m, m.fetchRecursive(m.nav.Generation(), m.nav.Path())

	case "+", "=":
		m.wheelAtCenter(true)
	case "-":
		m.wheelAtCenter(false)

	case "d":
		return m.lightboxDelete()

	case "r":
		if m.nav.Mode() == nav.ModeTrash {
			if item, ok := m.currentMedia(); ok {
				if key, keyOK := item.APIPath(true); keyOK {
					m.confirm(components.PendingAction{Kind: components.ActionRestoreOne, FilePath: key})
				}
			}
		}

	case "o":
		if item, ok := m.currentMedia(); ok && item.IsRaw() && m.nav.Mode() != nav.ModeTrash {
			return m, m.saveRAW(item)
		}
	}
	return m, nil
}

func (m *Model) lightboxDelete() (tea.Model, tea.Cmd) {
	item, ok := m.currentMedia()
	if !ok {
		return m, nil
	}
	inTrash := m.nav.Mode() == nav.ModeTrash
	key, keyOK := item.APIPath(inTrash)
	if !keyOK {
		return m, nil
	}
	kind := components.ActionTrashOne
	if inTrash {
		kind = components.ActionDeleteForeverOne
	}
	m.confirm(components.PendingAction{Kind: kind, FilePath: key})
	return m, nil
}

func (m *Model) afterSwap() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if item, ok := m.currentMedia(); ok {
		cmds = append(cmds, m.fetchMedia(item))
	}
	cmds = append(cmds, m.fadeCmd())
	return m, tea.Batch(cmds...)
}

// wheelAtCenter zooms around the viewport center, used by the
// keyboard zoom bindings.
func (m *Model) wheelAtCenter(in bool) {
	if m.box.Phase() == lightbox.PhaseSlideshow {
		return
	}
	if item, ok := m.currentMedia(); !ok || item.IsVideo() {
		return
	}
	w := float64(m.width)
	h := float64(m.height)
	m.box.Zoom().Wheel(in, w/2, h/2, w, h, w, h)
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.box.Active() || m.box.Phase() == lightbox.PhaseSlideshow {
		return m, nil
	}
	w := float64(m.width)
	h := float64(m.height)
	x := float64(msg.X)
	y := float64(msg.Y)
	z := m.box.Zoom()

	item, ok := m.currentMedia()
	zoomable := ok && !item.IsVideo()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if zoomable {
			z.Wheel(true, x, y, w, h, w, h)
		}
	case tea.MouseButtonWheelDown:
		if zoomable {
			z.Wheel(false, x, y, w, h, w, h)
		}
	case tea.MouseButtonLeft:
		switch msg.Action {
		case tea.MouseActionPress:
			z.StartPan(x, y)
		case tea.MouseActionMotion:
			z.PanMove(x, y, w, h, w, h)
		case tea.MouseActionRelease:
			z.EndPan()
		}
	case tea.MouseButtonNone:
		if msg.Action == tea.MouseActionMotion {
			z.PanMove(x, y, w, h, w, h)
		}
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.loginField = 1 - m.loginField
		if m.loginField == 0 {
			m.loginUser.Focus()
			m.loginPass.Blur()
		} else {
			m.loginPass.Focus()
			m.loginUser.Blur()
		}
		return m, textinput.Blink

	case "enter":
		user := m.loginUser.Value()
		pass := m.loginPass.Value()
		if err := m.creds.Set(user, pass); err != nil {
			m.loginNotice = err.Error()
			return m, nil
		}
		m.screen = screenBrowse
		m.loginNotice = ""
		return m, m.navigateCmd(types.Path{})
	}

	var cmd tea.Cmd
	if m.loginField == 0 {
		m.loginUser, cmd = m.loginUser.Update(msg)
	} else {
		m.loginPass, cmd = m.loginPass.Update(msg)
	}
	return m, cmd
}
