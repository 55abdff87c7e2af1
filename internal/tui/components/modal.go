package components

import (
	"fmt"
	"strings"

	"glance/internal/tui/styles"
	"glance/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// ActionKind is the explicit tag of a pending destructive or
// restorative action awaiting confirmation.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionEmptyTrash permanently deletes everything in the trash.
	ActionEmptyTrash
	// ActionRestoreAll restores everything in the trash.
	ActionRestoreAll
	// ActionRestoreMany restores the selected trash items.
	ActionRestoreMany
	// ActionDeleteMany deletes the selected items, to trash or
	// permanently depending on Permanent.
	ActionDeleteMany
	// ActionDeleteFolder moves a folder and its contents to trash.
	ActionDeleteFolder
	// ActionRestoreOne restores a single trash item.
	ActionRestoreOne
	// ActionDeleteForeverOne permanently deletes a single trash item.
	ActionDeleteForeverOne
	// ActionTrashOne moves a single file to trash.
	ActionTrashOne
)

// PendingAction carries a confirmation request: the kind plus
// whichever target field the kind needs. The kind is set once when
// the modal opens, so confirmation never re-derives intent from the
// target's shape.
type PendingAction struct {
	Kind       ActionKind
	FilePath   string
	Paths      []string
	FolderPath types.Path
	Permanent  bool
}

// Message returns the confirmation prompt shown in the modal.
func (a PendingAction) Message() string {
	switch a.Kind {
	case ActionEmptyTrash:
		return "Are you sure you want to permanently delete ALL items in the trash? This action cannot be undone."
	case ActionRestoreAll:
		return "Are you sure you want to restore ALL items from the trash to their original locations?"
	case ActionRestoreMany:
		return fmt.Sprintf("Are you sure you want to restore %d selected item(s)?", len(a.Paths))
	case ActionDeleteMany:
		permanent := ""
		if a.Permanent {
			permanent = " permanently"
		}
		return fmt.Sprintf("Are you sure you want to%s delete %d selected item(s)?", permanent, len(a.Paths))
	case ActionDeleteFolder:
		return fmt.Sprintf("Delete folder %q and move its contents to Trash?", a.FolderPath.String())
	case ActionRestoreOne:
		return "Are you sure you want to restore this file?"
	case ActionDeleteForeverOne:
		return "Are you sure you want to permanently delete this? This action cannot be undone."
	case ActionTrashOne:
		return "Are you sure you want to move this file to Trash?"
	}
	return ""
}

// ConfirmLabel returns the confirm button text.
func (a PendingAction) ConfirmLabel() string {
	switch a.Kind {
	case ActionEmptyTrash:
		return "Empty Trash"
	case ActionRestoreAll:
		return "Restore All"
	case ActionRestoreMany:
		return fmt.Sprintf("Restore %d Item(s)", len(a.Paths))
	case ActionDeleteMany:
		return fmt.Sprintf("Delete %d Item(s)", len(a.Paths))
	case ActionDeleteFolder:
		return "Delete Folder"
	case ActionRestoreOne:
		return "Restore"
	case ActionDeleteForeverOne:
		return "Delete Forever"
	case ActionTrashOne:
		return "Move to Trash"
	}
	return ""
}

// RenderConfirm draws the confirmation modal.
func RenderConfirm(a PendingAction, st styles.Set, width int) string {
	body := lipgloss.NewStyle().Width(width - 8).Render(a.Message())
	buttons := fmt.Sprintf("[enter] %s   [esc] Cancel", a.ConfirmLabel())
	return st.Overlay.Render(body + "\n\n" + st.Help.Render(buttons))
}

// RenderPrompt draws a one-line text input modal (create folder).
func RenderPrompt(title, input string, st styles.Set) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(title))
	b.WriteString("\n\n> ")
	b.WriteString(input)
	b.WriteString("█")
	b.WriteString("\n\n")
	b.WriteString(st.Help.Render("[enter] Create   [esc] Cancel"))
	return st.Overlay.Render(b.String())
}
