package branch

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/git-pick/internal/format/table"
	"github.com/atomicstack/git-pick/internal/git"
)

// Item represents a selectable branch entry.
type Item struct {
	ID      string // short ref name, e.g. "main" or "origin/feature"
	Label   string
	Remote  bool
	Current bool
}

// Context carries runtime data needed by action functions.
type Context struct {
	Repo  *git.Repository
	Force bool
}

// Action turns a selected item into a command executing the operation.
type Action func(Context, Item) tea.Cmd

// ActionResult communicates the outcome of executing a branch action.
type ActionResult struct {
	Info string
	Err  error
}

// RenamePrompt requests interactive input for a branch rename.
type RenamePrompt struct {
	Context Context
	Target  string
	Initial string
}

// Items produces the formatted picker rows for a ref snapshot. Rows keep
// the snapshot's order; the current branch carries a leading marker.
func Items(refs []git.Ref) []Item {
	if len(refs) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([][]string, 0, len(refs))
	for _, ref := range refs {
		marker := " "
		if ref.IsCurrent {
			marker = "*"
		}
		rows = append(rows, []string{marker, ref.Name, relativeAge(now, ref.CommittedAt), ref.Subject})
	}
	aligned := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft})
	items := make([]Item, len(refs))
	for i, ref := range refs {
		items[i] = Item{
			ID:      ref.Name,
			Label:   aligned[i],
			Remote:  ref.IsRemote,
			Current: ref.IsCurrent,
		}
	}
	return items
}

// Names extracts the short ref names of items, used for duplicate checks.
func Names(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.ID)
	}
	return names
}

func relativeAge(now, at time.Time) string {
	if at.IsZero() {
		return ""
	}
	d := now.Sub(at)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 14*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dw", int(d.Hours()/(24*7)))
	default:
		return fmt.Sprintf("%dy", int(d.Hours()/(24*365)))
	}
}

func trimTarget(item Item) string {
	return strings.TrimSpace(item.ID)
}
