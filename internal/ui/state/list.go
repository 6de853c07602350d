package state

import "github.com/atomicstack/git-pick/internal/branch"

// MatchMode selects how the filter query matches ref names.
type MatchMode int

const (
	MatchSubstring MatchMode = iota
	MatchFuzzy
)

// List holds the picker state: the full ref snapshot, the filtered view,
// and the cursor and viewport positions into it.
type List struct {
	Full           []branch.Item
	Items          []branch.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Wrap           bool
	Mode           MatchMode
}

// NewList constructs a list over a ref snapshot. The cursor starts on the
// first entry.
func NewList(items []branch.Item, mode MatchMode) *List {
	l := &List{
		Cursor:     0,
		LastCursor: -1,
		Mode:       mode,
	}
	l.SetItems(items)
	return l
}

// SetItems replaces the snapshot, re-applies the active filter and keeps
// the viewport offset when it still points inside the filtered view.
func (l *List) SetItems(items []branch.Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// CurrentItem returns the item under the cursor.
func (l *List) CurrentItem() (branch.Item, bool) {
	if len(l.Items) == 0 || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return branch.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []branch.Item) []branch.Item {
	dup := make([]branch.Item, len(items))
	copy(dup, items)
	return dup
}
