package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/git-pick/internal/branch"
)

func newTestList(names ...string) *List {
	items := make([]branch.Item, len(names))
	for i, name := range names {
		items[i] = branch.Item{ID: name, Label: name}
	}
	return NewList(items, MatchSubstring)
}

func TestFilterItemsEmptyQueryIsIdentity(t *testing.T) {
	items := []branch.Item{{ID: "main"}, {ID: "develop"}, {ID: "feature/login"}}
	for _, query := range []string{"", "   "} {
		got := FilterItems(items, query, MatchSubstring)
		if !reflect.DeepEqual(got, items) {
			t.Fatalf("expected identity for query %q, got %#v", query, got)
		}
	}
}

func TestFilterItemsSubstringIsStable(t *testing.T) {
	items := []branch.Item{
		{ID: "feature/auth"},
		{ID: "main"},
		{ID: "feature/login"},
		{ID: "hotfix/feat-flag"},
	}
	got := FilterItems(items, "feat", MatchSubstring)
	want := []string{"feature/auth", "feature/login", "hotfix/feat-flag"}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %#v", len(want), got)
	}
	for i, name := range want {
		if got[i].ID != name {
			t.Fatalf("order broken at %d: got %s want %s", i, got[i].ID, name)
		}
	}
}

func TestFilterItemsCaseInsensitive(t *testing.T) {
	items := []branch.Item{{ID: "Feature/Login"}}
	if len(FilterItems(items, "feature", MatchSubstring)) != 1 {
		t.Fatal("expected case-insensitive match")
	}
	if len(FilterItems(items, "LOGIN", MatchSubstring)) != 1 {
		t.Fatal("expected case-insensitive match on upper query")
	}
}

func TestFilterItemsNarrowsMonotonically(t *testing.T) {
	items := []branch.Item{{ID: "feature/auth"}, {ID: "feature/login"}, {ID: "main"}}
	query := "feature/l"
	prev := len(items)
	for i := 1; i <= len(query); i++ {
		got := FilterItems(items, query[:i], MatchSubstring)
		if len(got) > prev {
			t.Fatalf("result grew while extending query to %q", query[:i])
		}
		prev = len(got)
	}
	if prev != 1 {
		t.Fatalf("expected final query to match one ref, got %d", prev)
	}
}

func TestFilterItemsFuzzyMode(t *testing.T) {
	items := []branch.Item{{ID: "feature/login"}, {ID: "main"}, {ID: "fix/logging"}}
	got := FilterItems(items, "flgn", MatchFuzzy)
	if len(got) == 0 {
		t.Fatal("expected fuzzy matches")
	}
	for _, item := range got {
		if item.ID == "main" {
			t.Fatal("main should not fuzzy-match flgn")
		}
	}
	// fuzzy results keep snapshot order
	if got[0].ID != "feature/login" {
		t.Fatalf("expected snapshot order preserved, got %#v", got)
	}
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	list := newTestList("one", "two", "three")
	list.Cursor = 2
	list.SetFilter("two", len("two"))

	if list.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", list.Filter)
	}
	if list.FilterCursor != len("two") {
		t.Fatalf("expected filter cursor at end, got %d", list.FilterCursor)
	}
	if len(list.Items) != 1 || list.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", list.Items)
	}
	if list.Cursor != 0 {
		t.Fatalf("expected cursor on the match, got %d", list.Cursor)
	}

	list.SetFilter("", 0)
	if list.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", list.Cursor)
	}
	if list.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", list.LastCursor)
	}
}

func TestSetFilterNoMatchesLeavesEmptyView(t *testing.T) {
	list := newTestList("main", "develop")
	list.SetFilter("zzz", 3)
	if len(list.Items) != 0 {
		t.Fatalf("expected empty view, got %#v", list.Items)
	}
	if list.Cursor != 0 || list.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset reset, got %d/%d", list.Cursor, list.ViewportOffset)
	}
	if _, ok := list.CurrentItem(); ok {
		t.Fatal("expected no current item on empty view")
	}
}

func TestClearFilter(t *testing.T) {
	list := newTestList("main", "develop")
	if list.ClearFilter() {
		t.Fatal("expected clear on empty filter to report no change")
	}
	list.SetFilter("dev", 3)
	if !list.ClearFilter() {
		t.Fatal("expected clear to report change")
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected full view restored, got %#v", list.Items)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	list := newTestList("alpha")

	if !list.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", list.Filter, list.FilterCursor)
	}

	list.FilterCursor = 1
	if !list.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if list.Filter != "azb" || list.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", list.Filter, list.FilterCursor)
	}

	if !list.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", list.Filter, list.FilterCursor)
	}

	list.SetFilter("abc def", len("abc def"))
	if !list.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if list.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", list.Filter)
	}

	list.SetFilter("abc", 0)
	if list.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	list := newTestList("one", "two")
	list.SetFilter("one", len("one"))

	if !list.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if list.FilterCursor != len("one")-1 {
		t.Fatalf("expected cursor len-1, got %d", list.FilterCursor)
	}
	if !list.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if !list.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if list.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", list.FilterCursor)
	}
	if list.MoveFilterCursorRuneBackward() {
		t.Fatal("expected backward at start to fail")
	}
	if !list.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
	if list.MoveFilterCursorRuneForward() {
		t.Fatal("expected forward at end to fail")
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	items := []branch.Item{
		{ID: "feature/main-v2"},
		{ID: "main"},
		{ID: "maintenance"},
	}
	if idx := BestMatchIndex(items, "main", MatchSubstring); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "maint", MatchSubstring); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "v2", MatchSubstring); idx != 0 {
		t.Fatalf("expected contains match index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything", MatchSubstring); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetItemsReappliesFilter(t *testing.T) {
	list := newTestList("feature/auth", "main")
	list.SetFilter("feat", 4)
	list.SetItems([]branch.Item{{ID: "feature/auth"}, {ID: "feature/login"}, {ID: "main"}})
	if len(list.Items) != 2 {
		t.Fatalf("expected filter re-applied to new snapshot, got %#v", list.Items)
	}
}

func TestCloneItemsAllocates(t *testing.T) {
	items := []branch.Item{{ID: "a"}, {ID: "b"}}
	clone := CloneItems(items)
	clone[0].ID = "changed"
	if items[0].ID != "a" {
		t.Fatal("expected original slice to remain unchanged")
	}
}
