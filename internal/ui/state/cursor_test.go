package state

import "testing"

func TestMoveCursorClampsAtEdges(t *testing.T) {
	list := newTestList("a", "b", "c")

	if list.MoveCursorUp() {
		t.Fatal("expected up at top to report no movement")
	}
	if list.Cursor != 0 {
		t.Fatalf("expected cursor pinned at 0, got %d", list.Cursor)
	}

	list.MoveCursorEnd()
	if list.MoveCursorDown() {
		t.Fatal("expected down at bottom to report no movement")
	}
	if list.Cursor != 2 {
		t.Fatalf("expected cursor pinned at 2, got %d", list.Cursor)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	list := newTestList("a", "b", "c")
	list.Wrap = true

	if !list.MoveCursorUp() {
		t.Fatal("expected wrap to bottom")
	}
	if list.Cursor != 2 {
		t.Fatalf("expected cursor at 2 after wrap, got %d", list.Cursor)
	}
	if !list.MoveCursorDown() {
		t.Fatal("expected wrap to top")
	}
	if list.Cursor != 0 {
		t.Fatalf("expected cursor at 0 after wrap, got %d", list.Cursor)
	}
}

func TestMoveCursorWrapSingleItem(t *testing.T) {
	list := newTestList("only")
	list.Wrap = true
	if list.MoveCursorUp() || list.MoveCursorDown() {
		t.Fatal("expected no movement with one item")
	}
	if list.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", list.Cursor)
	}
}

func TestMoveCursorEmptyList(t *testing.T) {
	list := newTestList()
	if list.MoveCursorUp() || list.MoveCursorDown() || list.MoveCursorHome() || list.MoveCursorEnd() {
		t.Fatal("expected no movement on empty list")
	}
	if list.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", list.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	list := newTestList("a", "b", "c", "d", "e", "f")

	if !list.MoveCursorPageDown(3) {
		t.Fatal("expected page down to move")
	}
	if list.Cursor != 3 {
		t.Fatalf("expected cursor 3, got %d", list.Cursor)
	}
	if !list.MoveCursorPageDown(3) {
		t.Fatal("expected second page down to move")
	}
	if list.Cursor != 5 {
		t.Fatalf("expected cursor clamped to 5, got %d", list.Cursor)
	}
	if !list.MoveCursorPageUp(3) {
		t.Fatal("expected page up to move")
	}
	if list.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", list.Cursor)
	}
}

func TestEnsureCursorVisibleScrollsViewport(t *testing.T) {
	list := newTestList("a", "b", "c", "d", "e", "f")

	list.Cursor = 5
	list.EnsureCursorVisible(3)
	if list.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", list.ViewportOffset)
	}

	list.Cursor = 0
	list.EnsureCursorVisible(3)
	if list.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", list.ViewportOffset)
	}
}

func TestEnsureCursorVisibleClampsOutOfRangeCursor(t *testing.T) {
	list := newTestList("a", "b", "c")
	list.Cursor = 99
	list.EnsureCursorVisible(2)
	if list.Cursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", list.Cursor)
	}

	list.Cursor = -4
	list.EnsureCursorVisible(2)
	if list.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", list.Cursor)
	}
}

func TestEnsureCursorVisibleShrinkingViewKeepsCursorOnScreen(t *testing.T) {
	list := newTestList("feature/auth", "feature/login", "main", "develop")
	list.Cursor = 3
	list.EnsureCursorVisible(2)
	if list.ViewportOffset != 2 {
		t.Fatalf("expected offset 2, got %d", list.ViewportOffset)
	}

	// Narrowing the filter shrinks the view; the cursor and offset must
	// land back inside it.
	list.SetFilter("feature", len("feature"))
	list.EnsureCursorVisible(2)
	if list.Cursor >= len(list.Items) {
		t.Fatalf("cursor %d outside view of %d", list.Cursor, len(list.Items))
	}
	if list.ViewportOffset > list.Cursor {
		t.Fatalf("offset %d past cursor %d", list.ViewportOffset, list.Cursor)
	}
}
