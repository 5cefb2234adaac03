package router

import "testing"

func TestHistoryPushAndGo(t *testing.T) {
	h := NewHistory()
	if h.Len() != 0 || h.index != -1 {
		t.Fatalf("new history should be empty")
	}

	first := h.Push("/")
	h.SaveScroll(ScrollPosition{Top: 120})
	h.Push("/library")

	if h.Len() != 2 || !h.CanGoBack() || h.CanGoForward() {
		t.Fatalf("unexpected history shape: len=%d index=%d", h.Len(), h.index)
	}

	back := h.Go(-1)
	if back == nil || back.ID != first.ID || back.Scroll == nil || back.Scroll.Top != 120 {
		t.Fatalf("expected first entry with saved scroll, got %+v", back)
	}
	if h.Go(-1) != nil {
		t.Fatalf("moving before the first entry should fail")
	}
	if h.index != 0 {
		t.Fatalf("failed move must not shift the cursor")
	}
}

func TestHistoryPushTruncatesForward(t *testing.T) {
	h := NewHistory()
	h.Push("/")
	h.Push("/library")
	h.Push("/export")
	h.Go(-2)

	h.Push("/settings")
	if h.Len() != 2 || h.entries[h.index].Path != "/settings" {
		t.Fatalf("expected [/ /settings], got len=%d current=%s", h.Len(), h.entries[h.index].Path)
	}
}

func TestHistoryReplace(t *testing.T) {
	h := NewHistory()
	a := h.Replace("/")
	if h.Len() != 1 {
		t.Fatalf("replace on empty history should push")
	}
	h.SaveScroll(ScrollPosition{Top: 50})

	b := h.Replace("/library")
	if h.Len() != 1 || a.ID == b.ID {
		t.Fatalf("replace should keep length and mint a new ID")
	}
	if h.entries[h.index].Scroll != nil {
		t.Fatalf("replaced entry should not inherit scroll")
	}
}
