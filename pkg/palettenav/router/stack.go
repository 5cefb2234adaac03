package router

import "github.com/google/uuid"

// HistoryEntry represents a single visited location.
// It stores the requested path and the scroll offset recorded when the entry
// was left, which is handed back when the entry is revisited.
type HistoryEntry struct {
	ID     string
	Path   string
	Scroll *ScrollPosition
}

// History is the session history of a Navigator: a list of entries and a
// cursor pointing at the active one.
type History struct {
	entries []HistoryEntry
	index   int
}

// NewHistory creates a new empty history.
func NewHistory() *History {
	return &History{
		entries: make([]HistoryEntry, 0),
		index:   -1,
	}
}

// Push adds an entry after the active one, discarding any forward entries,
// and makes it active.
func (h *History) Push(path string) HistoryEntry {
	entry := HistoryEntry{ID: uuid.NewString(), Path: path}
	h.entries = append(h.entries[:h.index+1], entry)
	h.index = len(h.entries) - 1
	return entry
}

// Replace swaps the active entry for a new one. On an empty history it pushes.
func (h *History) Replace(path string) HistoryEntry {
	if h.index < 0 {
		return h.Push(path)
	}
	entry := HistoryEntry{ID: uuid.NewString(), Path: path}
	h.entries[h.index] = entry
	return entry
}

// SaveScroll records the offset of the active entry.
func (h *History) SaveScroll(pos ScrollPosition) {
	if h.index < 0 {
		return
	}
	h.entries[h.index].Scroll = &pos
}

// Go moves the cursor by delta and returns the new active entry.
// Returns nil, leaving the cursor alone, if the move would leave the history.
func (h *History) Go(delta int) *HistoryEntry {
	target := h.index + delta
	if target < 0 || target >= len(h.entries) {
		return nil
	}
	h.index = target
	entry := h.entries[target]
	return &entry
}

// CanGoBack is true when there is an entry before the active one.
func (h *History) CanGoBack() bool {
	return h.index > 0
}

// CanGoForward is true when there is an entry after the active one.
func (h *History) CanGoForward() bool {
	return h.index >= 0 && h.index < len(h.entries)-1
}

// Len returns the number of entries in the history.
func (h *History) Len() int {
	return len(h.entries)
}
