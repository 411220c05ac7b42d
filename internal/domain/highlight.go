package domain

import "time"

// MinSelectionPx is the minimum on-screen width and height, in device
// pixels, a selection rectangle needs before it can become a highlight.
const MinSelectionPx = 5.0

// Highlight represents a user's saved excerpt from a document: the selected
// text, the page it lives on, a color and a page-space rectangle captured at
// scale 1.0. Highlights are never edited in place; they are created whole
// and removed whole.
type Highlight struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	PageNumber int       `json:"page_number"`
	Color      Color     `json:"color"`
	Position   Rect      `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// HighlightList is an ordered highlight collection keyed by id. Append and
// delete-by-id are the only mutations.
type HighlightList struct {
	items []*Highlight
}

// Add appends a highlight, preserving creation order.
func (l *HighlightList) Add(h *Highlight) {
	l.items = append(l.items, h)
}

// Remove deletes the highlight with the given id and reports whether it was
// present. Removing an absent id is a no-op.
func (l *HighlightList) Remove(id string) bool {
	for i, h := range l.items {
		if h.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the highlight with the given id, if present.
func (l *HighlightList) Get(id string) (*Highlight, bool) {
	for _, h := range l.items {
		if h.ID == id {
			return h, true
		}
	}
	return nil, false
}

// ByPage returns the highlights on the given page in insertion order. The
// slice is recomputed on every call, never cached.
func (l *HighlightList) ByPage(pageNumber int) []*Highlight {
	out := make([]*Highlight, 0)
	for _, h := range l.items {
		if h.PageNumber == pageNumber {
			out = append(out, h)
		}
	}
	return out
}

// All returns a copy of the full list in insertion order.
func (l *HighlightList) All() []*Highlight {
	out := make([]*Highlight, len(l.items))
	copy(out, l.items)
	return out
}

// Count returns the number of stored highlights.
func (l *HighlightList) Count() int {
	return len(l.items)
}

// Clear drops every highlight. Loading a new document invalidates all
// page-relative annotations, so the list starts over.
func (l *HighlightList) Clear() {
	l.items = nil
}
