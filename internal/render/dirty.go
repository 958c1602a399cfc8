package render

import "github.com/vovakirdan/tui-glider/internal/core"

// RedrawMode tags a redraw plan as partial or full-surface.
type RedrawMode int

const (
	RedrawPartial RedrawMode = iota
	RedrawFull
)

// RedrawPlan is the explicit contract between the dirty tracker and the
// renderer: either a full-surface redraw, or the accumulated regions with
// their bounding union. An empty Partial plan means nothing changed.
type RedrawPlan struct {
	Mode  RedrawMode
	Rects []core.Rect
	Union core.Rect
}

// DirtyTracker accumulates the screen-space rectangles that changed since
// the last presented frame. Cleared once per frame after the plan is
// consumed.
type DirtyTracker struct {
	rects    []core.Rect
	union    core.Rect
	hasUnion bool

	full  bool
	fullW float64
	fullH float64
}

// NewDirtyTracker creates an empty tracker.
func NewDirtyTracker() *DirtyTracker {
	return &DirtyTracker{rects: make([]core.Rect, 0, 16)}
}

// AddRegion records a changed rectangle and folds it into the running
// union. Empty rectangles are ignored; once the tracker is full-surface,
// individual regions are absorbed.
func (t *DirtyTracker) AddRegion(r core.Rect) {
	if r.Empty() || t.full {
		return
	}
	t.rects = append(t.rects, r)
	if t.hasUnion {
		t.union = t.union.Union(r)
	} else {
		t.union = r
		t.hasUnion = true
	}
}

// MarkAllDirty replaces all tracked state with the full surface.
func (t *DirtyTracker) MarkAllDirty(w, h float64) {
	t.full = true
	t.fullW = w
	t.fullH = h
	t.rects = t.rects[:0]
	t.hasUnion = false
}

// Clear empties the tracker for the next frame.
func (t *DirtyTracker) Clear() {
	t.rects = t.rects[:0]
	t.hasUnion = false
	t.full = false
}

// Intersects reports whether r touches any dirty area. The test is
// against the running union only: coarse and conservative, never a false
// negative.
func (t *DirtyTracker) Intersects(r core.Rect) bool {
	if t.full {
		return true
	}
	if !t.hasUnion {
		return false
	}
	return t.union.Overlaps(r)
}

// Len returns the number of accumulated regions (0 when full-surface).
func (t *DirtyTracker) Len() int {
	return len(t.rects)
}

// Plan returns the tagged redraw plan for this frame. Rects are copied;
// the caller may retain them past Clear.
func (t *DirtyTracker) Plan() RedrawPlan {
	if t.full {
		return RedrawPlan{
			Mode:  RedrawFull,
			Union: core.NewRect(0, 0, t.fullW, t.fullH),
		}
	}
	rects := make([]core.Rect, len(t.rects))
	copy(rects, t.rects)
	return RedrawPlan{
		Mode:  RedrawPartial,
		Rects: rects,
		Union: t.union,
	}
}
