package sim

import (
	"github.com/vovakirdan/tui-glider/internal/core"
)

// Obstacle is a paired top/bottom barrier with a gap. Instances are owned
// by the ObstaclePool and reused across spawns; Reset reconfigures one in
// place instead of allocating.
type Obstacle struct {
	X            float64 // Left edge
	Width        float64
	TopHeight    float64 // Height of the barrier hanging from the ceiling
	BottomHeight float64 // Height of the barrier standing on the floor
	GapSize      float64

	playfieldH float64
	scored     bool
}

// Reset reconfigures the obstacle for a new spawn. Barrier heights are
// derived from the gap so that top + gap + bottom equals the playfield
// height exactly; a gap hugging the ceiling or floor leaves the
// corresponding barrier with zero (or negative) height.
func (o *Obstacle) Reset(x, playfieldH, gapCenter, gapSize float64) {
	o.X = x
	o.playfieldH = playfieldH
	o.GapSize = gapSize
	o.TopHeight = gapCenter - gapSize/2
	o.BottomHeight = playfieldH - (gapCenter + gapSize/2)
	o.scored = false
}

// Update advances the obstacle leftward at the given speed.
func (o *Obstacle) Update(dt, speed float64) {
	o.X -= speed * dt
}

// OffScreen reports whether the obstacle has fully left the playfield on
// the trailing side.
func (o *Obstacle) OffScreen() bool {
	return o.X+o.Width < 0
}

// Visible reports whether the obstacle's horizontal extent intersects the
// half-open viewport [0, playfieldW). Edge-touching does not count.
func (o *Obstacle) Visible(playfieldW float64) bool {
	return o.X < playfieldW && o.X+o.Width > 0
}

// Bounds returns the collidable rectangles of the obstacle: zero, one,
// or two. A barrier with height <= 0 is degenerate and omitted.
func (o *Obstacle) Bounds() []core.Rect {
	rects := make([]core.Rect, 0, 2)
	if o.TopHeight > 0 {
		rects = append(rects, core.NewRect(o.X, 0, o.Width, o.TopHeight))
	}
	if o.BottomHeight > 0 {
		rects = append(rects, core.NewRect(o.X, o.playfieldH-o.BottomHeight, o.Width, o.BottomHeight))
	}
	return rects
}

// HasPassed reports whether px has passed the obstacle's trailing edge
// and the obstacle has not been scored yet. The caller must pair a true
// result with MarkScored to keep scoring exactly-once.
func (o *Obstacle) HasPassed(px float64) bool {
	return !o.scored && px > o.X+o.Width
}

// MarkScored records that this obstacle has contributed its point.
func (o *Obstacle) MarkScored() {
	o.scored = true
}

// Scored reports whether the obstacle has already been scored.
func (o *Obstacle) Scored() bool {
	return o.scored
}

// GapCenter returns the vertical midpoint of the passable opening.
func (o *Obstacle) GapCenter() float64 {
	return o.TopHeight + o.GapSize/2
}
