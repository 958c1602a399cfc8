package render

import (
	"fmt"

	"github.com/vovakirdan/tui-glider/internal/core"
	"github.com/vovakirdan/tui-glider/internal/sim"
)

// hudKey identifies a shaped HUD line by the values baked into it.
type hudKey struct {
	score int
	best  int
	speed int // multiplier x100, avoids float keys
}

// Renderer turns simulation snapshots into screen cells. Between frames it
// tracks which regions changed and redraws only those, falling back to a
// full clear when the whole playfield is invalidated.
type Renderer struct {
	screen *core.Screen
	batch  *DrawBatch
	dirty  *DirtyTracker
	hud    *Cache[hudKey, string]

	last    sim.Snapshot
	hasLast bool
}

// NewRenderer creates a renderer targeting a w x h cell grid.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{
		screen: core.NewScreen(w, h),
		batch:  NewDrawBatch(),
		dirty:  NewDirtyTracker(),
		hud:    NewCache[hudKey, string](),
	}
}

// Screen exposes the backing cell grid for presentation layers.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Resize adjusts the backing screen and forces a full redraw on the
// next frame.
func (r *Renderer) Resize(w, h int) {
	r.screen.Resize(w, h)
	r.hasLast = false
}

// Render draws snap onto the backing screen and returns the plan that
// was applied.
func (r *Renderer) Render(snap sim.Snapshot, degraded bool) RedrawPlan {
	r.dirty.Clear()
	r.collectDirty(snap)
	plan := r.dirty.Plan()

	switch plan.Mode {
	case RedrawFull:
		r.screen.Clear()
	case RedrawPartial:
		for _, rect := range plan.Rects {
			x, y, w, h := cellRect(rect)
			r.screen.ClearRegion(x, y, w, h)
		}
	}

	r.batch.Clear()
	r.queueObstacles(snap, degraded)
	r.queueActor(snap, degraded)
	r.queueHUD(snap)
	r.batch.Execute(r.screen)

	r.last = snap
	r.hasLast = true
	return plan
}

// cellRect converts a continuous rect to the covering cell-aligned one.
func cellRect(r core.Rect) (x, y, w, h int) {
	x = int(r.X)
	y = int(r.Y)
	w = int(r.Right()) - x + 1
	h = int(r.Bottom()) - y + 1
	return x, y, w, h
}

// collectDirty accumulates the regions that differ from the previous
// frame. Without a previous frame everything is dirty.
func (r *Renderer) collectDirty(snap sim.Snapshot) {
	if !r.hasLast || snap.PlayfieldW != r.last.PlayfieldW || snap.PlayfieldH != r.last.PlayfieldH {
		r.dirty.MarkAllDirty(float64(r.screen.Width()), float64(r.screen.Height()))
		return
	}
	if snap.Status != r.last.Status {
		// Status banners cover arbitrary screen area.
		r.dirty.MarkAllDirty(float64(r.screen.Width()), float64(r.screen.Height()))
		return
	}

	r.dirty.AddRegion(pad(r.last.ActorBounds))
	r.dirty.AddRegion(pad(snap.ActorBounds))
	for _, o := range r.last.Obstacles {
		r.dirty.AddRegion(obstacleExtent(o, r.last.PlayfieldH))
	}
	for _, o := range snap.Obstacles {
		r.dirty.AddRegion(obstacleExtent(o, snap.PlayfieldH))
	}
	if snap.Score != r.last.Score || snap.Best != r.last.Best {
		r.dirty.AddRegion(core.Rect{X: 0, Y: 0, W: float64(r.screen.Width()), H: 1})
	}
}

// pad grows a rect by one cell on every side so motion trails are
// cleared along with the sprite itself.
func pad(b core.Rect) core.Rect {
	return core.Rect{X: b.X - 1, Y: b.Y - 1, W: b.W + 2, H: b.H + 2}
}

// obstacleExtent covers the full column an obstacle occupies, padded one
// cell horizontally for scroll motion.
func obstacleExtent(o sim.ObstacleView, playfieldH float64) core.Rect {
	return core.Rect{X: o.X - 1, Y: 0, W: o.Width + 2, H: playfieldH}
}

func (r *Renderer) queueObstacles(snap sim.Snapshot, degraded bool) {
	barrier := Style{Color: core.ColorGreen}
	rim := Style{Color: core.ColorBrightWhite}
	for _, o := range snap.Obstacles {
		x := int(o.X)
		w := int(o.Width)
		if o.TopHeight > 0 {
			top := int(o.TopHeight)
			r.batch.FillRect(x, 0, w, top, '█', barrier)
			if !degraded {
				r.batch.HLine(x, top-1, w, '═', rim)
			}
		}
		if o.BottomHeight > 0 {
			bottom := int(o.BottomHeight)
			y := int(snap.PlayfieldH) - bottom
			r.batch.FillRect(x, y, w, bottom, '█', barrier)
			if !degraded {
				r.batch.HLine(x, y, w, '═', rim)
			}
		}
	}
}

func (r *Renderer) queueActor(snap sim.Snapshot, degraded bool) {
	glyph := actorGlyph(snap.ActorRotation, snap.ActorStatus, degraded)
	style := Style{Color: core.ColorBrightYellow}
	if snap.ActorStatus == sim.LifeDead {
		style = Style{Color: core.ColorRed}
	}
	b := snap.ActorBounds
	r.batch.Glyph(int(b.X+b.W/2), int(b.Y+b.H/2), glyph, style)
}

// actorGlyph picks the sprite for the current pitch. In degraded mode a
// single fixed glyph is used so rotation changes never dirty the cell.
func actorGlyph(rotation float64, status sim.LifeStatus, degraded bool) rune {
	if status == sim.LifeDead {
		return 'x'
	}
	if degraded {
		return '>'
	}
	switch {
	case rotation < -0.2:
		return '^'
	case rotation > 0.6:
		return 'v'
	default:
		return '>'
	}
}

func (r *Renderer) queueHUD(snap sim.Snapshot) {
	key := hudKey{score: snap.Score, best: snap.Best, speed: int(snap.SpeedMultiplier * 100)}
	line := r.hud.GetOrCreate(key, func() string {
		return fmt.Sprintf(" SCORE %d  BEST %d  x%.2f", key.score, key.best, float64(key.speed)/100)
	})
	r.batch.Text(0, 0, line, Style{Color: core.ColorWhite})

	switch snap.Status {
	case sim.StatusMenu:
		r.batch.Text(r.screen.Width()/2-12, r.screen.Height()/2, "press SPACE to take off", Style{Color: core.ColorCyan})
	case sim.StatusPaused:
		r.batch.Text(r.screen.Width()/2-3, r.screen.Height()/2, "PAUSED", Style{Color: core.ColorYellow})
	case sim.StatusGameOver:
		r.batch.Text(r.screen.Width()/2-5, r.screen.Height()/2, "GAME OVER", Style{Color: core.ColorRed})
		r.batch.Text(r.screen.Width()/2-11, r.screen.Height()/2+1, "R to restart, Q to quit", Style{Color: core.ColorGray})
	}
}

// HUDCacheLen reports how many distinct HUD lines have been shaped.
func (r *Renderer) HUDCacheLen() int {
	return r.hud.Len()
}
