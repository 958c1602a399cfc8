package sim

import "github.com/vovakirdan/tui-glider/internal/core"

// ObstacleView is the drawable state of one active obstacle.
type ObstacleView struct {
	X            float64
	Width        float64
	TopHeight    float64
	BottomHeight float64
	GapSize      float64
	Scored       bool
	Bounds       []core.Rect
}

// Snapshot is the immutable per-tick view of the simulation, returned by
// Update and consumed by the render path. It carries everything the host
// shell may read: actor pose, active obstacle geometry, session state,
// and pool statistics.
type Snapshot struct {
	Tick uint64

	Status          SessionStatus
	Score           int
	Best            int
	SpeedMultiplier float64

	ActorX        float64
	ActorY        float64
	ActorRotation float64
	ActorStatus   LifeStatus
	ActorBounds   core.Rect

	Obstacles []ObstacleView
	Pool      PoolStats

	PlayfieldW float64
	PlayfieldH float64
}

// Snapshot builds the current read-only view. Obstacle views and bounds
// are copied; mutating the snapshot never touches live simulation state.
func (g *Game) Snapshot() Snapshot {
	active := g.pool.Active()
	obstacles := make([]ObstacleView, 0, len(active))
	for _, o := range active {
		obstacles = append(obstacles, ObstacleView{
			X:            o.X,
			Width:        o.Width,
			TopHeight:    o.TopHeight,
			BottomHeight: o.BottomHeight,
			GapSize:      o.GapSize,
			Scored:       o.Scored(),
			Bounds:       o.Bounds(),
		})
	}

	return Snapshot{
		Tick:            g.tick,
		Status:          g.session.Status(),
		Score:           g.session.Score(),
		Best:            g.session.Best(),
		SpeedMultiplier: g.session.SpeedMultiplier(),
		ActorX:          g.actor.X,
		ActorY:          g.actor.Y,
		ActorRotation:   g.actor.Rotation,
		ActorStatus:     g.actor.Status,
		ActorBounds:     g.actor.Bounds(),
		Obstacles:       obstacles,
		Pool:            g.pool.Stats(),
		PlayfieldW:      g.playfieldW,
		PlayfieldH:      g.playfieldH,
	}
}
