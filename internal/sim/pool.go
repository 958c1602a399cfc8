package sim

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-glider/internal/config"
)

// ErrPlayfieldNotSet reports a spawn attempted before the playfield
// dimensions were established. This is a host-integration bug: the shell
// must supply dimensions at startup and on every resize.
var ErrPlayfieldNotSet = errors.New("sim: spawn before playfield dimensions are set")

// PoolStats is a read-only view of the pool's allocation counters.
type PoolStats struct {
	Active         int // Obstacles currently in play
	Free           int // Recyclable instances waiting for a spawn
	TotalAllocated int // Instances ever created
}

// ObstaclePool recycles Obstacle instances between spawns. Every instance
// belongs to exactly one of the free or active sets; recoverable instances
// beyond the free ceiling are dropped so peak memory stays bounded.
type ObstaclePool struct {
	free   []*Obstacle
	active []*Obstacle

	totalAllocated int
	freeCeiling    int
	obstacleWidth  float64
	playfieldH     float64
	rng            *rand.Rand
}

// NewObstaclePool creates a pool warmed up with the configured number of
// free instances.
func NewObstaclePool(obstacles config.Obstacles, pool config.Pool, seed int64) *ObstaclePool {
	p := &ObstaclePool{
		free:          make([]*Obstacle, 0, pool.FreeCeiling),
		active:        make([]*Obstacle, 0, pool.FreeCeiling),
		freeCeiling:   pool.FreeCeiling,
		obstacleWidth: obstacles.Width,
		rng:           rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < pool.WarmUp; i++ {
		p.free = append(p.free, p.allocate())
	}
	return p
}

// Reseed resets the pool RNG for a new deterministic session.
func (p *ObstaclePool) Reseed(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
}

// SetPlayfield establishes the playfield height used to derive barrier
// geometry. Spawning is undefined until this is called.
func (p *ObstaclePool) SetPlayfield(h float64) {
	p.playfieldH = h
}

// allocate creates a fresh instance and counts it.
func (p *ObstaclePool) allocate() *Obstacle {
	p.totalAllocated++
	return &Obstacle{Width: p.obstacleWidth}
}

// Spawn draws a uniformly random gap center in [gapLo, gapHi], takes an
// instance from the free set (allocating if exhausted), resets it, and
// activates it. Returns ErrPlayfieldNotSet if the playfield height has
// not been established; the pool's sets are left untouched in that case.
func (p *ObstaclePool) Spawn(x, gapLo, gapHi, gapSize float64) (*Obstacle, error) {
	if p.playfieldH <= 0 {
		return nil, ErrPlayfieldNotSet
	}

	gapCenter := gapLo
	if gapHi > gapLo {
		gapCenter = gapLo + p.rng.Float64()*(gapHi-gapLo)
	}

	var o *Obstacle
	if n := len(p.free); n > 0 {
		o = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		o = p.allocate()
	}

	o.Reset(x, p.playfieldH, gapCenter, gapSize)
	p.active = append(p.active, o)
	return o, nil
}

// Active returns the in-play obstacles in spawn order. The slice is owned
// by the pool; callers must not retain it across Spawn or cleanup calls.
func (p *ObstaclePool) Active() []*Obstacle {
	return p.active
}

// CleanupOffScreen moves every off-screen obstacle back to the free set,
// compacting the active set in place. Instances recovered while the free
// set is at its ceiling are dropped.
func (p *ObstaclePool) CleanupOffScreen() {
	kept := p.active[:0]
	for _, o := range p.active {
		if o.OffScreen() {
			p.recycle(o)
			continue
		}
		kept = append(kept, o)
	}
	// Zero the tail so dropped instances are collectable.
	for i := len(kept); i < len(p.active); i++ {
		p.active[i] = nil
	}
	p.active = kept
}

// ClearAll empties the active set into the free set.
func (p *ObstaclePool) ClearAll() {
	for _, o := range p.active {
		p.recycle(o)
	}
	for i := range p.active {
		p.active[i] = nil
	}
	p.active = p.active[:0]
}

// recycle returns an instance to the free set unless it is at the ceiling.
func (p *ObstaclePool) recycle(o *Obstacle) {
	if len(p.free) < p.freeCeiling {
		p.free = append(p.free, o)
	} else {
		// At the ceiling the instance is dropped, not retained.
		p.totalAllocated--
	}
}

// Stats returns the pool's current counters.
func (p *ObstaclePool) Stats() PoolStats {
	return PoolStats{
		Active:         len(p.active),
		Free:           len(p.free),
		TotalAllocated: p.totalAllocated,
	}
}
