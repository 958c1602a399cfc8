package sim

import (
	"github.com/vovakirdan/tui-glider/internal/config"
	"github.com/vovakirdan/tui-glider/internal/core"
)

// Game is the simulation orchestrator. It owns one Actor, one Session,
// and one ObstaclePool, and is the sole mutator of all three. The host
// shell drives it with Update(dt) and queued intents; every tick returns
// an immutable Snapshot for the render path, so the presentation layer
// never reaches into live simulation state.
type Game struct {
	cfg        config.GliderConfig
	actor      *Actor
	session    *Session
	pool       *ObstaclePool
	difficulty *config.DifficultyManager

	playfieldW float64
	playfieldH float64

	spawnElapsed float64
	tick         uint64
}

// New creates a game with the given configuration and RNG seed.
// SetPlayfield must be called before the first session starts spawning.
func New(cfg config.GliderConfig, seed int64) *Game {
	return &Game{
		cfg:        cfg,
		actor:      NewActor(cfg.Physics, cfg.Actor, 0),
		session:    NewSession(),
		pool:       NewObstaclePool(cfg.Obstacles, cfg.Pool, seed),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// SetPlayfield establishes (or updates, on resize) the playfield
// dimensions. Physics, spawn ranges, and obstacle geometry are undefined
// until this has been called once.
func (g *Game) SetPlayfield(w, h float64) {
	g.playfieldW = w
	g.playfieldH = h
	g.pool.SetPlayfield(h)

	// Outside an active match, keep the idle actor vertically centered.
	if g.session.Status() == StatusMenu || g.session.Status() == StatusGameOver {
		g.actor.Reset(h / 2)
	}
}

// Reseed resets the obstacle RNG, typically before a restart so each
// match gets a fresh layout.
func (g *Game) Reseed(seed int64) {
	g.pool.Reseed(seed)
}

// SeedBest installs a persisted best score into the session.
func (g *Game) SeedBest(best int) error {
	return g.session.SeedBest(best)
}

// SetSpeedMultiplier assigns the session speed multiplier directly.
// Rejected (prior value retained) if non-positive.
func (g *Game) SetSpeedMultiplier(m float64) error {
	return g.session.SetSpeedMultiplier(m)
}

// Pause suspends the match. No-op unless playing.
func (g *Game) Pause() {
	g.session.Pause()
}

// Resume continues a paused match. No-op unless paused.
func (g *Game) Resume() {
	g.session.Resume()
}

// HandleIntent dispatches one discrete player intent. Callers drain their
// queue in arrival order, one call per event; N queued intents produce N
// discrete effects.
func (g *Game) HandleIntent(intent core.Intent) {
	switch intent {
	case core.IntentFlap:
		switch g.session.Status() {
		case StatusMenu:
			g.start()
		case StatusPlaying:
			g.actor.Jump()
		case StatusGameOver:
			g.start()
		}
	case core.IntentRestart:
		switch g.session.Status() {
		case StatusMenu, StatusGameOver:
			g.start()
		}
	}
}

// start resets all game objects in place and enters Playing.
func (g *Game) start() {
	g.actor.Reset(g.playfieldH / 2)
	g.pool.ClearAll()
	g.spawnElapsed = 0
	g.tick = 0
	g.session.Start()
}

// Update advances the simulation by dt seconds and returns the post-tick
// snapshot. dt is clamped to the configured maximum so a stalled host
// cannot tunnel the actor through geometry. Outside the Playing state the
// call is a no-op. A non-nil error reports a host-integration problem
// (spawning before SetPlayfield); simulation invariants stay intact.
func (g *Game) Update(dt float64) (Snapshot, error) {
	if g.session.Status() != StatusPlaying {
		return g.Snapshot(), nil
	}

	dt = core.ClampF(dt, 0, g.cfg.Physics.MaxTickSeconds)
	g.tick++

	if g.difficulty.IsEnabled() {
		// Multiplier is always >= 1, so assignment cannot be rejected.
		_ = g.session.SetSpeedMultiplier(g.difficulty.SpeedMultiplier(g.session.Score(), int(g.tick)))
	}

	g.actor.Update(dt)

	speed := g.cfg.Physics.ScrollSpeed * g.session.SpeedMultiplier()
	for _, o := range g.pool.Active() {
		o.Update(dt, speed)
	}

	var spawnErr error
	g.spawnElapsed += dt
	if g.spawnElapsed >= g.cfg.Obstacles.SpawnInterval {
		// Reset rather than carry the remainder; cadence error stays
		// below one tick.
		g.spawnElapsed = 0
		spawnErr = g.spawn()
	}

	if g.collides() {
		g.actor.Die()
		g.session.End()
		// Scoring and cleanup are skipped on the death tick.
		return g.Snapshot(), spawnErr
	}

	for _, o := range g.pool.Active() {
		if o.HasPassed(g.actor.X) {
			o.MarkScored()
			g.session.AddScore(1)
		}
	}

	g.pool.CleanupOffScreen()

	return g.Snapshot(), spawnErr
}

// spawn places a new obstacle at the leading screen edge.
func (g *Game) spawn() error {
	gapLo := g.cfg.Obstacles.TopMargin + g.cfg.Obstacles.GapSize/2
	gapHi := g.playfieldH - g.cfg.Obstacles.BottomMargin - g.cfg.Obstacles.GapSize/2
	if gapHi < gapLo {
		gapHi = gapLo // Very small playfields
	}
	_, err := g.pool.Spawn(g.playfieldW, gapLo, gapHi, g.cfg.Obstacles.GapSize)
	return err
}

// collides reports whether the actor currently intersects the playfield
// floor or ceiling, or any collidable barrier of a viewport-visible
// obstacle. Off-viewport obstacles are skipped; they cannot geometrically
// overlap an actor inside the viewport.
func (g *Game) collides() bool {
	bounds := g.actor.Bounds()

	if bounds.Y < 0 || bounds.Bottom() > g.playfieldH {
		return true
	}
	if g.actor.OutOfBounds(g.playfieldH) {
		return true
	}

	for _, o := range g.pool.Active() {
		if !o.Visible(g.playfieldW) {
			continue
		}
		for _, r := range o.Bounds() {
			if bounds.Overlaps(r) {
				return true
			}
		}
	}
	return false
}

// Stats returns the pool's allocation counters for diagnostics.
func (g *Game) Stats() PoolStats {
	return g.pool.Stats()
}

// Status returns the current session status.
func (g *Game) Status() SessionStatus {
	return g.session.Status()
}
