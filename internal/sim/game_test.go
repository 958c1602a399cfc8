package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-glider/internal/config"
	"github.com/vovakirdan/tui-glider/internal/core"
)

func testConfig() config.GliderConfig {
	cfg := config.DefaultConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func testGame(seed int64) *Game {
	g := New(testConfig(), seed)
	g.SetPlayfield(80, 24)
	return g
}

func TestGameStateMachineFlow(t *testing.T) {
	g := testGame(1)

	if g.Status() != StatusMenu {
		t.Fatalf("initial status = %v, expected StatusMenu", g.Status())
	}

	// Menu -> Playing with score 0
	g.HandleIntent(core.IntentFlap)
	snap := g.Snapshot()
	if snap.Status != StatusPlaying {
		t.Fatalf("status after flap in menu = %v, expected StatusPlaying", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("score at session start = %d, expected 0", snap.Score)
	}

	// Force a floor collision
	g.actor.Y = 23.9
	g.actor.Velocity = 100
	snap, err := g.Update(1.0 / 60)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if snap.Status != StatusGameOver {
		t.Fatalf("status after collision = %v, expected StatusGameOver", snap.Status)
	}
	if snap.ActorStatus != LifeDead {
		t.Errorf("actor status after collision = %v, expected LifeDead", snap.ActorStatus)
	}

	// GameOver -> Playing via restart, score reset
	g.HandleIntent(core.IntentFlap)
	snap = g.Snapshot()
	if snap.Status != StatusPlaying {
		t.Fatalf("status after flap in game over = %v, expected StatusPlaying", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("score after restart = %d, expected 0", snap.Score)
	}
	if snap.Pool.Active != 0 {
		t.Errorf("active obstacles after restart = %d, expected 0", snap.Pool.Active)
	}
}

func TestGameRestartIntent(t *testing.T) {
	g := testGame(1)
	g.HandleIntent(core.IntentFlap)

	// Restart while playing is a no-op
	g.actor.Y = 12
	g.HandleIntent(core.IntentRestart)
	if g.Status() != StatusPlaying {
		t.Errorf("restart while playing moved status to %v", g.Status())
	}

	g.actor.Y = 23.9
	g.actor.Velocity = 100
	if _, err := g.Update(1.0 / 60); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if g.Status() != StatusGameOver {
		t.Fatalf("expected game over, got %v", g.Status())
	}

	g.HandleIntent(core.IntentRestart)
	if g.Status() != StatusPlaying {
		t.Errorf("restart in game over = %v, expected StatusPlaying", g.Status())
	}
}

func TestGameScoringExactlyOnce(t *testing.T) {
	g := testGame(1)
	g.HandleIntent(core.IntentFlap)

	// Place one obstacle already behind the actor (actor x = 10).
	o, err := g.pool.Spawn(80, 7, 17, 8)
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}
	o.X = 2 // trailing edge at 7, behind the actor, clear of its hitbox

	snap, err := g.Update(0.001)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if snap.Score != 1 {
		t.Fatalf("score after passing obstacle = %d, expected 1", snap.Score)
	}
	if !o.Scored() {
		t.Error("obstacle should be marked scored")
	}

	snap, err = g.Update(0.001)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if snap.Score != 1 {
		t.Errorf("score after second update = %d, expected 1 (exactly-once)", snap.Score)
	}
}

func TestGameIntentBurstDispatchesIndividually(t *testing.T) {
	g := testGame(1)
	impulse := testConfig().Physics.JumpImpulse

	// Start-then-jump-then-jump from a single frame's queue.
	for _, intent := range []core.Intent{core.IntentFlap, core.IntentFlap, core.IntentFlap} {
		g.HandleIntent(intent)
	}

	if g.Status() != StatusPlaying {
		t.Fatalf("status after burst = %v, expected StatusPlaying", g.Status())
	}
	if g.actor.Velocity != impulse {
		t.Errorf("velocity after burst = %v, expected impulse %v", g.actor.Velocity, impulse)
	}
}

func TestGameUpdateNoOpOutsidePlaying(t *testing.T) {
	g := testGame(1)

	snap, err := g.Update(1.0 / 60)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if snap.Tick != 0 {
		t.Errorf("tick advanced in menu: %d", snap.Tick)
	}
	if snap.Status != StatusMenu {
		t.Errorf("status = %v, expected StatusMenu", snap.Status)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := testGame(1)
	g.HandleIntent(core.IntentFlap)
	if _, err := g.Update(1.0 / 60); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	g.Pause()
	before := g.Snapshot()

	snap, err := g.Update(1.0 / 60)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if snap.Tick != before.Tick || snap.ActorY != before.ActorY {
		t.Error("paused update should not advance the simulation")
	}

	g.Resume()
	snap, err = g.Update(1.0 / 60)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if snap.Tick != before.Tick+1 {
		t.Errorf("tick after resume = %d, expected %d", snap.Tick, before.Tick+1)
	}
}

func TestGameDeltaClamp(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, 1)
	g.SetPlayfield(80, 600) // tall playfield so no collision interferes

	g.HandleIntent(core.IntentFlap)
	yBefore := g.actor.Y

	// An absurd host stall must not tunnel the actor.
	if _, err := g.Update(10); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	maxStep := cfg.Physics.TerminalVelocity * cfg.Physics.MaxTickSeconds
	if moved := g.actor.Y - yBefore; moved > maxStep {
		t.Errorf("oversized delta moved actor %v cells, clamp allows at most %v", moved, maxStep)
	}
}

func TestGameSpawnBeforePlayfieldReportsError(t *testing.T) {
	g := New(testConfig(), 1)
	// No SetPlayfield: starting is possible but spawning must fail loudly.
	g.HandleIntent(core.IntentFlap)
	g.spawnElapsed = g.cfg.Obstacles.SpawnInterval

	_, err := g.Update(1.0 / 60)
	if !errors.Is(err, ErrPlayfieldNotSet) {
		t.Fatalf("Update() error = %v, expected ErrPlayfieldNotSet", err)
	}

	stats := g.Stats()
	if stats.Active != 0 {
		t.Errorf("failed spawn left %d active obstacles", stats.Active)
	}
}

func TestGameSpawnCadence(t *testing.T) {
	g := testGame(5)
	g.HandleIntent(core.IntentFlap)

	interval := g.cfg.Obstacles.SpawnInterval
	dt := 1.0 / 60
	ticks := int(interval/dt) + 2

	for i := 0; i < ticks; i++ {
		// Keep the actor alive mid-field
		g.actor.Y = 12
		g.actor.Velocity = 0
		if _, err := g.Update(dt); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}

	if g.Stats().Active < 1 {
		t.Error("no obstacle spawned after one full interval")
	}
}

func TestGameFreeFallEndsOutOfBounds(t *testing.T) {
	cfg := testConfig()
	cfg.Actor.X = 80
	g := New(cfg, 1)
	g.SetPlayfield(400, 600)

	g.HandleIntent(core.IntentFlap)
	if g.actor.Y != 300 {
		t.Fatalf("actor start Y = %v, expected 300", g.actor.Y)
	}

	dt := 1.0 / 60
	prevY := g.actor.Y
	var final Snapshot
	for i := 0; i < 120; i++ { // two seconds
		snap, err := g.Update(dt)
		if err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
		final = snap
		if snap.Status == StatusGameOver {
			break
		}
		if snap.ActorY <= prevY {
			t.Fatalf("tick %d: actor Y %v did not strictly increase from %v", i, snap.ActorY, prevY)
		}
		prevY = snap.ActorY
	}

	if final.Status != StatusGameOver {
		t.Fatal("free fall for two seconds should end the session")
	}
	if final.Score != 0 {
		t.Errorf("free-fall score = %d, expected 0", final.Score)
	}
	if final.Best != 0 {
		t.Errorf("best after scoreless run = %d, expected 0", final.Best)
	}
}

func TestGameBestScoreFoldsOnGameOver(t *testing.T) {
	g := testGame(1)
	if err := g.SeedBest(2); err != nil {
		t.Fatalf("SeedBest() failed: %v", err)
	}

	g.HandleIntent(core.IntentFlap)
	g.session.AddScore(5)

	g.actor.Y = 23.9
	g.actor.Velocity = 100
	snap, err := g.Update(1.0 / 60)
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	if snap.Best != 5 {
		t.Errorf("best after game over = %d, expected 5", snap.Best)
	}
}

func TestGameSnapshotIsDetached(t *testing.T) {
	g := testGame(1)
	g.HandleIntent(core.IntentFlap)

	if _, err := g.pool.Spawn(40, 7, 17, 8); err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	snap := g.Snapshot()
	if len(snap.Obstacles) != 1 {
		t.Fatalf("snapshot obstacles = %d, expected 1", len(snap.Obstacles))
	}

	// Mutating the snapshot must not touch live state.
	snap.Obstacles[0].X = -999
	snap.Obstacles[0].Bounds[0].W = -999

	fresh := g.Snapshot()
	if fresh.Obstacles[0].X == -999 {
		t.Error("snapshot mutation leaked into live obstacle state")
	}
	if fresh.Obstacles[0].Bounds[0].W == -999 {
		t.Error("snapshot bounds mutation leaked into live obstacle state")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := testGame(12345)
		g.HandleIntent(core.IntentFlap)

		var last Snapshot
		for i := 0; i < 400; i++ {
			if i%15 == 0 {
				g.HandleIntent(core.IntentFlap)
			}
			snap, err := g.Update(1.0 / 60)
			if err != nil {
				t.Fatalf("Update() failed: %v", err)
			}
			last = snap
			if snap.Status == StatusGameOver {
				break
			}
		}
		return last
	}

	s1 := run()
	s2 := run()

	if s1.Tick != s2.Tick || s1.Score != s2.Score {
		t.Errorf("determinism failed: run1 tick=%d score=%d, run2 tick=%d score=%d",
			s1.Tick, s1.Score, s2.Tick, s2.Score)
	}
	if len(s1.Obstacles) != len(s2.Obstacles) {
		t.Fatalf("determinism failed: obstacle counts differ (%d vs %d)", len(s1.Obstacles), len(s2.Obstacles))
	}
	for i := range s1.Obstacles {
		if s1.Obstacles[i].X != s2.Obstacles[i].X {
			t.Errorf("obstacle %d: X differs (%v vs %v)", i, s1.Obstacles[i].X, s2.Obstacles[i].X)
		}
	}
}
