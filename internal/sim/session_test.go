package sim

import (
	"errors"
	"testing"
)

func TestSessionStartsInMenu(t *testing.T) {
	s := NewSession()
	if s.Status() != StatusMenu {
		t.Errorf("status = %v, expected StatusMenu", s.Status())
	}
	if s.SpeedMultiplier() != 1.0 {
		t.Errorf("speed multiplier = %v, expected 1.0", s.SpeedMultiplier())
	}
}

func TestSessionStartResetsScore(t *testing.T) {
	s := NewSession()
	s.Start()
	s.AddScore(5)
	s.End()

	s.Start()
	if s.Score() != 0 {
		t.Errorf("score after restart = %d, expected 0", s.Score())
	}
	if s.Status() != StatusPlaying {
		t.Errorf("status = %v, expected StatusPlaying", s.Status())
	}
	if s.Best() != 5 {
		t.Errorf("best after restart = %d, expected 5", s.Best())
	}
}

func TestSessionPauseResumeStrict(t *testing.T) {
	s := NewSession()

	// Pause outside Playing is a no-op
	s.Pause()
	if s.Status() != StatusMenu {
		t.Errorf("Pause() in menu moved status to %v", s.Status())
	}

	// Resume outside Paused is a no-op
	s.Start()
	s.Resume()
	if s.Status() != StatusPlaying {
		t.Errorf("Resume() while playing moved status to %v", s.Status())
	}

	s.Pause()
	if s.Status() != StatusPaused {
		t.Errorf("Pause() while playing = %v, expected StatusPaused", s.Status())
	}

	// Resume keeps the score
	s.Resume()
	if s.Status() != StatusPlaying {
		t.Errorf("Resume() while paused = %v, expected StatusPlaying", s.Status())
	}
}

func TestSessionResumeKeepsScore(t *testing.T) {
	s := NewSession()
	s.Start()
	s.AddScore(3)
	s.Pause()
	s.Resume()

	if s.Score() != 3 {
		t.Errorf("score after pause/resume = %d, expected 3", s.Score())
	}
}

func TestSessionEndFoldsBest(t *testing.T) {
	s := NewSession()
	s.Start()
	s.AddScore(7)
	s.End()

	if s.Status() != StatusGameOver {
		t.Errorf("status = %v, expected StatusGameOver", s.Status())
	}
	if s.Best() != 7 {
		t.Errorf("best = %d, expected 7", s.Best())
	}

	// A worse run never lowers the best
	s.Start()
	s.AddScore(2)
	s.End()
	if s.Best() != 7 {
		t.Errorf("best after worse run = %d, expected 7", s.Best())
	}
}

func TestSessionSeedBestRejectsNegative(t *testing.T) {
	s := NewSession()
	if err := s.SeedBest(10); err != nil {
		t.Fatalf("SeedBest(10) failed: %v", err)
	}

	err := s.SeedBest(-1)
	if !errors.Is(err, ErrNegativeBestScore) {
		t.Errorf("SeedBest(-1) error = %v, expected ErrNegativeBestScore", err)
	}
	if s.Best() != 10 {
		t.Errorf("best after rejected seed = %d, expected 10", s.Best())
	}

	// Seeding below the current best retains the higher value.
	if err := s.SeedBest(4); err != nil {
		t.Fatalf("SeedBest(4) failed: %v", err)
	}
	if s.Best() != 10 {
		t.Errorf("best after lower seed = %d, expected 10", s.Best())
	}
}

func TestSessionSpeedMultiplierRejectsNonPositive(t *testing.T) {
	s := NewSession()
	if err := s.SetSpeedMultiplier(1.5); err != nil {
		t.Fatalf("SetSpeedMultiplier(1.5) failed: %v", err)
	}

	for _, m := range []float64{0, -1} {
		err := s.SetSpeedMultiplier(m)
		if !errors.Is(err, ErrInvalidSpeedMultiplier) {
			t.Errorf("SetSpeedMultiplier(%v) error = %v, expected ErrInvalidSpeedMultiplier", m, err)
		}
		if s.SpeedMultiplier() != 1.5 {
			t.Errorf("multiplier after rejection = %v, expected 1.5", s.SpeedMultiplier())
		}
	}
}
