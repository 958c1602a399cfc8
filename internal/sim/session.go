package sim

import "errors"

// SessionStatus is the finite-state status of a match.
type SessionStatus int

const (
	StatusMenu SessionStatus = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s SessionStatus) String() string {
	switch s {
	case StatusMenu:
		return "Menu"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Invalid-input errors. The prior value is always retained on rejection.
var (
	ErrNegativeBestScore      = errors.New("sim: best score seed must be non-negative")
	ErrInvalidSpeedMultiplier = errors.New("sim: speed multiplier must be positive")
)

// Session is the finite-state record of a match: status, running score,
// best score, and the world speed multiplier.
type Session struct {
	status          SessionStatus
	score           int
	best            int
	speedMultiplier float64
}

// NewSession creates a session in the menu state.
func NewSession() *Session {
	return &Session{
		status:          StatusMenu,
		speedMultiplier: 1.0,
	}
}

// Status returns the current match status.
func (s *Session) Status() SessionStatus { return s.status }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen this process lifetime (or seeded).
func (s *Session) Best() int { return s.best }

// SpeedMultiplier returns the current world speed multiplier.
func (s *Session) SpeedMultiplier() float64 { return s.speedMultiplier }

// Start begins a fresh match: score zeroed, status Playing.
func (s *Session) Start() {
	s.score = 0
	s.status = StatusPlaying
}

// Pause suspends play. No-op unless currently playing.
func (s *Session) Pause() {
	if s.status == StatusPlaying {
		s.status = StatusPaused
	}
}

// Resume continues play. No-op unless currently paused. Resuming does not
// reset the score: pause/resume stays within one match.
func (s *Session) Resume() {
	if s.status == StatusPaused {
		s.status = StatusPlaying
	}
}

// End finishes the match and folds the final score into the best score.
func (s *Session) End() {
	s.status = StatusGameOver
	if s.score > s.best {
		s.best = s.score
	}
}

// AddScore increments the running score and keeps best monotone.
func (s *Session) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.score += points
	if s.score > s.best {
		s.best = s.score
	}
}

// SeedBest installs a persisted best score. Negative seeds are rejected
// and the prior value is retained.
func (s *Session) SeedBest(best int) error {
	if best < 0 {
		return ErrNegativeBestScore
	}
	if best > s.best {
		s.best = best
	}
	return nil
}

// SetSpeedMultiplier assigns the world speed multiplier. Non-positive
// values are rejected and the prior value is retained.
func (s *Session) SetSpeedMultiplier(m float64) error {
	if m <= 0 {
		return ErrInvalidSpeedMultiplier
	}
	s.speedMultiplier = m
	return nil
}
