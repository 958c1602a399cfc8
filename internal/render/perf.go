// Package render implements the presentation side of the glider engine:
// frame-cost monitoring, dirty-region tracking, draw batching with style
// grouping, resource memoization, and the snapshot renderer. Like the
// simulation core it is pure and platform-free; the Bubble Tea layer owns
// the actual terminal.
package render

import "github.com/vovakirdan/tui-glider/internal/config"

// Fallbacks when the config carries zero values.
const (
	defaultPerfWindow  = 120
	defaultSlowFrameMs = 25.0
	defaultSlowStreak  = 12
	defaultRate        = 60.0
)

// PerfMonitor keeps a bounded sliding window of per-frame costs and
// derives a degraded-quality flag with asymmetric hysteresis: slow to
// enter (a streak of slow frames), quick to exit (one fast frame).
type PerfMonitor struct {
	samples []float64 // ring buffer of frame costs in milliseconds
	head    int
	count   int

	slowFrameMs float64
	streakLimit int
	slowStreak  int
	degraded    bool
}

// PerfStats is a read-only view of the monitor for diagnostics.
type PerfStats struct {
	AverageFrameMs float64
	Rate           float64
	SlowStreak     int
	Degraded       bool
	Samples        int
}

// NewPerfMonitor creates a monitor with the configured window and
// thresholds, substituting defaults for zero values.
func NewPerfMonitor(cfg config.Perf) *PerfMonitor {
	window := cfg.WindowSize
	if window <= 0 {
		window = defaultPerfWindow
	}
	slowMs := cfg.SlowFrameMs
	if slowMs <= 0 {
		slowMs = defaultSlowFrameMs
	}
	streak := cfg.SlowStreak
	if streak <= 0 {
		streak = defaultSlowStreak
	}
	return &PerfMonitor{
		samples:     make([]float64, window),
		slowFrameMs: slowMs,
		streakLimit: streak,
	}
}

// RecordFrameCost appends a frame cost in milliseconds, evicting the
// oldest sample past the window capacity, and updates the degraded flag.
func (m *PerfMonitor) RecordFrameCost(ms float64) {
	m.samples[m.head] = ms
	m.head = (m.head + 1) % len(m.samples)
	if m.count < len(m.samples) {
		m.count++
	}

	if ms > m.slowFrameMs {
		m.slowStreak++
		if m.slowStreak >= m.streakLimit {
			m.degraded = true
		}
	} else {
		// One fast frame recovers full quality immediately.
		m.slowStreak = 0
		m.degraded = false
	}
}

// AverageFrameCost returns the mean cost over the window in milliseconds,
// or 0 when no samples have been recorded.
func (m *PerfMonitor) AverageFrameCost() float64 {
	if m.count == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < m.count; i++ {
		sum += m.samples[i]
	}
	return sum / float64(m.count)
}

// CurrentRate returns the frame rate implied by the average cost
// (1000/avg-ms), or a safe default when the window is empty.
func (m *PerfMonitor) CurrentRate() float64 {
	avg := m.AverageFrameCost()
	if avg <= 0 {
		return defaultRate
	}
	return 1000.0 / avg
}

// Degraded reports whether the render path should drop to reduced quality.
func (m *PerfMonitor) Degraded() bool {
	return m.degraded
}

// Stats returns the monitor's current derived values.
func (m *PerfMonitor) Stats() PerfStats {
	return PerfStats{
		AverageFrameMs: m.AverageFrameCost(),
		Rate:           m.CurrentRate(),
		SlowStreak:     m.slowStreak,
		Degraded:       m.degraded,
		Samples:        m.count,
	}
}

// Reset clears the window and the degraded state.
func (m *PerfMonitor) Reset() {
	m.head = 0
	m.count = 0
	m.slowStreak = 0
	m.degraded = false
}
