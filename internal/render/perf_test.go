package render

import (
	"testing"

	"github.com/vovakirdan/tui-glider/internal/config"
)

func testPerfConfig() config.Perf {
	return config.Perf{WindowSize: 8, SlowFrameMs: 25, SlowStreak: 3}
}

func TestPerfMonitorStaysFullQualityBelowStreak(t *testing.T) {
	m := NewPerfMonitor(testPerfConfig())
	m.RecordFrameCost(30)
	m.RecordFrameCost(30)
	if m.Degraded() {
		t.Fatal("degraded before the slow streak limit was reached")
	}
}

func TestPerfMonitorDegradesAtStreakLimit(t *testing.T) {
	m := NewPerfMonitor(testPerfConfig())
	for i := 0; i < 3; i++ {
		m.RecordFrameCost(30)
	}
	if !m.Degraded() {
		t.Fatal("expected degraded after 3 consecutive slow frames")
	}
}

func TestPerfMonitorRecoversOnSingleFastFrame(t *testing.T) {
	m := NewPerfMonitor(testPerfConfig())
	for i := 0; i < 5; i++ {
		m.RecordFrameCost(30)
	}
	if !m.Degraded() {
		t.Fatal("expected degraded state before recovery")
	}
	m.RecordFrameCost(10)
	if m.Degraded() {
		t.Fatal("one fast frame must recover full quality immediately")
	}
	if m.Stats().SlowStreak != 0 {
		t.Fatalf("slow streak = %d after fast frame, want 0", m.Stats().SlowStreak)
	}
}

func TestPerfMonitorInterruptedStreakNeverDegrades(t *testing.T) {
	m := NewPerfMonitor(testPerfConfig())
	for i := 0; i < 10; i++ {
		m.RecordFrameCost(30)
		m.RecordFrameCost(30)
		m.RecordFrameCost(10) // break the streak before the limit
	}
	if m.Degraded() {
		t.Fatal("interrupted slow streaks must never enable degraded mode")
	}
}

func TestPerfMonitorThresholdIsExclusive(t *testing.T) {
	m := NewPerfMonitor(testPerfConfig())
	for i := 0; i < 10; i++ {
		m.RecordFrameCost(25) // exactly at the threshold is not slow
	}
	if m.Degraded() {
		t.Fatal("frames at exactly the threshold must not count as slow")
	}
}

func TestPerfMonitorAverageAndRate(t *testing.T) {
	m := NewPerfMonitor(testPerfConfig())
	if got := m.AverageFrameCost(); got != 0 {
		t.Fatalf("empty average = %v, want 0", got)
	}
	if got := m.CurrentRate(); got != 60 {
		t.Fatalf("empty rate = %v, want 60", got)
	}

	m.RecordFrameCost(10)
	m.RecordFrameCost(30)
	if got := m.AverageFrameCost(); got != 20 {
		t.Fatalf("average = %v, want 20", got)
	}
	if got := m.CurrentRate(); got != 50 {
		t.Fatalf("rate = %v, want 50", got)
	}
}

func TestPerfMonitorWindowEvictsOldest(t *testing.T) {
	m := NewPerfMonitor(config.Perf{WindowSize: 4, SlowFrameMs: 25, SlowStreak: 3})
	for i := 0; i < 4; i++ {
		m.RecordFrameCost(100)
	}
	for i := 0; i < 4; i++ {
		m.RecordFrameCost(20)
	}
	if got := m.AverageFrameCost(); got != 20 {
		t.Fatalf("average after full eviction = %v, want 20", got)
	}
	if got := m.Stats().Samples; got != 4 {
		t.Fatalf("samples = %d, want window size 4", got)
	}
}

func TestPerfMonitorReset(t *testing.T) {
	m := NewPerfMonitor(testPerfConfig())
	for i := 0; i < 5; i++ {
		m.RecordFrameCost(40)
	}
	m.Reset()
	if m.Degraded() {
		t.Fatal("degraded survived Reset")
	}
	if got := m.Stats().Samples; got != 0 {
		t.Fatalf("samples after reset = %d, want 0", got)
	}
}

func TestPerfMonitorZeroConfigFallsBackToDefaults(t *testing.T) {
	m := NewPerfMonitor(config.Perf{})
	if len(m.samples) != defaultPerfWindow {
		t.Fatalf("window = %d, want default %d", len(m.samples), defaultPerfWindow)
	}
	if m.slowFrameMs != defaultSlowFrameMs || m.streakLimit != defaultSlowStreak {
		t.Fatalf("thresholds = (%v, %d), want defaults (%v, %d)",
			m.slowFrameMs, m.streakLimit, defaultSlowFrameMs, defaultSlowStreak)
	}
}
