package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-glider/internal/config"
	"github.com/vovakirdan/tui-glider/internal/core"
	"github.com/vovakirdan/tui-glider/internal/render"
	"github.com/vovakirdan/tui-glider/internal/sim"
	"github.com/vovakirdan/tui-glider/internal/storage"
)

// Model is the Bubble Tea model running one glider session.
type Model struct {
	game     *sim.Game
	renderer *render.Renderer
	perf     *render.PerfMonitor
	intents  *core.IntentQueue
	keys     *KeyMapper
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig

	lastTick   time.Time
	runStart   time.Time
	prevStatus sim.SessionStatus
	showDiag   bool
	quitting   bool
	runSaved   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *sim.Game, gliderCfg *config.GliderConfig, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		game.Reseed(cfg.Seed)
	}

	game.SetPlayfield(float64(cfg.ScreenW), float64(cfg.ScreenH))

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "glider",
	})

	return Model{
		game:       game,
		renderer:   render.NewRenderer(cfg.ScreenW, cfg.ScreenH),
		perf:       render.NewPerfMonitor(gliderCfg.Perf),
		intents:    core.NewIntentQueue(),
		keys:       NewKeyMapper(),
		store:      store,
		logger:     logger,
		config:     cfg,
		prevStatus: sim.StatusMenu,
	}
}

// Init seeds the best score from storage and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.store != nil {
		if best, err := m.store.HighScore(); err == nil {
			//nolint:errcheck // Best-effort seed, negative cannot come from MAX
			m.game.SeedBest(best)
		}
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent, control := m.keys.MapKey(msg)

	switch control {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlPauseToggle:
		if m.game.Status() == sim.StatusPaused {
			m.game.Resume()
		} else {
			m.game.Pause()
		}
		return m, nil
	case ControlDiagnostics:
		// Only a toggle outside active play; 'd' is dead during a run so a
		// stray press cannot eat a flap frame.
		if m.game.Status() != sim.StatusPlaying || msg.String() == "f2" {
			m.showDiag = !m.showDiag
		}
		return m, nil
	case ControlScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	if intent != core.IntentNone {
		m.intents.Push(intent)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.renderer.Resize(msg.Width, msg.Height)
	m.game.SetPlayfield(float64(msg.Width), float64(msg.Height))
	return m, nil
}

// handleTick advances the simulation by the wall-clock delta since the
// previous tick and renders the resulting snapshot.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	for _, intent := range m.intents.Drain() {
		m.game.HandleIntent(intent)
	}

	snap, err := m.game.Update(dt)
	if err != nil {
		m.logger.Warn("simulation update", "error", err)
	}

	frameStart := time.Now()
	m.renderer.Render(snap, m.perf.Degraded())
	m.perf.RecordFrameCost(float64(time.Since(frameStart).Microseconds()) / 1000.0)

	m = m.trackRun(snap)

	return m, tickCmd(m.config.TickRate)
}

// trackRun watches status transitions to time runs and persist results.
func (m Model) trackRun(snap sim.Snapshot) Model {
	if snap.Status == sim.StatusPlaying && m.prevStatus != sim.StatusPlaying && m.prevStatus != sim.StatusPaused {
		m.runStart = time.Now()
		m.runSaved = false
	}

	if snap.Status == sim.StatusGameOver && !m.runSaved {
		if m.store != nil && snap.Score > 0 {
			duration := 0
			if !m.runStart.IsZero() {
				duration = int(time.Since(m.runStart).Seconds())
			}
			if _, err := m.store.SaveRun(snap.Score, int64(snap.Tick), duration); err != nil {
				m.logger.Warn("could not save run", "error", err)
			}
		}
		m.runSaved = true
	}

	m.prevStatus = snap.Status
	return m
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".glider", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("glider_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600)
}

// View renders the current frame, optionally with the diagnostics line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	out := RenderScreen(m.renderer.Screen())
	if m.showDiag {
		out += "\n" + m.diagnosticsLine()
	}
	return out
}

// diagnosticsLine formats the frame-cost monitor state.
func (m Model) diagnosticsLine() string {
	stats := m.perf.Stats()
	pool := m.game.Stats()
	mode := "full"
	if stats.Degraded {
		mode = "degraded"
	}
	return fmt.Sprintf("frame %.2fms  rate %.0f/s  streak %d  quality %s  pool %d/%d",
		stats.AverageFrameMs, stats.Rate, stats.SlowStreak, mode, pool.Active, pool.TotalAllocated)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *sim.Game, gliderCfg *config.GliderConfig, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, gliderCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
