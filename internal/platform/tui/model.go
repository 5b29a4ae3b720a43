package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// sessionState tracks which screen the play session shows.
type sessionState int

const (
	stateStart sessionState = iota
	statePlaying
	statePaused
	stateGameOver
)

// Model is the Bubble Tea model for a single play session. It owns the
// screen buffer, the engine instance and the command queue drained into
// each engine update.
type Model struct {
	rules  engine.Rules
	game   *engine.Game
	snap   engine.Snapshot
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	state    sessionState
	pending  []engine.Command // commands collected since the last tick
	dt       time.Duration    // fixed simulation step per tick
	prevHigh int
	newHigh  bool
	saved    bool // whether the run has been persisted for this game over
	quitting bool
}

// NewModel creates a play session model for the given rules.
func NewModel(rules engine.Rules, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rules.Seed = cfg.Seed

	m := Model{
		rules:  rules,
		game:   engine.New(rules),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		state:  stateStart,
		dt:     time.Second / time.Duration(cfg.TickRate),
	}
	m.snap = m.game.Update(0, nil)

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.prevHigh = high
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Session keys win over game keys, so
// space confirms on overlays and hard-drops during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapUIKey(msg)
	if action == UIActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateStart:
		if action == UIActionConfirm {
			m.state = statePlaying
		}

	case statePlaying:
		if action == UIActionPause {
			m.state = statePaused
			return m, nil
		}
		if cmd, ok := m.keys.MapGameKey(msg); ok {
			m.pending = append(m.pending, cmd)
		}

	case statePaused:
		switch action {
		case UIActionPause, UIActionConfirm:
			m.state = statePlaying
		case UIActionRestart:
			m = m.restart()
		}

	case stateGameOver:
		// r only; a trailing hard-drop space must not skip the score card
		if action == UIActionRestart {
			m = m.restart()
		}
	}

	return m, nil
}

// handleTick advances the simulation by one fixed step. Paused and overlay
// states keep the tick loop alive but feed the engine nothing. Feeding a
// constant step keeps runs reproducible for a given seed regardless of
// render jitter.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state == statePlaying {
		m.snap = m.game.Update(m.dt, m.pending)
		m.pending = m.pending[:0]

		if m.snap.GameOver {
			m.state = stateGameOver
			m.newHigh = m.game.IsNewHighScore(m.prevHigh)
			m.saveResult()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed under the same rules.
func (m Model) restart() Model {
	m.rules.Seed = time.Now().UnixNano()
	m.game = engine.New(m.rules)
	m.snap = m.game.Update(0, nil)
	m.pending = m.pending[:0]
	m.saved = false
	m.newHigh = false
	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil {
			m.prevHigh = high
		}
	}
	m.state = statePlaying
	return m
}

// saveResult persists the finished run once per game over.
func (m *Model) saveResult() {
	if m.saved || m.store == nil || m.snap.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveScore(storage.Result{
		Score:    m.snap.Score,
		Lines:    m.snap.Lines,
		Level:    m.snap.Level,
		Pieces:   m.snap.Pieces,
		MaxCombo: m.snap.MaxCombo,
		Duration: m.snap.Elapsed,
	})
	m.saved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.snap, m.frame())

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// frame bundles the presentation state the renderer needs beyond the
// snapshot.
func (m Model) frame() frameState {
	return frameState{
		state:    m.state,
		prevHigh: m.prevHigh,
		newHigh:  m.newHigh,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.snap, m.frame())
	return RenderScreen(m.screen)
}

// Run starts a local play session in the terminal.
func Run(rules engine.Rules, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(rules, store, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
