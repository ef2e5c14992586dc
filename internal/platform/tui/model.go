package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Model is the Bubble Tea model for a single run of the game.
type Model struct {
	game        Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	player      string
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	lastTick    time.Time
	quitting    bool
	backToTitle bool
	runSaved    bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Seed the HUD with the all-time best from storage.
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			game.SetBestScore(high)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Esc leaves a finished or paused run; mid-run it pauses.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToTitle = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}

	case core.ActionNone:
		// Unbound key.

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The field dimensions are baked into the simulation, so a resize
	// restarts the run unless it is already over.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.lastTick = time.Time{}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		m.lastTick = now
		return m, tickCmd(m.config.TickRate)
	}

	// Run the simulation against the measured frame time. The first tick
	// has no reference point, so it advances one nominal step.
	var result core.StepResult
	if m.lastTick.IsZero() {
		result = m.game.Step(m.inputFrame)
	} else {
		result = m.game.StepTimed(now.Sub(m.lastTick), m.inputFrame)
	}
	m.lastTick = now
	m.gameState = result.State

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run with its pickup counters.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	stats := m.game.Stats()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunRecord{
		Player:        m.player,
		Score:         m.gameState.Score,
		Coins:         stats.CoinsCollected,
		Enemies:       stats.EnemiesDefeated,
		Obstacles:     stats.ObstaclesDestroyed,
		DurationTicks: m.game.Ticks(),
		Seed:          m.game.Seed(),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tui-runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToTitle {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToTitle returns true if the user left the run for the title screen.
func (m Model) BackToTitle() bool {
	return m.backToTitle
}

// Run starts the Bubble Tea program with the given model and blocks until
// the run ends.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
