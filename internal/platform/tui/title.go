package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Title screen menu rows.
const (
	titleRowStart = iota
	titleRowDifficulty
	titleRowScores
	titleRowQuit
	titleRowCount
)

var difficultyChoices = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// TitleModel is the Bubble Tea model for the title screen. Selecting the
// difficulty row opens a second stage with the preset list.
type TitleModel struct {
	cursor         int
	diffCursor     int
	inDifficulty   bool
	difficulty     config.DifficultyPreset
	width          int
	height         int
	best           int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	starting       bool
	openScoreboard bool
	quitting       bool
}

// NewTitleModel creates a title model. The best score is read from storage
// for the footer; a nil store just hides it.
func NewTitleModel(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) TitleModel {
	if !config.ValidPreset(difficulty) {
		difficulty = config.DifficultyNormal
	}

	best := 0
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			best = high
		}
	}

	diffCursor := 0
	for i, d := range difficultyChoices {
		if d == difficulty {
			diffCursor = i
		}
	}

	return TitleModel{
		diffCursor: diffCursor,
		difficulty: difficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		best:       best,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m TitleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDifficulty {
		return m.handleDifficultyKey(action)
	}
	return m.handleMainKey(action)
}

func (m TitleModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < titleRowCount-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case titleRowStart:
			m.starting = true
			return m, tea.Quit
		case titleRowDifficulty:
			m.inDifficulty = true
		case titleRowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case titleRowQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m TitleModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}

	case MenuActionDown:
		if m.diffCursor < len(difficultyChoices)-1 {
			m.diffCursor++
		}

	case MenuActionSelect:
		m.difficulty = difficultyChoices[m.diffCursor]
		m.inDifficulty = false

	case MenuActionBack:
		m.inDifficulty = false
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDifficulty {
		return m.viewDifficulty()
	}
	return m.viewMain()
}

func (m TitleModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S H A D O W   R U N N E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Outrun the dark. Collect the light.", m.width))
	b.WriteString("\n\n")

	rows := []string{
		"Start Run",
		fmt.Sprintf("Difficulty: %s", m.difficulty),
		"High Scores",
		"Quit",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	if m.best > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m TitleModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, d := range difficultyChoices {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		marker := "  "
		if d == m.difficulty {
			marker = " *"
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s%s", cursor, d, marker), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Starting returns true if the user chose to start a run.
func (m TitleModel) Starting() bool {
	return m.starting
}

// Difficulty returns the selected difficulty preset.
func (m TitleModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// WantsScoreboard returns true if the user requested the scoreboard.
func (m TitleModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// IsQuitting returns true if the user requested to quit.
func (m TitleModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m TitleModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// TitleResult holds the outcome of running the title screen.
type TitleResult struct {
	Start           bool
	Difficulty      config.DifficultyPreset
	WantsScoreboard bool
	Quit            bool
	Config          core.RuntimeConfig
}

// RunTitle runs the title screen and returns the selection result.
func RunTitle(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (TitleResult, error) {
	model := NewTitleModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return TitleResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(TitleModel)
	if !ok {
		return TitleResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	result := TitleResult{
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting():
		result.Quit = true
	case m.Starting():
		result.Start = true
	default:
		result.Quit = true
	}

	return result, nil
}
