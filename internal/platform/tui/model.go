package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/APorkolab/SprintSolve/internal/core"
	"github.com/APorkolab/SprintSolve/internal/games/sprint"
	"github.com/APorkolab/SprintSolve/internal/registry"
	"github.com/APorkolab/SprintSolve/internal/storage"
	"github.com/APorkolab/SprintSolve/internal/trivia"
)

// snapshotter is implemented by games that expose a session snapshot.
// The model uses it to attribute saved scores to the played category.
type snapshotter interface {
	Snapshot() sprint.Snapshot
}

// Model is the Bubble Tea model running the game loop.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	categories []trivia.Category
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	scoreboard *ScoreboardModel // non-nil while the scoreboard overlay is open
	quitting   bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cats []trivia.Category, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		categories: cats,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Route everything to the scoreboard overlay while it is open
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Click anywhere to flap, mirroring the touch controls
		if msg.Action == tea.MouseActionPress {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The simulation runs in world units; only the cell buffer resizes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	if model, ok := sb.(ScoreboardModel); ok {
		if model.quitting {
			m.quitting = true
			return m, tea.Quit
		}
		if model.goingBack {
			m.scoreboard = nil
			return m, tickCmd(m.config.TickRate)
		}
		*m.scoreboard = model
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// High scores overlay, available outside active play
	if msg.String() == "h" && (m.gameState.GameOver || !isPlaying(m.game)) {
		sb := NewScoreboardModel(m.store, m.categories, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		if !wasOver {
			m.scoreSaved = false
		}
		m.saveScoreOnce()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScoreOnce persists the finished run exactly once per game over.
func (m *Model) saveScoreOnce() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		m.scoreSaved = true
		return
	}
	if sg, ok := m.game.(snapshotter); ok {
		snap := sg.Snapshot()
		//nolint:errcheck // Best-effort save, the session continues regardless
		m.store.SaveScore(snap.CategoryID, snap.Score)
	}
	m.scoreSaved = true
}

// isPlaying reports whether the game is mid-run (not in a menu phase).
func isPlaying(game registry.Game) bool {
	sg, ok := game.(snapshotter)
	if !ok {
		return false
	}
	phase := sg.Snapshot().Phase
	return phase == sprint.PhasePlaying || phase == sprint.PhasePaused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cats []trivia.Category, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cats, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // click-to-flap
	)

	_, err := p.Run()
	return err
}
