// Package sprint implements SprintSolve, an arcade trivia runner.
// The player flies through scrolling wall bands whose tunnels are annotated
// with candidate answers; passing through the tunnel with the correct answer
// scores, everything else costs a life or the game.
package sprint

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/APorkolab/SprintSolve/internal/config"
	"github.com/APorkolab/SprintSolve/internal/core"
	"github.com/APorkolab/SprintSolve/internal/registry"
	"github.com/APorkolab/SprintSolve/internal/trivia"
)

// Phase is the top-level state of the game session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCategorySelect
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCategorySelect:
		return "category_select"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// messageTicks is how long transient messages ("Correct!") stay visible.
const messageTicks = 45

// Game orchestrates the whole trivia-runner session: phase transitions,
// per-tick physics and obstacle updates, exactly-once collision resolution,
// and asynchronous question fetching.
type Game struct {
	cfg  core.RuntimeConfig
	conf config.SprintConfig

	difficulty *config.DifficultyManager
	provider   trivia.Provider
	sink       EventSink
	rng        *rand.Rand

	phase      Phase
	character  Character
	pool       *Pool
	pickups    []Pickup
	question   trivia.Question
	categories []trivia.Category
	cursor     int // category-select cursor
	categoryID int

	score     int
	lives     int
	hasShield bool
	gameSpeed float64
	tickCount int

	// Per-round bookkeeping. collisionProcessed guards against resolving
	// one physical collision more than once; it is cleared only when fresh
	// geometry has fully replaced the old wall. roundJustStarted holds
	// gravity until the first jump of the round.
	collisionProcessed bool
	roundJustStarted   bool
	roundDelay         int // ticks until the next round starts, 0 = none scheduled
	awaitingQuestion   bool

	message     string
	messageLeft int

	fetchCh       chan fetchResult
	fetchSeq      uint64
	fetchInFlight bool
	fetchCancel   func()
}

// New creates a new game instance with the package-level configuration.
func New() *Game {
	return &Game{}
}

// Package-level wiring applied before the registry creates the instance,
// following the platform's configure-then-create convention.
var (
	configPath       string
	difficultyPreset string
	defaultProvider  trivia.Provider
	defaultSink      EventSink
	defaultCats      []trivia.Category
	startCategory    int
)

// SetConfigPath sets a custom YAML config path for subsequently created games.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset sets the difficulty preset (easy/normal/hard/fixed).
func SetDifficultyPreset(preset string) { difficultyPreset = preset }

// SetProvider injects the question provider. Without one the game falls
// back to the embedded static pack.
func SetProvider(p trivia.Provider) { defaultProvider = p }

// SetEventSink attaches an event subscriber for audio/analytics.
func SetEventSink(s EventSink) { defaultSink = s }

// SetCategories supplies the selectable category list. Without one the
// embedded pack's categories are offered.
func SetCategories(cats []trivia.Category) { defaultCats = cats }

// SetStartCategory makes new games skip the menus and start directly in the
// given category. Zero restores the normal menu flow.
func SetStartCategory(id int) { startCategory = id }

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sprint"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "SprintSolve"
}

// Reset initializes or restarts the whole session at the menu phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	conf, err := config.LoadSprint(configPath)
	if err != nil {
		conf = config.DefaultSprintConfig()
	}
	if difficultyPreset != "" {
		config.ApplySprintPreset(&conf, config.DifficultyPreset(difficultyPreset))
	}
	g.conf = conf
	g.difficulty = config.NewDifficultyManager(conf.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.provider = defaultProvider
	g.categories = defaultCats
	if g.provider == nil {
		static := trivia.NewStaticProvider(trivia.DefaultPack(), cfg.Seed)
		g.provider = static
		if g.categories == nil {
			// Static provider lists its own pack; error cannot occur.
			g.categories, _ = static.Categories(context.Background())
		}
	}
	g.sink = defaultSink
	if g.sink == nil {
		g.sink = NopSink{}
	}

	if g.pool == nil {
		g.pool = NewPool()
	}

	g.cancelFetch()
	if g.fetchCh == nil {
		g.fetchCh = make(chan fetchResult, 1)
	}

	g.character = Character{
		X:           conf.Character.X,
		Size:        conf.Character.Size,
		Gravity:     conf.Physics.Gravity,
		JumpImpulse: conf.Physics.JumpImpulse,
	}
	g.character.Reset(conf.Canvas.Height)

	g.phase = PhaseMenu
	g.cursor = 0
	g.resetSession()

	if startCategory != 0 {
		g.StartCategory(startCategory)
	}
}

// resetSession clears everything that belongs to one play-through.
// Any in-flight fetch is invalidated so its result cannot leak into the
// fresh session.
func (g *Game) resetSession() {
	g.cancelFetch()
	g.score = 0
	g.lives = g.conf.Gameplay.Lives
	g.hasShield = false
	g.gameSpeed = g.conf.Gameplay.BaseSpeed
	g.tickCount = 0
	g.collisionProcessed = false
	g.roundJustStarted = true
	g.roundDelay = 0
	g.awaitingQuestion = false
	g.question = trivia.Question{}
	g.message = ""
	g.messageLeft = 0
	g.pickups = g.pickups[:0]
	g.pool.Clear()
	g.character.Reset(g.conf.Canvas.Height)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhaseCategorySelect:
		g.stepCategorySelect(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhasePaused:
		if in.Has(core.ActionPause) {
			g.phase = PhasePlaying
		}
	case PhaseGameOver:
		g.stepGameOver(in)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		g.phase = PhaseCategorySelect
	}
}

func (g *Game) stepCategorySelect(in core.InputFrame) {
	if in.Has(core.ActionUp) && g.cursor > 0 {
		g.cursor--
	}
	if in.Has(core.ActionDown) && g.cursor < len(g.categories)-1 {
		g.cursor++
	}
	// Enter only: space doubles as cursor-up in menus
	if in.Has(core.ActionConfirm) {
		if len(g.categories) == 0 {
			return
		}
		g.StartCategory(g.categories[g.cursor].ID)
	}
}

// StartCategory begins a play-through in the given category.
// Exposed so the platform can skip the in-game menus when a category was
// chosen on the command line.
func (g *Game) StartCategory(categoryID int) {
	g.categoryID = categoryID
	g.resetSession()
	g.phase = PhasePlaying
	g.startRound()
}

func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		// Replay the same category immediately
		g.StartCategory(g.categoryID)
	case in.Has(core.ActionConfirm):
		g.resetSession()
		g.phase = PhaseCategorySelect
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.phase = PhasePaused
		return
	}

	g.tickCount++

	if in.Has(core.ActionJump) {
		g.character.Jump()
		g.roundJustStarted = false
		g.emit(EventJump)
	}

	// Gravity is held until the first jump of the round (hover-then-fall)
	if !g.roundJustStarted {
		g.character.Update()
	}

	speed := g.effectiveSpeed()
	g.pool.Update(speed)
	g.updatePickups(speed)

	if g.messageLeft > 0 {
		g.messageLeft--
		if g.messageLeft == 0 {
			g.message = ""
		}
	}

	if g.awaitingQuestion {
		if q, ok := g.pollFetch(); ok {
			g.installQuestion(q)
		}
	}

	if g.roundDelay > 0 {
		g.roundDelay--
		if g.roundDelay == 0 {
			g.startRound()
		}
	}

	// Exactly-once resolution: outcomes mutate state only while the flag is
	// down, and the flag rises the moment an outcome is applied.
	if !g.collisionProcessed {
		if outcome := CheckCollisions(&g.character, g.pool, g.conf.Canvas.Height); outcome != OutcomeNone {
			g.resolveOutcome(outcome)
		}
	}
}

// resolveOutcome translates a collision classification into state changes.
func (g *Game) resolveOutcome(outcome Outcome) {
	switch outcome {
	case OutcomeCorrect:
		g.score++
		g.gameSpeed = core.ClampF(g.gameSpeed+g.conf.Gameplay.SpeedIncrement, 0, g.conf.Gameplay.MaxSpeed)
		g.collisionProcessed = true
		g.scheduleNextRound()
		g.setMessage("Correct!")
		g.emit(EventScoreIncrement)
		g.maybeSpawnPickup()

	case OutcomeIncorrect:
		g.collisionProcessed = true
		g.emit(EventWrongAnswer)
		if g.lives > 0 {
			g.lives--
			g.scheduleNextRound()
			g.setMessage("Wrong answer!")
		} else {
			g.endGame()
		}

	case OutcomeWall, OutcomeCeiling, OutcomeFloor:
		if g.hasShield {
			g.consumeShield()
		} else {
			g.endGame()
		}
	}
}

// consumeShield grants the second chance a shield buys: the wall band is
// pushed back to the right and the character is pulled inside the canvas.
// collisionProcessed stays false so the round can still be resolved.
func (g *Game) consumeShield() {
	g.hasShield = false
	g.pool.Shift(g.conf.Wall.ShieldPushback)

	half := g.character.Size / 2
	g.character.Y = core.ClampF(g.character.Y, half+1, g.conf.Canvas.Height-half-1)
	g.character.VelocityY = 0

	g.collisionProcessed = false
	g.setMessage("Shield lost!")
	g.emit(EventShieldConsumed)
}

func (g *Game) endGame() {
	g.collisionProcessed = true
	g.phase = PhaseGameOver
	g.cancelFetch()
	g.emit(EventGameOver)
}

// scheduleNextRound arms the delay that lets the outcome message display
// before the next question arrives.
func (g *Game) scheduleNextRound() {
	g.roundDelay = g.conf.Gameplay.RoundDelayTicks
}

// startRound kicks off the asynchronous fetch for the next question.
// The old geometry keeps scrolling until the new wall replaces it.
func (g *Game) startRound() {
	g.awaitingQuestion = true
	g.beginFetch()
}

// installQuestion makes a fetched question the active round: regenerate the
// wall band, reset the character, and re-arm the collision guard. The guard
// is cleared here, and only here, because this is the moment fresh geometry
// has fully replaced the old.
func (g *Game) installQuestion(q trivia.Question) {
	g.awaitingQuestion = false

	err := GenerateWall(g.pool, g.conf.Canvas.Width, g.conf.Canvas.Height, q,
		g.tunnelHeight(), g.conf.Wall.Width)
	if err != nil {
		// Layout errors are environmental (window too short) and non-fatal:
		// skip this wall and try again after the usual delay.
		if errors.Is(err, ErrLayout) {
			g.setMessage("Not enough room for tunnels!")
		} else {
			g.setMessage("Bad question skipped")
		}
		g.scheduleNextRound()
		return
	}

	g.question = q
	g.character.Reset(g.conf.Canvas.Height)
	g.collisionProcessed = false
	g.roundJustStarted = true
	g.emit(EventRoundStarted)
}

// tunnelHeight returns the current tunnel height: the configured base
// (max of the minimum and characterSize*factor) scaled down by difficulty,
// never below what the character can fly through.
func (g *Game) tunnelHeight() float64 {
	base := g.conf.Wall.MinTunnelHeight
	if byFactor := g.character.Size * g.conf.Wall.HeightFactor; byFactor > base {
		base = byFactor
	}
	floor := g.character.Size * 1.2
	return g.difficulty.TunnelHeight(base, floor, g.score, g.tickCount)
}

// effectiveSpeed is the per-correct-answer speed ramp scaled by difficulty.
func (g *Game) effectiveSpeed() float64 {
	return g.difficulty.Speed(g.gameSpeed, g.score, g.tickCount)
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

// State returns the current externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Shield:   g.hasShield,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Register the game with the registry
func init() {
	registry.Register("sprint", func() registry.Game {
		return New()
	})
}

var _ registry.Game = (*Game)(nil)

// debugString summarizes the game for test failure output.
func (g *Game) debugString() string {
	return fmt.Sprintf("phase=%s score=%d lives=%d shield=%v speed=%.1f processed=%v awaiting=%v",
		g.phase, g.score, g.lives, g.hasShield, g.gameSpeed, g.collisionProcessed, g.awaitingQuestion)
}
