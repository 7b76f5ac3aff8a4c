package sprint

// EventKind identifies a discrete gameplay event.
type EventKind int

const (
	EventJump EventKind = iota
	EventScoreIncrement
	EventWrongAnswer
	EventGameOver
	EventShieldConsumed
	EventPowerupSpawned
	EventPowerupCollected
	EventRoundStarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventScoreIncrement:
		return "score"
	case EventWrongAnswer:
		return "wrong_answer"
	case EventGameOver:
		return "game_over"
	case EventShieldConsumed:
		return "shield_consumed"
	case EventPowerupSpawned:
		return "powerup_spawned"
	case EventPowerupCollected:
		return "powerup_collected"
	case EventRoundStarted:
		return "round_started"
	default:
		return "unknown"
	}
}

// Event is a discrete gameplay notification for audio/analytics subscribers.
// The game emits events and never calls into rendering or audio directly.
type Event struct {
	Kind  EventKind
	Score int
	Tick  int
}

// EventSink receives gameplay events. Emit must not block; it is called
// from inside the simulation tick.
type EventSink interface {
	Emit(Event)
}

// NopSink discards all events. Used when no subscriber is attached.
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(Event) {}

func (g *Game) emit(kind EventKind) {
	g.sink.Emit(Event{Kind: kind, Score: g.score, Tick: g.tickCount})
}
