package game

//go:generate mockgen -destination=mock/mock_observer.go -package=mockgame -source=events.go

// EventType identifies what changed.
type EventType int

const (
	// EventMessage fires when a message is appended to the log.
	EventMessage EventType = iota
	// EventMoved fires after the player steps to a new cell.
	EventMoved
	// EventLevelChanged fires after a descent produced a new level.
	EventLevelChanged
	// EventMessageConsumed fires when the oldest message is dropped.
	EventMessageConsumed
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventMessage:
		return "message"
	case EventMoved:
		return "moved"
	case EventLevelChanged:
		return "level_changed"
	case EventMessageConsumed:
		return "message_consumed"
	default:
		return "unknown"
	}
}

// Event describes a state change. Text is set for message events.
type Event struct {
	Type  EventType
	Text  string
	Level int
}

// Observer is notified synchronously after every state change.
type Observer interface {
	OnEvent(Event)
}

// Subscribe registers an observer.
func (g *Game) Subscribe(o Observer) {
	g.observers = append(g.observers, o)
}

func (g *Game) notify(ev Event) {
	for _, o := range g.observers {
		o.OnEvent(ev)
	}
}
