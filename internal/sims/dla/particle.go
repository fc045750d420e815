package dla

import "dlagrow/internal/core"

// State is the lifecycle state of the active walker.
type State uint8

const (
	// StateIdle means no walker is active; the next update spawns one.
	StateIdle State = iota
	// StateWalking means the walker has not yet met the collision threshold.
	StateWalking
	// StateEligible means the collision threshold is met and a stick attempt is pending.
	StateEligible
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateEligible:
		return "eligible"
	default:
		return "unknown"
	}
}

// Particle is the single mutable walker.
type Particle struct {
	X, Y int
	// Collisions counts qualifying contacts with the cluster.
	Collisions int
	Alive      bool
	State      State
}

// Pos returns the walker position as a lattice point.
func (p Particle) Pos() core.Point { return core.Point{X: p.X, Y: p.Y} }

// Event reports what a single update did.
type Event uint8

const (
	EventNone Event = iota
	EventSpawned
	EventMoved
	EventStuck
	EventEscaped
	EventDiscarded
	EventRejected
)

func (e Event) String() string {
	switch e {
	case EventSpawned:
		return "spawned"
	case EventMoved:
		return "moved"
	case EventStuck:
		return "stuck"
	case EventEscaped:
		return "escaped"
	case EventDiscarded:
		return "discarded"
	case EventRejected:
		return "rejected"
	default:
		return "none"
	}
}
