package core

// Event is a notable occurrence inside a simulation tick. Games return
// events instead of calling collaborators so the simulation stays free of
// side effects; the platform decides what to do with them (play a sound,
// record a score).
type Event int

const (
	EventFlap Event = iota + 1
	EventScore
	EventCollision
	EventMove
	EventEat
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventCollision:
		return "collision"
	case EventMove:
		return "move"
	case EventEat:
		return "eat"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rand is the randomness a simulation needs. *math/rand.Rand satisfies it;
// tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
