package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/twin-arcade/internal/config"
	"github.com/vovakirdan/twin-arcade/internal/core"
)

// FoodKinds is the number of cosmetic food variants.
const FoodKinds = 6

// NoFood marks a full board with nowhere left to place food.
var NoFood = Point{X: -1, Y: -1}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit grid step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d on a toroidal grid of
// the given size.
func (p Point) Step(d Direction, size int) Point {
	dx, dy := d.Delta()
	return Point{X: core.Wrap(p.X+dx, size), Y: core.Wrap(p.Y+dy, size)}
}

// State is one frame of the snake simulation.
type State struct {
	Body       []Point // Head first; cells are pairwise distinct
	Food       Point
	FoodKind   int
	Direction  Direction // Committed on the last move
	Next       Direction // Queued for the next move
	Score      int
	HighScore  int
	Over       bool
	Paused     bool
	Difficulty config.DifficultyPreset
}

// Head returns the head cell.
func (s State) Head() Point {
	return s.Body[0]
}

// Params is the resolved tuning for one round.
type Params struct {
	GridSize     int
	Start        Point
	TickInterval time.Duration
}

// ParamsFrom resolves the configuration for a difficulty preset.
func ParamsFrom(cfg config.SnakeConfig, d config.DifficultyPreset) Params {
	return Params{
		GridSize:     cfg.GridSize,
		Start:        Point{X: cfg.Start.X, Y: cfg.Start.Y},
		TickInterval: cfg.Preset(d).TickInterval(),
	}
}

// NewState returns the opening frame of a round: a one-cell snake heading
// right with food placed off its body.
func NewState(p Params, d config.DifficultyPreset, highScore int, rng core.Rand) State {
	s := State{
		Body:       []Point{p.Start},
		Direction:  DirRight,
		Next:       DirRight,
		HighScore:  highScore,
		Difficulty: d,
	}
	s.Food, s.FoodKind = placeFood(s.Body, p.GridSize, rng)
	return s
}

// Turn queues d for the next move unless it reverses the current heading.
// Later turns within the same move replace earlier ones.
func (s State) Turn(d Direction) State {
	if d != s.Direction.Opposite() {
		s.Next = d
	}
	return s
}

// Advance performs one grid move. The returned body never aliases s.Body.
func Advance(s State, p Params, rng core.Rand) (State, []core.Event) {
	if s.Paused || s.Over || len(s.Body) == 0 {
		return s, nil
	}

	next := s
	if s.Next != s.Direction.Opposite() {
		next.Direction = s.Next
	}
	next.Next = next.Direction

	head := s.Head().Step(next.Direction, p.GridSize)
	events := []core.Event{core.EventMove}

	// The tail still occupies its cell during this move.
	if slices.Contains(s.Body, head) {
		frozen := s
		frozen.Over = true
		return frozen, append(events, core.EventGameOver)
	}

	body := make([]Point, 0, len(s.Body)+1)
	body = append(body, head)
	body = append(body, s.Body...)

	if head == s.Food {
		next.Score++
		next.HighScore = max(next.HighScore, next.Score)
		next.Food, next.FoodKind = placeFood(body, p.GridSize, rng)
		events = append(events, core.EventEat)
	} else {
		body = body[:len(body)-1]
	}
	next.Body = body

	return next, events
}

// placeFood picks a uniformly random free cell and a cosmetic kind.
// Returns NoFood when the body covers the whole grid.
func placeFood(body []Point, size int, rng core.Rand) (Point, int) {
	occupied := make([]bool, size*size)
	for _, p := range body {
		if p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size {
			occupied[p.Y*size+p.X] = true
		}
	}

	free := make([]Point, 0, max(len(occupied)-len(body), 0))
	for i, taken := range occupied {
		if !taken {
			free = append(free, Point{X: i % size, Y: i / size})
		}
	}
	if len(free) == 0 {
		return NoFood, 0
	}
	return free[rng.Intn(len(free))], rng.Intn(FoodKinds)
}
