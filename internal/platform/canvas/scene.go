package canvas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/twin-arcade/internal/games/flappy"
	"github.com/vovakirdan/twin-arcade/internal/games/snake"
)

// Snake board geometry in pixels.
const (
	cellSize  = 20
	hudPixels = 32
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

var (
	skyColor     = color.RGBA{78, 192, 202, 255}
	hillColor    = color.RGBA{94, 212, 150, 255}
	pipeColor    = color.RGBA{115, 191, 46, 255}
	pipeCapColor = color.RGBA{84, 150, 30, 255}
	birdColor    = color.RGBA{250, 200, 40, 255}
	beakColor    = color.RGBA{245, 120, 30, 255}
	eyeColor     = color.RGBA{255, 255, 255, 255}
	boardBgColor = color.RGBA{15, 15, 20, 255}
	boardColor   = color.RGBA{30, 30, 40, 255}
	headColor    = color.RGBA{100, 255, 150, 255}
	bodyColor    = color.RGBA{70, 200, 120, 255}
	overlayColor = color.RGBA{0, 0, 0, 150}
)

// foodPalette is indexed by State.FoodKind.
var foodPalette = [snake.FoodKinds]color.RGBA{
	{255, 80, 80, 255},
	{255, 215, 0, 255},
	{230, 90, 200, 255},
	{255, 150, 40, 255},
	{80, 220, 240, 255},
	{200, 40, 60, 255},
}

// rect is a filled rectangle in logical pixels.
type rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// label is a line of debug-font text anchored at its top-left corner.
type label struct {
	Text string
	X, Y int
}

// scene is everything one frame paints. Building it is a pure function of
// a game snapshot; Draw only replays it onto an ebiten image.
type scene struct {
	W, H       int
	Background color.RGBA
	Rects      []rect
	Labels     []label
}

func (s *scene) fill(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Rects = append(s.Rects, rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c})
}

func (s *scene) text(x, y int, format string, args ...any) {
	s.Labels = append(s.Labels, label{Text: fmt.Sprintf(format, args...), X: x, Y: y})
}

// centered adds a label horizontally centered on the scene.
func (s *scene) centered(y int, text string) {
	s.Labels = append(s.Labels, label{Text: text, X: (s.W - len(text)*glyphW) / 2, Y: y})
}

// overlay dims the scene and prints a two-line message in the middle.
func (s *scene) overlay(title, subtitle string) {
	s.fill(0, 0, float64(s.W), float64(s.H), overlayColor)
	mid := s.H / 2
	s.centered(mid-glyphH, title)
	s.centered(mid+glyphH/2, subtitle)
}

// flappyScene paints the flight canvas at its native resolution.
func flappyScene(snap flappy.Snapshot) scene {
	p, st := snap.Params, snap.State
	sc := scene{W: int(p.Width), H: int(p.Height), Background: skyColor}

	// Parallax hills, one pair per background tile
	if p.BackgroundWidth > 0 {
		for x := st.BackgroundX; x < p.Width; x += p.BackgroundWidth {
			sc.fill(x+p.BackgroundWidth*0.1, p.Height-60, p.BackgroundWidth*0.3, 60, hillColor)
			sc.fill(x+p.BackgroundWidth*0.55, p.Height-95, p.BackgroundWidth*0.25, 95, hillColor)
		}
	}

	for _, pipe := range st.Pipes {
		bottomY := p.Height - pipe.BottomHeight
		sc.fill(pipe.X, 0, pipe.Width, pipe.TopHeight, pipeColor)
		sc.fill(pipe.X, bottomY, pipe.Width, pipe.BottomHeight, pipeColor)
		sc.fill(pipe.X-3, pipe.TopHeight-12, pipe.Width+6, 12, pipeCapColor)
		sc.fill(pipe.X-3, bottomY, pipe.Width+6, 12, pipeCapColor)
	}

	// Bird: body, eye and a beak that dips with the tilt
	b := st.Bird
	sc.fill(p.PlayerX, b.Y, p.PlayerWidth, p.PlayerHeight, birdColor)
	sc.fill(p.PlayerX+p.PlayerWidth*0.65, b.Y+p.PlayerHeight*0.2, 5, 5, eyeColor)
	tilt := math.Max(-1, math.Min(1, b.Rotation/90))
	beakY := b.Y + p.PlayerHeight*0.45 + tilt*p.PlayerHeight*0.25
	sc.fill(p.PlayerX+p.PlayerWidth, beakY, 8, 6, beakColor)

	sc.text(8, 6, "Score: %d  Best: %d  [%s]", st.Score, st.HighScore, st.Difficulty)
	if snap.Pending != "" && snap.Pending != st.Difficulty {
		sc.text(8, 6+glyphH, "next: %s", snap.Pending)
	}

	switch {
	case st.Over:
		sc.overlay("GAME OVER", fmt.Sprintf("Score: %d  |  Click or Space to restart", st.Score))
	case st.Paused:
		sc.overlay("PAUSED", "Press P to resume")
	}
	return sc
}

// snakeScene paints the grid with one square per cell below a HUD strip.
func snakeScene(snap snake.Snapshot) scene {
	size := snap.Params.GridSize
	board := float64(size * cellSize)
	st := snap.State
	sc := scene{W: size * cellSize, H: size*cellSize + hudPixels, Background: boardBgColor}

	sc.fill(0, hudPixels, board, board, boardColor)

	cell := func(pt snake.Point, inset float64, c color.RGBA) {
		sc.fill(float64(pt.X*cellSize)+inset, float64(hudPixels+pt.Y*cellSize)+inset,
			cellSize-2*inset, cellSize-2*inset, c)
	}

	if st.Food != snake.NoFood && st.FoodKind >= 0 && st.FoodKind < snake.FoodKinds {
		cell(st.Food, 3, foodPalette[st.FoodKind])
	}
	for i := len(st.Body) - 1; i >= 0; i-- {
		if i == 0 {
			cell(st.Body[i], 1, headColor)
		} else {
			cell(st.Body[i], 2, bodyColor)
		}
	}

	hud := fmt.Sprintf("Score: %d  Best: %d  [%s]", st.Score, st.HighScore, st.Difficulty)
	if snap.Pending != "" && snap.Pending != st.Difficulty {
		hud += fmt.Sprintf("  next: %s", snap.Pending)
	}
	sc.text(6, (hudPixels-glyphH)/2, "%s", hud)

	switch {
	case st.Over:
		sc.overlay("Game Over", fmt.Sprintf("Score: %d  |  Tap or R to restart", st.Score))
	case st.Paused:
		sc.overlay("Paused", "Press P to continue")
	}
	return sc
}
