// Package render draws the runner scene into a character screen buffer.
// The logical playfield is scaled to whatever size the terminal offers;
// row 0 is reserved for the score HUD.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cat-runner/internal/core"
	"github.com/vovakirdan/cat-runner/internal/runner"
)

// Visual characters for rendering
const (
	CatBody      = '█'
	CatEyeBright = '●'
	CatEyeDim    = '•'
	CatEar       = '▲'
	CatTail      = '~'
	ObstacleChar = '▓'
	GroundChar   = '─'
	GroundDash   = '-'
	CloudChar    = '░'
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// Terminal is a runner.Presenter that keeps the latest frame and draws it
// on demand. It is not safe for concurrent use; the owning loop calls
// Render after each update.
type Terminal struct {
	scene    runner.Scene
	hasScene bool
	score    int
	best     int

	panelTitle   string
	panelMessage string
	panelVisible bool
}

var _ runner.Presenter = (*Terminal)(nil)

// NewTerminal creates an empty presenter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// DrawScene stores the scene for the next Render.
func (t *Terminal) DrawScene(s runner.Scene) {
	t.scene = s
	t.hasScene = true
}

// SetScore updates the displayed score.
func (t *Terminal) SetScore(score int) { t.score = score }

// SetBest updates the displayed best score.
func (t *Terminal) SetBest(best int) { t.best = best }

// ShowPanel shows or hides the centered message panel.
func (t *Terminal) ShowPanel(title, message string, visible bool) {
	t.panelTitle = title
	t.panelMessage = message
	t.panelVisible = visible
}

// Score returns the displayed score.
func (t *Terminal) Score() int { return t.score }

// Best returns the displayed best score.
func (t *Terminal) Best() int { return t.best }

// PanelVisible reports whether the message panel is shown.
func (t *Terminal) PanelVisible() bool { return t.panelVisible }

// Render draws the stored frame into dst.
func (t *Terminal) Render(dst *core.Screen) {
	dst.Clear()

	if t.hasScene && t.scene.Width > 0 && t.scene.Height > 0 {
		v := newViewport(dst, t.scene.Width, t.scene.Height)
		t.drawClouds(dst, v)
		t.drawGround(dst, v)
		t.drawObstacles(dst, v)
		t.drawCat(dst, v)
	}

	t.drawHUD(dst)

	if t.panelVisible {
		drawPanel(dst, t.panelTitle, t.panelMessage)
	}
}

// EyePulse returns the eye glow factor in [0.2, 1.0] at effect time ms.
func EyePulse(ms float64) float64 {
	return 0.6 + 0.4*math.Sin(ms/180)
}

// CloudOffset returns how far the cloud layer has drifted left at effect
// time ms, wrapping every width+200 units.
func CloudOffset(ms, width float64) float64 {
	return math.Mod((ms/1000)*0.2*40, width+200)
}

// viewport maps logical playfield units to screen cells.
type viewport struct {
	cols, rows    int
	width, height float64
}

func newViewport(dst *core.Screen, width, height float64) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   core.Max(dst.Height()-hudRows, 0),
		width:  width,
		height: height,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.width))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor(y*float64(v.rows)/v.height))
}

// cells returns the cell rectangle covered by r, at least one cell wide
// and tall so small boxes never vanish.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.col(r.X), v.row(r.Y)
	x1, y1 = v.col(r.Right()), v.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (t *Terminal) drawClouds(dst *core.Screen, v viewport) {
	offset := CloudOffset(t.scene.Time, t.scene.Width)
	clouds := []struct{ dx, y, scale float64 }{
		{0, 60, 1},
		{140, 40, 0.8},
		{280, 70, 1.1},
	}
	for _, c := range clouds {
		x := t.scene.Width + c.dx - offset
		x0, x1 := v.col(x-12*c.scale), v.col(x+32*c.scale)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		dst.FillRect(x0, v.row(c.y), x1, v.row(c.y)+1, CloudChar, core.ColorDarkGray)
	}
}

func (t *Terminal) drawGround(dst *core.Screen, v viewport) {
	y := v.row(t.scene.GroundY)
	dst.DrawHLine(0, y, v.cols, GroundChar, core.ColorGray)

	for i := 0.0; i < t.scene.Width; i += 30 {
		x0, x1 := v.col(i), v.col(i+15)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		dst.FillRect(x0, y+1, x1, y+2, GroundDash, core.ColorDarkGray)
	}
}

func (t *Terminal) drawObstacles(dst *core.Screen, v viewport) {
	for _, o := range t.scene.Obstacles {
		x0, y0, x1, y1 := v.cells(o)
		dst.FillRect(x0, y0, x1, y1, ObstacleChar, core.ColorGray)
	}
}

// drawCat renders the player box with ears, glowing eyes and a tail.
//
//	▲  ▲
//	█●●█~
//	████
func (t *Terminal) drawCat(dst *core.Screen, v viewport) {
	x0, y0, x1, y1 := v.cells(t.scene.Player)
	dst.FillRect(x0, y0, x1, y1, CatBody, core.ColorCyan)

	dst.SetColored(x0, y0-1, CatEar, core.ColorBlue)
	dst.SetColored(x1-1, y0-1, CatEar, core.ColorBlue)

	eye, eyeColor := CatEyeDim, core.ColorCyan
	if EyePulse(t.scene.Time) >= 0.8 {
		eye, eyeColor = CatEyeBright, core.ColorBrightCyan
	}
	if x1-x0 >= 4 {
		dst.SetColored(x0+1, y0, eye, eyeColor)
		dst.SetColored(x1-2, y0, eye, eyeColor)
	} else {
		dst.SetColored(x0, y0, eye, eyeColor)
	}

	tailY := y0 + (y1-y0)/2
	if !t.scene.Grounded {
		tailY = y0
	}
	dst.SetColored(x1, tailY, CatTail, core.ColorMagenta)
}

func (t *Terminal) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", t.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	bestText := fmt.Sprintf(" Best: %d ", t.best)
	dst.DrawTextColored(dst.Width()-len(bestText)-1, 0, bestText, core.ColorYellow)
}

// drawPanel draws a boxed title and message in the center of the screen.
func drawPanel(dst *core.Screen, title, message string) {
	lines := strings.Split(message, "\n")

	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorMagenta)

	// The box is centered, so centering on the screen centers in the box
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightCyan)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}
