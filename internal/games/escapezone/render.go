package escapezone

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/escapezone/internal/core"
)

// Visual characters for rendering
const (
	GrassChar    = '░'
	EdgeLeft     = '▌'
	EdgeRight    = '▐'
	LaneChar     = '¦'
	TreeChar     = '♣'
	ObstacleChar = '▓'
	PowerUpChar  = '✦'
	CarBody      = '█'
	CarNose      = '▲'
	CarNoseLeft  = '◤'
	CarNoseRight = '◥'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// view maps world units onto the cells below the HUD.
type view struct {
	cols, rows     int
	worldW, worldH float64
}

func (g *Game) view(dst *core.Screen) view {
	return view{
		cols:   dst.Width(),
		rows:   dst.Height() - hudRows,
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
	}
}

func (v view) col(x float64) int {
	return int(x / v.worldW * float64(v.cols))
}

func (v view) row(y float64) int {
	return hudRows + int(y/v.worldH*float64(v.rows))
}

// worldY returns the world y at the centre of a playfield row.
func (v view) worldY(row int) float64 {
	return (float64(row-hudRows) + 0.5) * v.worldH / float64(v.rows)
}

// cells converts a world box to an inclusive-exclusive cell rectangle that
// is never smaller than one cell.
func (v view) cells(b core.RectF) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.track == nil || dst.Height() <= hudRows {
		return
	}

	v := g.view(dst)
	g.drawRoad(dst, v)

	for _, t := range g.entities.Trees() {
		dst.DrawRectColor(v.cells(t.Box()), TreeChar, core.ColorDarkGreen)
	}
	for _, o := range g.entities.Obstacles() {
		dst.DrawRectColor(v.cells(o.Box()), ObstacleChar, core.ColorRed)
	}
	for _, p := range g.entities.PowerUps() {
		dst.DrawRectColor(v.cells(p.Box()), PowerUpChar, core.ColorBrightYellow)
	}
	g.drawCar(dst, v)
	g.drawHUD(dst)

	switch {
	case g.phase == phaseStart:
		drawCenteredMessage(dst, g.Title(), "←/→ or A/D to tilt", "Enter or Space to start")
	case g.phase == phaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "R to restart")
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawRoad paints grass everywhere and the road on every row that has a
// segment under it.
func (g *Game) drawRoad(dst *core.Screen, v view) {
	for y := hudRows; y < dst.Height(); y++ {
		dst.DrawTextColor(0, y, strings.Repeat(string(GrassChar), v.cols), core.ColorGreen)

		seg, ok := g.track.SegmentAt(v.worldY(y))
		if !ok {
			continue
		}
		left, right := v.col(seg.X), v.col(seg.Right())
		for x := left; x < right; x++ {
			dst.SetColor(x, y, ' ', core.ColorDefault)
		}
		dst.SetColor(left, y, EdgeLeft, core.ColorWhite)
		dst.SetColor(right-1, y, EdgeRight, core.ColorWhite)
		if seg.ID%4 < 2 {
			dst.SetColor((left+right)/2, y, LaneChar, core.ColorYellow)
		}
	}
}

func (g *Game) drawCar(dst *core.Screen, v view) {
	color := core.ColorBrightCyan
	if g.turbo.Boost() > 0 {
		color = core.ColorBrightYellow
	}
	if g.phase == phaseGameOver {
		color = core.ColorBrightRed
	}

	r := v.cells(g.car.Box())
	dst.DrawRectColor(r, CarBody, color)

	nose := CarNose
	switch {
	case g.car.Rotation < -10:
		nose = CarNoseLeft
	case g.car.Rotation > 10:
		nose = CarNoseRight
	}
	dst.SetColor(r.X+r.W/2, r.Y, nose, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := dst.Width()
	dst.DrawHLine(0, 0, w, ' ')

	left := fmt.Sprintf(" Score: %d  Spd: %.1f ", g.score, g.EffectiveSpeed())
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Turbo %s ", gauge(g.turbo.Level(), 8))
	dst.DrawTextColor(w-len([]rune(right)), 0, right, core.ColorOrange)
}

// gauge renders a fill level in [0, 1] as a fixed-width bar.
func gauge(level float64, width int) string {
	filled := int(core.ClampF(level, 0, 1)*float64(width) + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i*2, l, core.ColorBrightWhite)
	}
}
