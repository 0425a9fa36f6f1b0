package catch

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-catch/internal/catch/drawable"
	"github.com/vovakirdan/tui-catch/internal/catch/objects"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// Visual characters for rendering
const (
	CatcherChar = '▀'
	GroundChar  = '─'
)

// Glyphs per kind, indexed by rotation quadrant.
var (
	fruitGlyphs   = [4]rune{'●', '◐', '◓', '◑'}
	bananaGlyphs  = [4]rune{')', '⌒', '(', '◡'}
	dropletGlyph  = '•'
	tinyGlyph     = '·'
	plateGlyph    = 'o'
	dimAlphaLimit = 0.5
)

// layout holds screen rows derived from the screen height.
type layout struct {
	top     int // First row objects can appear on
	catchY  int // Row of the catcher
	groundY int
	width   int
}

func newLayout(dst *core.Screen) layout {
	h := dst.Height()
	return layout{top: 1, catchY: h - 3, groundY: h - 2, width: dst.Width()}
}

func (l layout) column(x float32) int {
	return core.Scale(float64(x), objects.PlayfieldWidth, l.width)
}

// row maps an object's fall progress onto the screen. Judged objects rest on the catcher row.
func (l layout) row(d *drawable.DrawableHitObject, now float64) int {
	h := d.HitObject()
	if d.Judged() || h.TimePreempt <= 0 {
		return l.catchY
	}
	progress := core.ClampF((now-d.LifetimeStart())/h.TimePreempt, 0, 1)
	return l.top + int(progress*float64(l.catchY-l.top))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.playfield == nil || dst.Height() < 6 {
		return
	}
	l := newLayout(dst)

	dst.DrawHLine(0, l.groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, d := range g.playfield.Alive() {
		g.drawObject(dst, l, d)
	}
	g.drawCatcher(dst, l)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "P resume  B menu")
	}
	if g.gameOver {
		title := "MAP COMPLETE"
		if g.tally.Health <= 0 {
			title = "GAME OVER"
		}
		sub := fmt.Sprintf("Score: %d  Acc: %.1f%%  |  R restart  B menu", g.tally.Score, g.tally.Accuracy()*100)
		drawCenteredMessage(dst, title, sub)
	}
}

func (g *Game) drawObject(dst *core.Screen, l layout, d *drawable.DrawableHitObject) {
	alpha := d.AlphaAt(g.clock)
	if alpha <= 0 {
		return
	}

	glyph, color := glyphFor(d, d.RotationAt(g.clock))
	if alpha < dimAlphaLimit {
		color = core.ColorGray
	}
	dst.SetCell(l.column(d.XBindable.Value()), l.row(d, g.clock), glyph, color)
}

// glyphFor picks the character and color for a drawable at a rotation in degrees.
func glyphFor(d *drawable.DrawableHitObject, rotation float64) (rune, core.Color) {
	quadrant := int(math.Floor(math.Mod(math.Mod(rotation, 360)+360+45, 360) / 90))
	color := core.FruitPalette[d.PaletteIndex()%len(core.FruitPalette)]

	switch d.HitObject().Kind {
	case objects.KindDroplet:
		return dropletGlyph, color
	case objects.KindTinyDroplet:
		return tinyGlyph, core.ColorCyan
	case objects.KindBanana:
		return bananaGlyphs[quadrant], core.ColorYellow
	default:
		return fruitGlyphs[quadrant], color
	}
}

func (g *Game) drawCatcher(dst *core.Screen, l layout) {
	c := g.catcher
	center := l.column(c.X)
	half := core.Max(1, int(float64(c.CatchWidth())/objects.PlayfieldWidth*float64(l.width)/2))

	color := core.ColorWhite
	if c.Dashing {
		color = core.ColorOrange
	}
	dst.DrawHLine(center-half, l.catchY, 2*half+1, CatcherChar, color)

	// Caught objects pile up above the catcher, three per row
	for i, d := range c.Plate() {
		x := center - 1 + i%3
		y := l.catchY - 1 - i/3
		if y < l.top {
			break
		}
		_, pc := glyphFor(d, 0)
		dst.SetCell(x, y, plateGlyph, pc)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	t := g.tally
	hud := fmt.Sprintf(" %s  Score: %d  Combo: %dx  Acc: %.1f%% ", g.Title(), t.Score, t.Combo, t.Accuracy()*100)
	dst.DrawText(0, 0, hud)

	bar := healthBar(t.Health, g.cfg.Scoring.MaxHealth, 10)
	hpColor := core.ColorGreen
	if t.Health < g.cfg.Scoring.MaxHealth/3 {
		hpColor = core.ColorRed
	}
	dst.DrawTextColor(dst.Width()-len([]rune(bar))-1, 0, bar, hpColor)

	help := " ←/→ move  Z dash  Tab auto  P pause  Q quit "
	if g.autopilot {
		help = " AUTOPILOT  Tab to take over  P pause  Q quit "
	}
	dst.DrawTextColor(0, dst.Height()-1, help, core.ColorGray)
}

func healthBar(health, maxHealth float64, width int) string {
	filled := 0
	if maxHealth > 0 {
		filled = core.Clamp(int(math.Round(health/maxHealth*float64(width))), 0, width)
	}
	return "HP [" + strings.Repeat("█", filled) + strings.Repeat(" ", width-filled) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
