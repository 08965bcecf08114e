// Package render draws session snapshots onto a terminal through tcell
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/session"
	"github.com/lixenwraith/invaders/vmath"
)

// Frame is everything drawn in one refresh
type Frame struct {
	Snapshot session.Snapshot
	Paused   bool
	Debug    string // Optional second HUD line
}

// glyph is the cell appearance of one role
type glyph struct {
	r     rune
	style tcell.Style
	layer int
}

var glyphs = map[component.Role]glyph{
	component.RoleWall:             {'█', tcell.StyleDefault.Foreground(tcell.ColorGray), 0},
	component.RoleEnemy:            {'W', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true), 1},
	component.RolePlayer:           {'A', tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true), 2},
	component.RoleEnemyProjectile:  {'!', tcell.StyleDefault.Foreground(tcell.ColorRed), 3},
	component.RolePlayerProjectile: {'|', tcell.StyleDefault.Foreground(tcell.ColorYellow), 3},
}

var (
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	debugStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	overlayStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true)
	pausedOverlay = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true).Reverse(true)
)

// hudRows is the number of rows reserved above the arena
const hudRows = 1

// TerminalRenderer maps world space (y up) onto the terminal grid (y down)
type TerminalRenderer struct {
	screen tcell.Screen
	world  vmath.Rect

	width, height int
	scaleX        float64
	scaleY        float64
}

// NewTerminalRenderer draws the region world onto screen, stretched to fill it
func NewTerminalRenderer(screen tcell.Screen, world vmath.Rect) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, world: world}
	r.Resize()
	return r
}

// Resize recomputes the projection from the current screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	arenaRows := r.height - hudRows
	if r.width <= 0 || arenaRows <= 0 {
		r.scaleX, r.scaleY = 0, 0
		return
	}
	r.scaleX = float64(r.width) / r.world.Size.X
	r.scaleY = float64(arenaRows) / r.world.Size.Y
}

// Cell returns the terminal cell containing world point p
func (r *TerminalRenderer) Cell(p vmath.Vec2) (int, int) {
	lo, hi := r.world.Min(), r.world.Max()
	col := int(math.Floor((p.X - lo.X) * r.scaleX))
	row := hudRows + int(math.Floor((hi.Y-p.Y)*r.scaleY))
	col = min(max(col, 0), r.width-1)
	row = min(max(row, hudRows), r.height-1)
	return col, row
}

// Draw clears the screen, paints the frame and shows it
func (r *TerminalRenderer) Draw(f Frame) {
	r.screen.Clear()
	if r.scaleX == 0 {
		r.screen.Show()
		return
	}

	for layer := 0; layer <= 3; layer++ {
		for _, e := range f.Snapshot.Entities {
			g, ok := glyphs[e.Role]
			if !ok || g.layer != layer {
				continue
			}
			r.fill(vmath.NewRect(vmath.V2(e.X, e.Y), vmath.V2(e.Width, e.Height)), g)
		}
	}

	snap := f.Snapshot
	r.text(0, 0, fmt.Sprintf("SCORE %d  LIVES %d  TICK %d", snap.Score, snap.Lives, snap.Tick), hudStyle)
	if f.Debug != "" && r.height > hudRows+1 {
		r.text(0, r.height-1, f.Debug, debugStyle)
	}

	switch {
	case snap.Phase == "game_over":
		r.centered(fmt.Sprintf(" GAME OVER  score %d ", snap.Score), overlayStyle)
	case f.Paused:
		r.centered(" PAUSED ", pausedOverlay)
	}
	r.screen.Show()
}

// fill paints every cell covered by rect, at least one
func (r *TerminalRenderer) fill(rect vmath.Rect, g glyph) {
	lo, hi := rect.Min(), rect.Max()
	x0, y0 := r.Cell(vmath.V2(lo.X, hi.Y))
	x1, y1 := r.Cell(vmath.V2(hi.X, lo.Y))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, g.r, nil, g.style)
		}
	}
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *TerminalRenderer) centered(s string, style tcell.Style) {
	n := len([]rune(s))
	r.text(max((r.width-n)/2, 0), hudRows+(r.height-hudRows)/2, s, style)
}
