// Package layout computes arena walls, spawn points and interior bounds
// It is pure placement arithmetic with no runtime side effects
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/invaders/vmath"
)

var (
	// ErrInvalidArena reports inverted or empty arena bounds or a non-positive wall thickness
	ErrInvalidArena = errors.New("invalid arena")

	// ErrNoGridWidth reports that side gaps leave no horizontal room for enemies
	ErrNoGridWidth = errors.New("enemy grid has no usable width")

	// ErrNoGridHeight reports that clearances leave no vertical room for enemies
	ErrNoGridHeight = errors.New("enemy grid has no usable height")

	// ErrGridOverflow reports a configured grid larger than the usable area
	ErrGridOverflow = errors.New("enemy grid does not fit usable area")
)

// Arena is the playfield rectangle in world units, y up
type Arena struct {
	Left, Right, Bottom, Top float64
}

func (a Arena) Width() float64   { return a.Right - a.Left }
func (a Arena) Height() float64  { return a.Top - a.Bottom }
func (a Arena) CenterX() float64 { return (a.Left + a.Right) / 2 }

// Rect returns the arena as a rectangle
func (a Arena) Rect() vmath.Rect {
	return vmath.RectFromEdges(a.Left, a.Bottom, a.Right, a.Top)
}

// Config is the placement input
type Config struct {
	Arena         Arena
	WallThickness float64

	PlayerSize     vmath.Vec2
	PlayerFloorGap float64 // Player center above the bottom edge
	PlayerPadding  float64

	EnemySize    vmath.Vec2
	EnemyRows    int // 0 derives the count from usable height
	EnemyColumns int // 0 derives the count from usable width
	EnemyGap     vmath.Vec2
	EnemyPadding float64

	PlayerEnemyGap float64
	CeilingGap     float64
	SideGap        float64
}

// WallSide names one of the four arena walls
type WallSide uint8

const (
	WallLeft WallSide = iota
	WallRight
	WallBottom
	WallTop
)

func (s WallSide) String() string {
	switch s {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallBottom:
		return "bottom"
	case WallTop:
		return "top"
	}
	return "unknown"
}

// Wall is a static collider rectangle
type Wall struct {
	Side WallSide
	Rect vmath.Rect
}

// Bounds is a closed horizontal interval for entity centers
type Bounds struct {
	Min, Max float64
}

// Clamp restricts x to the interval
func (b Bounds) Clamp(x float64) float64 {
	return vmath.Clamp(x, b.Min, b.Max)
}

// Reached reports whether x is at or past the bound on the side given by direction
// Direction > 0 tests the right bound, < 0 the left, 0 tests both
func (b Bounds) Reached(x, direction float64) bool {
	switch {
	case direction > 0:
		return x >= b.Max
	case direction < 0:
		return x <= b.Min
	default:
		return x >= b.Max || x <= b.Min
	}
}

// Layout is the computed placement
type Layout struct {
	Arena         Arena
	WallThickness float64
	Walls         [4]Wall

	Player       vmath.Vec2
	PlayerBounds Bounds

	Rows, Columns int
	Enemies       []vmath.Vec2 // Row-major, row 0 nearest the player
	EnemyBounds   Bounds
}

// OuterRect returns the area enclosed by the outer wall faces
func (l Layout) OuterRect() vmath.Rect {
	return l.Arena.Rect().Expand(l.WallThickness / 2)
}

// Compute derives walls, player start and the enemy grid
func Compute(cfg Config) (Layout, error) {
	a := cfg.Arena
	if a.Width() <= 0 || a.Height() <= 0 || cfg.WallThickness <= 0 {
		return Layout{}, fmt.Errorf("%w: bounds [%g,%g]x[%g,%g], thickness %g",
			ErrInvalidArena, a.Left, a.Right, a.Bottom, a.Top, cfg.WallThickness)
	}

	l := Layout{
		Arena:         a,
		WallThickness: cfg.WallThickness,
		Walls:         ComputeWalls(a, cfg.WallThickness),
		Player:        vmath.V2(a.CenterX(), a.Bottom+cfg.PlayerFloorGap),
		PlayerBounds:  InteriorBounds(a, cfg.WallThickness, cfg.PlayerSize.X/2, cfg.PlayerPadding),
		EnemyBounds:   InteriorBounds(a, cfg.WallThickness, cfg.EnemySize.X/2, cfg.EnemyPadding),
	}

	usableWidth := a.Width() - 2*cfg.SideGap
	if usableWidth <= 0 {
		return Layout{}, fmt.Errorf("enemy grid: %w (%g)", ErrNoGridWidth, usableWidth)
	}
	gridBottom := l.Player.Y + cfg.PlayerEnemyGap
	usableHeight := a.Top - gridBottom - cfg.CeilingGap
	if usableHeight <= 0 {
		return Layout{}, fmt.Errorf("enemy grid: %w (%g)", ErrNoGridHeight, usableHeight)
	}

	cols, err := gridCount(cfg.EnemyColumns, usableWidth, cfg.EnemySize.X, cfg.EnemyGap.X)
	if err != nil {
		return Layout{}, fmt.Errorf("enemy columns: %w", err)
	}
	rows, err := gridCount(cfg.EnemyRows, usableHeight, cfg.EnemySize.Y, cfg.EnemyGap.Y)
	if err != nil {
		return Layout{}, fmt.Errorf("enemy rows: %w", err)
	}

	l.Rows, l.Columns = rows, cols
	l.Enemies = GridCenters(a.CenterX(), gridBottom, rows, cols, cfg.EnemySize, cfg.EnemyGap)
	return l, nil
}

// gridCount validates a configured count or derives one from the available span
func gridCount(configured int, span, size, gap float64) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: non-positive enemy size %g", ErrGridOverflow, size)
	}
	n := configured
	if n == 0 {
		n = int(math.Floor(span / (size + gap)))
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: span %g holds no enemy of size %g", ErrGridOverflow, span, size)
	}
	if extent := float64(n)*size + float64(n-1)*gap; extent > span {
		return 0, fmt.Errorf("%w: %d x %g with gap %g needs %g, have %g", ErrGridOverflow, n, size, gap, extent, span)
	}
	return n, nil
}

// ComputeWalls places four walls centered on the arena edge lines
// Side walls span the height plus thickness, floor and ceiling span the width plus thickness,
// so corners overlap by half the thickness
func ComputeWalls(a Arena, thickness float64) [4]Wall {
	midY := (a.Bottom + a.Top) / 2
	vertical := vmath.V2(thickness, a.Height()+thickness)
	horizontal := vmath.V2(a.Width()+thickness, thickness)

	return [4]Wall{
		{Side: WallLeft, Rect: vmath.NewRect(vmath.V2(a.Left, midY), vertical)},
		{Side: WallRight, Rect: vmath.NewRect(vmath.V2(a.Right, midY), vertical)},
		{Side: WallBottom, Rect: vmath.NewRect(vmath.V2(a.CenterX(), a.Bottom), horizontal)},
		{Side: WallTop, Rect: vmath.NewRect(vmath.V2(a.CenterX(), a.Top), horizontal)},
	}
}

// InteriorBounds returns the center interval of an entity of half-width hw kept
// padding away from the inner wall faces
func InteriorBounds(a Arena, thickness, halfWidth, padding float64) Bounds {
	inset := thickness/2 + halfWidth + padding
	return Bounds{Min: a.Left + inset, Max: a.Right - inset}
}

// GridCenters returns row-major centers of a rows x cols grid horizontally centered on centerX
// with its bottom edge at bottom
func GridCenters(centerX, bottom float64, rows, cols int, size, gap vmath.Vec2) []vmath.Vec2 {
	left := centerX - float64(cols)/2*size.X - float64(cols-1)/2*gap.X
	out := make([]vmath.Vec2, 0, rows*cols)
	for r := 0; r < rows; r++ {
		y := bottom + size.Y/2 + float64(r)*(size.Y+gap.Y)
		for c := 0; c < cols; c++ {
			x := left + size.X/2 + float64(c)*(size.X+gap.X)
			out = append(out, vmath.V2(x, y))
		}
	}
	return out
}
