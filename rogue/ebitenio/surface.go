// Package ebitenio implements the rogue render and input interfaces on
// Ebitengine. The surface buffers draws during a tick and commits them on
// Flush; committed cells are painted to the screen on every Draw.
package ebitenio

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/nightblade9/crawlkit/rogue"
)

// Glyph cell size in pixels, from the basicfont metrics.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Cell is one committed glyph of the grid.
type Cell struct {
	X, Y  int
	Glyph rune
	Color rogue.Color
}

// GridSurface is a rogue.Surface rendering a fixed-cell glyph grid.
// Draw calls accumulate between Clear and Flush; Flush commits the frame
// Render will paint, so nothing reaches the screen mid-tick.
type GridSurface struct {
	pending   []Cell
	committed []Cell
}

// NewGridSurface creates an empty glyph grid surface.
func NewGridSurface() *GridSurface {
	return &GridSurface{}
}

// Clear discards the pending frame.
func (s *GridSurface) Clear() {
	s.pending = s.pending[:0]
}

// Draw buffers one glyph at grid cell (x, y).
func (s *GridSurface) Draw(x, y int, glyph rune, c rogue.Color) {
	s.pending = append(s.pending, Cell{X: x, Y: y, Glyph: glyph, Color: c})
}

// Flush commits the pending frame.
func (s *GridSurface) Flush() {
	s.committed = append(s.committed[:0], s.pending...)
}

// Snapshot returns the last committed frame's cells in draw order.
func (s *GridSurface) Snapshot() []Cell {
	cells := make([]Cell, len(s.committed))
	copy(cells, s.committed)
	return cells
}

// Render paints the last committed frame onto screen.
func (s *GridSurface) Render(screen *ebiten.Image) {
	screen.Fill(color.Black)

	face := basicfont.Face7x13
	for _, c := range s.committed {
		// text.Draw positions by baseline, hence the +1 row.
		text.Draw(screen, string(c.Glyph), face, c.X*CellWidth, (c.Y+1)*CellHeight, paletteRGBA(c.Color))
	}
}

func paletteRGBA(c rogue.Color) color.Color {
	switch c {
	case rogue.ColorGreen:
		return color.RGBA{R: 0x3f, G: 0xbf, B: 0x3f, A: 0xff}
	case rogue.ColorRed:
		return color.RGBA{R: 0xcc, G: 0x33, B: 0x33, A: 0xff}
	case rogue.ColorYellow:
		return color.RGBA{R: 0xe0, G: 0xc8, B: 0x3c, A: 0xff}
	case rogue.ColorBlue:
		return color.RGBA{R: 0x46, G: 0x82, B: 0xe6, A: 0xff}
	case rogue.ColorGrey:
		return color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	}
	return color.White
}
