package ebitenio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nightblade9/crawlkit/ecs"
	"github.com/nightblade9/crawlkit/rogue"
)

// Overlay is an optional layer rendered on top of the glyph grid each
// frame. The debug UI implements it.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game adapts a crawlkit container to ebiten.Game: one container tick per
// Update, committed grid painted per Draw, termination when the keyboard
// system reports the escape key.
type Game struct {
	container *ecs.Container
	keyboard  *rogue.KeyboardSystem
	surface   *GridSurface
	bounds    rogue.Bounds
	lastTime  time.Time
	overlay   Overlay
}

// NewGame wires a container, its keyboard system and the grid surface
// into an ebiten.Game sized to bounds.
func NewGame(container *ecs.Container, keyboard *rogue.KeyboardSystem, surface *GridSurface, bounds rogue.Bounds) *Game {
	return &Game{
		container: container,
		keyboard:  keyboard,
		surface:   surface,
		bounds:    bounds,
		lastTime:  time.Now(),
	}
}

// SetOverlay installs an overlay drawn above the grid.
func (g *Game) SetOverlay(overlay Overlay) {
	g.overlay = overlay
}

// Update runs one container tick.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastTime).Seconds()
	g.lastTime = now

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	g.container.Update(dt)

	if g.overlay != nil {
		g.overlay.EndFrame()
	}

	if g.keyboard.Pressed(rogue.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the last committed frame and the overlay, if any.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Render(screen)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout reports the fixed grid size in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.bounds.Width * CellWidth, g.bounds.Height * CellHeight
}
