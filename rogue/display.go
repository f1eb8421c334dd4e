package rogue

import "github.com/nightblade9/crawlkit/ecs"

// DisplaySystem draws every entity carrying a Display component. One tick
// performs Clear, one Draw per display component in entity order, then
// Flush. Entities added later draw over earlier ones at the same cell,
// so register the display system last to render the tick's final state.
type DisplaySystem struct {
	surface Surface
}

// NewDisplaySystem creates a display system that draws to surface.
func NewDisplaySystem(surface Surface) *DisplaySystem {
	return &DisplaySystem{surface: surface}
}

// Update renders one frame.
func (s *DisplaySystem) Update(frame *ecs.Frame) {
	s.surface.Clear()

	for _, entity := range frame.Entities {
		display, ok := ecs.Lookup[*Display](entity, KindDisplay)
		if !ok {
			continue
		}
		s.surface.Draw(display.X, display.Y, display.Glyph, display.Color)
	}

	s.surface.Flush()
}
