package rogue

import "github.com/nightblade9/crawlkit/ecs"

// Bounds is the walkable area of the map, spanning x in [0, Width) and
// y in [0, Height).
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether (x, y) falls inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// NewPlayer builds the player entity: a white '@' whose keyboard handler
// moves it one cell per arrow key. Moves that would leave bounds are
// dropped; unrecognized keys leave the position unchanged.
func NewPlayer(x, y int, bounds Bounds) *ecs.Entity {
	entity := ecs.NewEntity()

	display := &Display{Glyph: '@', Color: ColorWhite, X: x, Y: y}
	entity.Set(display)

	entity.Set(&KeyboardInput{
		Handler: func(keys []Key) {
			for _, key := range keys {
				nx, ny := display.X, display.Y
				switch key {
				case KeyUp:
					ny--
				case KeyDown:
					ny++
				case KeyLeft:
					nx--
				case KeyRight:
					nx++
				default:
					continue
				}
				if bounds.Contains(nx, ny) {
					display.X, display.Y = nx, ny
				}
			}
		},
	})

	return entity
}

// NewMonster builds a wandering monster entity: a green 'm' that takes a
// random step every few ticks.
func NewMonster(x, y int) *ecs.Entity {
	entity := ecs.NewEntity()
	entity.Set(&Display{Glyph: 'm', Color: ColorGreen, X: x, Y: y})
	entity.Set(&Wander{Interval: 4})
	return entity
}
