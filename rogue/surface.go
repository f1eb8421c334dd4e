// Package rogue contains the grid-crawler game core: glyph and keyboard
// components plus the systems that drive them. Rendering and input are
// reached only through the Surface and InputSource interfaces, so the
// package has no dependency on any particular engine; backends live in
// subpackages.
package rogue

// Key identifies a single key press reported by an InputSource.
type Key string

// Keys the game core gives meaning to. An InputSource may report any
// other key; systems ignore keys they do not recognize.
const (
	KeyUp     Key = "UP"
	KeyDown   Key = "DOWN"
	KeyLeft   Key = "LEFT"
	KeyRight  Key = "RIGHT"
	KeyEscape Key = "ESCAPE"
)

// Color is a named glyph color. The backend decides how each name maps
// to actual pixels.
type Color uint8

const (
	ColorWhite Color = iota
	ColorGreen
	ColorRed
	ColorYellow
	ColorBlue
	ColorGrey
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorGrey:
		return "grey"
	}
	return "unknown"
}

// Surface is the render target the display system draws to. One tick
// calls Clear, then Draw once per visible glyph, then Flush; nothing is
// expected to be visible until Flush.
type Surface interface {
	Clear()
	Draw(x, y int, glyph rune, color Color)
	Flush()
}

// InputSource yields the key presses that arrived since the previous
// drain. Draining is destructive: a second call without new events
// returns an empty list.
type InputSource interface {
	Drain() []Key
}
