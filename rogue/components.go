package rogue

//go:generate go run github.com/nightblade9/crawlkit/cmd/kindgen -out kinds.go .

// Display places a colored glyph at a grid position.
//
// crawlkit:component
type Display struct {
	Glyph rune
	Color Color
	X, Y  int
}

// KeyboardInput carries a callback invoked once per tick with the full
// list of keys pressed that tick. Ticks with no key presses do not
// invoke the handler.
//
// crawlkit:component
type KeyboardInput struct {
	Handler func(keys []Key)
}

// Wander makes an entity take one random step every Interval ticks.
// Ticks counts progress toward the next step.
//
// crawlkit:component
type Wander struct {
	Interval int
	Ticks    int
}
