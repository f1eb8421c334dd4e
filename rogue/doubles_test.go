package rogue_test

import (
	"fmt"

	"github.com/nightblade9/crawlkit/rogue"
)

// recordingSurface records every call the display system makes, in order.
type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, "clear")
}

func (s *recordingSurface) Draw(x, y int, glyph rune, color rogue.Color) {
	s.ops = append(s.ops, fmt.Sprintf("draw(%d,%d,%c,%s)", x, y, glyph, color))
}

func (s *recordingSurface) Flush() {
	s.ops = append(s.ops, "flush")
}

// scriptedInput yields one pre-scripted key batch per drain, then empty
// batches, mimicking a destructive event queue.
type scriptedInput struct {
	batches [][]rogue.Key
	drains  int
}

func (s *scriptedInput) Drain() []rogue.Key {
	s.drains++
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}
