package rogue

import "github.com/nightblade9/crawlkit/ecs"

// KeyboardSystem drains the input source once per tick and forwards the
// captured keys to every entity's KeyboardInput handler. The drain is
// destructive, so the captured list replaces the previous tick's list;
// keys never accumulate across ticks.
type KeyboardSystem struct {
	source       InputSource
	lastKeys     []Key
	captureGuard func() bool
}

// NewKeyboardSystem creates a keyboard system reading from source.
func NewKeyboardSystem(source InputSource) *KeyboardSystem {
	return &KeyboardSystem{source: source}
}

// SetCaptureGuard installs a guard consulted once per tick. While the
// guard reports true the system still drains the source, keeping the
// queue fresh, but discards the keys: nothing is dispatched and LastKeys
// reports empty. The debug overlay uses this to keep typed-in search text
// from doubling as game input.
func (s *KeyboardSystem) SetCaptureGuard(guard func() bool) {
	s.captureGuard = guard
}

// Update captures this tick's keys and dispatches them to entities.
func (s *KeyboardSystem) Update(frame *ecs.Frame) {
	keys := s.source.Drain()

	if s.captureGuard != nil && s.captureGuard() {
		s.lastKeys = nil
		return
	}

	s.lastKeys = keys
	if len(s.lastKeys) == 0 {
		return
	}

	for _, entity := range frame.Entities {
		input, ok := ecs.Lookup[*KeyboardInput](entity, KindKeyboardInput)
		if !ok || input.Handler == nil {
			continue
		}
		input.Handler(s.lastKeys)
	}
}

// LastKeys returns the keys captured on the most recent tick. Callers use
// this to derive signals such as quitting on KeyEscape without draining
// the source a second time. The returned slice is a copy.
func (s *KeyboardSystem) LastKeys() []Key {
	if len(s.lastKeys) == 0 {
		return nil
	}
	keys := make([]Key, len(s.lastKeys))
	copy(keys, s.lastKeys)
	return keys
}

// Pressed reports whether key was captured on the most recent tick.
func (s *KeyboardSystem) Pressed(key Key) bool {
	for _, k := range s.lastKeys {
		if k == key {
			return true
		}
	}
	return false
}
