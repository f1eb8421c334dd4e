package ebitenio

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/nightblade9/crawlkit/rogue"
)

// Keyboard is a rogue.InputSource backed by Ebitengine's just-pressed
// key events. Each Drain reports only the keys that went down since the
// previous frame, which matches the destructive-drain contract.
type Keyboard struct {
	scratch []ebiten.Key
}

// NewKeyboard creates a keyboard input source.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Drain returns the keys pressed since the last call.
func (k *Keyboard) Drain() []rogue.Key {
	k.scratch = inpututil.AppendJustPressedKeys(k.scratch[:0])
	if len(k.scratch) == 0 {
		return nil
	}

	keys := make([]rogue.Key, 0, len(k.scratch))
	for _, ek := range k.scratch {
		if key, ok := TranslateKey(ek); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// TranslateKey maps an Ebitengine key to the game key vocabulary.
// Keys without a mapping, such as function keys, are dropped.
func TranslateKey(k ebiten.Key) (rogue.Key, bool) {
	switch k {
	case ebiten.KeyArrowUp:
		return rogue.KeyUp, true
	case ebiten.KeyArrowDown:
		return rogue.KeyDown, true
	case ebiten.KeyArrowLeft:
		return rogue.KeyLeft, true
	case ebiten.KeyArrowRight:
		return rogue.KeyRight, true
	case ebiten.KeyEscape:
		return rogue.KeyEscape, true
	}

	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return rogue.Key(strings.ToLower(k.String())), true
	}
	if k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9 {
		return rogue.Key(k.String()[len("Digit"):]), true
	}
	return "", false
}
