// internal/ui/keyboard.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivor/internal/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeyS:          input.KeyDown,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyC:          input.KeyCopy,
}

// Keyboard turns ebiten key state into input events and reports focus
// changes.
type Keyboard struct {
	buf     []ebiten.Key
	focused bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{focused: true}
}

// Poll returns the key transitions since the previous tick, releases first.
func (k *Keyboard) Poll() []input.Event {
	var events []input.Event
	k.buf = inpututil.AppendJustReleasedKeys(k.buf[:0])
	for _, key := range k.buf {
		if name, ok := keyMap[key]; ok {
			events = append(events, input.Event{Key: name, Down: false})
		}
	}
	k.buf = inpututil.AppendJustPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		if name, ok := keyMap[key]; ok {
			events = append(events, input.Event{Key: name, Down: true})
		}
	}
	return events
}

// FocusChange reports whether window focus changed since the last call and
// the new focus state.
func (k *Keyboard) FocusChange() (changed, focused bool) {
	now := ebiten.IsFocused()
	if now == k.focused {
		return false, now
	}
	k.focused = now
	return true, now
}
