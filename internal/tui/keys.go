// internal/tui/keys.go
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-survivor/internal/input"
)

// HoldTimeout is how long a movement key counts as held after the last
// press or auto-repeat. Terminals report presses only, never releases.
const HoldTimeout = 550 * time.Millisecond

// TranslateKey maps a tcell key event to a logical key.
func TranslateKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			return input.KeyUp, true
		case 's':
			return input.KeyDown, true
		case 'a':
			return input.KeyLeft, true
		case 'd':
			return input.KeyRight, true
		case 'c', 'C':
			return input.KeyCopy, true
		}
	}
	return "", false
}

func isMovement(k input.Key) bool {
	return k == input.KeyUp || k == input.KeyDown || k == input.KeyLeft || k == input.KeyRight
}

// KeyHold synthesizes key releases from a press-only input stream.
type KeyHold struct {
	lastSeen map[input.Key]time.Time
}

func NewKeyHold() *KeyHold {
	return &KeyHold{lastSeen: make(map[input.Key]time.Time)}
}

// Press records a key press. Movement keys go down once and stay down
// while repeats keep arriving; other keys are pressed and released at once.
func (k *KeyHold) Press(key input.Key, now time.Time) []input.Event {
	if !isMovement(key) {
		return []input.Event{{Key: key, Down: true}, {Key: key, Down: false}}
	}
	_, held := k.lastSeen[key]
	k.lastSeen[key] = now
	if held {
		return nil
	}
	return []input.Event{{Key: key, Down: true}}
}

// Expire releases movement keys whose last press is older than HoldTimeout.
func (k *KeyHold) Expire(now time.Time) []input.Event {
	var events []input.Event
	for key, seen := range k.lastSeen {
		if now.Sub(seen) >= HoldTimeout {
			delete(k.lastSeen, key)
			events = append(events, input.Event{Key: key, Down: false})
		}
	}
	return events
}

// Reset forgets every held key.
func (k *KeyHold) Reset() {
	for key := range k.lastSeen {
		delete(k.lastSeen, key)
	}
}
