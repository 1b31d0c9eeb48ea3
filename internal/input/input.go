// internal/input/input.go
package input

// Key names a logical key. Frontends translate their native key codes into
// these names; the core never sees anything else.
type Key string

const (
	KeyUp     Key = "ArrowUp"
	KeyDown   Key = "ArrowDown"
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
	KeyEnter  Key = "Enter"
	KeyEscape Key = "Escape"
	KeyCopy   Key = "c"
)

// Event is one key transition.
type Event struct {
	Key  Key
	Down bool
}

// KeySet tracks which keys are currently held. Movement reads it every
// tick, so movement is level-triggered rather than edge-triggered.
type KeySet struct {
	held map[Key]bool
}

func NewKeySet() *KeySet {
	return &KeySet{held: make(map[Key]bool)}
}

// Apply records a key transition.
func (k *KeySet) Apply(ev Event) {
	if ev.Down {
		k.held[ev.Key] = true
		return
	}
	delete(k.held, ev.Key)
}

func (k *KeySet) Held(key Key) bool {
	return k.held[key]
}

// Clear releases every key. Used on focus loss, when key-up events may
// never arrive.
func (k *KeySet) Clear() {
	for key := range k.held {
		delete(k.held, key)
	}
}

// Direction returns the unit steps per axis implied by the held arrow keys.
// Opposite keys cancel out.
func (k *KeySet) Direction() (dx, dy int) {
	if k.Held(KeyUp) {
		dy--
	}
	if k.Held(KeyDown) {
		dy++
	}
	if k.Held(KeyLeft) {
		dx--
	}
	if k.Held(KeyRight) {
		dx++
	}
	return dx, dy
}

// AnyMovement reports whether any movement key is held.
func (k *KeySet) AnyMovement() bool {
	return k.Held(KeyUp) || k.Held(KeyDown) || k.Held(KeyLeft) || k.Held(KeyRight)
}
