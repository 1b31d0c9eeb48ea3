// internal/component/effect.go
package component

import "go-survivor/internal/types"

type EffectKind int

const (
	// EffectBurst is an expanding ring where an enemy died.
	EffectBurst EffectKind = iota
	// EffectDamageFlash is a ring around the player after a hit.
	EffectDamageFlash
	// EffectLevelUp is a wide ring around the player on level-up.
	EffectLevelUp
)

// Effect is a short-lived cosmetic. It never collides with anything.
type Effect struct {
	EntityID types.EntityID
	Position
	Kind      EffectKind
	Radius    float64
	MaxRadius float64
	Elapsed   int  // ticks
	Duration  int  // ticks
	Follow    bool // tracks the player instead of staying put
}

func (e *Effect) ID() types.EntityID { return e.EntityID }

// Advance moves the effect one tick forward and grows its radius. It
// reports whether the effect has finished.
func (e *Effect) Advance() bool {
	e.Elapsed++
	if e.Elapsed >= e.Duration {
		return true
	}
	e.Radius = float64(e.Elapsed) / float64(e.Duration) * e.MaxRadius
	return false
}

// Fade is 1 when the effect starts and falls to 0 as it ends.
func (e *Effect) Fade() float64 {
	if e.Duration <= 0 {
		return 0
	}
	f := 1 - float64(e.Elapsed)/float64(e.Duration)
	if f < 0 {
		return 0
	}
	return f
}
