// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrUnknownPattern is returned for a weapon with an unsupported pattern.
	ErrUnknownPattern = errors.New("unknown weapon pattern")
	// ErrInvalidWeapon is returned for a weapon with out-of-range stats.
	ErrInvalidWeapon = errors.New("invalid weapon definition")
)

// WeaponLibrary holds weapon definitions keyed by ID, keeping file order.
type WeaponLibrary struct {
	byID  map[string]WeaponDefinition
	order []string
}

// NewWeaponLibrary validates defs and builds a library from them.
func NewWeaponLibrary(defs []WeaponDefinition) (*WeaponLibrary, error) {
	lib := &WeaponLibrary{byID: make(map[string]WeaponDefinition, len(defs))}
	for _, def := range defs {
		if err := validateWeapon(def); err != nil {
			return nil, err
		}
		if _, dup := lib.byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidWeapon, def.ID)
		}
		lib.byID[def.ID] = def
		lib.order = append(lib.order, def.ID)
	}
	return lib, nil
}

// DefaultWeaponLibrary returns a library of the built-in weapons.
func DefaultWeaponLibrary() *WeaponLibrary {
	lib, err := NewWeaponLibrary(DefaultWeapons)
	if err != nil {
		panic(err)
	}
	return lib
}

// LoadWeaponDefinitions reads a JSON array of weapon definitions.
func LoadWeaponDefinitions(path string) (*WeaponLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponDefinition
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}
	return NewWeaponLibrary(weaponDefs)
}

// Get returns the definition for id.
func (l *WeaponLibrary) Get(id string) (WeaponDefinition, bool) {
	def, ok := l.byID[id]
	return def, ok
}

// Len returns the number of definitions.
func (l *WeaponLibrary) Len() int {
	return len(l.order)
}

// Starting returns the weapons a fresh player owns.
func (l *WeaponLibrary) Starting() []WeaponDefinition {
	var out []WeaponDefinition
	for _, id := range l.order {
		if def := l.byID[id]; def.UnlockLevel <= 1 {
			out = append(out, def)
		}
	}
	return out
}

// UnlockedAt returns the weapons granted on reaching exactly level.
func (l *WeaponLibrary) UnlockedAt(level int) []WeaponDefinition {
	if level <= 1 {
		return nil
	}
	var out []WeaponDefinition
	for _, id := range l.order {
		if def := l.byID[id]; def.UnlockLevel == level {
			out = append(out, def)
		}
	}
	return out
}

func validateWeapon(def WeaponDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidWeapon)
	}
	switch def.Pattern {
	case PatternBasic:
	case PatternShotgun:
		if def.Count <= 0 {
			return fmt.Errorf("%w: %s needs a positive count", ErrInvalidWeapon, def.ID)
		}
	default:
		return fmt.Errorf("%w: %q in %s", ErrUnknownPattern, def.Pattern, def.ID)
	}
	if def.AttackSpeedMs <= 0 || def.BulletSize <= 0 || def.BulletSpeed <= 0 || def.Damage < 0 {
		return fmt.Errorf("%w: %s has non-positive stats", ErrInvalidWeapon, def.ID)
	}
	return nil
}
