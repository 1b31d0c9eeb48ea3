// internal/defs/types.go
package defs

// PatternType selects how a weapon lays out the bullets of one volley.
type PatternType string

const (
	PatternBasic   PatternType = "BASIC"   // one bullet, random direction
	PatternShotgun PatternType = "SHOTGUN" // fan of bullets around a random direction
)
