// internal/event/types.go
package event

import "go-survivor/internal/types"

const (
	EnemyKilled    EventType = "EnemyKilled"    // EnemyKilledData
	EnemyDespawned EventType = "EnemyDespawned" // types.EntityID
	EnemySpawned   EventType = "EnemySpawned"   // types.EntityID
	PlayerHit      EventType = "PlayerHit"      // PlayerHitData
	JewelCollected EventType = "JewelCollected" // types.EntityID
	LevelUp        EventType = "LevelUp"        // LevelUpData
	WeaponUnlocked EventType = "WeaponUnlocked" // weapon definition ID
	ChunkLoaded    EventType = "ChunkLoaded"    // types.ChunkCoord
	ChunkUnloaded  EventType = "ChunkUnloaded"  // types.ChunkCoord
	PlayerDied     EventType = "PlayerDied"     // level reached
	BulletFired    EventType = "BulletFired"    // types.EntityID
	WorldReset     EventType = "WorldReset"     // nil
)

type EnemyKilledData struct {
	ID   types.EntityID
	X, Y float64
}

type PlayerHitData struct {
	EnemyID types.EntityID
	Damage  int
	Health  int
}

type LevelUpData struct {
	Level        int
	NextLevelExp int
}
