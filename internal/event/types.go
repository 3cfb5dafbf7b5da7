// internal/event/types.go
package event

import "go-space-invaders/internal/component"

const (
	RoundStarted      EventType = "RoundStarted"      // новый раунд собран
	StateChanged      EventType = "StateChanged"      // Play/Pause/Win/Lost
	MissileFired      EventType = "MissileFired"      // корабль выстрелил
	ShipDestroyed     EventType = "ShipDestroyed"     // корабль потерял все очки прочности
	BunkerEroded      EventType = "BunkerEroded"      // бункер потерял пиксели
	FormationReversed EventType = "FormationReversed" // строй развернулся у стены
	FormationBreached EventType = "FormationBreached" // строй дошёл до ряда игрока
)

// StateChange is the payload of StateChanged.
type StateChange struct {
	From, To component.GameState
}

// Shot is the payload of MissileFired.
type Shot struct {
	Faction  component.Faction
	Position component.Vector2D
}

// Destroyed is the payload of ShipDestroyed.
type Destroyed struct {
	Faction  component.Faction
	Position component.Vector2D
}

// Erosion is the payload of BunkerEroded.
type Erosion struct {
	Pixels    int
	Remaining int
}

// Reversal is the payload of FormationReversed.
type Reversal struct {
	Direction       int
	Speed           float64
	ShotProbability float64
}

// Round is the payload of RoundStarted.
type Round struct {
	ID     string
	Number int
	Seed   int64
}
