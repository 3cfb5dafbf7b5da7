// internal/component/faction.go
package component

// Faction decides which entity pairs may damage each other.
type Faction int

const (
	Ally Faction = iota
	Enemy
	Neutral
)

func (f Faction) String() string {
	switch f {
	case Ally:
		return "ally"
	case Enemy:
		return "enemy"
	case Neutral:
		return "neutral"
	}
	return "unknown"
}

// Heading returns the vertical direction a missile of this faction travels:
// allies shoot up the screen, enemies down. Neutral missiles do not move.
func (f Faction) Heading() float64 {
	switch f {
	case Ally:
		return -1
	case Enemy:
		return 1
	}
	return 0
}
