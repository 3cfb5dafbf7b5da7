// internal/defs/types.go
package defs

// RowDefinition describes one row of enemy ships, top row first.
type RowDefinition struct {
	Count     int    `yaml:"count"`
	HitPoints int    `yaml:"hit_points"`
	Sprite    string `yaml:"sprite"`
	Color     int    `yaml:"color"` // индекс в config.EnemyRowColors
}

// FormationDefinition places the formation before its first move.
type FormationDefinition struct {
	Width float64 `yaml:"width"`
	Top   float64 `yaml:"top"`
}

// BunkerDefinition spreads Count bunkers evenly across the play area.
type BunkerDefinition struct {
	Count        int     `yaml:"count"`
	BottomOffset float64 `yaml:"bottom_offset"`
	Sprite       string  `yaml:"sprite"`
}

// Level is everything needed to build a round.
type Level struct {
	Name      string              `yaml:"name"`
	Formation FormationDefinition `yaml:"formation"`
	Rows      []RowDefinition     `yaml:"rows"`
	Bunkers   BunkerDefinition    `yaml:"bunkers"`
}
