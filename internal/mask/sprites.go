// internal/mask/sprites.go
package mask

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// ErrUnknownSprite is returned for names missing from the library.
var ErrUnknownSprite = errors.New("unknown sprite")

// Sprite names used by level definitions.
const (
	SpritePlayer      = "player"
	SpriteEnemyHeavy  = "enemy_heavy"
	SpriteEnemyMedium = "enemy_medium"
	SpriteEnemyLight  = "enemy_light"
	SpriteBunker      = "bunker"
	SpriteMissile     = "missile"
)

type pattern struct {
	rows  []string
	scale int
}

// '#' is an opaque pixel, '+' a half-transparent one (never solid for collisions).
var library = map[string]pattern{
	SpritePlayer: {scale: 3, rows: []string{
		"......#......",
		".....###.....",
		".....###.....",
		"..#########..",
		".###########.",
		"#############",
		"#############",
		"##+.......+##",
	}},
	SpriteEnemyHeavy: {scale: 3, rows: []string{
		"....###....",
		"..#######..",
		".#########.",
		"##.##.##.##",
		"###########",
		"..#.....#..",
		".#.#...#.#.",
		"#.#.....#.#",
	}},
	SpriteEnemyMedium: {scale: 3, rows: []string{
		"..#.....#..",
		"...#...#...",
		"..#######..",
		".##.###.##.",
		"###########",
		"#.#######.#",
		"#.#.....#.#",
		"...##.##...",
	}},
	SpriteEnemyLight: {scale: 3, rows: []string{
		"...#####...",
		".#########.",
		"###.###.###",
		"###########",
		"..##...##..",
		".##.###.##.",
		"##.......##",
		"+.........+",
	}},
	SpriteBunker: {scale: 3, rows: []string{
		"....##############....",
		"...################...",
		"..##################..",
		".####################.",
		"######################",
		"######################",
		"######################",
		"######################",
		"######################",
		"######################",
		"#######........#######",
		"######..........######",
		"#####............#####",
		"#####............#####",
		"#####............#####",
		"#####............#####",
	}},
	SpriteMissile: {scale: 3, rows: []string{
		"#",
		"#",
		"#",
		"#",
	}},
}

// Sprite builds a fresh white mask for name. Every call returns a new copy.
func Sprite(name string) (*Alpha, error) {
	p, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSprite, name)
	}
	return FromPattern(p.rows, p.scale), nil
}

// MustSprite is Sprite for names known at compile time.
func MustSprite(name string) *Alpha {
	m, err := Sprite(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Names lists the sprite library, sorted.
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromPattern rasterises an ASCII pattern; every character becomes a scale×scale block.
func FromPattern(rows []string, scale int) *Alpha {
	if scale < 1 {
		scale = 1
	}
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	m := New(w*scale, len(rows)*scale)
	for ry, r := range rows {
		for rx, ch := range []byte(r) {
			var c color.NRGBA
			switch ch {
			case '#':
				c = color.NRGBA{R: 255, G: 255, B: 255, A: Opaque}
			case '+':
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 128}
			default:
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					m.img.SetNRGBA(rx*scale+dx, ry*scale+dy, c)
				}
			}
		}
	}
	return m
}
