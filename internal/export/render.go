package export

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/dungeonforge/internal/grid"
)

// Map glyphs.
const (
	GlyphEmpty    = ' '
	GlyphFloor    = '.'
	GlyphCorridor = ','
	GlyphWall     = '#'
	GlyphCorner   = '+'
	GlyphProp     = 'o'
	GlyphChest    = '$'
	GlyphTrap     = '^'
	GlyphEnemy    = 'e'
	GlyphElite    = 'E'
	GlyphPlayer   = '@'
)

// propGlyphs overrides GlyphProp for well-known templates.
var propGlyphs = map[string]rune{
	"chest":     GlyphChest,
	"crate":     'x',
	"bookshelf": '=',
	"banner":    '|',
	"pillar":    'O',
}

// RenderASCII draws the snapshot with north at the top. Later layers win:
// floor, walls, props, traps, enemies, player.
func RenderASCII(s *Snapshot, legend bool) string {
	cells := make(map[grid.Point]rune)
	for _, p := range s.Floor {
		cells[p] = GlyphFloor
	}
	for _, p := range s.Corridors {
		cells[p] = GlyphCorridor
	}
	for _, w := range s.Walls {
		if w.Kind == "corner" {
			cells[w.Pos] = GlyphCorner
		} else {
			cells[w.Pos] = GlyphWall
		}
	}
	for _, r := range s.Rooms {
		for _, p := range r.Props {
			g, ok := propGlyphs[p.Name]
			if !ok {
				g = GlyphProp
			}
			for _, t := range p.Tiles {
				cells[t] = g
			}
		}
		for _, p := range r.Traps {
			for _, t := range p.Tiles {
				cells[t] = GlyphTrap
			}
		}
	}
	placeEnemy := func(e Enemy) {
		if e.Elite {
			cells[e.Tile] = GlyphElite
		} else {
			cells[e.Tile] = GlyphEnemy
		}
	}
	for _, r := range s.Rooms {
		for _, e := range r.Enemies {
			placeEnemy(e)
		}
	}
	for _, e := range s.CorridorEnemies {
		placeEnemy(e)
	}
	if s.Player != nil {
		cells[s.Player.Tile] = GlyphPlayer
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("Dungeon (Seed: %d, Mode: %s, Rooms: %d, Enemies: %d)\n",
		s.Seed, s.Mode, len(s.Rooms), s.EnemyCount()))
	out.WriteString(strings.Repeat("=", 60) + "\n")

	if len(cells) == 0 {
		out.WriteString("  (Empty dungeon)\n")
		return out.String()
	}

	minX, maxX, minY, maxY := bounds(cells)
	for y := maxY; y >= minY; y-- {
		var row strings.Builder
		for x := minX; x <= maxX; x++ {
			if g, ok := cells[grid.Pt(x, y)]; ok {
				row.WriteRune(g)
			} else {
				row.WriteRune(GlyphEmpty)
			}
		}
		out.WriteString(strings.TrimRight(row.String(), " ") + "\n")
	}

	if legend {
		out.WriteString(Legend())
	}
	return out.String()
}

func bounds(cells map[grid.Point]rune) (minX, maxX, minY, maxY int) {
	first := true
	for p := range cells {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}

// RoomSummary lists each room with its classification sizes and contents.
func RoomSummary(s *Snapshot) string {
	var out strings.Builder
	out.WriteString("Room Details:\n")
	for _, r := range s.Rooms {
		details := fmt.Sprintf("  [%2d] floor %-4d inner %-4d corners %-3d difficulty %.2f",
			r.Index, len(r.Floor), len(r.Inner), len(r.Corners), r.Difficulty)

		var markers []string
		if s.Player != nil && s.Player.Room == r.Index {
			markers = append(markers, "player")
		}
		if n := len(r.Props); n > 0 {
			markers = append(markers, fmt.Sprintf("%d props", n))
		}
		if n := len(r.Traps); n > 0 {
			markers = append(markers, fmt.Sprintf("%d traps", n))
		}
		if n := len(r.Enemies); n > 0 {
			markers = append(markers, fmt.Sprintf("%d enemies", n))
		}
		if len(markers) > 0 {
			details += " [" + strings.Join(markers, ", ") + "]"
		}
		out.WriteString(details + "\n")
	}
	if n := len(s.CorridorEnemies); n > 0 {
		out.WriteString(fmt.Sprintf("  corridors: %d enemies\n", n))
	}
	return out.String()
}

// Legend returns the glyph key.
func Legend() string {
	return `
Legend:
  @  Player
  e  Enemy
  E  Elite leader
  $  Chest
  x  Crate
  =  Bookshelf
  |  Banner
  O  Pillar
  o  Other prop
  ^  Trap
  .  Room floor
  ,  Corridor
  #  Wall
  +  Corner wall
`
}
