package scene

import "strings"

// mazeLayout is the hedge maze east of the castle, one rune per cell:
// '#' is a wall segment, '.' open path. The maze entrance faces the
// castle gate on the west side, the exit opens east.
var mazeLayout = []string{
	"###################",
	".....#.......#....#",
	"####.#.#####.#.##.#",
	"#..#.#.#...#.#.##.#",
	"#.##.#.#.#.#.#....#",
	"#.#..#.#.#...#.####",
	"#.#.##.#.#####.#...",
	"#.#....#.......#.##",
	"#.######.#######.##",
	"#........#.......##",
	"###################",
}

// Maze cell geometry.
const (
	mazeCellSize   = 9.0
	mazeWallHeight = 8.0
	mazeOriginX    = 130.0 // west edge of the maze grounds
)

// Maze expands the layout into one wall box per '#' cell, centered on
// the maze grounds east of the castle.
func Maze() []Item {
	halfD := float32(len(mazeLayout)) * mazeCellSize / 2

	var items []Item
	for r, line := range mazeLayout {
		for c, cell := range line {
			if cell != '#' {
				continue
			}
			x := mazeOriginX + float32(c)*mazeCellSize + mazeCellSize/2
			z := float32(r)*mazeCellSize - halfD + mazeCellSize/2
			items = append(items, box(x, mazeWallHeight/2, z, mazeCellSize, mazeWallHeight, mazeCellSize, 0, MatStone))
		}
	}
	return items
}

// MazeWallCount returns the number of wall cells in the layout.
func MazeWallCount() int {
	n := 0
	for _, line := range mazeLayout {
		n += strings.Count(line, "#")
	}
	return n
}

// MazeBounds returns the world-space extent of the maze grounds as
// (minX, maxX, minZ, maxZ). Trees are kept outside this rectangle.
func MazeBounds() (minX, maxX, minZ, maxZ float32) {
	rows := len(mazeLayout)
	cols := len(mazeLayout[0])
	halfD := float32(rows) * mazeCellSize / 2
	return mazeOriginX, mazeOriginX + float32(cols)*mazeCellSize, -halfD, halfD
}
