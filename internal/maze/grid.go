package maze

import "fmt"

// Cell is the passability class of one grid cell.
type Cell uint8

const (
	// Wall is a black pixel. Paths never enter it.
	Wall Cell = 0

	// Passable is a white pixel.
	Passable Cell = 255
)

// String returns "wall" or "passable".
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Passable:
		return "passable"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the point the way the CLI prints endpoints: "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Path is an ordered sequence of points, from the cell after the start to the end.
type Path []Point

// Len returns the number of points in the path.
func (p Path) Len() int {
	return len(p)
}

// Grid is an immutable rows × cols array of cells.
//
// Cells are stored row-major in a single slice. A Grid is safe for concurrent
// readers because nothing mutates it after construction.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid builds a Grid from rows of cells. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidCell on bad input.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if c != Wall && c != Passable {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrInvalidCell, uint8(c), x, y)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// ParseGrid builds a Grid from text rows where '#' is a wall and '.' is passable.
// It is mostly useful for tests and small hand-drawn mazes.
func ParseGrid(lines ...string) (*Grid, error) {
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		rows[y] = make([]Cell, len(line))
		for x, ch := range line {
			switch ch {
			case '#':
				rows[y][x] = Wall
			case '.':
				rows[y][x] = Passable
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidCell, ch, x, y)
			}
		}
	}
	return NewGrid(rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. The caller must ensure p is in bounds.
func (g *Grid) At(p Point) Cell {
	return g.cells[g.index(p)]
}

// Passable reports whether p is in bounds and passable.
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.cells[g.index(p)] == Passable
}

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Passable {
			n++
		}
	}
	return n
}

// index maps p to its row-major position.
func (g *Grid) index(p Point) int {
	return p.Y*g.width + p.X
}

// point maps a row-major position back to a Point.
func (g *Grid) point(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}
