package maze

import "fmt"

// MarkerRunLength is the number of consecutive passable cells that must follow
// the first wall cell for a row to carry an endpoint marker.
const MarkerRunLength = 5

// DefaultRowsToScan is how many rows FindEndpoints inspects at each edge.
const DefaultRowsToScan = 10

// FindPoint locates an endpoint marker near the top or bottom edge of g.
//
// Rows are scanned top-down over the first rowsToScan rows when fromTop is true,
// otherwise bottom-up over the last rowsToScan rows. Within a row, columns are
// scanned left to right. The first wall cell found ends the row search; from its
// column the same row is scanned rightward for MarkerRunLength consecutive
// passable cells, and the leftmost cell of that run is returned.
//
// If the grid has fewer than rowsToScan rows only the available rows are used.
//
// # Errors
//
//   - ErrInvalidScanRows if rowsToScan <= 0
//   - ErrEndpointNotFound if no wall cell is in range, or its row has no run of
//     MarkerRunLength passable cells to the right of it
func FindPoint(g *Grid, rowsToScan int, fromTop bool) (Point, error) {
	if rowsToScan <= 0 {
		return Point{}, fmt.Errorf("%w: got %d", ErrInvalidScanRows, rowsToScan)
	}
	side := "top"
	if !fromTop {
		side = "bottom"
	}
	if rowsToScan > g.height {
		rowsToScan = g.height
	}

	wall, ok := firstWall(g, rowsToScan, fromTop)
	if !ok {
		return Point{}, fmt.Errorf("%w: no wall cell in %d %s rows", ErrEndpointNotFound, rowsToScan, side)
	}

	run := 0
	for x := wall.X; x < g.width; x++ {
		if g.At(Point{X: x, Y: wall.Y}) != Passable {
			run = 0
			continue
		}
		run++
		if run == MarkerRunLength {
			return Point{X: x - (MarkerRunLength - 1), Y: wall.Y}, nil
		}
	}

	return Point{}, fmt.Errorf("%w: row %d has no run of %d passable cells after column %d (%s)",
		ErrEndpointNotFound, wall.Y, MarkerRunLength, wall.X, side)
}

// firstWall returns the first wall cell in row-major order over the scan range.
func firstWall(g *Grid, rows int, fromTop bool) (Point, bool) {
	for i := 0; i < rows; i++ {
		y := i
		if !fromTop {
			y = g.height - 1 - i
		}
		for x := 0; x < g.width; x++ {
			if g.At(Point{X: x, Y: y}) == Wall {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// FindEndpoints locates the start marker near the top edge and the end marker
// near the bottom edge.
func FindEndpoints(g *Grid, rowsToScan int) (start, end Point, err error) {
	start, err = FindPoint(g, rowsToScan, true)
	if err != nil {
		return Point{}, Point{}, fmt.Errorf("start: %w", err)
	}
	end, err = FindPoint(g, rowsToScan, false)
	if err != nil {
		return Point{}, Point{}, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}
