package maze

import (
	"context"
	"fmt"
)

// SolveOptions configures Solve.
type SolveOptions struct {
	// RowsToScan is how many rows are scanned at each edge for markers.
	// Zero means DefaultRowsToScan.
	RowsToScan int

	// IncludeStart prepends the start point to the solution path.
	IncludeStart bool

	// MaxSteps bounds the search; zero disables the budget.
	MaxSteps int
}

// Solution is a solved maze.
type Solution struct {
	Start   Point `json:"start"`
	End     Point `json:"end"`
	Path    Path  `json:"path"`
	Length  int   `json:"length"`
	Visited int   `json:"visited"`
}

// Solve locates the start marker near the top, the end marker near the bottom,
// and searches for the shortest path between them.
//
// An endpoint failure returns an error wrapping ErrEndpointNotFound and a nil
// Solution. When both endpoints are found but not connected, Solve returns the
// partially filled Solution (endpoints only) together with ErrPathNotFound so
// callers can report the two cases differently.
func Solve(ctx context.Context, g *Grid, opts SolveOptions) (*Solution, error) {
	rows := opts.RowsToScan
	if rows == 0 {
		rows = DefaultRowsToScan
	}

	start, end, err := FindEndpoints(g, rows)
	if err != nil {
		return nil, err
	}

	res, err := Search(g, start, end,
		WithContext(ctx),
		WithMaxSteps(opts.MaxSteps),
		WithIncludeStart(opts.IncludeStart),
	)
	if err != nil {
		return nil, err
	}

	sol := &Solution{
		Start:   start,
		End:     end,
		Path:    res.Path,
		Length:  len(res.Path),
		Visited: res.Visited,
	}
	if len(res.Path) == 0 {
		return sol, fmt.Errorf("%w: start %v, end %v", ErrPathNotFound, start, end)
	}
	return sol, nil
}
