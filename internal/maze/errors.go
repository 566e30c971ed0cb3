package maze

import "errors"

var (
	// ErrEmptyGrid indicates the cell rows are empty.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all grid rows must have the same length")

	// ErrInvalidCell indicates a cell value other than Wall or Passable.
	ErrInvalidCell = errors.New("maze: cell must be Wall or Passable")

	// ErrInvalidScanRows is returned when FindPoint is asked to scan no rows.
	ErrInvalidScanRows = errors.New("maze: rows to scan must be positive")

	// ErrEndpointNotFound is returned when no marker exists in the scanned rows.
	ErrEndpointNotFound = errors.New("maze: endpoint not found")

	// ErrPathNotFound is returned by Solve when the endpoints are not connected.
	ErrPathNotFound = errors.New("maze: no path between start and end")

	// ErrPointOutOfBounds indicates a point outside the grid.
	ErrPointOutOfBounds = errors.New("maze: point outside grid bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")

	// ErrStepBudgetExceeded is returned when BFS dequeues more nodes than allowed.
	ErrStepBudgetExceeded = errors.New("maze: search step budget exceeded")
)
