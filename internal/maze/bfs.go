package maze

import "fmt"

// Direction is a unit offset between 4-adjacent cells.
type Direction struct {
	DX, DY int
}

// Directions is the fixed neighbor enumeration order of BFS. It changes which of
// several equal-length shortest paths is returned, never the path length.
var Directions = [4]Direction{
	{DX: -1, DY: 0},
	{DX: 1, DY: 0},
	{DX: 0, DY: -1},
	{DX: 0, DY: 1},
}

// cancelCheckInterval is how many dequeues pass between context checks.
const cancelCheckInterval = 1024

// SearchResult is the outcome of one breadth-first search.
type SearchResult struct {
	// Path runs from the cell after start to end inclusive (start first when
	// IncludeStart is set). Empty when end is unreachable or equal to start.
	Path Path

	// Visited is the number of cells marked visited, start included.
	Visited int

	// Found reports whether end was dequeued.
	Found bool
}

// BFS returns the shortest 4-connected path from start to end through passable
// cells of g.
//
// The returned path excludes start unless WithIncludeStart(true) is given. An
// empty path with a nil error is the normal "no path" result: end unreachable,
// start or end on a wall, or start equal to end.
//
// # Errors
//
//   - ErrPointOutOfBounds if start or end lies outside g
//   - ErrOptionViolation for an invalid option
//   - ErrStepBudgetExceeded when WithMaxSteps is exceeded
//   - the context error, wrapped, when the context is done
func BFS(g *Grid, start, end Point, opts ...Option) (Path, error) {
	res, err := Search(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search is BFS with traversal statistics.
func Search(g *Grid, start, end Point, opts ...Option) (*SearchResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrPointOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrPointOutOfBounds, end)
	}
	if !g.Passable(start) || !g.Passable(end) {
		return &SearchResult{Path: Path{}}, nil
	}

	n := g.width * g.height
	visited := make([]bool, n)
	depth := make([]int, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	startIdx, endIdx := g.index(start), g.index(end)
	queue := make([]int, 0, 64)
	queue = append(queue, startIdx)
	visited[startIdx] = true
	count := 1
	found := false

	for steps := 0; len(queue) > 0; steps++ {
		if o.MaxSteps > 0 && steps >= o.MaxSteps {
			return nil, fmt.Errorf("%w: %d steps", ErrStepBudgetExceeded, o.MaxSteps)
		}
		if steps%cancelCheckInterval == 0 {
			if err := o.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("maze: search cancelled: %w", err)
			}
		}

		cur := queue[0]
		queue = queue[1:]
		curPt := g.point(cur)
		o.OnVisit(curPt, depth[cur])

		if cur == endIdx {
			found = true
			break
		}

		for _, d := range Directions {
			next := Point{X: curPt.X + d.DX, Y: curPt.Y + d.DY}
			if !g.Passable(next) {
				continue
			}
			ni := g.index(next)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			parent[ni] = cur
			depth[ni] = depth[cur] + 1
			queue = append(queue, ni)
			count++
		}
	}

	path := reconstruct(g, parent, endIdx)
	if o.IncludeStart && len(path) > 0 {
		path = append(Path{start}, path...)
	}

	return &SearchResult{Path: path, Visited: count, Found: found}, nil
}

// reconstruct follows parent links back from end until a node without a parent,
// which leaves the start point out, then reverses into start→end order.
func reconstruct(g *Grid, parent []int, end int) Path {
	path := Path{}
	for cur := end; parent[cur] >= 0; cur = parent[cur] {
		path = append(path, g.point(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distances returns the 4-connected BFS distance from `from` to every cell,
// row-major, with -1 for walls and unreachable cells.
func Distances(g *Grid, from Point) ([]int, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %v", ErrPointOutOfBounds, from)
	}
	dist := make([]int, g.width*g.height)
	for i := range dist {
		dist[i] = -1
	}
	if !g.Passable(from) {
		return dist, nil
	}

	queue := []int{g.index(from)}
	dist[queue[0]] = 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		p := g.point(cur)
		for _, d := range Directions {
			next := Point{X: p.X + d.DX, Y: p.Y + d.DY}
			if !g.Passable(next) {
				continue
			}
			ni := g.index(next)
			if dist[ni] >= 0 {
				continue
			}
			dist[ni] = dist[cur] + 1
			queue = append(queue, ni)
		}
	}
	return dist, nil
}

// DistanceBetween returns the shortest 4-connected distance from a to b,
// or -1 when b is unreachable.
func DistanceBetween(g *Grid, a, b Point) (int, error) {
	if !g.InBounds(b) {
		return 0, fmt.Errorf("%w: %v", ErrPointOutOfBounds, b)
	}
	dist, err := Distances(g, a)
	if err != nil {
		return 0, err
	}
	return dist[g.index(b)], nil
}
