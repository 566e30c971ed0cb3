// Package maze implements the solving core: endpoint location and shortest-path
// search over a binary passability grid decoded from a maze image.
//
// The package never touches image files or pixels. Callers build a Grid (usually
// through imaging.DecodeGrid), then use FindPoint to locate the entry and exit
// markers and BFS to connect them. Solve composes the three steps.
//
// # Coordinate System
//
// Points are 0-based with the origin at the top-left corner:
//   - X: column (0 = leftmost)
//   - Y: row (0 = topmost)
//
// # Markers
//
// An endpoint is marked in the source image by a black pixel followed, on the
// same row, by a run of MarkerRunLength white pixels. The start marker sits in the
// first rows of the image and the end marker in the last rows.
//
// # Determinism
//
// BFS enumerates neighbors in a fixed order (see Directions) and keeps its
// visited set and parent pointers in slices indexed by cell, so repeated calls on
// the same input always return the same path.
package maze
