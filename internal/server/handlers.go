package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/maze-solver/internal/imaging"
	"github.com/ironsheep/maze-solver/internal/maze"
	"github.com/ironsheep/maze-solver/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "maze_solve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	began := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	log.Debug().Str("tool", params.Name).Dur("elapsed", time.Since(began)).Msg("tool done")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	case "maze_find_endpoints":
		return s.handleMazeFindEndpoints(args)
	case "maze_solve":
		return s.handleMazeSolve(args)
	case "maze_render":
		return s.handleMazeRender(args)
	case "maze_shortest_path":
		return s.handleMazeShortestPath(args)
	case "maze_distance":
		return s.handleMazeDistance(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and requires a non-empty path.
func decodeArgs(args json.RawMessage, v interface{ imagePath() string }) error {
	if err := json.Unmarshal(args, v); err != nil {
		return err
	}
	if v.imagePath() == "" {
		return errors.New("missing required argument: path")
	}
	return nil
}

// gridArgs are shared by every tool that decodes the maze grid.
type gridArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold"`
}

func (a gridArgs) imagePath() string { return a.Path }

// loadGrid decodes the maze at a.Path, falling back to the configured
// threshold when the argument is omitted.
func (s *Server) loadGrid(a gridArgs) (*maze.Grid, error) {
	th := s.cfg.Threshold
	if a.Threshold != nil {
		th = *a.Threshold
	}
	return imaging.LoadGrid(s.cache, a.Path, imaging.DecodeOptions{Threshold: th})
}

func (s *Server) rowsToScan(n int) int {
	if n > 0 {
		return n
	}
	if s.cfg.RowsToScan > 0 {
		return s.cfg.RowsToScan
	}
	return maze.DefaultRowsToScan
}

func (s *Server) maxSteps(n *int) int {
	if n != nil {
		return *n
	}
	return s.cfg.MaxSteps
}

// === Image Information Handlers ===

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a gridArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Maze Handlers ===

type mazeFindEndpointsArgs struct {
	gridArgs
	RowsToScan int `json:"rows_to_scan"`
}

// EndpointsResult holds the located markers.
type EndpointsResult struct {
	Start maze.Point `json:"start"`
	End   maze.Point `json:"end"`
}

func (s *Server) handleMazeFindEndpoints(args json.RawMessage) (interface{}, error) {
	var a mazeFindEndpointsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	g, err := s.loadGrid(a.gridArgs)
	if err != nil {
		return nil, err
	}
	start, end, err := maze.FindEndpoints(g, s.rowsToScan(a.RowsToScan))
	if err != nil {
		return nil, fmt.Errorf("could not determine the starting or ending points: %w", err)
	}
	return &EndpointsResult{Start: start, End: end}, nil
}

type mazeSolveArgs struct {
	gridArgs
	RowsToScan   int  `json:"rows_to_scan"`
	IncludeStart bool `json:"include_start"`
	MaxSteps     *int `json:"max_steps"`
}

// SolveResult reports a solve attempt whose endpoints were found.
// Solved is false when no path connects them.
type SolveResult struct {
	Solved  bool       `json:"solved"`
	Message string     `json:"message,omitempty"`
	Start   maze.Point `json:"start"`
	End     maze.Point `json:"end"`
	Length  int        `json:"length"`
	Visited int        `json:"visited"`
	Path    maze.Path  `json:"path"`
}

// solve runs the coordinator and maps ErrPathNotFound onto an unsolved result.
// Endpoint failures stay errors.
func (s *Server) solve(a mazeSolveArgs) (*SolveResult, error) {
	g, err := s.loadGrid(a.gridArgs)
	if err != nil {
		return nil, err
	}

	sol, err := maze.Solve(context.Background(), g, maze.SolveOptions{
		RowsToScan:   s.rowsToScan(a.RowsToScan),
		IncludeStart: a.IncludeStart,
		MaxSteps:     s.maxSteps(a.MaxSteps),
	})
	switch {
	case errors.Is(err, maze.ErrPathNotFound):
		log.Info().Str("path", a.Path).Stringer("start", sol.Start).Stringer("end", sol.End).Msg("no path")
		return &SolveResult{
			Message: "no path exists between the starting and ending points",
			Start:   sol.Start,
			End:     sol.End,
			Visited: sol.Visited,
			Path:    maze.Path{},
		}, nil
	case errors.Is(err, maze.ErrEndpointNotFound):
		return nil, fmt.Errorf("could not determine the starting or ending points: %w", err)
	case err != nil:
		return nil, err
	}

	log.Info().Str("path", a.Path).Int("length", sol.Length).Int("visited", sol.Visited).Msg("solved")
	return &SolveResult{
		Solved:  true,
		Start:   sol.Start,
		End:     sol.End,
		Length:  sol.Length,
		Visited: sol.Visited,
		Path:    sol.Path,
	}, nil
}

func (s *Server) handleMazeSolve(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.solve(a)
}

type mazeRenderArgs struct {
	gridArgs
	RowsToScan int    `json:"rows_to_scan"`
	Scale      int    `json:"scale"`
	PathColor  string `json:"path_color"`
	StartColor string `json:"start_color"`
	EndColor   string `json:"end_color"`
}

// RenderResult combines the solve outcome with the annotated image.
type RenderResult struct {
	Solved  bool       `json:"solved"`
	Message string     `json:"message,omitempty"`
	Start   maze.Point `json:"start"`
	End     maze.Point `json:"end"`
	Length  int        `json:"length"`
	render.Result
}

func (s *Server) handleMazeRender(args json.RawMessage) (interface{}, error) {
	var a mazeRenderArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	style := render.DefaultStyle()
	if a.Scale > 0 {
		style.Scale = a.Scale
	}
	if a.PathColor != "" {
		style.PathColor = a.PathColor
	}
	if a.StartColor != "" {
		style.StartColor = a.StartColor
	}
	if a.EndColor != "" {
		style.EndColor = a.EndColor
	}

	sol, err := s.solve(mazeSolveArgs{gridArgs: a.gridArgs, RowsToScan: a.RowsToScan})
	if err != nil {
		return nil, err
	}

	base, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img, err := render.Overlay(base, sol.Path, sol.Start, sol.End, style)
	if err != nil {
		return nil, err
	}
	enc, err := render.EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		Solved:  sol.Solved,
		Message: sol.Message,
		Start:   sol.Start,
		End:     sol.End,
		Length:  sol.Length,
		Result:  *enc,
	}, nil
}

type mazeShortestPathArgs struct {
	gridArgs
	Start        *maze.Point `json:"start"`
	End          *maze.Point `json:"end"`
	IncludeStart bool        `json:"include_start"`
	MaxSteps     *int        `json:"max_steps"`
}

// ShortestPathResult is the outcome of a point-to-point search.
type ShortestPathResult struct {
	Found   bool      `json:"found"`
	Length  int       `json:"length"`
	Visited int       `json:"visited"`
	Path    maze.Path `json:"path"`
}

func (s *Server) handleMazeShortestPath(args json.RawMessage) (interface{}, error) {
	var a mazeShortestPathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Start == nil || a.End == nil {
		return nil, errors.New("missing required argument: start and end")
	}
	g, err := s.loadGrid(a.gridArgs)
	if err != nil {
		return nil, err
	}

	res, err := maze.Search(g, *a.Start, *a.End,
		maze.WithIncludeStart(a.IncludeStart),
		maze.WithMaxSteps(s.maxSteps(a.MaxSteps)),
	)
	if err != nil {
		return nil, err
	}
	return &ShortestPathResult{
		Found:   len(res.Path) > 0,
		Length:  len(res.Path),
		Visited: res.Visited,
		Path:    res.Path,
	}, nil
}

type mazeDistanceArgs struct {
	gridArgs
	From *maze.Point `json:"from"`
	To   *maze.Point `json:"to"`
}

// DistanceResult is the step count between two points.
type DistanceResult struct {
	Reachable bool `json:"reachable"`
	Distance  int  `json:"distance"`
}

func (s *Server) handleMazeDistance(args json.RawMessage) (interface{}, error) {
	var a mazeDistanceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.From == nil || a.To == nil {
		return nil, errors.New("missing required argument: from and to")
	}
	g, err := s.loadGrid(a.gridArgs)
	if err != nil {
		return nil, err
	}

	d, err := maze.DistanceBetween(g, *a.From, *a.To)
	if err != nil {
		return nil, err
	}
	return &DistanceResult{Reachable: d >= 0, Distance: d}, nil
}
