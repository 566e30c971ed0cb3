// Package server implements the MCP (Model Context Protocol) server for the maze tools.
//
// This package provides a JSON-RPC 2.0 server that exposes maze loading,
// endpoint detection, solving and rendering through the MCP protocol, so an
// MCP client can solve maze images without shelling out to the CLI.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_load: Load image and report size, format and pixel classes
//   - image_dimensions: Get width and height
//
// Maze Operations:
//   - maze_find_endpoints: Locate the start and end markers
//   - maze_solve: Shortest path between the markers
//   - maze_render: Solve and return the annotated image as base64 PNG
//   - maze_shortest_path: Shortest path between two given points
//   - maze_distance: Step distance between two given points
//
// A maze whose endpoints are found but not connected is not a tool error:
// maze_solve and maze_render report solved=false with a message. Missing
// endpoint markers are a tool error.
//
// # Image Caching
//
// Decoded images are cached by path and reused across tool calls for the
// lifetime of the server process. Grids are rebuilt per call, so the
// threshold argument can differ between calls on the same file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(config.Default())
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Msg("server failed")
//	}
package server
