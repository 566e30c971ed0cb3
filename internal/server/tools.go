package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// schema property helpers shared by several tools
var (
	pathProp = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the maze image file",
	}
	rowsToScanProp = map[string]interface{}{
		"type":        "integer",
		"description": "Rows scanned at the top and bottom edges for endpoint markers. Default 10",
		"default":     10,
	}
	thresholdProp = map[string]interface{}{
		"type":        "integer",
		"description": "Optional binarization threshold (1-255). Omit or 0 to require a strictly black/white image",
		"default":     0,
	}
	includeStartProp = map[string]interface{}{
		"type":        "boolean",
		"description": "Include the start point as the first path element. Default false",
		"default":     false,
	}
	maxStepsProp = map[string]interface{}{
		"type":        "integer",
		"description": "Optional search step budget; 0 means unlimited",
		"default":     0,
	}
)

// pointProp describes a {x, y} grid coordinate argument.
func pointProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x": map[string]interface{}{"type": "integer", "description": "Column (0-based, from left)"},
			"y": map[string]interface{}{"type": "integer", "description": "Row (0-based, from top)"},
		},
		"required":    []string{"x", "y"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load a maze image and return its dimensions, format and black/white pixel counts. Reports whether the image is strictly bitonic.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of a maze image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},

		// Maze Operations
		{
			Name:        "maze_find_endpoints",
			Description: "Locate the start marker near the top edge and the end marker near the bottom edge. A marker is a black pixel followed by five consecutive white pixels on the same row.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProp,
					"rows_to_scan": rowsToScanProp,
					"threshold":    thresholdProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_solve",
			Description: "Find both endpoint markers and return the shortest 4-connected path between them through white pixels. Reports solved=false when the endpoints are not connected.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":          pathProp,
					"rows_to_scan":  rowsToScanProp,
					"threshold":     thresholdProp,
					"include_start": includeStartProp,
					"max_steps":     maxStepsProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_render",
			Description: "Solve the maze and return the image annotated with the path (small dots) and the start and end points (larger dots) as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProp,
					"rows_to_scan": rowsToScanProp,
					"threshold":    thresholdProp,
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Integer upscale factor for the output image. Default 1",
						"default":     1,
					},
					"path_color": map[string]interface{}{
						"type":        "string",
						"description": "Path dot color in hex. Default #006400",
						"default":     "#006400",
					},
					"start_color": map[string]interface{}{
						"type":        "string",
						"description": "Start dot color in hex. Default #8B0000",
						"default":     "#8B0000",
					},
					"end_color": map[string]interface{}{
						"type":        "string",
						"description": "End dot color in hex. Default #00008B",
						"default":     "#00008B",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_shortest_path",
			Description: "Return the shortest 4-connected path between two given points, skipping marker detection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":          pathProp,
					"start":         pointProp("Start point"),
					"end":           pointProp("End point"),
					"threshold":     thresholdProp,
					"include_start": includeStartProp,
					"max_steps":     maxStepsProp,
				},
				"required": []string{"path", "start", "end"},
			},
		},
		{
			Name:        "maze_distance",
			Description: "Return the shortest 4-connected distance in steps between two points, or reachable=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProp,
					"from":      pointProp("Origin point"),
					"to":        pointProp("Target point"),
					"threshold": thresholdProp,
				},
				"required": []string{"path", "from", "to"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
