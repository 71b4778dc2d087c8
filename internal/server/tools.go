package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema of the "path" argument every tool takes.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func orientationProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"vertical", "horizontal"},
		"description": "Seam direction: vertical seams remove a column, horizontal seams remove a row",
		"default":     "vertical",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Energy
		{
			Name:        "image_energy",
			Description: "Get the dual-gradient energy of one pixel. Low energy pixels are the first to be removed by seam carving.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Column (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Row (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_energy_map",
			Description: "Render the per-pixel energy as a heat map (dark blue = low, yellow = high) and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Seams
		{
			Name:        "image_find_seam",
			Description: "Find the lowest-energy seam. Returns one index per row (vertical) or per column (horizontal) and the seam's total energy.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"orientation": orientationProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_seam_overlay",
			Description: "Draw the lowest-energy seam over the image and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty(),
					"orientation": orientationProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Seam color as #RRGGBB. Defaults to the server's configured seam color",
					},
				},
				"required": []string{"path"},
			},
		},

		// Resizing
		{
			Name:        "image_carve",
			Description: "Shrink an image to the target size by repeatedly removing the lowest-energy seam, then save the result as a new image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels (1 to current width). Defaults to the current width",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels (1 to current height). Defaults to the current height",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Path for the carved image. The format follows the extension. Defaults to a PNG in the server's output directory",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
