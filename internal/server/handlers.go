package server

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/seamcarve-mcp/internal/carve"
	"github.com/ironsheep/seamcarve-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_carve").
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Debug().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

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

	case "image_energy":
		return s.handleImageEnergy(args)
	case "image_energy_map":
		return s.handleImageEnergyMap(args)

	case "image_find_seam":
		return s.handleImageFindSeam(args)
	case "image_seam_overlay":
		return s.handleImageSeamOverlay(args)

	case "image_carve":
		return s.handleImageCarve(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// session starts a fresh carving session over the image at path. Sessions
// are never shared between tool calls.
func (s *Server) session(path string) (*carve.Carver, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	grid, err := imaging.LoadPixelGrid(s.cache, path)
	if err != nil {
		return nil, err
	}

	opts := []carve.Option{carve.WithLogger(log.Logger)}
	if s.cfg.StrictEnergy {
		opts = append(opts, carve.WithStrictEnergy())
	}
	return carve.New(grid, opts...)
}

// parseOrientation applies the "vertical" default for an omitted argument.
func parseOrientation(s string) (carve.Orientation, error) {
	if s == "" {
		return carve.Vertical, nil
	}
	return carve.ParseOrientation(s)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Energy Handlers ===

type imageEnergyArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// EnergyResult is the energy of a single pixel.
type EnergyResult struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Energy float64 `json:"energy"`
}

func (s *Server) handleImageEnergy(args json.RawMessage) (interface{}, error) {
	var a imageEnergyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	e, err := c.EnergyAt(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &EnergyResult{X: a.X, Y: a.Y, Energy: e}, nil
}

func (s *Server) handleImageEnergyMap(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EnergyMap(c)
}

// === Seam Handlers ===

type imageSeamArgs struct {
	Path        string `json:"path"`
	Orientation string `json:"orientation"`
	Color       string `json:"color"`
}

// SeamResult describes the cheapest seam of an image.
type SeamResult struct {
	Orientation string  `json:"orientation"`
	Seam        []int   `json:"seam"`
	Cost        float64 `json:"cost"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
}

func (s *Server) handleImageFindSeam(args json.RawMessage) (interface{}, error) {
	var a imageSeamArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	o, err := parseOrientation(a.Orientation)
	if err != nil {
		return nil, err
	}
	c, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}

	seam, cost := c.FindSeam(o)
	return &SeamResult{
		Orientation: o.String(),
		Seam:        seam,
		Cost:        cost,
		Width:       c.Width(),
		Height:      c.Height(),
	}, nil
}

func (s *Server) handleImageSeamOverlay(args json.RawMessage) (interface{}, error) {
	var a imageSeamArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	o, err := parseOrientation(a.Orientation)
	if err != nil {
		return nil, err
	}
	c, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = s.cfg.SeamColor
	}

	seam, _ := c.FindSeam(o)
	return imaging.SeamOverlay(c.ToImage(), seam, o == carve.Vertical, a.Color)
}

// === Resizing Handlers ===

type imageCarveArgs struct {
	Path   string `json:"path"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
	Output string `json:"output"`
}

// CarveResult reports where a carved image was written and how it got there.
type CarveResult struct {
	Path           string `json:"path"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	OriginalWidth  int    `json:"original_width"`
	OriginalHeight int    `json:"original_height"`
	carve.ResizeStats
}

func (s *Server) handleImageCarve(args json.RawMessage) (interface{}, error) {
	var a imageCarveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}

	origW, origH := c.Width(), c.Height()
	width, height := origW, origH
	if a.Width != nil {
		width = *a.Width
	}
	if a.Height != nil {
		height = *a.Height
	}

	stats, err := c.Resize(width, height)
	if err != nil {
		return nil, err
	}

	out := imaging.OutputPath(s.cfg.OutputDir, a.Path, a.Output, width, height)
	if err := imaging.SavePixelGrid(c.ToImage(), out); err != nil {
		return nil, err
	}
	// out may be a file already decoded, including a.Path itself
	s.cache.Evict(out)
	log.Info().
		Str("source", a.Path).
		Str("output", out).
		Int("vertical_seams", stats.VerticalSeams).
		Int("horizontal_seams", stats.HorizontalSeams).
		Int("cached_images", s.cache.Len()).
		Msg("carved image")

	return &CarveResult{
		Path:           out,
		Width:          c.Width(),
		Height:         c.Height(),
		OriginalWidth:  origW,
		OriginalHeight: origH,
		ResizeStats:    *stats,
	}, nil
}
