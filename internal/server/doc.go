// Package server implements the MCP (Model Context Protocol) server for seam carving.
//
// This package provides a JSON-RPC 2.0 server that exposes content-aware image
// resizing through the MCP protocol, so that MCP clients can inspect pixel
// energy, preview seams and shrink images without distorting their content.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Energy:
//   - image_energy: Dual-gradient energy of one pixel
//   - image_energy_map: Energy heat map as base64 PNG
//
// Seams:
//   - image_find_seam: Lowest-energy vertical or horizontal seam
//   - image_seam_overlay: Seam drawn over the image as base64 PNG
//
// Resizing:
//   - image_carve: Remove seams until the target size is reached and save the result
//
// # Sessions and Caching
//
// Decoded images are cached by path for the lifetime of the process. Every
// tool call builds its own carving session from the cached pixels, so no
// call ever sees another call's removed seams.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal().Err(err).Msg("server failed")
//	}
package server
