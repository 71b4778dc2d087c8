// Package imaging moves pixels between image files and carving sessions.
//
// It owns everything the carving core treats as an external collaborator:
// decoding files into a PixelGrid, writing a PixelGrid back to disk, and
// rendering diagnostic images (seam overlays and energy heat maps) for MCP
// clients.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner. X (column)
// increases rightward and Y (row) increases downward. Decoded images whose
// bounds do not start at the origin are re-anchored at (0,0).
//
// # Pixel Format
//
// A PixelGrid stores one packed 24-bit value per pixel with red in bits
// 16-23, green in bits 8-15 and blue in bits 0-7. Alpha is dropped on load;
// saved images are fully opaque.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. PixelGrid is not; each carving
// session works on its own copy.
package imaging
