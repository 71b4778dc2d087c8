// Package carve implements content-aware image resizing by seam carving.
//
// A Carver owns a picture's pixels together with a cached energy value for
// every pixel. Each step finds the connected path of pixels ("seam") with
// the lowest total energy and removes it, shrinking the picture by one column
// (vertical seam) or one row (horizontal seam).
//
// # Energy
//
// Energy is the dual-gradient magnitude: the square root of the summed squared
// RGB differences between a pixel's left and right neighbours plus those
// between its upper and lower neighbours. Missing neighbours at the border
// wrap around to the opposite edge, so border pixels get finite energy.
//
// # Seams
//
// Seam search is a shortest path over the implicit DAG whose edges lead from
// a pixel to the three pixels below it. Vertical search and removal run
// directly on the stored grids; horizontal operations transpose both grids,
// run the vertical routine and transpose back.
//
// # Concurrency
//
// A Carver is not safe for concurrent use. Each method runs to completion
// synchronously; callers that share a Carver must serialise access.
package carve
