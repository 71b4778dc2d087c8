package carve

import "math"

// channels splits a packed 0xRRGGBB value into red, green and blue.
func channels(rgb uint32) [3]int {
	return [3]int{int(rgb>>16) & 0xFF, int(rgb>>8) & 0xFF, int(rgb) & 0xFF}
}

// gradient is the squared colour distance between two packed pixels.
func gradient(a, b uint32) float64 {
	ca, cb := channels(a), channels(b)
	var sum int
	for i := range ca {
		d := ca[i] - cb[i]
		sum += d * d
	}
	return float64(sum)
}

// computeEnergy returns the dual-gradient energy of the pixel at storage
// position (col, row) from the current pixel contents. Neighbours past an
// edge wrap to the opposite edge.
func (c *Carver) computeEnergy(col, row int) float64 {
	left, right := col-1, col+1
	if col == 0 {
		left = c.width - 1
	}
	if col == c.width-1 {
		right = 0
	}
	up, down := row-1, row+1
	if row == 0 {
		up = c.height - 1
	}
	if row == c.height-1 {
		down = 0
	}

	dx := gradient(c.rgb[row][left], c.rgb[row][right])
	dy := gradient(c.rgb[up][col], c.rgb[down][col])
	return math.Sqrt(dx + dy)
}
