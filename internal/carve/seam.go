package carve

import (
	"fmt"
	"math"
	"strings"
)

// Orientation selects which way a seam runs.
type Orientation int

const (
	// Vertical seams run top to bottom and hold one column per row.
	Vertical Orientation = iota
	// Horizontal seams run left to right and hold one row per column.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "vertical"/"v" and "horizontal"/"h", in any case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("unknown seam orientation %q (want vertical or horizontal)", s)
	}
}

// FindVerticalSeam returns a minimum-energy vertical seam: Height() column
// indices, one per row from top to bottom.
func (c *Carver) FindVerticalSeam() []int {
	seam, _ := c.FindSeam(Vertical)
	return seam
}

// FindHorizontalSeam returns a minimum-energy horizontal seam: Width() row
// indices, one per column from left to right.
func (c *Carver) FindHorizontalSeam() []int {
	seam, _ := c.FindSeam(Horizontal)
	return seam
}

// FindSeam returns a minimum-energy seam in the given orientation together
// with its total energy.
func (c *Carver) FindSeam(o Orientation) ([]int, float64) {
	if o == Horizontal {
		c.orient(true)
		defer c.orient(false)
	} else {
		c.orient(false)
	}
	return c.findSeam()
}

// findSeam runs the vertical search over storage as it is laid out now.
//
// dist holds, for the row being finished, the cheapest cumulative energy of
// any path from row 0 ending at each column. Predecessors are tried in
// ascending column order and only a strictly cheaper one replaces the
// current choice, so ties go to the smaller column. The end of the seam is
// the cheapest cell of the last row, again preferring the smaller column.
func (c *Carver) findSeam() ([]int, float64) {
	w, h := c.width, c.height

	edgeTo := make([]int, w*h)
	dist := make([]float64, w)
	next := make([]float64, w)
	copy(dist, c.energy[0])

	for row := 1; row < h; row++ {
		energy := c.energy[row]
		for col := 0; col < w; col++ {
			lo, hi := max(col-1, 0), min(col+1, w-1)
			best, from := math.Inf(1), lo
			for p := lo; p <= hi; p++ {
				if dist[p] < best {
					best, from = dist[p], p
				}
			}
			next[col] = best + energy[col]
			edgeTo[row*w+col] = from
		}
		dist, next = next, dist
	}

	end := 0
	for col := 1; col < w; col++ {
		if dist[col] < dist[end] {
			end = col
		}
	}

	seam := make([]int, h)
	seam[h-1] = end
	for row := h - 1; row > 0; row-- {
		seam[row-1] = edgeTo[row*w+seam[row]]
	}
	return seam, dist[end]
}

// SeamCost returns the total energy of the pixels along seam.
func (c *Carver) SeamCost(o Orientation, seam []int) (float64, error) {
	if err := c.validateSeam(o, seam); err != nil {
		return 0, err
	}
	var total float64
	for i, v := range seam {
		col, row := v, i
		if o == Horizontal {
			col, row = i, v
		}
		e, err := c.EnergyAt(col, row)
		if err != nil {
			return 0, err
		}
		total += e
	}
	return total, nil
}

// validateSeam checks seam against the current logical dimensions: it must
// be non-nil, cross every row (vertical) or column (horizontal) exactly once,
// stay inside the picture and move by at most one between neighbours.
func (c *Carver) validateSeam(o Orientation, seam []int) error {
	length, bound := c.Height(), c.Width()
	if o == Horizontal {
		length, bound = c.Width(), c.Height()
	}

	if seam == nil {
		return fmt.Errorf("%w: nil %s seam", ErrInvalidSeam, o)
	}
	if len(seam) != length {
		return fmt.Errorf("%w: %s seam has length %d, want %d", ErrInvalidSeam, o, len(seam), length)
	}
	for i, v := range seam {
		if v < 0 || v >= bound {
			return fmt.Errorf("%w: %w: %s seam entry %d is %d, want [0,%d)",
				ErrInvalidSeam, ErrOutOfBounds, o, i, v, bound)
		}
		if i > 0 && abs(v-seam[i-1]) > 1 {
			return fmt.Errorf("%w: %s seam jumps from %d to %d at entry %d",
				ErrInvalidSeam, o, seam[i-1], v, i)
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
