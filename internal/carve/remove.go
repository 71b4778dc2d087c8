package carve

import "fmt"

// RemoveVerticalSeam deletes one pixel per row at the columns given by seam
// and shrinks the width by one. The seam is validated first; on error the
// picture is left untouched.
func (c *Carver) RemoveVerticalSeam(seam []int) error {
	return c.RemoveSeam(Vertical, seam)
}

// RemoveHorizontalSeam deletes one pixel per column at the rows given by
// seam and shrinks the height by one. The seam is validated first; on error
// the picture is left untouched.
func (c *Carver) RemoveHorizontalSeam(seam []int) error {
	return c.RemoveSeam(Horizontal, seam)
}

// RemoveSeam validates seam and removes it in the given orientation.
//
// A picture that is one pixel wide refuses vertical removal and one that is
// one pixel tall refuses horizontal removal; both fail with ErrCannotShrink,
// which also matches ErrInvalidSeam.
func (c *Carver) RemoveSeam(o Orientation, seam []int) error {
	if err := c.validateSeam(o, seam); err != nil {
		return err
	}

	across := c.Width()
	if o == Horizontal {
		across = c.Height()
	}
	if across <= 1 {
		return fmt.Errorf("%w: %w: %s seam on a %dx%d picture",
			ErrInvalidSeam, ErrCannotShrink, o, c.Width(), c.Height())
	}

	c.orient(o == Horizontal)
	c.removeSeam(seam)
	c.orient(false)
	return nil
}

// removeSeam deletes seam from storage as it is laid out now. seam must
// already be valid for the storage dimensions.
func (c *Carver) removeSeam(seam []int) {
	w := c.width
	for row, col := range seam {
		copy(c.rgb[row][col:], c.rgb[row][col+1:w])
		c.rgb[row] = c.rgb[row][:w-1]
		copy(c.energy[row][col:], c.energy[row][col+1:w])
		c.energy[row] = c.energy[row][:w-1]
	}
	c.width--
	c.refreshEnergy(seam)
}

// refreshEnergy recomputes the cached energies invalidated by removing seam.
//
// In interior rows the pixels now left of and at the deleted position are
// recomputed. The first and last rows are skipped. In strict mode the first
// and last columns of interior rows and both border rows in full are also
// recomputed, since their wrapped neighbours may have changed.
func (c *Carver) refreshEnergy(seam []int) {
	w, h := c.width, c.height
	for row := 1; row < h-1; row++ {
		col := seam[row]
		if col-1 >= 0 {
			c.energy[row][col-1] = c.computeEnergy(col-1, row)
		}
		if col < w {
			c.energy[row][col] = c.computeEnergy(col, row)
		}
		if c.strict {
			c.energy[row][0] = c.computeEnergy(0, row)
			c.energy[row][w-1] = c.computeEnergy(w-1, row)
		}
	}
	if !c.strict {
		return
	}
	for _, row := range []int{0, h - 1} {
		for col := 0; col < w; col++ {
			c.energy[row][col] = c.computeEnergy(col, row)
		}
	}
}
