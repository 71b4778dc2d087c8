package carve

import "fmt"

// ResizeStats summarises a Resize run.
type ResizeStats struct {
	VerticalSeams   int     `json:"vertical_seams"`
	HorizontalSeams int     `json:"horizontal_seams"`
	TotalCost       float64 `json:"total_cost"`
}

// Resize removes seams until the picture is width x height.
//
// While both dimensions are too large, each step removes whichever of the
// cheapest vertical and cheapest horizontal seam has the lower total energy,
// preferring vertical on a tie. Once one dimension reaches its target only
// the other orientation is carved. Targets must lie in [1, current size].
func (c *Carver) Resize(width, height int) (*ResizeStats, error) {
	if width < 1 || width > c.Width() || height < 1 || height > c.Height() {
		return nil, fmt.Errorf("%w: %dx%d from a %dx%d picture",
			ErrInvalidTarget, width, height, c.Width(), c.Height())
	}

	stats := &ResizeStats{}
	for c.Width() > width || c.Height() > height {
		var (
			o    Orientation
			seam []int
			cost float64
		)
		switch {
		case c.Width() > width && c.Height() > height:
			vs, vc := c.FindSeam(Vertical)
			hs, hc := c.FindSeam(Horizontal)
			if hc < vc {
				o, seam, cost = Horizontal, hs, hc
			} else {
				o, seam, cost = Vertical, vs, vc
			}
		case c.Width() > width:
			o = Vertical
			seam, cost = c.FindSeam(Vertical)
		default:
			o = Horizontal
			seam, cost = c.FindSeam(Horizontal)
		}

		if err := c.RemoveSeam(o, seam); err != nil {
			return stats, err
		}
		if o == Vertical {
			stats.VerticalSeams++
		} else {
			stats.HorizontalSeams++
		}
		stats.TotalCost += cost

		c.log.Debug().
			Stringer("orientation", o).
			Float64("cost", cost).
			Int("width", c.Width()).
			Int("height", c.Height()).
			Msg("removed seam")
	}
	return stats, nil
}
