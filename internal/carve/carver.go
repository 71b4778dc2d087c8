package carve

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/ironsheep/seamcarve-mcp/internal/imaging"
)

// Picture is the read side of a pixel grid: a width, a height and a packed
// 0xRRGGBB value per pixel. *imaging.PixelGrid implements it.
type Picture interface {
	Width() int
	Height() int
	RGB(x, y int) uint32
}

// Option configures a Carver.
type Option func(*Carver)

// WithStrictEnergy makes every seam removal also refresh the pixels whose
// wrap-around neighbours changed: the first and last column of every row and
// the whole first and last row. Cached energies then always match a fresh
// computation. Without it, removal refreshes only the two pixels beside the
// seam in interior rows.
func WithStrictEnergy() Option {
	return func(c *Carver) { c.strict = true }
}

// WithLogger sets the logger used by Resize to trace each removed seam.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Carver) { c.log = l }
}

// Carver is a seam-carving session over one picture.
//
// rgb and energy are stored row-major in storage orientation: rgb[row][col].
// While transposed is set, storage rows are logical columns. Only the
// horizontal wrappers set it, and they always restore it before returning.
type Carver struct {
	rgb    [][]uint32
	energy [][]float64

	// Storage dimensions; Width and Height report the logical ones.
	width  int
	height int

	transposed bool
	strict     bool
	log        zerolog.Logger
}

// New copies pic into a new carving session and computes every pixel's
// energy. It fails with ErrNullInput when pic is nil and with ErrEmptyImage
// when pic has no pixels.
func New(pic Picture, opts ...Option) (*Carver, error) {
	if isNil(pic) {
		return nil, ErrNullInput
	}
	w, h := pic.Width(), pic.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}

	c := &Carver{
		width:  w,
		height: h,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.rgb = newGrid[uint32](h, w)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c.rgb[row][col] = pic.RGB(col, row) & 0xFFFFFF
		}
	}

	c.energy = newGrid[float64](h, w)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c.energy[row][col] = c.computeEnergy(col, row)
		}
	}
	return c, nil
}

func isNil(pic Picture) bool {
	if pic == nil {
		return true
	}
	v := reflect.ValueOf(pic)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// newGrid allocates rows x cols cells from one backing array. Each row is
// capped at its own length so shrinking a row never exposes its neighbour.
func newGrid[T uint32 | float64](rows, cols int) [][]T {
	buf := make([]T, rows*cols)
	grid := make([][]T, rows)
	for r := range grid {
		grid[r] = buf[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return grid
}

// Width returns the current logical width of the picture.
func (c *Carver) Width() int {
	if c.transposed {
		return c.height
	}
	return c.width
}

// Height returns the current logical height of the picture.
func (c *Carver) Height() int {
	if c.transposed {
		return c.width
	}
	return c.height
}

// EnergyAt returns the cached energy of the pixel at (col, row).
func (c *Carver) EnergyAt(col, row int) (float64, error) {
	if col < 0 || col >= c.Width() || row < 0 || row >= c.Height() {
		return 0, fmt.Errorf("%w: pixel (%d,%d) outside %dx%d picture",
			ErrOutOfBounds, col, row, c.Width(), c.Height())
	}
	if c.transposed {
		return c.energy[col][row], nil
	}
	return c.energy[row][col], nil
}

// transpose re-lays out both grids so storage rows become storage columns.
// Energy values move with their pixels: the dual-gradient energy is symmetric
// in the two axes, so no value needs recomputing.
func (c *Carver) transpose() {
	w, h := c.width, c.height
	rgb := newGrid[uint32](w, h)
	energy := newGrid[float64](w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			rgb[col][row] = c.rgb[row][col]
			energy[col][row] = c.energy[row][col]
		}
	}
	c.rgb, c.energy = rgb, energy
	c.width, c.height = h, w
	c.transposed = !c.transposed
}

// orient puts storage into the requested orientation, transposing if needed.
func (c *Carver) orient(transposed bool) {
	if c.transposed != transposed {
		c.transpose()
	}
}

// ToImage copies the current picture out into a new PixelGrid in normal
// orientation.
func (c *Carver) ToImage() *imaging.PixelGrid {
	c.orient(false)
	g := imaging.NewPixelGrid(c.width, c.height)
	for row := 0; row < c.height; row++ {
		for col := 0; col < c.width; col++ {
			g.SetRGB(col, row, c.rgb[row][col])
		}
	}
	return g
}
