package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PixelGrid is a width x height array of packed 24-bit RGB values.
//
// Each value holds red in bits 16-23, green in bits 8-15 and blue in bits
// 0-7. Alpha is discarded on the way in and restored as fully opaque on the
// way out. PixelGrid is the interchange type between decoded images and a
// carving session; it is not safe for concurrent mutation.
type PixelGrid struct {
	width  int
	height int
	pix    []uint32
}

// NewPixelGrid allocates a black grid of the given size.
func NewPixelGrid(width, height int) *PixelGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelGrid{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// PixelGridFromImage copies img into a new grid. The image is normalised to
// non-premultiplied NRGBA first, so palette, YCbCr and 16-bit images all take
// the same path and a translucent pixel keeps its full colour.
func PixelGridFromImage(img image.Image) *PixelGrid {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	g := NewPixelGrid(b.Dx(), b.Dy())
	for y := 0; y < g.height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < g.width; x++ {
			i := x * 4
			g.pix[y*g.width+x] = PackRGB(row[i], row[i+1], row[i+2])
		}
	}
	return g
}

// Width returns the number of columns.
func (g *PixelGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *PixelGrid) Height() int { return g.height }

// RGB returns the packed colour at (x, y). It panics if the coordinate is
// outside the grid, like indexing a slice.
func (g *PixelGrid) RGB(x, y int) uint32 {
	g.mustContain(x, y)
	return g.pix[y*g.width+x]
}

// SetRGB stores a packed colour at (x, y). Bits above 23 are cleared.
func (g *PixelGrid) SetRGB(x, y int, rgb uint32) {
	g.mustContain(x, y)
	g.pix[y*g.width+x] = rgb & 0xFFFFFF
}

func (g *PixelGrid) mustContain(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("imaging: pixel (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
}

// Image renders the grid as an opaque NRGBA image anchored at (0,0).
func (g *PixelGrid) Image() *image.NRGBA {
	img := imaging.New(g.width, g.height, color.NRGBA{A: 0xFF})
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r, gr, b := UnpackRGB(g.pix[y*g.width+x])
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = gr
			img.Pix[i+2] = b
		}
	}
	return img
}

// PackRGB packs 8-bit channels into the grid's 24-bit representation.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a packed value into its red, green and blue channels.
func UnpackRGB(rgb uint32) (r, g, b uint8) {
	return uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb)
}
