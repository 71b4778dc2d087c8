package imaging

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultSeamColor is used when an overlay is requested without a colour.
const DefaultSeamColor = "#FF0000"

// OverlayResult is a rendered diagnostic image returned inline to a client.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// SeamOverlay draws seam on top of g and returns the result as base64 PNG.
//
// A vertical seam holds one column index per row; a horizontal seam holds one
// row index per column. colorHex accepts "#RRGGBB"; an empty string selects
// DefaultSeamColor. g itself is not modified.
func SeamOverlay(g *PixelGrid, seam []int, vertical bool, colorHex string) (*OverlayResult, error) {
	if colorHex == "" {
		colorHex = DefaultSeamColor
	}
	c, err := colorful.Hex(colorHex)
	if err != nil {
		return nil, fmt.Errorf("invalid seam color %q: %w", colorHex, err)
	}
	r, gr, b := c.Clamped().RGB255()
	mark := color.NRGBA{R: r, G: gr, B: b, A: 0xFF}

	length, bound := g.Width(), g.Height()
	if vertical {
		length, bound = g.Height(), g.Width()
	}
	if len(seam) != length {
		return nil, fmt.Errorf("seam length %d does not match image (%d expected)", len(seam), length)
	}

	img := g.Image()
	for i, v := range seam {
		if v < 0 || v >= bound {
			return nil, fmt.Errorf("seam entry %d at index %d outside [0,%d)", v, i, bound)
		}
		if vertical {
			img.SetNRGBA(v, i, mark)
		} else {
			img.SetNRGBA(i, v, mark)
		}
	}

	encoded, err := encodeBase64PNG(img)
	if err != nil {
		return nil, err
	}
	return &OverlayResult{
		Width:       g.Width(),
		Height:      g.Height(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// EnergySource is anything that can report a per-pixel energy, typically a
// carving session.
type EnergySource interface {
	Width() int
	Height() int
	EnergyAt(col, row int) (float64, error)
}

// EnergyMapResult is an energy heat map plus the range it was scaled over.
type EnergyMapResult struct {
	OverlayResult
	MinEnergy float64 `json:"min_energy"`
	MaxEnergy float64 `json:"max_energy"`
}

var (
	coldColor = colorful.Color{R: 0.05, G: 0.05, B: 0.35}
	hotColor  = colorful.Color{R: 1.0, G: 0.85, B: 0.1}
)

// EnergyMap renders src as a heat map: low energy is dark blue, high energy
// is yellow, blended in HCL space so the ramp is perceptually even. Values are
// scaled linearly between the observed minimum and maximum.
func EnergyMap(src EnergySource) (*EnergyMapResult, error) {
	w, h := src.Width(), src.Height()
	values := make([]float64, w*h)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e, err := src.EnergyAt(x, y)
			if err != nil {
				return nil, err
			}
			values[y*w+x] = e
			lo = math.Min(lo, e)
			hi = math.Max(hi, e)
		}
	}
	if w*h == 0 {
		lo, hi = 0, 0
	}

	g := NewPixelGrid(w, h)
	for i, e := range values {
		t := 0.0
		if hi > lo {
			t = (e - lo) / (hi - lo)
		}
		r, gr, b := coldColor.BlendHcl(hotColor, t).Clamped().RGB255()
		g.pix[i] = PackRGB(r, gr, b)
	}

	encoded, err := encodeBase64PNG(g.Image())
	if err != nil {
		return nil, err
	}
	return &EnergyMapResult{
		OverlayResult: OverlayResult{
			Width:       w,
			Height:      h,
			ImageBase64: encoded,
			MimeType:    "image/png",
		},
		MinEnergy: lo,
		MaxEnergy: hi,
	}, nil
}
