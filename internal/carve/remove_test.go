package carve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemoveVerticalSeam_FlatImage(t *testing.T) {
	c := mustNew(t, flatGrid(3, 4, 0x2A5B8C))

	if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
		t.Fatalf("RemoveVerticalSeam failed: %v", err)
	}
	if c.Width() != 2 || c.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 2x4", c.Width(), c.Height())
	}

	out := c.ToImage()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if got := out.RGB(x, y); got != 0x2A5B8C {
				t.Errorf("pixel (%d,%d): got %06X, want 2A5B8C", x, y, got)
			}
		}
	}
}

func TestRemoveVerticalSeam_ShiftsPixels(t *testing.T) {
	c := mustNew(t, labelGrid(4, 4))
	seam := []int{1, 2, 1, 0}

	if err := c.RemoveVerticalSeam(seam); err != nil {
		t.Fatalf("RemoveVerticalSeam failed: %v", err)
	}

	want := make([][]uint32, 4)
	for y, skip := range seam {
		for x := 0; x < 4; x++ {
			if x != skip {
				want[y] = append(want[y], uint32(x)<<8|uint32(y))
			}
		}
	}
	if diff := cmp.Diff(want, pixels(c.ToImage())); diff != "" {
		t.Errorf("pixels after removal (-want +got):\n%s", diff)
	}
}

func TestRemoveHorizontalSeam_ShiftsPixels(t *testing.T) {
	c := mustNew(t, labelGrid(5, 3))
	seam := []int{2, 1, 0, 1, 2}

	if err := c.RemoveHorizontalSeam(seam); err != nil {
		t.Fatalf("RemoveHorizontalSeam failed: %v", err)
	}
	if c.Width() != 5 || c.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 5x2", c.Width(), c.Height())
	}
	if c.transposed {
		t.Fatal("RemoveHorizontalSeam left the carver transposed")
	}

	want := make([][]uint32, 2)
	for x, skip := range seam {
		row := 0
		for y := 0; y < 3; y++ {
			if y != skip {
				want[row] = append(want[row], uint32(x)<<8|uint32(y))
				row++
			}
		}
	}
	if diff := cmp.Diff(want, pixels(c.ToImage())); diff != "" {
		t.Errorf("pixels after removal (-want +got):\n%s", diff)
	}
}

func TestRemoveSeam_ChangesOneDimension(t *testing.T) {
	c := mustNew(t, randomGrid(10, 8, 9))

	for i := 0; i < 3; i++ {
		w, h := c.Width(), c.Height()
		if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
			t.Fatalf("RemoveVerticalSeam failed: %v", err)
		}
		if c.Width() != w-1 || c.Height() != h {
			t.Errorf("after vertical removal: got %dx%d, want %dx%d", c.Width(), c.Height(), w-1, h)
		}

		w, h = c.Width(), c.Height()
		if err := c.RemoveHorizontalSeam(c.FindHorizontalSeam()); err != nil {
			t.Fatalf("RemoveHorizontalSeam failed: %v", err)
		}
		if c.Width() != w || c.Height() != h-1 {
			t.Errorf("after horizontal removal: got %dx%d, want %dx%d", c.Width(), c.Height(), w, h-1)
		}
	}
}

func TestRemoveSeam_InvalidLeavesPictureUntouched(t *testing.T) {
	tests := []struct {
		name       string
		o          Orientation
		seam       []int
		outOfBound bool
	}{
		{"nil vertical", Vertical, nil, false},
		{"vertical too short", Vertical, []int{0, 0, 0}, false},
		{"vertical too long", Vertical, []int{0, 0, 0, 0, 0}, false},
		{"vertical negative entry", Vertical, []int{0, -1, 0, 0}, true},
		{"vertical entry equals width", Vertical, []int{5, 5, 6, 5}, true},
		{"vertical jump of two", Vertical, []int{0, 2, 2, 2}, false},
		{"nil horizontal", Horizontal, nil, false},
		{"horizontal wrong length", Horizontal, []int{0, 0, 0, 0}, false},
		{"horizontal entry equals height", Horizontal, []int{3, 3, 4, 3, 3, 3}, true},
		{"horizontal jump of three", Horizontal, []int{0, 0, 3, 3, 3, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, randomGrid(6, 4, 11))
			beforePixels := pixels(c.ToImage())
			beforeEnergy := energies(t, c)

			err := c.RemoveSeam(tt.o, tt.seam)
			if !errors.Is(err, ErrInvalidSeam) {
				t.Fatalf("error: got %v, want ErrInvalidSeam", err)
			}
			if tt.outOfBound && !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("error: got %v, want it to match ErrOutOfBounds", err)
			}

			if c.Width() != 6 || c.Height() != 4 {
				t.Errorf("dimensions changed to %dx%d", c.Width(), c.Height())
			}
			if diff := cmp.Diff(beforePixels, pixels(c.ToImage())); diff != "" {
				t.Errorf("pixels changed (-before +after):\n%s", diff)
			}
			if diff := cmp.Diff(beforeEnergy, energies(t, c)); diff != "" {
				t.Errorf("energies changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestRemoveVerticalSeam_WidthOne(t *testing.T) {
	c := mustNew(t, randomGrid(1, 5, 12))
	seam := c.FindVerticalSeam()

	err := c.RemoveVerticalSeam(seam)
	if !errors.Is(err, ErrCannotShrink) {
		t.Fatalf("error: got %v, want ErrCannotShrink", err)
	}
	if !errors.Is(err, ErrInvalidSeam) {
		t.Errorf("error: got %v, want it to match ErrInvalidSeam", err)
	}
	if c.Width() != 1 || c.Height() != 5 {
		t.Errorf("dimensions changed to %dx%d", c.Width(), c.Height())
	}

	// The other orientation is still allowed.
	if err := c.RemoveHorizontalSeam(c.FindHorizontalSeam()); err != nil {
		t.Errorf("RemoveHorizontalSeam on a 1-wide picture failed: %v", err)
	}
}

func TestRemoveHorizontalSeam_HeightOne(t *testing.T) {
	c := mustNew(t, randomGrid(5, 1, 13))

	err := c.RemoveHorizontalSeam(c.FindHorizontalSeam())
	if !errors.Is(err, ErrCannotShrink) {
		t.Fatalf("error: got %v, want ErrCannotShrink", err)
	}
	if c.Width() != 5 || c.Height() != 1 {
		t.Errorf("dimensions changed to %dx%d", c.Width(), c.Height())
	}
}

func TestRemoveVerticalSeam_RefreshesSeamNeighbours(t *testing.T) {
	c := mustNew(t, randomGrid(8, 6, 14))
	seam := c.FindVerticalSeam()
	if err := c.RemoveVerticalSeam(seam); err != nil {
		t.Fatalf("RemoveVerticalSeam failed: %v", err)
	}

	fresh := mustNew(t, c.ToImage())
	for row := 1; row < c.Height()-1; row++ {
		for _, col := range []int{seam[row] - 1, seam[row]} {
			if col < 0 || col >= c.Width() {
				continue
			}
			got, _ := c.EnergyAt(col, row)
			want, _ := fresh.EnergyAt(col, row)
			if got != want {
				t.Errorf("energy at (%d,%d): got %f, want %f", col, row, got, want)
			}
		}
	}
}

func TestRemoveVerticalSeam_KeepsBorderRowEnergies(t *testing.T) {
	c := mustNew(t, randomGrid(7, 5, 15))
	before := energies(t, c)
	seam := c.FindVerticalSeam()
	if err := c.RemoveVerticalSeam(seam); err != nil {
		t.Fatalf("RemoveVerticalSeam failed: %v", err)
	}
	after := energies(t, c)

	for _, row := range []int{0, c.Height() - 1} {
		want := append(append([]float64{}, before[row][:seam[row]]...), before[row][seam[row]+1:]...)
		if diff := cmp.Diff(want, after[row]); diff != "" {
			t.Errorf("row %d energies (-want +got):\n%s", row, diff)
		}
	}
}

func TestStrictEnergy_MatchesFreshSession(t *testing.T) {
	c := mustNew(t, randomGrid(11, 9, 16), WithStrictEnergy())

	for i := 0; i < 4; i++ {
		if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
			t.Fatalf("RemoveVerticalSeam failed: %v", err)
		}
		if err := c.RemoveHorizontalSeam(c.FindHorizontalSeam()); err != nil {
			t.Fatalf("RemoveHorizontalSeam failed: %v", err)
		}

		fresh := mustNew(t, c.ToImage())
		if diff := cmp.Diff(energies(t, fresh), energies(t, c)); diff != "" {
			t.Fatalf("step %d: cached energies are stale (-fresh +cached):\n%s", i, diff)
		}
	}
}

func TestStrictEnergy_SeamAtEdges(t *testing.T) {
	tests := []struct {
		name string
		seam []int
	}{
		{"first column", []int{0, 0, 0, 0, 0}},
		{"last column", []int{5, 5, 5, 5, 5}},
		{"zigzag", []int{0, 1, 2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, randomGrid(6, 5, 17), WithStrictEnergy())
			if err := c.RemoveVerticalSeam(tt.seam); err != nil {
				t.Fatalf("RemoveVerticalSeam failed: %v", err)
			}
			fresh := mustNew(t, c.ToImage())
			if diff := cmp.Diff(energies(t, fresh), energies(t, c)); diff != "" {
				t.Errorf("cached energies are stale (-fresh +cached):\n%s", diff)
			}
		})
	}
}
