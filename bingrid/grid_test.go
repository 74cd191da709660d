package bingrid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridmorph/bingrid"
)

//----------------------------------------------------------------------------//
// Get / Set / bounds Tests
//----------------------------------------------------------------------------//

// TestGetSet_RoundTrip verifies that an in-bounds write is read back exactly.
func TestGetSet_RoundTrip(t *testing.T) {
	g := bingrid.New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, true)
			if !g.Get(x, y) {
				t.Errorf("Get(%d,%d)=false after Set true", x, y)
			}
			g.Set(x, y, false)
			if g.Get(x, y) {
				t.Errorf("Get(%d,%d)=true after Set false", x, y)
			}
		}
	}
}

// TestGet_OutOfBounds verifies that any out-of-range read yields background.
func TestGet_OutOfBounds(t *testing.T) {
	g := bingrid.New(3, 2)
	g.Fill(true)

	outside := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {-5, -5}, {100, 100}}
	for _, xy := range outside {
		if g.Get(xy[0], xy[1]) {
			t.Errorf("Get(%d,%d)=true; want false for out-of-bounds", xy[0], xy[1])
		}
	}
}

// TestSet_OutOfBounds verifies that out-of-range writes are dropped silently.
func TestSet_OutOfBounds(t *testing.T) {
	g := bingrid.New(3, 2)
	g.Set(-1, 0, true)
	g.Set(3, 1, true)
	g.Set(0, 2, true)
	if g.Count() != 0 {
		t.Errorf("Count=%d after out-of-bounds writes; want 0", g.Count())
	}
}

// TestZeroSize verifies that zero- and negative-dimension grids are inert.
func TestZeroSize(t *testing.T) {
	for _, g := range []*bingrid.Grid{bingrid.New(0, 0), bingrid.New(-3, 5), new(bingrid.Grid)} {
		g.Set(0, 0, true)
		if g.Get(0, 0) {
			t.Error("zero-size grid stored a pixel")
		}
		if g.Count() != 0 {
			t.Errorf("zero-size grid Count=%d; want 0", g.Count())
		}
	}
}

//----------------------------------------------------------------------------//
// Fill / Clear / Clone Tests
//----------------------------------------------------------------------------//

func TestFillClear(t *testing.T) {
	g := bingrid.New(5, 4)
	g.Fill(true)
	if g.Count() != 20 {
		t.Errorf("Count=%d after Fill(true); want 20", g.Count())
	}
	g.Clear()
	if g.Count() != 0 {
		t.Errorf("Count=%d after Clear; want 0", g.Count())
	}
}

// TestClone_Independent verifies the deep-copy invariant: mutating a clone
// never leaks into the source, and vice versa.
func TestClone_Independent(t *testing.T) {
	g := bingrid.New(3, 3)
	g.Set(1, 1, true)

	dup := g.Clone()
	if !dup.Equal(g) {
		t.Fatal("clone differs from source")
	}

	dup.Set(0, 0, true)
	if g.Get(0, 0) {
		t.Error("mutating clone leaked into source")
	}
	g.Set(2, 2, true)
	if dup.Get(2, 2) {
		t.Error("mutating source leaked into clone")
	}
}

func TestEqual(t *testing.T) {
	a := bingrid.New(2, 2)
	b := bingrid.New(2, 2)
	if !a.Equal(b) {
		t.Error("empty same-size grids not Equal")
	}
	b.Set(1, 0, true)
	if a.Equal(b) {
		t.Error("grids with differing content reported Equal")
	}
	c := bingrid.New(2, 3)
	if a.Equal(c) || a.Equal(nil) {
		t.Error("Equal ignored dimension mismatch or nil")
	}
}

//----------------------------------------------------------------------------//
// FromRows / Rows Tests
//----------------------------------------------------------------------------//

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, bingrid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, bingrid.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, bingrid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bingrid.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestFromRows_RoundTrip verifies FromRows followed by Rows preserves content
// and produces independent storage.
func TestFromRows_RoundTrip(t *testing.T) {
	rows := [][]bool{
		{true, false, true},
		{false, true, false},
	}
	g, err := bingrid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dimensions = %d×%d; want 3×2", g.Width(), g.Height())
	}

	// Mutating the input after construction must not affect the grid.
	rows[0][0] = false
	if !g.Get(0, 0) {
		t.Error("FromRows aliased caller storage")
	}

	out := g.Rows()
	if !out[0][0] || out[0][1] || !out[1][1] {
		t.Errorf("Rows() = %v; content mismatch", out)
	}
}
