package physics

import "testing"

func TestBB(t *testing.T) {
	a := NewBBForExtents(Zero, 1, 2)
	if a.Width() != 2 || a.Height() != 4 {
		t.Errorf("Expected 2x4, got %vx%v", a.Width(), a.Height())
	}

	b := NewBBForPoints([]Vector{{3, 0}, {1, -1}, {2, 5}})
	if b != (BB{L: 1, B: -1, R: 3, T: 5}) {
		t.Errorf("Unexpected bounds %v", b)
	}
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Errorf("Boxes sharing an edge should intersect")
	}
	if a.Intersects(NewBBForExtents(Vector{5, 5}, 1, 1)) {
		t.Errorf("Distant boxes should not intersect")
	}

	m := a.Merge(b)
	if !m.Contains(a) || !m.Contains(b) || !m.ContainsVect(Vector{2, 4}) {
		t.Errorf("Merged box %v does not cover its parts", m)
	}
	if !m.Center().Equal(Vector{1, 1.5}) {
		t.Errorf("Expected centre 1,1.5, got %v", m.Center())
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0.5, B: -1}.RGBA()
	if r != 0xffff || g != 0x8000 || b != 0 || a != 0xffff {
		t.Errorf("Unexpected channels %x %x %x %x", r, g, b, a)
	}
}
