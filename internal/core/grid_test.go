package core

import "testing"

func TestByteGridWrapEdges(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		name         string
		x, y         int
		wantX, wantY int
		wrapped      bool
	}{
		{"inside", 2, 1, 2, 1, false},
		{"left", -1, 1, 3, 1, true},
		{"right", 4, 1, 0, 1, true},
		{"top", 2, -1, 2, 2, true},
		{"bottom", 2, 3, 2, 0, true},
		{"corner", -1, 3, 3, 0, true},
	}
	for _, tc := range cases {
		x, y, wrapped := g.Wrap(tc.x, tc.y)
		if x != tc.wantX || y != tc.wantY || wrapped != tc.wrapped {
			t.Fatalf("%s: Wrap(%d,%d) = (%d,%d,%v), want (%d,%d,%v)",
				tc.name, tc.x, tc.y, x, y, wrapped, tc.wantX, tc.wantY, tc.wrapped)
		}
	}
}

func TestByteGridSetAtCount(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(1, 2, 5)
	g.Set(-1, 0, 9)
	g.Set(3, 0, 9)
	if got := g.At(1, 2); got != 5 {
		t.Fatalf("At(1,2) = %d, want 5", got)
	}
	if got := g.At(7, 7); got != 0 {
		t.Fatalf("off-grid At = %d, want 0", got)
	}
	if got := g.Count(9); got != 0 {
		t.Fatalf("off-grid writes leaked into grid: %d", got)
	}
	if got := g.Count(0); got != 8 {
		t.Fatalf("Count(0) = %d, want 8", got)
	}
	g.Clear()
	if got := g.Count(0); got != 9 {
		t.Fatalf("Clear left %d non-zero cells", 9-got)
	}
}

func TestNewByteGridClampsSize(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}
