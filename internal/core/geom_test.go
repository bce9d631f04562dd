package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 6)

	if inner != NewRect(30, 9, 20, 6) {
		t.Errorf("Centered(20, 6) = %+v, expected {30 9 20 6}", inner)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestGridLayout(t *testing.T) {
	g := Grid{X: 2, Y: 1, Rows: 2, Cols: 3, CellW: 7, CellH: 2}

	if got, want := g.Bounds(), NewRect(2, 1, 22, 5); got != want {
		t.Errorf("Bounds() = %+v, expected %+v", got, want)
	}

	x, y := g.Corner(1, 2)
	if x != 16 || y != 3 {
		t.Errorf("Corner(1, 2) = (%d, %d), expected (16, 3)", x, y)
	}

	if got, want := g.Inner(1, 2), NewRect(17, 4, 6, 1); got != want {
		t.Errorf("Inner(1, 2) = %+v, expected %+v", got, want)
	}

	// The last inner cell ends just before the closing border.
	last := g.Inner(g.Rows-1, g.Cols-1)
	if last.Right() != g.Bounds().Right()-1 || last.Bottom() != g.Bounds().Bottom()-1 {
		t.Errorf("last cell %+v does not touch the closing border of %+v", last, g.Bounds())
	}
}

func TestGridJunction(t *testing.T) {
	g := Grid{Rows: 2, Cols: 2, CellW: 3, CellH: 2}

	tests := []struct {
		row, col int
		expected rune
	}{
		{0, 0, '┌'},
		{0, 1, '┬'},
		{0, 2, '┐'},
		{1, 0, '├'},
		{1, 1, '┼'},
		{1, 2, '┤'},
		{2, 0, '└'},
		{2, 1, '┴'},
		{2, 2, '┘'},
	}

	for _, tc := range tests {
		if got := g.Junction(tc.row, tc.col); got != tc.expected {
			t.Errorf("Junction(%d, %d) = %q, expected %q", tc.row, tc.col, got, tc.expected)
		}
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value    int
		expected Color
	}{
		{0, ColorGray},
		{2, ColorWhite},
		{4, ColorBrightWhite},
		{8, ColorYellow},
		{2048, ColorBrightGreen},
		{4096, ColorCyan},
		{65536, ColorCyan},
	}

	for _, tc := range tests {
		if got := TileColor(tc.value); got != tc.expected {
			t.Errorf("TileColor(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}
