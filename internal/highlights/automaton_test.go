package highlights

import "testing"

func TestRunAutomatonStabilizesToExtremes(t *testing.T) {
	heat := HeatRaw{
		{0, 4, 8},
		{4, 10, 4},
		{8, 4, 0},
	}
	points := RunAutomaton(heat, 10, 5)

	if len(points) != len(heat) {
		t.Fatalf("rows: got %d, want %d", len(points), len(heat))
	}
	for y, row := range points {
		if len(row) != len(heat[y]) {
			t.Fatalf("row %d cols: got %d, want %d", y, len(row), len(heat[y]))
		}
	}
}

func TestRunAutomatonAllZeroStaysZero(t *testing.T) {
	heat := HeatRaw{
		{0, 0},
		{0, 0},
	}
	points := RunAutomaton(heat, 1, 0)
	for _, row := range points {
		for _, v := range row {
			if v {
				t.Fatal("expected all-false point map for all-zero heat")
			}
		}
	}
}

func TestRunAutomatonTerminatesOnAlreadyStableGrid(t *testing.T) {
	// Every cell already in {0, max}: the automaton should return
	// immediately (0 iterations) instead of looping.
	heat := HeatRaw{
		{0, 7},
		{7, 0},
	}
	points := RunAutomaton(heat, 7, 3)
	want := PointMap{
		{false, true},
		{true, false},
	}
	for y := range want {
		for x := range want[y] {
			if points[y][x] != want[y][x] {
				t.Fatalf("(%d,%d): got %v, want %v", x, y, points[y][x], want[y][x])
			}
		}
	}
}
