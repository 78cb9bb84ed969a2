package highlights

import "testing"

func TestVisualObjectBoundingBox(t *testing.T) {
	obj := NewVisualObject(Point{})
	obj.Push(Point{X: 3, Y: 5})
	obj.Push(Point{X: 1, Y: 9})
	obj.Push(Point{X: 7, Y: 2})

	lo, hi, ok := obj.BoundingBox()
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if lo != (Point{X: 1, Y: 2}) {
		t.Errorf("low: got %v, want (1,2)", lo)
	}
	if hi != (Point{X: 7, Y: 9}) {
		t.Errorf("high: got %v, want (7,9)", hi)
	}
}

func TestVisualObjectEmptyHasNoBoundingBox(t *testing.T) {
	obj := NewVisualObject(Point{})
	if _, _, ok := obj.BoundingBox(); ok {
		t.Fatal("empty object should have no bounding box")
	}
}

func TestVisualObjectBoundingBoxInvalidatesOnPush(t *testing.T) {
	obj := NewVisualObject(Point{})
	obj.Push(Point{X: 2, Y: 2})
	_, hi, _ := obj.BoundingBox()
	if hi != (Point{X: 2, Y: 2}) {
		t.Fatalf("unexpected initial high: %v", hi)
	}
	obj.Push(Point{X: 9, Y: 9})
	_, hi, _ = obj.BoundingBox()
	if hi != (Point{X: 9, Y: 9}) {
		t.Fatalf("bbox cache not invalidated on push: got %v", hi)
	}
}

func TestPeeledMapDimensions(t *testing.T) {
	obj := NewVisualObject(Point{})
	for y := uint32(0); y < 5; y++ {
		for x := uint32(0); x < 5; x++ {
			obj.Push(Point{X: x, Y: y})
		}
	}

	pm, ok := obj.PointMap()
	if !ok {
		t.Fatal("expected a point map")
	}
	peeled, ok := obj.PeeledMap()
	if !ok {
		t.Fatal("expected a peeled map")
	}

	if len(peeled) != len(pm)-1 {
		t.Fatalf("peeled rows: got %d, want %d", len(peeled), len(pm)-1)
	}
	if len(peeled[0]) != len(pm[0])-1 {
		t.Fatalf("peeled cols: got %d, want %d", len(peeled[0]), len(pm[0])-1)
	}
	// A fully filled 5x5 block erodes to a 4x4 grid whose first row and
	// first column are false (their Moore neighborhoods reach outside the
	// point map) and whose remaining 3x3 cells are true.
	for y, row := range peeled {
		for x, v := range row {
			if want := x > 0 && y > 0; v != want {
				t.Fatalf("peeled (%d,%d): got %v, want %v", x, y, v, want)
			}
		}
	}
}
