package highlights

import (
	"image"
	"testing"
)

func TestCropHighlightsBoundsWithinOriginal(t *testing.T) {
	params := DefaultParams()
	original := image.NewGray(image.Rect(0, 0, 100, 100))

	// One object touching the top-left corner (low bounds abut the
	// origin) and one in the interior.
	corner := NewVisualObject(Point{})
	corner.Push(Point{X: 0, Y: 0})
	corner.Push(Point{X: 1, Y: 1})

	interior := NewVisualObject(Point{})
	interior.Push(Point{X: 5, Y: 5})
	interior.Push(Point{X: 6, Y: 6})

	crops := CropHighlights([]*VisualObject{corner, interior}, original, params)
	if len(crops) != 2 {
		t.Fatalf("expected 2 crops, got %d", len(crops))
	}

	bounds := original.Bounds()
	for i, c := range crops {
		if !c.Rect.In(bounds) {
			t.Errorf("crop %d rect %v escapes original bounds %v", i, c.Rect, bounds)
		}
		if c.Rect.Dx() <= 0 || c.Rect.Dy() <= 0 {
			t.Errorf("crop %d has non-positive dimensions: %v", i, c.Rect)
		}
	}
}

func TestCropHighlightsSkipsEmptyObjects(t *testing.T) {
	original := image.NewGray(image.Rect(0, 0, 50, 50))
	empty := NewVisualObject(Point{})
	crops := CropHighlights([]*VisualObject{empty}, original, DefaultParams())
	if len(crops) != 0 {
		t.Fatalf("expected 0 crops for an empty object, got %d", len(crops))
	}
}
