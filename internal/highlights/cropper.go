package highlights

import (
	"image"

	"github.com/disintegration/imaging"
)

// Highlight is a cropped highlight ready to be saved, paired with the
// pixel rectangle it was cut from (useful for reporting and tests).
type Highlight struct {
	Image image.Image
	Rect  image.Rectangle
}

// CropHighlights maps each kept VisualObject's bounding box back to
// pixel coordinates in the original decoded image (stage 4.6) and crops
// it out. Objects with no bounding box are skipped.
func CropHighlights(objects []*VisualObject, original image.Image, params Params) []Highlight {
	step := int(params.CellSize / 2)

	crops := make([]Highlight, 0, len(objects))
	for _, obj := range objects {
		lo, hi, ok := obj.BoundingBox()
		if !ok {
			continue
		}

		low := obj.Reference.Add(lo)
		high := obj.Reference.Add(hi)

		px := (maxU32(low.X, 1) - 1) * uint32(step)
		py := (maxU32(low.Y, 1) - 1) * uint32(step)
		pw := (high.X - low.X + 2) * uint32(step)
		ph := (high.Y - low.Y + 2) * uint32(step)

		rect := image.Rect(int(px), int(py), int(px+pw), int(py+ph))
		cropped := imaging.Crop(original, rect)

		crops = append(crops, Highlight{Image: cropped, Rect: rect})
	}

	return crops
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
