package highlights

import (
	"image"
	"image/color"
)

// Clamp converts img to grayscale and raises/lowers every pixel into
// [params.DarkFloor, params.BrightCeil]. Pixels already inside the band
// are left untouched. This is the polarity clamp of stage 4.1: it
// prevents saturated highlights and shadows from dominating the
// gradient-like filters in the edge detector.
func Clamp(img image.Image, params Params) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	floor, ceil := params.DarkFloor, params.BrightCeil

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			switch {
			case g < floor:
				g = floor
			case g > ceil:
				g = ceil
			}
			gray.SetGray(x, y, color.Gray{Y: g})
		}
	}

	return gray
}
