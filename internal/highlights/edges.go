package highlights

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// kernels holds the five oriented 3x3 edge kernels from spec.md §4.2, in
// row-major order. EdgeCoef (K) is substituted in at call time so the
// same code path serves every detection profile.
func kernels(k float64) [5][9]float64 {
	return [5][9]float64{
		// Horizontal
		{k, k, k, 1, 1, 1, -k, -k, -k},
		// Vertical
		{k, 1, -k, k, 1, -k, k, 1, -k},
		// Corner
		{-k, -k / 2, 1, -k / 2, 1, k / 2, 1, k / 2, k},
		// Diagonal ↘
		{1, k, k, -k, 1, k, -k, -k, 1},
		// Diagonal ↗
		{k, k, 1, k, 1, -k, 1, -k, -k},
	}
}

// FindEdges runs the five oriented convolutions over the clamped
// grayscale image and merges them into a binary edge image: 0 marks an
// edge pixel, 255 marks a non-edge. Image dimensions must be multiples
// of params.CellSize (the algorithmic precondition from spec.md §7.5);
// callers that cannot guarantee this should reject or pad the source
// image before calling FindEdges.
func FindEdges(img image.Image, params Params) (*image.Gray, error) {
	clamped := Clamp(img, params)
	bounds := clamped.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if params.CellSize == 0 || uint32(w)%params.CellSize != 0 || uint32(h)%params.CellSize != 0 {
		return nil, fmt.Errorf("highlights: image %dx%d is not a multiple of cell size %d", w, h, params.CellSize)
	}

	filtered := make([]*image.Gray, 0, 5)
	for _, kernel := range kernels(params.EdgeCoef) {
		filtered = append(filtered, convolve3x3(clamped, kernel))
	}

	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			maxV, minV := uint8(1), uint8(1)
			for _, f := range filtered {
				v := f.GrayAt(x, y).Y
				if v > maxV {
					maxV = v
				}
				if v < minV {
					minV = v
				}
			}
			if maxV == 255 || minV == 0 {
				out.SetGray(x, y, color.Gray{Y: 0})
			} else {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return out, nil
}

// convolve3x3 applies a single 3x3 kernel to src via imaging.Convolve3x3,
// the same per-coefficient convolution primitive the crop step already
// pulls in. Normalize:true divides the weighted sum by the kernel's own
// coefficient sum, matching the reference image library's filter3x3.
// Without this, every one of the five kernels here sums to 3, so a
// perfectly flat region would triple its brightness and saturate to 255
// regardless of content — flagging uniform, edge-free regions as edges.
// Normalizing keeps a flat region's filtered value equal to its own
// brightness, which is what lets FindEdges correctly report "no edges"
// on uniform input (see the all-white/all-black scenarios in spec.md §8).
func convolve3x3(src *image.Gray, kernel [9]float64) *image.Gray {
	filtered := imaging.Convolve3x3(src, kernel, &imaging.ConvolveOptions{Normalize: true})

	bounds := filtered.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := filtered.At(x, y).RGBA()
			dst.SetGray(x, y, color.Gray{Y: uint8(r >> 8)})
		}
	}

	return dst
}
