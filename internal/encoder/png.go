// Package encoder writes highlight crops to disk. The original teacher
// package supported several output formats behind an Encoder interface
// and a format-priority Registry; the highlight pipeline always writes
// PNG (spec.md §6.3's output layout is PNG-only), so that abstraction
// is trimmed to the one encoder that remains exercised — see DESIGN.md.
package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// EncodePNG encodes img as PNG using Go's standard library at the
// compression level the teacher package used for its PNG fallback path.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024) // pre-alloc 512KB

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
