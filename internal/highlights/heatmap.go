package highlights

import "image"

// HeatRaw is a row-major grid of non-negative edge-density counts.
type HeatRaw [][]uint32

// at returns raw[y][x], or def if the coordinate is out of range. This
// mirrors the teacher's out-of-bounds-returns-default helper style used
// throughout the convolution and blur passes.
func (h HeatRaw) at(x, y int, def uint32) uint32 {
	if y < 0 || y >= len(h) {
		return def
	}
	row := h[y]
	if x < 0 || x >= len(row) {
		return def
	}
	return row[x]
}

// BuildHeatMap produces the overlapping-cell edge-density map (stage
// 4.3) from a binary edge image, along with the observed max and mean
// heat used to parameterize the cellular automaton.
func BuildHeatMap(edges *image.Gray, params Params) (heat HeatRaw, heatMax, heatMean uint32) {
	bricked := brickedHeatMap(edges, params)

	bounds := edges.Bounds()
	w, h := uint32(bounds.Dx()), uint32(bounds.Dy())
	cell := params.CellSize

	rows := 2 * h / cell
	cols := 2 * w / cell

	heat = make(HeatRaw, rows)

	heatMax = 1
	var heatTotal uint32
	heatCounter := uint32(1)

	for oy := 0; oy < int(rows); oy++ {
		row := make([]uint32, cols)
		for ox := 0; ox < int(cols); ox++ {
			sum := bricked.at(ox, oy, 0) + bricked.at(ox, oy-1, 0) +
				bricked.at(ox-1, oy, 0) + bricked.at(ox-1, oy-1, 0)
			v := sum / 4
			row[ox] = v

			if v > heatMax {
				heatMax = v
			}
			if v > 0 {
				heatTotal += v
				heatCounter++
			}
		}
		heat[oy] = row
	}

	heatMean = heatTotal / heatCounter
	return heat, heatMax, heatMean
}

// brickedHeatMap produces the first-stage density grid: cells of
// CellSize x CellSize pixels, overlapping their neighbors by half a
// cell in each axis, counting edge (zero-value) pixels per cell.
func brickedHeatMap(edges *image.Gray, params Params) HeatRaw {
	bounds := edges.Bounds()
	w, h := uint32(bounds.Dx()), uint32(bounds.Dy())
	cell := params.CellSize
	step := cell / 2

	rows := (2*h)/cell - 1
	cols := (2*w)/cell - 1

	out := make(HeatRaw, rows)
	for oy := uint32(0); oy < rows; oy++ {
		row := make([]uint32, cols)
		for ox := uint32(0); ox < cols; ox++ {
			var count uint32
			for cy := uint32(0); cy < cell; cy++ {
				for cx := uint32(0); cx < cell; cx++ {
					px := bounds.Min.X + int(ox*step+cx)
					py := bounds.Min.Y + int(oy*step+cy)
					if edges.GrayAt(px, py).Y == 0 {
						count++
					}
				}
			}
			row[ox] = count
		}
		out[oy] = row
	}
	return out
}
