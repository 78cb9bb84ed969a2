package highlights

// ExtractHighlights finds connected components in grid (stage 4.5),
// discards degenerate (single-row or single-column) components, keeps
// components whose bounding box fits within params.MaxCells on both
// axes, and recursively peels and re-extracts oversized ("compound")
// components. reference is the coordinate-frame offset of grid within
// the original heat map; recursive calls shift it by the compound
// object's bounding-box origin.
func ExtractHighlights(grid PointMap, reference Point, params Params) []*VisualObject {
	var kept []*VisualObject

	for _, obj := range findComponents(grid, reference) {
		lo, hi, ok := obj.BoundingBox()
		if !ok {
			continue
		}

		if lo.X == hi.X || lo.Y == hi.Y {
			continue
		}

		if hi.X-lo.X < params.MaxCells && hi.Y-lo.Y < params.MaxCells {
			kept = append(kept, obj)
			continue
		}

		peeled, ok := obj.PeeledMap()
		if !ok {
			continue
		}
		kept = append(kept, ExtractHighlights(peeled, obj.Reference.Add(lo), params)...)
	}

	return kept
}

// findComponents scans grid in row-major order and flood-fills every
// still-highlighted cell into its own VisualObject, mutating grid in
// place (clearing visited cells). The flood fill itself uses an
// explicit work stack rather than per-pixel recursion, so components
// spanning large images cannot overflow the call stack.
func findComponents(grid PointMap, reference Point) []*VisualObject {
	var objects []*VisualObject

	for y := range grid {
		for x := range grid[y] {
			if !grid[y][x] {
				continue
			}
			obj := NewVisualObject(reference)
			floodFill(grid, x, y, obj)
			objects = append(objects, obj)
		}
	}

	return objects
}

// floodFill visits the 8-connected neighborhood of (startX, startY)
// using an explicit stack, pushing every visited cell onto obj and
// clearing it in grid so it is never revisited.
func floodFill(grid PointMap, startX, startY int, obj *VisualObject) {
	type cell struct{ x, y int }

	stack := []cell{{startX, startY}}
	grid[startY][startX] = false

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		obj.Push(Point{X: uint32(c.x), Y: uint32(c.y)})

		for dy := -1; dy <= 1; dy++ {
			ny := c.y + dy
			if ny < 0 || ny >= len(grid) {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := c.x + dx
				if nx < 0 || nx >= len(grid[ny]) {
					continue
				}
				if !grid[ny][nx] {
					continue
				}
				grid[ny][nx] = false
				stack = append(stack, cell{nx, ny})
			}
		}
	}
}
