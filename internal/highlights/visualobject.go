package highlights

// bbox is an inclusive axis-aligned bounding box.
type bbox struct {
	Low, High Point
}

// VisualObject accumulates the points of one connected component
// discovered by the flood fill in extractor.go. Reference is the
// offset of this object's coordinate frame inside its parent frame,
// supporting the recursive sub-extraction of oversized components.
//
// The bounding box is computed lazily and invalidated on every Push,
// the same "compute once, invalidate on write" idiom the teacher uses
// for cached build statistics.
type VisualObject struct {
	Reference Point

	points []Point
	box    *bbox
}

// NewVisualObject creates an empty object anchored at reference.
func NewVisualObject(reference Point) *VisualObject {
	return &VisualObject{Reference: reference}
}

// Push appends point to the object and invalidates the bbox cache.
func (o *VisualObject) Push(p Point) {
	o.points = append(o.points, p)
	o.box = nil
}

// Points returns the object's local points. Callers must not mutate the
// returned slice.
func (o *VisualObject) Points() []Point {
	return o.points
}

// BoundingBox returns the smallest rectangle containing every point, or
// ok=false if the object is empty.
func (o *VisualObject) BoundingBox() (low, high Point, ok bool) {
	if len(o.points) == 0 {
		return Point{}, Point{}, false
	}
	if o.box != nil {
		return o.box.Low, o.box.High, true
	}

	lo, hi := o.points[0], o.points[0]
	for _, p := range o.points[1:] {
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
	}
	o.box = &bbox{Low: lo, High: hi}
	return lo, hi, true
}

// PointMap renders the object's points into a dense local grid sized to
// its bounding box.
func (o *VisualObject) PointMap() (PointMap, bool) {
	lo, hi, ok := o.BoundingBox()
	if !ok {
		return nil, false
	}

	rows := hi.Y - lo.Y + 1
	cols := hi.X - lo.X + 1
	grid := make(PointMap, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
	}

	for _, p := range o.points {
		grid[p.Y-lo.Y][p.X-lo.X] = true
	}

	return grid, true
}

// PeeledMap performs the morphological erosion of §4.5.1: the returned
// grid is one cell narrower and shorter than the object's point map,
// and a cell is true only if all eight of its Moore neighbors in the
// point map are true. This removes thin isthmuses connecting merged
// sub-objects, letting the recursive extractor split them.
func (o *VisualObject) PeeledMap() (PointMap, bool) {
	grid, ok := o.PointMap()
	if !ok {
		return nil, false
	}

	rows := len(grid) - 1
	if rows <= 0 {
		return PointMap{}, true
	}
	cols := len(grid[0]) - 1
	if cols <= 0 {
		return make(PointMap, rows), true
	}

	peeled := make(PointMap, rows)
	for y := 0; y < rows; y++ {
		row := make([]bool, cols)
		for x := 0; x < cols; x++ {
			row[x] = allMooreNeighborsSet(grid, x, y)
		}
		peeled[y] = row
	}
	return peeled, true
}

func allMooreNeighborsSet(grid PointMap, x, y int) bool {
	return pointMapAt(grid, x-1, y-1) &&
		pointMapAt(grid, x-1, y+1) &&
		pointMapAt(grid, x+1, y-1) &&
		pointMapAt(grid, x+1, y+1) &&
		pointMapAt(grid, x, y-1) &&
		pointMapAt(grid, x-1, y) &&
		pointMapAt(grid, x+1, y) &&
		pointMapAt(grid, x, y+1)
}

func pointMapAt(grid PointMap, x, y int) bool {
	if y < 0 || y >= len(grid) {
		return false
	}
	row := grid[y]
	if x < 0 || x >= len(row) {
		return false
	}
	return row[x]
}
