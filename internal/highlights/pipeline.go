package highlights

import "image"

// Identify runs the full six-stage pipeline over a single decoded image
// and returns its highlight crops. It is a pure function: no shared
// state is touched, so distinct images may be identified concurrently
// by distinct goroutines without coordination.
func Identify(img image.Image, params Params) ([]Highlight, error) {
	edges, err := FindEdges(img, params)
	if err != nil {
		return nil, err
	}

	heat, heatMax, heatMean := BuildHeatMap(edges, params)
	points := RunAutomaton(heat, heatMax, heatMean)

	objects := ExtractHighlights(points, Point{}, params)

	return CropHighlights(objects, img, params), nil
}
