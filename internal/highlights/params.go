package highlights

// Params groups the tunable constants of the detection pipeline. It
// generalizes the teacher's per-platform resize profile to per-lighting
// detection presets: the algorithm is the same, only the sensitivity
// changes.
type Params struct {
	// DarkFloor and BrightCeil bound the polarity clamp (stage 4.1).
	DarkFloor, BrightCeil uint8
	// CellSize is the edge-density cell size in pixels; must evenly
	// divide both image dimensions.
	CellSize uint32
	// MaxCells bounds a kept component's bounding-box diameter before
	// the extractor treats it as compound and recurses into peeling.
	MaxCells uint32
	// EdgeCoef is the weight (K) used in all five oriented kernels.
	EdgeCoef float64
}

// namedParams are the built-in detection profiles. "default" reproduces
// the spec's constants exactly.
var namedParams = map[string]Params{
	"default": {
		DarkFloor:  5,
		BrightCeil: 250,
		CellSize:   10,
		MaxCells:   40,
		EdgeCoef:   7.5,
	},
	// high-key lowers the clamp ceiling to 245 and raises the kernel
	// weight to 9.0, for very bright, low-contrast scenes (e.g. snow,
	// studio sweeps).
	"high-key": {
		DarkFloor:  5,
		BrightCeil: 245,
		CellSize:   10,
		MaxCells:   40,
		EdgeCoef:   9.0,
	},
	// soft-edge lowers the kernel weight for busy/textured backgrounds
	// where the default coefficient over-detects edges and merges
	// unrelated objects into oversized components.
	"soft-edge": {
		DarkFloor:  5,
		BrightCeil: 250,
		CellSize:   10,
		MaxCells:   40,
		EdgeCoef:   5.0,
	},
}

// DefaultParams returns the spec's baseline detection parameters.
func DefaultParams() Params {
	return namedParams["default"]
}

// ParamsFor returns the named profile, falling back to "default" for
// unknown names.
func ParamsFor(name string) (p Params, ok bool) {
	p, ok = namedParams[name]
	if !ok {
		return namedParams["default"], false
	}
	return p, true
}
