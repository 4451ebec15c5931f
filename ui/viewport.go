package ui

import (
	"log"
	"math"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

const (
	// referenceSize and referenceDPI size markers and text: an 800px square
	// view renders at 100 DPI.
	referenceSize = 800
	referenceDPI  = 100
)

// Viewport maps scene coordinates onto a screen of screenw×screenh pixels.
// The square [-extent, extent]² is centred and fits the shorter side.
type Viewport struct {
	screenw, screenh int
	extent           float64

	scale  float64
	center vector.V2
	edges  []vector.Line
}

func NewViewport(width, height int, extent float64) *Viewport {
	v := &Viewport{extent: extent}
	v.Resize(width, height)
	return v
}

func (v *Viewport) Resize(width, height int) {
	v.screenw, v.screenh = width, height
	v.scale = float64(min(width, height)) / (2 * v.extent)
	v.center = vector.V2{X: float64(width) / 2, Y: float64(height) / 2}

	w, h := float64(width), float64(height)
	v.edges = []vector.Line{
		{vector.V2{X: 1}, vector.V2{}},      // LEFT
		{vector.V2{X: -1}, vector.V2{X: w}}, // RIGHT
		{vector.V2{Y: 1}, vector.V2{}},      // TOP
		{vector.V2{Y: -1}, vector.V2{Y: h}}, // BOTTOM
	}
}

func (v *Viewport) Size() (int, int) {
	return v.screenw, v.screenh
}

// DPI is the resolution at which point sizes are converted to pixels.
func (v *Viewport) DPI() float64 {
	return referenceDPI * float64(min(v.screenw, v.screenh)) / referenceSize
}

// PointsToPixels converts a length in typographic points to pixels.
func (v *Viewport) PointsToPixels(pt float64) float64 {
	return pt * v.DPI() / 72
}

// MarkerRadius is the pixel radius of a round marker whose area is s pt².
func (v *Viewport) MarkerRadius(s float64) float64 {
	return v.PointsToPixels(math.Sqrt(s) / 2)
}

// ToScreen maps a scene position to pixel coordinates, y pointing down.
func (v *Viewport) ToScreen(p vector.V2) vector.V2 {
	return vector.V2{
		X: v.center.X + p.X*v.scale,
		Y: v.center.Y - p.Y*v.scale,
	}
}

type ViewCheckResult int

const (
	INSIDE = iota
	OUTSIDE
	INTERSECT
)

func (r ViewCheckResult) String() string {
	switch r {
	case INSIDE:
		return "INSIDE"
	case OUTSIDE:
		return "OUTSIDE"
	case INTERSECT:
		return "INTERSECT"
	default:
		log.Printf(`can't get string for unknown view check result: %d`, r)
	}

	return ""
}

// CircleInView classifies a circle given in screen pixels against the
// screen rectangle.
func (v *Viewport) CircleInView(p vector.V2, r float64) ViewCheckResult {
	rv := ViewCheckResult(INSIDE)

	for _, e := range v.edges {
		d := e.Distance(p)
		if d < -r {
			return OUTSIDE
		} else if d < r {
			rv = INTERSECT
		}
	}

	return rv
}
