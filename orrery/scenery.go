package orrery

import (
	"math"
	"math/rand"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

const (
	DefaultStarCount     = 1000
	DefaultAsteroidCount = 300

	// SceneExtent is the half-width of the visible scene in scene units.
	SceneExtent = 35.0

	beltInner       = 2.0
	beltOuter       = 3.5
	asteroidMinSize = 5.0
	asteroidMaxSize = 20.0
)

type Asteroid struct {
	Pos  vector.V2
	Size float64 // marker area in pt²
}

// Scenery is the part of the picture that never moves: field stars and the
// asteroid belt.
type Scenery struct {
	Stars     []vector.V2
	Asteroids []Asteroid
}

// NewScenery scatters stars uniformly over the scene and asteroids uniformly
// in radius and angle over the belt. The same seed gives the same scenery.
func NewScenery(seed int64, stars, asteroids int) Scenery {
	rng := rand.New(rand.NewSource(seed))

	rn := func(lo, hi float64) float64 {
		return lo + rng.Float64()*(hi-lo)
	}

	s := Scenery{
		Stars:     make([]vector.V2, 0, stars),
		Asteroids: make([]Asteroid, 0, asteroids),
	}

	for i := 0; i < stars; i++ {
		s.Stars = append(s.Stars, vector.V2{
			X: rn(-SceneExtent, SceneExtent),
			Y: rn(-SceneExtent, SceneExtent),
		})
	}

	for i := 0; i < asteroids; i++ {
		r := rn(beltInner, beltOuter)
		a := rn(0, 2*math.Pi)
		s.Asteroids = append(s.Asteroids, Asteroid{
			Pos:  vector.Polar(r, a),
			Size: rn(asteroidMinSize, asteroidMaxSize),
		})
	}

	return s
}
