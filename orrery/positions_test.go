package orrery

import (
	"math"
	"reflect"
	"testing"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

const eps = 1e-9

func TestPositionsAtZero(t *testing.T) {
	c := DefaultCatalog()
	s := c.Positions(0)

	for i, p := range c.Planets() {
		pl := s[PlanetID(i)]
		if !pl.Position.ApproxEqual(vector.V2{X: p.OrbitRadius}, eps) {
			t.Errorf(`%s: expected (%v, 0), got %s`, p.Name, p.OrbitRadius, pl.Position)
		}
	}
}

func TestPlanetsStayOnOrbit(t *testing.T) {
	c := DefaultCatalog()

	for _, frame := range []float64{0, 0.1, 1, math.Pi, 2 * math.Pi, 17.3, -4.2, 1e4} {
		s := c.Positions(frame)
		for i, p := range c.Planets() {
			pos := s[PlanetID(i)].Position
			d := pos.X*pos.X + pos.Y*pos.Y
			if math.Abs(d-p.OrbitRadius*p.OrbitRadius) > 1e-9 {
				t.Errorf(`%s at frame %v: x²+y²=%v, expected %v`, p.Name, frame, d, p.OrbitRadius*p.OrbitRadius)
			}
		}
	}
}

func TestPlanetPeriodicity(t *testing.T) {
	c := DefaultCatalog()

	for _, frame := range []float64{0, 0.7, 3} {
		s0 := c.Positions(frame)
		for i, p := range c.Planets() {
			s1 := c.Positions(frame + 2*math.Pi/p.AngularSpeed)
			a, b := s0[PlanetID(i)].Position, s1[PlanetID(i)].Position
			if !a.ApproxEqual(b, 1e-9) {
				t.Errorf(`%s: %s != %s after one period`, p.Name, a, b)
			}
		}
	}
}

func TestMoonsStayNearParent(t *testing.T) {
	c := DefaultCatalog()

	for frame := 0.0; frame < 2*math.Pi; frame += 0.05 {
		s := c.Positions(frame)
		for _, id := range c.Bodies() {
			if !id.IsMoon() {
				continue
			}
			m, _ := c.Moon(id)
			d := s[id].Position.Distance(s[PlanetID(id.Planet)].Position)
			if math.Abs(d-m.OffsetRadius()) > 1e-9 {
				t.Errorf(`%s at frame %v: distance %v, expected %v`, m.Name, frame, d, m.OffsetRadius())
			}
		}
	}
}

func TestLabelAnchors(t *testing.T) {
	c := DefaultCatalog()

	for _, frame := range []float64{0, 1, 2.5} {
		for id, pl := range c.Positions(frame) {
			off := planetLabelOffset
			if id.IsMoon() {
				off = moonLabelOffset
			}
			want := vector.V2{X: pl.Position.X, Y: pl.Position.Y + off}
			if pl.LabelAnchor != want {
				t.Errorf(`%s: label at %s, expected %s`, c.Name(id), pl.LabelAnchor, want)
			}
		}
	}
}

func TestEarthAndMoonAtQuarterTurn(t *testing.T) {
	c := DefaultCatalog()
	s := c.Positions(math.Pi / 2)

	earth := s[PlanetID(3)]
	if !earth.Position.ApproxEqual(vector.V2{X: 0, Y: 1}, eps) {
		t.Errorf(`earth at %s`, earth.Position)
	}
	if !earth.LabelAnchor.ApproxEqual(vector.V2{X: 0, Y: 1.2}, eps) {
		t.Errorf(`earth label at %s`, earth.LabelAnchor)
	}

	moon := s[MoonID(3, 0)]
	if !moon.Position.ApproxEqual(vector.V2{X: -0.1, Y: 1}, eps) {
		t.Errorf(`moon at %s`, moon.Position)
	}
	if !moon.LabelAnchor.ApproxEqual(vector.V2{X: -0.1, Y: 1.1}, eps) {
		t.Errorf(`moon label at %s`, moon.LabelAnchor)
	}
}

func TestMoonUsesParentSpeed(t *testing.T) {
	c, err := NewCatalog([]PlanetSpec{
		{Name: `P`, OrbitRadius: 2, AngularSpeed: 0.5, Moons: []string{`a`, `b`}},
	})
	if err != nil {
		t.Fatalf(`%s`, err)
	}

	frame := 1.3
	s := c.Positions(frame)
	parent := vector.Polar(2, frame*0.5)

	b := s[MoonID(0, 1)].Position
	want := parent.Add(vector.Polar(0.2, frame*0.5*2.5))
	if !b.ApproxEqual(want, eps) {
		t.Errorf(`moon b at %s, expected %s`, b, want)
	}
}

func TestPositionsIdempotent(t *testing.T) {
	c := DefaultCatalog()

	a := c.Positions(1.234)
	c.Positions(99)
	b := c.Positions(1.234)

	if !reflect.DeepEqual(a, b) {
		t.Errorf(`positions differ between calls`)
	}
	if len(a) != len(c.Bodies()) {
		t.Errorf(`expected %d placements, got %d`, len(c.Bodies()), len(a))
	}
}

func TestPositionsHugeFrames(t *testing.T) {
	c := DefaultCatalog()

	for _, frame := range []float64{1e300, -1e300, math.MaxFloat64, -math.MaxFloat64} {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf(`frame %v panicked: %v`, frame, r)
				}
			}()

			if s := c.Positions(frame); len(s) != len(c.Bodies()) {
				t.Errorf(`frame %v: expected %d placements, got %d`, frame, len(c.Bodies()), len(s))
			}
		}()
	}
}
