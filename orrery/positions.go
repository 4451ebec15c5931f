package orrery

import (
	"git.c3pb.de/farhaven/solarsystem/vector"
)

const (
	planetLabelOffset = 0.2
	moonLabelOffset   = 0.1
)

// Placement is where a body and its name label sit in one frame.
type Placement struct {
	Position    vector.V2
	LabelAnchor vector.V2
}

// Snapshot holds the placement of every body for one frame.
type Snapshot map[BodyID]Placement

// Positions computes the placement of every planet and moon at the given
// frame parameter. It depends only on frame, never on earlier calls.
//
// Sums are written out: V2.Add panics on the NaN coordinates an overflowing
// angle produces.
func (c *Catalog) Positions(frame float64) Snapshot {
	s := make(Snapshot, len(c.bodies))

	for i, p := range c.planets {
		angle := frame * p.AngularSpeed
		pos := vector.Polar(p.OrbitRadius, angle)
		s[PlanetID(i)] = Placement{
			Position:    pos,
			LabelAnchor: vector.V2{X: pos.X, Y: pos.Y + planetLabelOffset},
		}

		for _, m := range p.Moons {
			off := vector.Polar(m.OffsetRadius(), angle*m.SpeedFactor())
			mpos := vector.V2{X: pos.X + off.X, Y: pos.Y + off.Y}
			s[m.ID()] = Placement{
				Position:    mpos,
				LabelAnchor: vector.V2{X: mpos.X, Y: mpos.Y + moonLabelOffset},
			}
		}
	}

	return s
}
