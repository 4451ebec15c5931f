package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/ui/text"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

// Marker sizes are areas in pt², font sizes in pt.
const (
	fieldStarSize    = 0.5
	centralStarSize  = 500
	planetSizeFactor = 50
	moonSize         = 10

	planetFontSize = 8
	moonFontSize   = 6

	orbitSamples   = 500
	orbitLineWidth = 0.5
	orbitDash      = 3.7 * orbitLineWidth
	orbitGap       = 1.6 * orbitLineWidth

	axisLineWidth  = 0.8
	axisTickLength = 3.5
	axisTickStep   = 10
)

var (
	spaceColor = color.Black
	starColor  = color.White
	sunColor   = color.RGBA{255, 255, 0, 255}
	moonColor  = color.White
	axisColor  = color.Gray{128}
)

type marker struct {
	pos     vector.V2
	visible bool
	size    float64
	color   color.Color
}

type label struct {
	pos     vector.V2
	visible bool
	txt     string
	size    float64
	color   color.Color
	img     *text.Text
}

// Scene keeps one marker and one label per body, keyed by body ID. The
// background never changes and is drawn once per size.
type Scene struct {
	vp  *Viewport
	txt *text.Context

	cat     *orrery.Catalog
	scenery orrery.Scenery

	background *Canvas
	canvas     *Canvas

	order   []orrery.BodyID
	planets []orrery.BodyID
	moons   []orrery.BodyID
	markers map[orrery.BodyID]*marker
	labels  map[orrery.BodyID]*label
}

// NewScene creates hidden placeholders for every body of cat and draws the
// static background.
func NewScene(cat *orrery.Catalog, scenery orrery.Scenery, vp *Viewport, txt *text.Context) (*Scene, error) {
	s := &Scene{
		vp:      vp,
		txt:     txt,
		cat:     cat,
		scenery: scenery,
		order:   cat.Bodies(),
		markers: map[orrery.BodyID]*marker{},
		labels:  map[orrery.BodyID]*label{},
	}

	for i, p := range cat.Planets() {
		c, err := bodyColor(p.Color, i)
		if err != nil {
			return nil, fmt.Errorf(`planet %s: %w`, p.Name, err)
		}

		id := orrery.PlanetID(i)
		s.planets = append(s.planets, id)
		s.markers[id] = &marker{size: p.OrbitRadius * planetSizeFactor, color: c}
		s.labels[id] = &label{txt: p.Name, size: planetFontSize, color: c}

		for _, m := range p.Moons {
			s.moons = append(s.moons, m.ID())
			s.markers[m.ID()] = &marker{size: moonSize, color: moonColor}
			s.labels[m.ID()] = &label{txt: m.Name, size: moonFontSize, color: moonColor}
		}
	}

	w, h := vp.Size()
	if err := s.Resize(w, h); err != nil {
		return nil, err
	}

	return s, nil
}

// Resize adapts the scene to a new screen size: labels are re-rendered at the
// new DPI and the background is redrawn.
func (s *Scene) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf(`invalid scene size %dx%d`, width, height)
	}

	s.vp.Resize(width, height)
	s.txt.SetDPI(s.vp.DPI())

	for _, id := range s.order {
		l := s.labels[id]
		img, err := s.txt.Render(l.txt, l.size, l.color)
		if err != nil {
			return fmt.Errorf(`can't render label %s: %w`, l.txt, err)
		}
		l.img = img
	}

	if s.background == nil {
		s.background = NewCanvas(width, height)
		s.canvas = NewCanvas(width, height)
	} else {
		s.background.Resize(width, height)
		s.canvas.Resize(width, height)
	}
	s.drawBackground()

	return nil
}

func (s *Scene) Size() (int, int) {
	return s.vp.Size()
}

func (s *Scene) drawBackground() {
	bg := s.background
	bg.Clear(spaceColor)

	for _, p := range s.scenery.Stars {
		bg.AddDisc(s.vp.ToScreen(p), s.vp.MarkerRadius(fieldStarSize))
	}
	bg.Fill(starColor)

	for _, a := range s.scenery.Asteroids {
		bg.AddDisc(s.vp.ToScreen(a.Pos), s.vp.MarkerRadius(a.Size))
	}
	bg.Fill(starColor)

	lw := s.vp.PointsToPixels(orbitLineWidth)
	dash, gap := s.vp.PointsToPixels(orbitDash), s.vp.PointsToPixels(orbitGap)
	for _, p := range s.cat.Planets() {
		pts := make([]vector.V2, orbitSamples)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(orbitSamples-1)
			pts[i] = s.vp.ToScreen(vector.Polar(p.OrbitRadius, a))
		}
		bg.AddDashedPolyline(pts, lw, dash, gap)
	}
	bg.Fill(starColor)

	s.addAxes(bg)
	bg.Fill(axisColor)

	bg.Disc(s.vp.ToScreen(vector.V2{}), s.vp.MarkerRadius(centralStarSize), sunColor)
}

// addAxes queues a frame around the scene square with ticks pointing inwards
// at every multiple of axisTickStep.
func (s *Scene) addAxes(bg *Canvas) {
	lw := s.vp.PointsToPixels(axisLineWidth)
	tl := s.vp.PointsToPixels(axisTickLength)
	e := s.vp.extent

	tl0 := s.vp.ToScreen(vector.V2{X: -e, Y: e})
	br := s.vp.ToScreen(vector.V2{X: e, Y: -e})
	x0, y0 := tl0.X+lw/2, tl0.Y+lw/2
	x1, y1 := br.X-lw/2, br.Y-lw/2

	bg.AddLine(vector.V2{X: x0, Y: y0 - lw/2}, vector.V2{X: x0, Y: y1 + lw/2}, lw)
	bg.AddLine(vector.V2{X: x1, Y: y0 - lw/2}, vector.V2{X: x1, Y: y1 + lw/2}, lw)
	bg.AddLine(vector.V2{X: x0 - lw/2, Y: y0}, vector.V2{X: x1 + lw/2, Y: y0}, lw)
	bg.AddLine(vector.V2{X: x0 - lw/2, Y: y1}, vector.V2{X: x1 + lw/2, Y: y1}, lw)

	for t := -math.Floor(e/axisTickStep) * axisTickStep; t <= e; t += axisTickStep {
		p := s.vp.ToScreen(vector.V2{X: t, Y: t})
		bg.AddLine(vector.V2{X: x0, Y: p.Y}, vector.V2{X: x0 + lw/2 + tl, Y: p.Y}, lw)
		bg.AddLine(vector.V2{X: x1, Y: p.Y}, vector.V2{X: x1 - lw/2 - tl, Y: p.Y}, lw)
		bg.AddLine(vector.V2{X: p.X, Y: y0}, vector.V2{X: p.X, Y: y0 + lw/2 + tl}, lw)
		bg.AddLine(vector.V2{X: p.X, Y: y1}, vector.V2{X: p.X, Y: y1 - lw/2 - tl}, lw)
	}
}

// Reset hides every marker and label.
func (s *Scene) Reset() {
	for _, id := range s.order {
		s.markers[id].visible = false
		s.labels[id].visible = false
	}
}

// Update moves each body's marker and label to its placement in snap. Bodies
// missing from snap keep their previous state.
func (s *Scene) Update(snap orrery.Snapshot) {
	for id, pl := range snap {
		m, ok := s.markers[id]
		if !ok {
			continue
		}
		m.pos, m.visible = pl.Position, true

		l := s.labels[id]
		l.pos, l.visible = pl.LabelAnchor, true
	}
}

func finite(p vector.V2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (s *Scene) drawMarker(m *marker) {
	if !m.visible || !finite(m.pos) {
		return
	}
	p := s.vp.ToScreen(m.pos)
	r := s.vp.MarkerRadius(m.size)
	if s.vp.CircleInView(p, r) == OUTSIDE {
		return
	}
	s.canvas.Disc(p, r, m.color)
}

// drawLabel centres the label horizontally on its anchor, with the anchor on
// the text baseline.
func (s *Scene) drawLabel(l *label) {
	if !l.visible || l.img == nil || !finite(l.pos) {
		return
	}
	p := s.vp.ToScreen(l.pos)
	at := image.Point{
		X: int(math.Round(p.X)) - l.img.Width()/2,
		Y: int(math.Round(p.Y)) - l.img.Baseline,
	}
	s.canvas.Blit(l.img.Image, at)
}

// Render composes the background with the current markers and labels and
// returns the frame. The image is reused by the next call.
func (s *Scene) Render() *image.RGBA {
	s.canvas.CopyFrom(s.background.Img)

	for _, id := range s.planets {
		s.drawMarker(s.markers[id])
	}
	for _, id := range s.planets {
		s.drawLabel(s.labels[id])
	}
	for _, id := range s.moons {
		s.drawMarker(s.markers[id])
	}
	for _, id := range s.moons {
		s.drawLabel(s.labels[id])
	}

	return s.canvas.Img
}

// RenderFrame computes the placements for frame and renders them.
func (s *Scene) RenderFrame(frame float64) *image.RGBA {
	s.Update(s.cat.Positions(frame))
	return s.Render()
}
