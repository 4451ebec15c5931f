package ui

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"git.c3pb.de/farhaven/solarsystem/vector"
	xvector "golang.org/x/image/vector"
)

// Canvas draws antialiased shapes onto an RGBA image. All coordinates are in
// pixels. Shapes are collected as polygons and rasterised together by Fill,
// within their bounding box only.
type Canvas struct {
	Img   *image.RGBA
	ras   *xvector.Rasterizer
	polys [][]vector.V2
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: xvector.NewRasterizer(width, height),
	}
}

func (c *Canvas) Resize(width, height int) {
	c.Img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.polys = c.polys[:0]
}

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// CopyFrom replaces the canvas contents with src, which must be the same size.
func (c *Canvas) CopyFrom(src *image.RGBA) {
	copy(c.Img.Pix, src.Pix)
}

func (c *Canvas) bbox() image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range c.polys {
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	return r.Intersect(c.Img.Bounds())
}

// Fill rasterises every pending shape in col.
func (c *Canvas) Fill(col color.Color) {
	if len(c.polys) == 0 {
		return
	}
	defer func() { c.polys = c.polys[:0] }()

	r := c.bbox()
	if r.Empty() {
		return
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.ras.Reset(r.Dx(), r.Dy())
	for _, poly := range c.polys {
		for i, p := range poly {
			if i == 0 {
				c.ras.MoveTo(float32(p.X-ox), float32(p.Y-oy))
			} else {
				c.ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
			}
		}
		c.ras.ClosePath()
	}
	c.ras.Draw(c.Img, r, image.NewUniform(col), image.Point{})
}

func discSegments(r float64) int {
	return int(math.Max(12, math.Min(96, 2*math.Pi*r/2)))
}

// AddDisc queues a circle of radius r around p.
func (c *Canvas) AddDisc(p vector.V2, r float64) {
	n := discSegments(r)
	poly := make([]vector.V2, n)
	for i := range poly {
		poly[i] = p.Add(vector.Polar(r, 2*math.Pi*float64(i)/float64(n)))
	}
	c.polys = append(c.polys, poly)
}

// AddLine queues the segment a-b stroked with the given width.
func (c *Canvas) AddLine(a, b vector.V2, width float64) {
	d := b.Sub(a).Normalized()
	n := vector.V2{X: -d.Y, Y: d.X}.Scaled(width / 2)

	c.polys = append(c.polys, []vector.V2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// AddDashedPolyline queues pts stroked with alternating dash and gap
// lengths. The pattern runs on across vertices.
func (c *Canvas) AddDashedPolyline(pts []vector.V2, width, dash, gap float64) {
	if len(pts) < 2 || dash <= 0 {
		return
	}

	on := true
	left := dash
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Distance(a)
		if seg == 0 {
			continue
		}
		dir := b.Sub(a).Scaled(1 / seg)

		for pos := 0.0; pos < seg; {
			step := math.Min(left, seg-pos)
			if on {
				c.AddLine(a.Add(dir.Scaled(pos)), a.Add(dir.Scaled(pos+step)), width)
			}
			pos += step
			left -= step
			if left <= 0 {
				on = !on
				if on {
					left = dash
				} else {
					left = gap
				}
			}
		}
	}
}

// Disc fills a single circle.
func (c *Canvas) Disc(p vector.V2, r float64, col color.Color) {
	c.AddDisc(p, r)
	c.Fill(col)
}

// Blit composites src onto the canvas with its top-left corner at p.
func (c *Canvas) Blit(src *image.RGBA, p image.Point) {
	sr := src.Bounds()
	r := image.Rectangle{p, p.Add(sr.Size())}
	draw.Draw(c.Img, r, src, sr.Min, draw.Over)
}
