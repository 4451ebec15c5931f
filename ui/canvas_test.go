package ui

import (
	"image"
	"image/color"
	"testing"

	"git.c3pb.de/farhaven/solarsystem/vector"
)

func TestDisc(t *testing.T) {
	c := NewCanvas(50, 50)
	c.Clear(color.Black)
	c.Disc(vector.V2{X: 25, Y: 25}, 10, color.White)

	if got := c.Img.RGBAAt(25, 25); got.R < 250 {
		t.Errorf(`center is %v`, got)
	}
	if got := c.Img.RGBAAt(25, 38); got.R != 0 {
		t.Errorf(`outside the disc is %v`, got)
	}
	if got := c.Img.RGBAAt(2, 2); got.R != 0 {
		t.Errorf(`corner is %v`, got)
	}
}

func TestDiscPartlyOffCanvas(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(color.Black)
	c.Disc(vector.V2{X: -2, Y: 10}, 6, color.White)

	if got := c.Img.RGBAAt(1, 10); got.R == 0 {
		t.Errorf(`visible part of disc not drawn: %v`, got)
	}
}

func TestDashedPolyline(t *testing.T) {
	c := NewCanvas(100, 10)
	c.Clear(color.Black)
	pts := []vector.V2{{X: 0, Y: 5}, {X: 50, Y: 5}, {X: 100, Y: 5}}
	c.AddDashedPolyline(pts, 2, 10, 10)
	c.Fill(color.White)

	lit := func(x int) bool { return c.Img.RGBAAt(x, 5).R > 128 }

	// dashes on [0,10), [20,30), ... gaps on [10,20), [30,40), ...
	for _, x := range []int{5, 25, 45, 65, 85} {
		if !lit(x) {
			t.Errorf(`x=%d should be inside a dash`, x)
		}
	}
	for _, x := range []int{15, 35, 55, 75, 95} {
		if lit(x) {
			t.Errorf(`x=%d should be inside a gap`, x)
		}
	}
}

func TestFillBatchesShapes(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(color.Black)
	c.AddDisc(vector.V2{X: 5, Y: 5}, 3)
	c.AddDisc(vector.V2{X: 35, Y: 35}, 3)
	c.AddLine(vector.V2{X: 5, Y: 20}, vector.V2{X: 35, Y: 20}, 2)
	c.Fill(color.White)

	for _, p := range []image.Point{{5, 5}, {35, 35}, {20, 20}} {
		if got := c.Img.RGBAAt(p.X, p.Y); got.R < 250 {
			t.Errorf(`%v not filled: %v`, p, got)
		}
	}
	if got := c.Img.RGBAAt(20, 5); got.R != 0 {
		t.Errorf(`space between shapes filled: %v`, got)
	}

	// Fill consumes the queue
	c.Clear(color.Black)
	c.Fill(color.White)
	if got := c.Img.RGBAAt(5, 5); got.R != 0 {
		t.Errorf(`shape drawn twice: %v`, got)
	}
}

func TestBlitBlendsOver(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(color.RGBA{0, 0, 255, 255})

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	c.Blit(src, image.Point{4, 4})

	if got := c.Img.RGBAAt(4, 4); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf(`opaque pixel not copied: %v`, got)
	}
	if got := c.Img.RGBAAt(5, 5); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf(`transparent pixel overwrote background: %v`, got)
	}
}
