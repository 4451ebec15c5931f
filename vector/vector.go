package vector

import (
	"fmt"
	"math"
)

// V2 is a point or displacement in scene units.
type V2 struct {
	X, Y float64
}

// Polar returns the point at distance r from the origin at angle a (radians).
func Polar(r, a float64) V2 {
	return V2{r * math.Cos(a), r * math.Sin(a)}
}

func (v V2) String() string {
	return fmt.Sprintf(`(%.2f, %.2f)`, v.X, v.Y)
}

func (v V2) anyNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

func (v V2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v V2) Dot(o V2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v V2) Add(o V2) V2 {
	if v.anyNaN() {
		panic(`NaN v`)
	}
	if o.anyNaN() {
		panic(`NaN o`)
	}
	return V2{v.X + o.X, v.Y + o.Y}
}

func (v V2) Sub(o V2) V2 {
	if v.anyNaN() {
		panic(`NaN v`)
	}
	if o.anyNaN() {
		panic(`NaN o`)
	}
	return V2{v.X - o.X, v.Y - o.Y}
}

func (v V2) Scaled(n float64) V2 {
	if v.anyNaN() {
		panic(`NaN v`)
	}
	return V2{v.X * n, v.Y * n}
}

func (v V2) Normalized() V2 {
	if v.Length() == 0 {
		/* Not strictly mathematically correct */
		return v
	}
	return v.Scaled(1 / v.Length())
}

func (v V2) Distance(o V2) float64 {
	return v.Sub(o).Length()
}

// ApproxEqual reports whether v and o differ by at most eps on both axes.
func (v V2) ApproxEqual(o V2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

type Line [2]V2 // Normal, Point on line

// Distance is the signed distance of px from the line, positive on the side
// the normal points to.
func (l *Line) Distance(px V2) float64 {
	n := l[0]
	p0 := l[1]

	D := n.Scaled(-1).Dot(p0)

	return n.Dot(px) + D
}
