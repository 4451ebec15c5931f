package text

import (
	"image"
	"image/color"
	"image/draw"
	"io/ioutil"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const DefaultDPI = 96

type Context struct {
	ft  *freetype.Context
	fnt *truetype.Font
	dpi float64
}

// Text is a rendered string. Baseline is the row of Image the glyphs sit on.
type Text struct {
	Image    *image.RGBA
	Baseline int
}

// Width is the advance of the rendered string in pixels.
func (t *Text) Width() int {
	return t.Image.Bounds().Dx()
}

// NewContext returns a context using the built-in Go Regular font.
func NewContext() (*Context, error) {
	return Parse(goregular.TTF)
}

// LoadContext returns a context using the TrueType font in file fontPath.
func LoadContext(fontPath string) (*Context, error) {
	fh, err := os.Open(fontPath)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	data, err := ioutil.ReadAll(fh)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func Parse(data []byte) (*Context, error) {
	fnt, err := freetype.ParseFont(data)
	if err != nil {
		return nil, err
	}

	ctx := freetype.NewContext()
	ctx.SetFont(fnt)
	ctx.SetDPI(DefaultDPI)

	return &Context{ft: ctx, fnt: fnt, dpi: DefaultDPI}, nil
}

func (c *Context) SetDPI(dpi float64) {
	c.dpi = dpi
	c.ft.SetDPI(dpi)
}

func (c *Context) DPI() float64 {
	return c.dpi
}

func (c *Context) face(size float64) font.Face {
	return truetype.NewFace(c.fnt, &truetype.Options{Size: size, DPI: c.dpi})
}

// Measure returns the advance width of txt in pixels at the given point size.
func (c *Context) Measure(txt string, size float64) int {
	f := c.face(size)
	defer f.Close()

	return font.MeasureString(f, txt).Ceil()
}

// Render draws txt at the given point size onto a transparent image just
// large enough to hold it.
func (c *Context) Render(txt string, size float64, col color.Color) (*Text, error) {
	f := c.face(size)
	m := f.Metrics()
	w := font.MeasureString(f, txt).Ceil()
	f.Close()

	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	dst := image.NewRGBA(image.Rect(0, 0, w, ascent+descent))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	c.ft.SetSrc(image.NewUniform(col))
	c.ft.SetFontSize(size)
	c.ft.SetDst(dst)
	c.ft.SetClip(dst.Bounds())

	if _, err := c.ft.DrawString(txt, fixed.P(0, ascent)); err != nil {
		return nil, err
	}

	return &Text{Image: dst, Baseline: ascent}, nil
}
