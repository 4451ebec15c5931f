package ui

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"git.c3pb.de/farhaven/solarsystem/orrery"
)

// WriteGIF renders one cycle of anim and encodes it as a looping animated GIF.
func WriteGIF(w io.Writer, s *Scene, anim *orrery.Animation) error {
	delay := int(anim.Interval() / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	s.Reset()
	out := &gif.GIF{LoopCount: 0}
	for _, frame := range anim.Frames() {
		img := s.RenderFrame(frame)

		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(p, p.Bounds(), img, img.Bounds().Min, draw.Src)

		out.Image = append(out.Image, p)
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf(`can't encode gif: %w`, err)
	}
	return nil
}
