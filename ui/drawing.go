package ui

import (
	"context"
	"fmt"
	"image"
	"log"

	"git.c3pb.de/farhaven/solarsystem/orrery"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
)

const windowTitle = "Solar System"

// DrawContext presents the scene in a GLFW window. Every method must be
// called from the thread that created it, which has to be the main thread.
type DrawContext struct {
	win   *glfw.Window
	scene *Scene

	tex           uint32
	texw, texh    int
	resizeTo      image.Point
	resizePending bool
}

func NewDrawContext(scene *Scene) (*DrawContext, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf(`can't init GLFW: %w`, err)
	}

	width, height := scene.Size()

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf(`can't create window: %w`, err)
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf(`can't init GL: %w`, err)
	}
	glfw.SwapInterval(1)

	gl.ClearColor(0, 0, 0, 1)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.TEXTURE_2D)

	ctx := &DrawContext{win: w, scene: scene}
	gl.GenTextures(1, &ctx.tex)
	gl.BindTexture(gl.TEXTURE_2D, ctx.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	ctx.registerCallbacks()

	return ctx, nil
}

func (ctx *DrawContext) Shutdown() {
	gl.DeleteTextures(1, &ctx.tex)
	ctx.win.Destroy()
	glfw.Terminate()
}

// Run animates the scene until the window is closed.
func (ctx *DrawContext) Run(anim *orrery.Animation) error {
	return anim.Run(context.Background(), func(frame float64) error {
		if ctx.win.ShouldClose() {
			return orrery.ErrStop
		}

		if ctx.resizePending {
			ctx.resizePending = false
			if err := ctx.scene.Resize(ctx.resizeTo.X, ctx.resizeTo.Y); err != nil {
				return err
			}
		}

		ctx.drawScreen(ctx.scene.RenderFrame(frame))
		ctx.win.SwapBuffers()
		glfw.PollEvents()

		return nil
	})
}

func (ctx *DrawContext) upload(img *image.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	gl.BindTexture(gl.TEXTURE_2D, ctx.tex)
	if w != ctx.texw || h != ctx.texh {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		ctx.texw, ctx.texh = w, h
		return
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

func (ctx *DrawContext) drawScreen(img *image.RGBA) {
	fbw, fbh := ctx.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	ctx.upload(img)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0.0, 1.0, 1.0, 0.0, -1.0, 1.0)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Color3f(1, 1, 1)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(0.0, 0.0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1.0, 0.0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1.0, 1.0)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(0.0, 1.0)
	gl.End()

	if errno := gl.GetError(); errno != gl.NO_ERROR {
		log.Printf(`GL error 0x%x`, errno)
	}
}
