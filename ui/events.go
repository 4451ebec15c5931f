package ui

import (
	"image"
	"log"

	"github.com/go-gl/glfw/v3.2/glfw"
)

// The window takes no input. Only size changes and closing are handled.
func (ctx *DrawContext) registerCallbacks() {
	ctx.win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		if width <= 0 || height <= 0 {
			/* minimized */
			return
		}
		ctx.resizeTo = image.Point{width, height}
		ctx.resizePending = true
	})

	ctx.win.SetCloseCallback(func(w *glfw.Window) {
		log.Println(`window closed`)
	})
}
