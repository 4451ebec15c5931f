package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"gray":      "#808080",
	"grey":      "#808080",
	"lightgray": "#d3d3d3",
	"red":       "#ff0000",
	"darkred":   "#8b0000",
	"orange":    "#ffa500",
	"gold":      "#ffd700",
	"yellow":    "#ffff00",
	"green":     "#008000",
	"lime":      "#00ff00",
	"cyan":      "#00ffff",
	"lightblue": "#add8e6",
	"blue":      "#0000ff",
	"darkblue":  "#00008b",
	"navy":      "#000080",
	"purple":    "#800080",
	"magenta":   "#ff00ff",
	"pink":      "#ffc0cb",
	"brown":     "#a52a2a",
	"tan":       "#d2b48c",
}

// ParseColor resolves a color name or a #rrggbb hex string.
func ParseColor(name string) (colorful.Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := namedColors[n]; ok {
		n = hex
	}
	if !strings.HasPrefix(n, "#") {
		return colorful.Color{}, fmt.Errorf(`unknown color %q`, name)
	}
	c, err := colorful.Hex(n)
	if err != nil {
		return colorful.Color{}, fmt.Errorf(`bad color %q: %w`, name, err)
	}
	return c, nil
}

// autoColor picks a distinct color for the i-th body that has none set.
func autoColor(i int) colorful.Color {
	h := math.Mod(float64(i)*137.5, 360)
	return colorful.Hcl(h, 0.6, 0.75).Clamped()
}

// bodyColor is ParseColor, falling back to autoColor for an empty name.
func bodyColor(name string, i int) (colorful.Color, error) {
	if strings.TrimSpace(name) == "" {
		return autoColor(i), nil
	}
	return ParseColor(name)
}
