package render

import (
	"image/color"
	"math"

	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/config"
	"github.com/pie2d/sim/internal/data"
	"github.com/pie2d/sim/internal/vecmath"
)

const (
	flashFrames  = 12
	gridSpacing  = 10.0 // world units between grid lines
	minPixelSize = 0.5
	maxPixelSize = 200
)

// Options controls the playground window.
type Options struct {
	PixelRatio   float64 // screen pixels per world unit
	ScreenWidth  int
	ScreenHeight int
	TPS          int
	ShowGrid     bool
	Background   color.RGBA
}

// OptionsFromConfig maps the [render] section onto Options.
func OptionsFromConfig(rc config.RenderConfig) Options {
	bg, _ := data.ParseHexColor(rc.Background)
	return Options{
		PixelRatio:   rc.PixelRatio,
		ScreenWidth:  rc.WindowWidth,
		ScreenHeight: rc.WindowHeight,
		TPS:          rc.TPS,
		ShowGrid:     rc.ShowGrid,
		Background:   RGBA(bg),
	}
}

// Viewport maps world coordinates (origin at center, y up) onto screen
// pixels (origin top-left, y down).
type Viewport struct {
	Width, Height int
	PixelRatio    float64
}

// ToScreen returns the pixel position of a world point.
func (v Viewport) ToScreen(p vecmath.Vec2) (float32, float32) {
	x := float64(v.Width)/2 + p.X*v.PixelRatio
	y := float64(v.Height)/2 - p.Y*v.PixelRatio
	return float32(x), float32(y)
}

// ToWorld is the inverse of ToScreen.
func (v Viewport) ToWorld(x, y float64) vecmath.Vec2 {
	return vecmath.Vec2{
		X: (x - float64(v.Width)/2) / v.PixelRatio,
		Y: (float64(v.Height)/2 - y) / v.PixelRatio,
	}
}

// Scale converts a world length to pixels.
func (v Viewport) Scale(length float64) float32 {
	return float32(length * v.PixelRatio)
}

// Zoom multiplies the pixel ratio by 1.1 per wheel notch, clamped.
func (v *Viewport) Zoom(notches float64) {
	r := v.PixelRatio * math.Pow(1.1, notches)
	v.PixelRatio = math.Min(math.Max(r, minPixelSize), maxPixelSize)
}

// GridLines returns the world coordinates of the visible vertical (xs) and
// horizontal (ys) grid lines, multiples of gridSpacing clipped to bounds.
func (v Viewport) GridLines(halfW, halfH float64) (xs, ys []float64) {
	tl := v.ToWorld(0, 0)
	br := v.ToWorld(float64(v.Width), float64(v.Height))
	minX, maxX := math.Max(tl.X, -halfW), math.Min(br.X, halfW)
	minY, maxY := math.Max(br.Y, -halfH), math.Min(tl.Y, halfH)
	for x := math.Ceil(minX/gridSpacing) * gridSpacing; x <= maxX; x += gridSpacing {
		xs = append(xs, x)
	}
	for y := math.Ceil(minY/gridSpacing) * gridSpacing; y <= maxY; y += gridSpacing {
		ys = append(ys, y)
	}
	return xs, ys
}

// RGBA converts a [0,1] body color to 8-bit channels.
func RGBA(c body.Color) color.RGBA {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

// Flashes counts down a highlight per body after it collides.
type Flashes map[body.ID]int

func (f Flashes) Hit(id body.ID) { f[id] = flashFrames }

// Decay advances every highlight by one frame.
func (f Flashes) Decay() {
	for id, n := range f {
		if n <= 1 {
			delete(f, id)
			continue
		}
		f[id] = n - 1
	}
}

// Tint blends c toward white in proportion to the remaining highlight.
func (f Flashes) Tint(id body.ID, c color.RGBA) color.RGBA {
	n, ok := f[id]
	if !ok {
		return c
	}
	k := float64(n) / flashFrames
	mix := func(ch uint8) uint8 {
		return uint8(math.Round(float64(ch) + (255-float64(ch))*k))
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
