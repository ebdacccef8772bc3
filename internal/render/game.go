package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pie2d/sim/internal/body"
	"github.com/pie2d/sim/internal/core/event"
	"github.com/pie2d/sim/internal/vecmath"
	"github.com/pie2d/sim/internal/world"
	"go.uber.org/zap"
)

var (
	gridColor = color.RGBA{R: 255, G: 255, B: 255, A: 24}
	wallColor = color.RGBA{R: 255, G: 255, B: 255, A: 160}
)

// Controls is one frame of keyboard input.
type Controls struct {
	Quit  bool // Esc
	Pause bool // P
	Step  bool // N, advances one tick while paused
	Grid  bool // G
	Zoom  float64
}

// Game drives a world from the ebiten loop: one world tick per ebiten tick.
type Game struct {
	world   *world.World
	opts    Options
	view    Viewport
	flashes Flashes
	paused  bool
	log     *zap.Logger
}

// NewGame subscribes to the world's collision and wall events to highlight
// bodies as they bounce.
func NewGame(w *world.World, opts Options, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		world:   w,
		opts:    opts,
		view:    Viewport{Width: opts.ScreenWidth, Height: opts.ScreenHeight, PixelRatio: opts.PixelRatio},
		flashes: make(Flashes),
		log:     log,
	}
	event.Subscribe(w.Events(), func(e event.Collision) {
		g.flashes.Hit(e.A)
		g.flashes.Hit(e.B)
	})
	event.Subscribe(w.Events(), func(e event.WallBounce) {
		g.flashes.Hit(e.ID)
	})
	return g
}

func (g *Game) Paused() bool { return g.paused }

func (g *Game) Update() error {
	return g.apply(readControls())
}

// apply advances the simulation according to one frame of input.
func (g *Game) apply(c Controls) error {
	if c.Quit {
		g.log.Info("playground closed", zap.Uint64("ticks", g.world.Ticks()))
		return ebiten.Termination
	}
	if c.Pause {
		g.paused = !g.paused
		g.log.Debug("pause toggled", zap.Bool("paused", g.paused))
	}
	if c.Grid {
		g.opts.ShowGrid = !g.opts.ShowGrid
	}
	if c.Zoom != 0 {
		g.view.Zoom(c.Zoom)
	}

	g.flashes.Decay()
	if g.paused && !c.Step {
		return nil
	}
	g.world.Tick()
	g.world.DispatchEvents()
	return nil
}

func readControls() Controls {
	_, wheel := ebiten.Wheel()
	return Controls{
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Step:  inpututil.IsKeyJustPressed(ebiten.KeyN),
		Grid:  inpututil.IsKeyJustPressed(ebiten.KeyG),
		Zoom:  wheel,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.opts.Background)
	halfW, halfH := g.world.Width()/2, g.world.Height()/2

	if g.opts.ShowGrid {
		g.drawGrid(screen, halfW, halfH)
	}
	g.drawWalls(screen, halfW, halfH)

	g.world.Each(func(_ int, b body.Body) {
		x, y := g.view.ToScreen(b.Position())
		r := g.view.Scale(b.Radius())
		clr := g.flashes.Tint(b.ID(), RGBA(b.Color()))
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	})

	st := g.world.Stats()
	status := ""
	if g.paused {
		status = "  [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"bodies %d  tick %d  KE %.3f  TPS %.0f%s",
		st.Bodies, st.Ticks, st.KineticEnergy, ebiten.ActualTPS(), status,
	))
}

func (g *Game) drawGrid(screen *ebiten.Image, halfW, halfH float64) {
	xs, ys := g.view.GridLines(halfW, halfH)
	_, top := g.view.ToScreen(vecmath.Vec2{Y: halfH})
	_, bottom := g.view.ToScreen(vecmath.Vec2{Y: -halfH})
	left, _ := g.view.ToScreen(vecmath.Vec2{X: -halfW})
	right, _ := g.view.ToScreen(vecmath.Vec2{X: halfW})
	for _, x := range xs {
		sx, _ := g.view.ToScreen(vecmath.Vec2{X: x})
		vector.StrokeLine(screen, sx, top, sx, bottom, 1, gridColor, false)
	}
	for _, y := range ys {
		_, sy := g.view.ToScreen(vecmath.Vec2{Y: y})
		vector.StrokeLine(screen, left, sy, right, sy, 1, gridColor, false)
	}
}

func (g *Game) drawWalls(screen *ebiten.Image, halfW, halfH float64) {
	x0, y0 := g.view.ToScreen(vecmath.Vec2{X: -halfW, Y: halfH})
	x1, y1 := g.view.ToScreen(vecmath.Vec2{X: halfW, Y: -halfH})
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, wallColor, true)
}

// Layout keeps a fixed logical screen; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.ScreenWidth, g.opts.ScreenHeight
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.opts.ScreenWidth, g.opts.ScreenHeight)
	ebiten.SetWindowTitle(title)
	if g.opts.TPS > 0 {
		ebiten.SetTPS(g.opts.TPS)
	}
	return ebiten.RunGame(g)
}
