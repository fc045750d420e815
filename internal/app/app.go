//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"dlagrow/internal/control"
	"dlagrow/internal/render"
	"dlagrow/internal/sims/dla"
	"dlagrow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const minWindowHeight = 480

// Game adapts a DLA controller to the ebiten.Game interface.
type Game struct {
	ctrl    *control.Controller
	engine  *dla.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	out      io.Writer

	prompt control.Command
	input  []rune
	chars  []rune
}

// New constructs a Game around ctrl. Help and size reports go to out.
func New(ctrl *control.Controller, scale, hudWidth int, out io.Writer) *Game {
	e := ctrl.Engine()
	size := e.Size()
	if scale < 1 {
		scale = 1
	}
	return &Game{
		ctrl:     ctrl,
		engine:   e,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(e),
		hud:      ui.NewHUD(e, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
		out:      out,
	}
}

func (g *Game) viewPixels() int { return g.engine.Size().W * g.scale }

// Update handles keys, HUD clicks and advances the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.prompt == control.CmdNone {
		g.ctrl.PauseRunning()
		return ebiten.Termination
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if g.prompt != control.CmdNone {
		g.updatePrompt()
	} else {
		for _, r := range g.chars {
			cmd := control.Lookup(r)
			if cmd == control.CmdNone {
				continue
			}
			if control.NeedsValue(cmd) {
				g.prompt = cmd
				g.input = g.input[:0]
				break
			}
			if g.ctrl.Dispatch(cmd, g.out) {
				return ebiten.Termination
			}
		}
		g.overlay.Update()
	}

	g.hud.SetStatus(StatusLines(g.ctrl))
	g.hud.Update(g.viewPixels())
	g.ctrl.Advance(time.Now())
	return nil
}

func (g *Game) updatePrompt() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.prompt = control.CmdNone
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if err := g.ctrl.Apply(g.prompt, string(g.input)); err != nil {
			fmt.Fprintln(g.out, err)
		}
		g.prompt = control.CmdNone
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
	default:
		g.input = append(g.input, g.chars...)
	}
}

// Draw renders the lattice, overlay, HUD and any open prompt.
func (g *Game) Draw(screen *ebiten.Image) {
	view := render.FullView(g.engine.Radius())
	if g.ctrl.Zoom() {
		view = render.ZoomView(g.engine.Radius(), g.engine.SpawnRadius())
	}
	px := g.viewPixels()
	g.painter.Blit(screen, g.engine.Cells(), dla.Palette(g.ctrl.Light()), view, px)
	g.overlay.Draw(screen, view, px)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, px, h)

	if g.prompt != control.CmdNone {
		fg := color.RGBA{R: 255, G: 220, B: 80, A: 255}
		if g.ctrl.Light() {
			fg = color.RGBA{R: 120, G: 60, B: 0, A: 255}
		}
		text.Draw(screen, control.Prompt(g.prompt)+string(g.input)+"_", basicfont.Face7x13, 8, px-10, fg)
	}
}

// Layout returns the logical screen size: the lattice view plus the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := g.viewPixels()
	return px + g.hudWidth, max(px, minWindowHeight)
}
