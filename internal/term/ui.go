// Package term is a terminal front end for the DLA controller.
package term

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"dlagrow/internal/control"
	"dlagrow/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond
	maxMessages   = 4
)

var glyphs = [...]rune{' ', '█', '●'}

// UI draws the cluster in a tcell screen and feeds keys to the controller.
type UI struct {
	screen tcell.Screen
	ctrl   *control.Controller

	prompt   control.Command
	input    []rune
	messages []string
	out      bytes.Buffer
}

// New binds a screen to a controller. The caller owns screen initialisation
// and Fini.
func New(screen tcell.Screen, ctrl *control.Controller) *UI {
	return &UI{screen: screen, ctrl: ctrl}
}

// Run processes keys and advances the controller until quit or ctx ends.
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	u.Message("press h for help")
	u.draw()
	for {
		select {
		case <-ctx.Done():
			u.ctrl.PauseRunning()
			return ctx.Err()
		case ev := <-events:
			if !u.HandleEvent(ev) {
				return nil
			}
			u.draw()
		case now := <-ticker.C:
			u.ctrl.Advance(now)
			u.draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to keep running.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			u.ctrl.PauseRunning()
			return false
		}
		if u.prompt != control.CmdNone {
			u.handlePromptKey(ev)
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		cmd := control.Lookup(ev.Rune())
		if cmd == control.CmdNone {
			return true
		}
		if control.NeedsValue(cmd) {
			u.prompt = cmd
			u.input = u.input[:0]
			return true
		}
		u.out.Reset()
		quit := u.ctrl.Dispatch(cmd, &u.out)
		for _, line := range strings.Split(strings.TrimRight(u.out.String(), "\n"), "\n") {
			if line != "" {
				u.Message(line)
			}
		}
		return !quit
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *UI) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		u.prompt = control.CmdNone
	case tcell.KeyEnter:
		cmd := u.prompt
		u.prompt = control.CmdNone
		if err := u.ctrl.Apply(cmd, string(u.input)); err != nil {
			u.Message(err.Error())
			return
		}
		u.Message(fmt.Sprintf("%s = %s", cmd, string(u.input)))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(u.input) > 0 {
			u.input = u.input[:len(u.input)-1]
		}
	case tcell.KeyRune:
		u.input = append(u.input, ev.Rune())
	}
}

// Message appends a line to the scrolling message area.
func (u *UI) Message(s string) {
	u.messages = append(u.messages, s)
	if len(u.messages) > maxMessages {
		u.messages = u.messages[len(u.messages)-maxMessages:]
	}
}

// Messages returns the visible message lines.
func (u *UI) Messages() []string { return u.messages }

// Prompting reports the command awaiting a value, CmdNone when idle.
func (u *UI) Prompting() control.Command { return u.prompt }

func (u *UI) draw() {
	s := u.screen
	s.Clear()
	cols, rows := s.Size()
	footer := maxMessages + 2
	gridRows := rows - footer
	if gridRows < 1 || cols < 1 {
		s.Show()
		return
	}

	e := u.ctrl.Engine()
	view := render.FullView(e.Radius())
	if u.ctrl.Zoom() {
		view = render.ZoomView(e.Radius(), e.SpawnRadius())
	}
	// Terminal cells are about twice as tall as wide.
	gridCols := min(cols, 2*gridRows)
	raster := Rasterize(e.Cells(), e.Size().W, view, gridCols, gridRows)

	styles := u.styles()
	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			v := raster[y*gridCols+x]
			if int(v) >= len(glyphs) {
				v = uint8(len(glyphs) - 1)
			}
			s.SetContent(x, y, glyphs[v], nil, styles[v])
		}
	}

	status := fmt.Sprintf("N=%d  r=%.1f  D=%.3f  %s %s",
		e.NumParticles(), e.MaxRadius(), e.FractalDimension(), runState(u.ctrl), paceState(u.ctrl))
	if f := u.ctrl.Filename(); f != "" {
		status += "  " + f
	}
	u.text(0, gridRows, status, tcell.StyleDefault.Bold(true))
	for i, m := range u.messages {
		u.text(0, gridRows+1+i, m, tcell.StyleDefault)
	}
	if u.prompt != control.CmdNone {
		line := control.Prompt(u.prompt) + string(u.input)
		u.text(0, rows-1, line, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		s.ShowCursor(len([]rune(line)), rows-1)
	} else {
		s.HideCursor()
	}
	s.Show()
}

func (u *UI) styles() [len(glyphs)]tcell.Style {
	bg, fg := tcell.ColorBlack, tcell.ColorWhite
	if u.ctrl.Light() {
		bg, fg = tcell.ColorWhite, tcell.ColorBlack
	}
	base := tcell.StyleDefault.Background(bg)
	return [len(glyphs)]tcell.Style{
		base,
		base.Foreground(fg),
		base.Foreground(tcell.ColorRed),
	}
}

func (u *UI) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func runState(c *control.Controller) string {
	switch {
	case c.Done():
		return "done"
	case c.Running():
		return "running"
	}
	return "paused"
}

func paceState(c *control.Controller) string {
	if c.Slow() {
		return "slow"
	}
	return "fast"
}
