package term

import (
	"strings"
	"testing"

	"dlagrow/internal/control"
	"dlagrow/internal/sims/dla"

	"github.com/gdamore/tcell/v2"
)

func newTestUI(t *testing.T) (*UI, *control.Controller) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	cfg := dla.DefaultConfig()
	cfg.Radius = 30
	ctrl := control.New(dla.NewWithConfig(cfg), control.Options{NoExport: true})
	return New(screen, ctrl), ctrl
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestPromptSetsParameter(t *testing.T) {
	ui, ctrl := newTestUI(t)

	ui.HandleEvent(key('v'))
	if ui.Prompting() != control.CmdStickProb {
		t.Fatalf("prompting %v, want stick probability", ui.Prompting())
	}
	for _, r := range "0.35" {
		ui.HandleEvent(key(r))
	}
	ui.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if ui.Prompting() != control.CmdNone {
		t.Fatal("prompt should close after enter")
	}
	if got := ctrl.Engine().Params().StickProb; got != 0.35 {
		t.Fatalf("StickProb = %v, want 0.35", got)
	}
}

func TestPromptRejectsBadValue(t *testing.T) {
	ui, ctrl := newTestUI(t)

	ui.HandleEvent(key('c'))
	ui.HandleEvent(key('0'))
	ui.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if got := ctrl.Engine().Params().MinColls; got != 1 {
		t.Fatalf("MinColls = %d, want unchanged 1", got)
	}
	msgs := ui.Messages()
	if len(msgs) == 0 || !strings.Contains(msgs[len(msgs)-1], "below 1") {
		t.Fatalf("messages = %q, want the rejection", msgs)
	}
}

func TestEscapeCancelsPrompt(t *testing.T) {
	ui, ctrl := newTestUI(t)
	ui.HandleEvent(key('m'))
	ui.HandleEvent(key('4'))
	ui.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if ui.Prompting() != control.CmdNone || ctrl.Engine().Params().AttrSeparation != 0 {
		t.Fatal("escape should discard the prompt")
	}
}

func TestKeysDriveController(t *testing.T) {
	ui, ctrl := newTestUI(t)

	if !ui.HandleEvent(key('g')) || !ctrl.Running() {
		t.Fatal("g should start the run")
	}
	if !ui.HandleEvent(key('p')) || ctrl.Running() {
		t.Fatal("p should pause")
	}
	ui.HandleEvent(key('0'))
	msgs := ui.Messages()
	if len(msgs) == 0 || !strings.HasPrefix(msgs[len(msgs)-1], "particles:") {
		t.Fatalf("size not reported: %q", msgs)
	}
	if ui.HandleEvent(key('q')) {
		t.Fatal("q should stop the UI")
	}
}

func TestDrawShowsSeedAndStatus(t *testing.T) {
	ui, _ := newTestUI(t)
	ui.draw()

	screen := ui.screen.(tcell.SimulationScreen)
	cells, w, _ := screen.GetContents()
	found := false
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == glyphs[1] {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("seed particle not drawn")
	}

	gridRows := 30 - (maxMessages + 2)
	var line strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[gridRows*w+x].Runes; len(r) > 0 {
			line.WriteRune(r[0])
		}
	}
	if !strings.HasPrefix(line.String(), "N=1") {
		t.Fatalf("status line = %q", line.String())
	}
}
