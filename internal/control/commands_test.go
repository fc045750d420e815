package control

import (
	"bytes"
	"strings"
	"testing"

	"dlagrow/internal/sims/dla"

	errgo "gopkg.in/errgo.v1"
)

func TestKeymapCoversHelp(t *testing.T) {
	for r, cmd := range Keymap {
		if cmd == CmdNone {
			t.Fatalf("key %q bound to no command", r)
		}
		if !strings.Contains(Help, "  "+string(r)) && r != 'e' && r != 'b' {
			t.Fatalf("help text does not mention key %q", r)
		}
	}
	if Lookup('x') != CmdNone {
		t.Fatal("unbound key should map to CmdNone")
	}
}

func TestDispatchToggles(t *testing.T) {
	c, _ := newTestController(t, 10)
	var out bytes.Buffer

	c.Dispatch(Lookup('n'), &out)
	c.Dispatch(Lookup('d'), &out)
	p := c.Engine().Params()
	if !p.DelNoStick || !p.DiagonalStick {
		t.Fatalf("toggles not applied: %+v", p)
	}
	c.Dispatch(Lookup('d'), &out)
	if c.Engine().Params().DiagonalStick {
		t.Fatal("second toggle should switch diagonal stick off")
	}

	c.Dispatch(Lookup('w'), &out)
	if !c.Light() {
		t.Fatal("w should select the light background")
	}
	c.Dispatch(Lookup('b'), &out)
	if c.Light() {
		t.Fatal("b should select the dark background")
	}

	c.Dispatch(Lookup('h'), &out)
	if !strings.Contains(out.String(), "Keys:") {
		t.Fatal("help not written")
	}
}

func TestDispatchRunControls(t *testing.T) {
	c, _ := newTestController(t, 10)
	var out bytes.Buffer

	c.Dispatch(Lookup('f'), &out)
	if c.Slow() {
		t.Fatal("f should select fast mode")
	}
	c.Dispatch(Lookup('g'), &out)
	if !c.Running() {
		t.Fatal("g should start the run")
	}
	c.Dispatch(Lookup('z'), &out)
	if c.Running() || !c.Zoom() {
		t.Fatalf("z should pause and zoom: running=%v zoom=%v", c.Running(), c.Zoom())
	}
	if quit := c.Dispatch(Lookup('q'), &out); !quit {
		t.Fatal("q should quit")
	}
	if quit := c.Dispatch(Lookup('u'), &out); quit {
		t.Fatal("u should not quit")
	}
}

func TestApplyValues(t *testing.T) {
	c, _ := newTestController(t, 10)

	if !NeedsValue(CmdStickProb) || NeedsValue(CmdGo) {
		t.Fatal("NeedsValue misclassifies commands")
	}
	if Prompt(CmdMinColls) == "" {
		t.Fatal("missing prompt")
	}

	if err := c.Apply(CmdStickProb, " 0.4\n"); err != nil {
		t.Fatalf("Apply stick prob: %v", err)
	}
	if err := c.Apply(CmdMinColls, "3"); err != nil {
		t.Fatalf("Apply min colls: %v", err)
	}
	if err := c.Apply(CmdAttrSeparation, "6"); err != nil {
		t.Fatalf("Apply attraction: %v", err)
	}
	p := c.Engine().Params()
	if p.StickProb != 0.4 || p.MinColls != 3 || p.AttrSeparation != 6 {
		t.Fatalf("params = %+v", p)
	}

	bad := []struct {
		cmd  Command
		text string
	}{
		{CmdStickProb, "1.5"},
		{CmdStickProb, "often"},
		{CmdMinColls, "0"},
		{CmdAttrSeparation, "-2"},
	}
	for _, b := range bad {
		err := c.Apply(b.cmd, b.text)
		if errgo.Cause(err) != dla.ErrInvalidConfig {
			t.Fatalf("Apply(%v, %q) = %v, want ErrInvalidConfig cause", b.cmd, b.text, err)
		}
	}
	if got := c.Engine().Params(); got != p {
		t.Fatalf("rejected values changed params: %+v", got)
	}
	if err := c.Apply(CmdGo, "1"); err == nil {
		t.Fatal("commands without values must reject Apply")
	}
}
