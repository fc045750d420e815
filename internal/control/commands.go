package control

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"dlagrow/internal/sims/dla"

	errgo "gopkg.in/errgo.v1"
)

// Command is a user action bound to a key.
type Command int

const (
	CmdNone Command = iota
	CmdHelp
	CmdQuit
	CmdUpdate
	CmdGo
	CmdPause
	CmdSlow
	CmdFast
	CmdReset
	CmdZoom
	CmdLight
	CmdDark
	CmdPrintSize
	CmdToggleDelNoStick
	CmdToggleDiagonalStick
	CmdStickProb
	CmdMinColls
	CmdAttrSeparation
)

// Keymap binds keys to commands.
var Keymap = map[rune]Command{
	'h': CmdHelp,
	'q': CmdQuit,
	'e': CmdQuit,
	'u': CmdUpdate,
	'g': CmdGo,
	'p': CmdPause,
	's': CmdSlow,
	'f': CmdFast,
	'r': CmdReset,
	'z': CmdZoom,
	'w': CmdLight,
	'b': CmdDark,
	'0': CmdPrintSize,
	'n': CmdToggleDelNoStick,
	'd': CmdToggleDiagonalStick,
	'v': CmdStickProb,
	'c': CmdMinColls,
	'm': CmdAttrSeparation,
}

// Help lists the key bindings.
const Help = `Keys:
  q or e  quit
  h       print this message
  u       single update
  g       start running
  p       pause running
  s       slow mode
  f       fast mode
  r       clear everything
  z       pause and zoom to the spawn circle
  w / b   white or black background
  0       print size and number of particles
  n       toggle deleting particles after an unsuccessful stick
  d       toggle diagonal sticking
  v       set sticking probability
  c       set collisions required before a particle stops
  m       set attraction range (0 disables)
`

// Lookup returns the command bound to r, CmdNone when unbound.
func Lookup(r rune) Command { return Keymap[r] }

// NeedsValue reports whether cmd takes a typed value through Apply.
func NeedsValue(cmd Command) bool {
	switch cmd {
	case CmdStickProb, CmdMinColls, CmdAttrSeparation:
		return true
	}
	return false
}

// Prompt returns the text shown when asking for cmd's value.
func Prompt(cmd Command) string {
	switch cmd {
	case CmdStickProb:
		return "Enter a probability between 0 and 1: "
	case CmdMinColls:
		return "Enter number of collisions before stick (min 1): "
	case CmdAttrSeparation:
		return "Enter the max separation for attraction (0 disables): "
	}
	return ""
}

// Dispatch performs a command that needs no value. Text output such as help
// goes to out. It reports whether the front end should quit.
func (c *Controller) Dispatch(cmd Command, out io.Writer) (quit bool) {
	e := c.engine
	switch cmd {
	case CmdHelp:
		io.WriteString(out, Help)
	case CmdQuit:
		c.PauseRunning()
		c.logger.Info("exiting")
		return true
	case CmdUpdate:
		ev := c.Update()
		c.logger.Debug("update", "event", ev)
	case CmdGo:
		if err := c.SetRunning(); err != nil {
			c.logger.Warn("running without export", "err", err)
		}
	case CmdPause:
		c.PauseRunning()
	case CmdSlow:
		c.SetSlow()
	case CmdFast:
		c.SetFast()
	case CmdReset:
		c.Reset()
	case CmdZoom:
		c.PauseRunning()
		c.zoom = !c.zoom
		c.logger.Info("zoom", "on", c.zoom, "spawn_radius", e.SpawnRadius())
	case CmdLight:
		c.light = true
	case CmdDark:
		c.light = false
	case CmdPrintSize:
		c.PrintSize(out)
	case CmdToggleDelNoStick:
		e.SetDelNoStick(!e.Params().DelNoStick)
		c.logger.Info("delete on no stick", "on", e.Params().DelNoStick)
	case CmdToggleDiagonalStick:
		e.SetDiagonalStick(!e.Params().DiagonalStick)
		c.logger.Info("diagonal stick", "on", e.Params().DiagonalStick)
	}
	return false
}

// Apply parses text as the value for a prompting command and hands it to the
// engine. Invalid input leaves the parameter unchanged and has
// dla.ErrInvalidConfig as its cause.
func (c *Controller) Apply(cmd Command, text string) error {
	text = strings.TrimSpace(text)
	e := c.engine
	var err error
	switch cmd {
	case CmdStickProb:
		var v float64
		if v, err = strconv.ParseFloat(text, 64); err == nil {
			err = e.SetStickProb(v)
		}
	case CmdMinColls:
		var v int
		if v, err = strconv.Atoi(text); err == nil {
			err = e.SetMinColls(v)
		}
	case CmdAttrSeparation:
		var v int
		if v, err = strconv.Atoi(text); err == nil {
			err = e.SetAttrSeparation(v)
		}
	default:
		return errgo.Newf("command %d takes no value", cmd)
	}
	if err == nil {
		c.logger.Info("parameter set", "command", cmd.String(), "value", text)
		return nil
	}
	if errgo.Cause(err) != dla.ErrInvalidConfig {
		err = errgo.WithCausef(err, dla.ErrInvalidConfig, "cannot parse %q", text)
	}
	c.logger.Warn("rejected value", "command", cmd.String(), "value", text, "err", err)
	return errgo.Mask(err, errgo.Is(dla.ErrInvalidConfig))
}

var commandNames = [...]string{
	CmdNone:                "none",
	CmdHelp:                "help",
	CmdQuit:                "quit",
	CmdUpdate:              "update",
	CmdGo:                  "go",
	CmdPause:               "pause",
	CmdSlow:                "slow",
	CmdFast:                "fast",
	CmdReset:               "reset",
	CmdZoom:                "zoom",
	CmdLight:               "light",
	CmdDark:                "dark",
	CmdPrintSize:           "print size",
	CmdToggleDelNoStick:    "delete on no stick",
	CmdToggleDiagonalStick: "diagonal stick",
	CmdStickProb:           "stick probability",
	CmdMinColls:            "min collisions",
	CmdAttrSeparation:      "attraction range",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}
