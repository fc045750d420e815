//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"dlagrow/internal/app"
	"dlagrow/internal/control"
	"dlagrow/internal/sims/dla"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, "dla-gui", cfg.Verbose)

	factory, ok := dla.Presets()[cfg.Preset]
	if !ok {
		logger.Fatal("unknown preset", "preset", cfg.Preset, "available", dla.PresetNames())
	}
	engine := factory(cfg.Overrides())
	ctrl := control.New(engine, control.Options{Dir: cfg.Dir, Logger: logger})
	fmt.Print(control.Help)

	game := app.New(ctrl, cfg.Scale, cfg.HUDWidth, os.Stdout)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("dla: %s", cfg.Preset))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("gui", "err", err)
	}
	ctrl.PauseRunning()
}
