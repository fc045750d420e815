// Command dla-term runs the interactive aggregation in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"dlagrow/internal/app"
	"dlagrow/internal/audio"
	"dlagrow/internal/control"
	"dlagrow/internal/growth"
	"dlagrow/internal/sims/dla"
	"dlagrow/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Radius = 60
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file (the screen is in use)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := app.NewLogger(logOut, "dla-term", cfg.Verbose)

	factory, ok := dla.Presets()[cfg.Preset]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown preset %q (available: %v)\n", cfg.Preset, dla.PresetNames())
		os.Exit(2)
	}
	ctrl := control.New(factory(cfg.Overrides()), control.Options{Dir: cfg.Dir, Logger: logger})

	if cfg.Sound {
		chime := audio.NewChime(0.3)
		if err := chime.Initialize(); err != nil {
			// Non-fatal, growth runs without sound.
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer chime.Close()
			ctrl.OnStick(func(s growth.Sample) { chime.Play(s.Radius) })
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.New(screen, ctrl).Run(ctx)
	stop()
	screen.Fini()
	ctrl.PauseRunning()
	if err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctrl.PrintSize(os.Stdout)
}
