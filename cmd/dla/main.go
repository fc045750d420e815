// Command dla grows a cluster headlessly and writes its growth record.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"dlagrow/internal/app"
	"dlagrow/internal/control"
	"dlagrow/internal/export"
	"dlagrow/internal/growth"
	"dlagrow/internal/sims/dla"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	plotPath := flag.String("plot", "", "write a log-log growth plot PNG to this path")
	moviePath := flag.String("movie", "", "record the growth as an MJPEG AVI at this path")
	frameEvery := flag.Int("frame-every", 20, "particles between movie frames")
	fps := flag.Int("fps", 25, "movie frame rate")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, "dla", cfg.Verbose)

	factory, ok := dla.Presets()[cfg.Preset]
	if !ok {
		logger.Fatal("unknown preset", "preset", cfg.Preset, "available", dla.PresetNames())
	}
	engine := factory(cfg.Overrides())
	ctrl := control.New(engine, control.Options{Dir: cfg.Dir, Logger: logger})
	ctrl.SetFast()

	var movie *export.Movie
	if *moviePath != "" {
		size := engine.Size()
		m, err := export.NewMovie(*moviePath, size.W, size.H, cfg.Scale, *fps, dla.Palette(false))
		if err != nil {
			logger.Error("movie disabled", "err", err)
		} else {
			movie = m
			every := max(*frameEvery, 1)
			ctrl.OnStick(func(s growth.Sample) {
				if movie == nil || s.Index%every != 0 {
					return
				}
				if err := movie.AddCells(engine.Cells()); err != nil {
					logger.Error("movie stopped", "err", err)
					movie.Close()
					movie = nil
				}
			})
		}
	}

	logger.Info("growing",
		"preset", cfg.Preset,
		"radius", engine.Radius(),
		"seed", engine.Seed(),
		"end_num", engine.Params().EndNum,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := ctrl.Run(ctx); err != nil {
		logger.Warn("run interrupted", "err", err)
	}
	ctrl.PrintSize(os.Stdout)

	fit := engine.Fit()
	logger.Info("summary",
		"particles", engine.NumParticles(),
		"radius", engine.MaxRadius(),
		"dimension", fit.Dimension,
		"r2", fit.RSquared,
		"saturated", engine.Saturated(),
		"csv", ctrl.Filename(),
	)

	if movie != nil {
		if err := movie.AddCells(engine.Cells()); err != nil {
			logger.Error("final movie frame", "err", err)
		}
		if err := movie.Close(); err != nil {
			logger.Error("movie", "err", err)
		} else {
			logger.Info("movie written", "path", *moviePath, "frames", movie.Frames())
		}
	}
	if *plotPath != "" {
		if err := export.SavePlot(*plotPath, engine.Stats()); err != nil {
			logger.Error("plot", "err", err)
		} else {
			logger.Info("plot written", "path", *plotPath)
		}
	}
}
