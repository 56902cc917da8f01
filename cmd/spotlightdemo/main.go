// Command spotlightdemo renders a showcase overlay to PNG.
//
// The screen, targets and shape come from SPOTLIGHT_* variables (optionally
// read from a .env file) and can be overridden with flags.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/spotlight"
	"github.com/gogpu/spotlight/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "spotlightdemo:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("spotlightdemo", flag.ContinueOnError)
	var (
		envFile = fs.String("env", ".env", "optional .env file with SPOTLIGHT_* settings")
		output  = fs.String("output", "spotlight.png", "output file")
		caption = fs.String("caption", "Tap here to start", "caption text")
		tick    = fs.Int("tick", 0, "animation tick to render")
		shape   = fs.String("shape", "", "focus shape override: circle, rect")
		targets = fs.String("targets", "", "target override: left,top,width,height;...")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if *shape != "" {
		if cfg.Shape, err = config.ParseShape(*shape); err != nil {
			return err
		}
	}
	if *targets != "" {
		if cfg.Targets, err = config.ParseTargets(*targets); err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	spotlight.SetLogger(logger)
	gg.SetLogger(logger)

	c := cfg.Calculator()
	dc, err := render(c, scene{
		caption: *caption,
		targets: cfg.Targets,
		tick:    *tick,
		step:    cfg.AnimStep,
	})
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(*output); err != nil {
		return fmt.Errorf("save %s: %w", *output, err)
	}

	logger.Info("overlay saved",
		slog.String("output", *output),
		slog.Int("width", c.BackgroundWidth()),
		slog.Int("height", c.BackgroundHeight()),
		slog.String("shape", c.Shape().String()),
		slog.Bool("focus", c.HasFocus()))
	return nil
}
