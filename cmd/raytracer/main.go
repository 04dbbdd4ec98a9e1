// Command raytracer renders one of the demo scenes and writes it to a new,
// randomly named image file.
//
// Usage:
//
//	raytracer [-scene projectile] [-width 900] [-height 550] [-scale 1]
//	          [-format ppm|tiff|bmp] [-dir ppm] [-seed 0] [-config file.toml] [-v]
//
// Settings come from the defaults, then the optional TOML file, then any
// flag given explicitly. The path of the written file is printed on stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/benjaminhirsch/raytracer/canvas"
	"github.com/benjaminhirsch/raytracer/demo"
	"github.com/benjaminhirsch/raytracer/imagefile"
	"github.com/benjaminhirsch/raytracer/outfile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// run is main without the process boundary, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags, configPath, verbose := bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := resolve(fs, flags, *configPath)
	if err != nil {
		log.Error("load config", "path", *configPath, "err", err)
		return exitUsage
	}
	log.Debug("resolved config", "config", fmt.Sprintf("%+v", cfg))

	path, c, err := render(cfg, log)
	if err != nil {
		log.Error("render", "scene", cfg.Scene, "err", err)
		return exitError
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "%s (%d×%d, %d pixels)\n", path, c.Width(), c.Height(), c.Width()*c.Height())

	return exitOK
}

// render builds the scene, scales it and saves it under cfg's policy. It
// returns the written path and the canvas that was saved.
func render(cfg Config, log *slog.Logger) (string, *canvas.Canvas, error) {
	format, err := imagefile.ParseFormat(cfg.Format)
	if err != nil {
		return "", nil, err
	}
	if cfg.Scene == demo.SceneReference {
		cfg.Width, cfg.Height = 5, 3
	}

	c, err := demo.Render(cfg.Scene, cfg.Width, cfg.Height)
	if err != nil {
		return "", nil, err
	}
	log.Debug("rendered", "scene", cfg.Scene, "width", c.Width(), "height", c.Height())

	if cfg.Scale != 1 {
		if c, err = c.Scale(cfg.Scale); err != nil {
			return "", nil, err
		}
		log.Debug("scaled", "factor", cfg.Scale)
	}

	var opts []outfile.Option
	if cfg.Dir != "" {
		opts = append(opts, outfile.WithDir(cfg.Dir))
	}
	if cfg.Seed != 0 {
		opts = append(opts, outfile.WithSeed(cfg.Seed))
	}
	path, err := imagefile.Save(c, format, opts...)
	if err != nil {
		return "", nil, err
	}
	log.Info("saved", "path", path, "format", format)

	return path, c, nil
}
