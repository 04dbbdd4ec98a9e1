// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/benjaminhirsch/raytracer/demo"
	"github.com/benjaminhirsch/raytracer/outfile"
)

// Config holds every knob of a render run. It can be loaded from a TOML
// file; command-line flags that are set explicitly override file values.
type Config struct {
	Scene  string `toml:"scene"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  int    `toml:"scale"`  // integer upscale factor, 1 = none
	Format string `toml:"format"` // ppm, tiff or bmp
	Dir    string `toml:"dir"`
	Seed   int64  `toml:"seed"` // 0 = random file names
}

// defaultConfig mirrors the flag defaults.
func defaultConfig() Config {
	return Config{
		Scene:  demo.SceneProjectile,
		Width:  900,
		Height: 550,
		Scale:  1,
		Format: "ppm",
		Dir:    outfile.DefaultDir,
	}
}

// loadConfigFile decodes the TOML file at path over cfg. Keys absent from
// the file keep their current values.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	return nil
}

// bindFlags registers one flag per Config field on fs, all writing into
// the returned Config, plus the -config and -v switches.
func bindFlags(fs *flag.FlagSet) (cfg *Config, configPath *string, verbose *bool) {
	d := defaultConfig()
	cfg = &Config{}
	fs.StringVar(&cfg.Scene, "scene", d.Scene, fmt.Sprintf("scene to render %v", demo.Scenes()))
	fs.IntVar(&cfg.Width, "width", d.Width, "canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", d.Height, "canvas height in pixels")
	fs.IntVar(&cfg.Scale, "scale", d.Scale, "integer upscale factor")
	fs.StringVar(&cfg.Format, "format", d.Format, "output format: ppm, tiff or bmp")
	fs.StringVar(&cfg.Dir, "dir", d.Dir, "output directory (created if missing)")
	fs.Int64Var(&cfg.Seed, "seed", d.Seed, "seed for output file names, 0 for random")
	configPath = fs.String("config", "", "optional TOML config file")
	verbose = fs.Bool("v", false, "debug logging")

	return cfg, configPath, verbose
}

// resolve merges the defaults, the optional config file and the flags that
// were set explicitly, in that order of precedence (last wins).
func resolve(fs *flag.FlagSet, flags *Config, configPath string) (Config, error) {
	cfg := defaultConfig()
	if configPath != "" {
		if err := loadConfigFile(configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = flags.Scene
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "scale":
			cfg.Scale = flags.Scale
		case "format":
			cfg.Format = flags.Format
		case "dir":
			cfg.Dir = flags.Dir
		case "seed":
			cfg.Seed = flags.Seed
		}
	})

	return cfg, nil
}
