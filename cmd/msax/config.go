package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gomsax/msax"
)

const (
	modeNormal = "normal"
	modeSilent = "silent"

	formatText = "text"
	formatCSV  = "csv"
)

// config holds the settings of one run. Defaults are overlaid by the YAML
// file, then by explicitly set flags.
type config struct {
	WindowSize   int    `yaml:"windowsize"`
	AlphabetSize int    `yaml:"alphabetsize"`
	FrameSize    int    `yaml:"framesize"`
	Mode         string `yaml:"mode"`
	Format       string `yaml:"format"`
	Column       string `yaml:"column"`
}

func defaultConfig() config {
	p := msax.DefaultParams()
	return config{
		WindowSize:   p.WindowSize,
		AlphabetSize: p.AlphabetSize,
		FrameSize:    p.FrameSize,
		Mode:         modeNormal,
		Format:       formatText,
		Column:       "y",
	}
}

// loadConfigFile overlays the keys present in a YAML file onto cfg.
func loadConfigFile(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c config) params() msax.Params {
	return msax.Params{
		WindowSize:   c.WindowSize,
		AlphabetSize: c.AlphabetSize,
		FrameSize:    c.FrameSize,
	}
}

func (c config) validate() error {
	if err := c.params().Check(); err != nil {
		return err
	}
	if c.Mode != modeNormal && c.Mode != modeSilent {
		return fmt.Errorf("invalid mode %q: must be %s or %s", c.Mode, modeNormal, modeSilent)
	}
	if c.Format != formatText && c.Format != formatCSV {
		return fmt.Errorf("invalid format %q: must be %s or %s", c.Format, formatText, formatCSV)
	}
	return nil
}
