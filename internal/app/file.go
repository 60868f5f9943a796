package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// runFile mirrors the terminal flags. Pointer fields distinguish keys that
// are absent from keys set to their zero value.
type runFile struct {
	Width  *int   `yaml:"width"`
	Height *int   `yaml:"height"`
	Steps  *int   `yaml:"steps"`
	Seed   *int64 `yaml:"seed"`
	Frames *bool  `yaml:"frames"`
	TPS    *int   `yaml:"tps"`
}

// LoadFile overlays the YAML run file named by ConfigFile. Settings whose
// flags were given explicitly on fs are left alone. It is a no-op when
// ConfigFile is empty.
func (c *Config) LoadFile(fs *flag.FlagSet) error {
	if c.ConfigFile == "" {
		return nil
	}
	f, err := os.Open(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("reading run file: %w", err)
	}
	defer f.Close()
	return c.apply(f, explicitFlags(fs))
}

func (c *Config) apply(r io.Reader, explicit map[string]bool) error {
	var rf runFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding run file %s: %w", c.ConfigFile, err)
	}

	if rf.Width != nil && !explicit["width"] {
		c.Width = *rf.Width
	}
	if rf.Height != nil && !explicit["height"] {
		c.Height = *rf.Height
	}
	if rf.Steps != nil && !explicit["steps"] {
		c.Steps = *rf.Steps
	}
	if rf.Seed != nil && !explicit["seed"] {
		c.Seed = *rf.Seed
	}
	if rf.Frames != nil && !explicit["frames"] {
		c.Frames = *rf.Frames
	}
	if rf.TPS != nil && !explicit["tps"] {
		c.TPS = *rf.TPS
	}
	return nil
}

func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	if fs == nil {
		return set
	}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
