// Package config loads histogram definitions from YAML documents.
//
// A document lists the axes in order together with the construction
// settings of the histogram:
//
//	growth: clamp          # or strict
//	overflow_table: true
//	axes:
//	  - {kind: equidistant, bins: 2, low: 0, high: 2}
//	  - {kind: growable, bins: 3, low: 3.0, high: 5.3}
//	  - {kind: growable, boundaries: [0, 1, 3, 7]}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/claireguyot/root/axis"
	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/format"
	"github.com/claireguyot/root/hist"
	"gopkg.in/yaml.v3"
)

// Config is a histogram definition.
type Config struct {
	Growth        format.GrowthPolicy `yaml:"growth,omitempty"`
	OverflowTable bool                `yaml:"overflow_table,omitempty"`
	Axes          []Axis              `yaml:"axes"`
}

// Axis is one axis entry of a histogram definition. Equidistant axes take
// bins, low and high; growable axes take either the same three keys or an
// explicit list of boundaries.
type Axis struct {
	Kind       format.AxisKind `yaml:"kind"`
	Bins       int             `yaml:"bins,omitempty"`
	Low        float64         `yaml:"low,omitempty"`
	High       float64         `yaml:"high,omitempty"`
	Boundaries []float64       `yaml:"boundaries,omitempty,flow"`
}

// Load reads and parses the YAML histogram definition at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a YAML histogram definition. Unknown keys are rejected.
// The result is not validated; see Validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse YAML: %w", errs.ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Growth == 0 {
		cfg.Growth = format.GrowthClamp
	}
}

// Marshal serializes a histogram definition to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Descriptors converts the axis entries to axis descriptors, in order.
func (c *Config) Descriptors() []axis.Descriptor {
	descs := make([]axis.Descriptor, len(c.Axes))
	for i, a := range c.Axes {
		descs[i] = axis.Descriptor{
			Kind:       a.Kind,
			NBins:      a.Bins,
			Low:        a.Low,
			High:       a.High,
			Boundaries: a.Boundaries,
		}
	}

	return descs
}

// Validate checks that the definition describes a constructible histogram.
func (c *Config) Validate() error {
	switch c.Growth {
	case format.GrowthClamp, format.GrowthStrict:
	default:
		return fmt.Errorf("%w: growth policy %v", errs.ErrInvalidConfig, c.Growth)
	}

	if len(c.Axes) == 0 {
		return errs.ErrNoAxes
	}

	for i, d := range c.Descriptors() {
		if _, err := axis.New(d); err != nil {
			return fmt.Errorf("axis %d: %w", i, err)
		}
	}

	return nil
}

// Options returns the histogram options the definition selects.
func (c *Config) Options() []hist.Option {
	opts := []hist.Option{hist.WithGrowthPolicy(c.Growth)}
	if c.OverflowTable {
		opts = append(opts, hist.WithOverflowTable())
	}

	return opts
}

// Build validates the definition and creates the histogram it describes.
// Options given here are applied after the ones from the definition.
func (c *Config) Build(opts ...hist.Option) (*hist.Histogram, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return hist.NewFromDescriptors(c.Descriptors(), append(c.Options(), opts...)...)
}
