// Package root provides a multi-dimensional histogram binning engine.
//
// A histogram is built from an ordered list of axes. Each axis is either
// equidistant (a fixed range split into equal bins, plus one underflow and
// one overflow bin) or growable (an ordered partition without underflow and
// overflow bins). The engine composes the local bins of all axes into one
// global bin index that keys a flat bin-content container:
//
//   - positive indices 1..N name bins that are regular on every axis
//   - negative indices -1..-M name bins that touch the underflow or overflow
//     bin of at least one axis
//
// Indices are assigned in row-major order over the per-axis bin sequences
// [underflow, 1..n, overflow], axis 0 varying fastest.
//
// # Basic Usage
//
//	import "github.com/claireguyot/root"
//
//	h, _ := root.NewHistogram(
//	    root.Equidistant(2, 0, 2),
//	    root.Equidistant(2, -1, 1),
//	)
//
//	idx, _ := h.GetBinIndex(0.5, -0.5)      // 1
//	idx, _ = h.GetBinIndex(-100, -100)      // -1
//	center, _ := h.GetBinCenter(idx)
//
// Histograms can also be defined in YAML:
//
//	h, _ := root.LoadHistogram("hist.yaml")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the hist, axis
// and config packages. For finer control, such as sharing overflow lookup
// tables through a dedicated cache, use those packages directly.
package root

import (
	"slices"

	"github.com/claireguyot/root/axis"
	"github.com/claireguyot/root/config"
	"github.com/claireguyot/root/format"
	"github.com/claireguyot/root/hist"
)

// Histogram is a histogram over a fixed tuple of axes.
type Histogram = hist.Histogram

// Option configures a Histogram at construction.
type Option = hist.Option

// Equidistant describes a fixed-range axis of nBins equal bins over
// [low, high), with underflow and overflow bins.
func Equidistant(nBins int, low, high float64) axis.Descriptor {
	return axis.Descriptor{Kind: format.KindEquidistant, NBins: nBins, Low: low, High: high}
}

// Growable describes a growable axis whose initial partition splits
// [low, high) into nBins equal bins.
func Growable(nBins int, low, high float64) axis.Descriptor {
	return axis.Descriptor{Kind: format.KindGrowable, NBins: nBins, Low: low, High: high}
}

// GrowableBoundaries describes a growable axis whose initial partition has
// the given strictly increasing bin edges.
func GrowableBoundaries(bounds ...float64) axis.Descriptor {
	return axis.Descriptor{Kind: format.KindGrowable, Boundaries: slices.Clone(bounds)}
}

// NewHistogram creates a histogram over the described axes with default
// options.
//
// Example:
//
//	h, err := root.NewHistogram(root.Equidistant(100, -5, 5), root.Growable(10, 0, 1))
func NewHistogram(descs ...axis.Descriptor) (*Histogram, error) {
	return hist.NewFromDescriptors(descs)
}

// NewHistogramWithOptions is like NewHistogram but applies the given options.
//
// Example:
//
//	h, err := root.NewHistogramWithOptions(
//	    []axis.Descriptor{root.Growable(3, 0, 3)},
//	    hist.WithGrowthPolicy(format.GrowthStrict),
//	)
func NewHistogramWithOptions(descs []axis.Descriptor, opts ...Option) (*Histogram, error) {
	return hist.NewFromDescriptors(descs, opts...)
}

// LoadHistogram creates the histogram defined in the YAML file at path.
// Options given here are applied after the ones from the file.
func LoadHistogram(path string, opts ...Option) (*Histogram, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return cfg.Build(opts...)
}
