package axis

import (
	"fmt"
	"math"

	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/format"
)

// Local bin identifiers of the non-regular categories.
// Regular bins are numbered 1..GetNBinsNoOver().
const (
	Underflow = -1
	Overflow  = -2
)

// Axis is one dimension of a histogram.
//
// The interface is sealed: *Equidistant and *Growable are its only
// implementations. Code that only needs to bin coordinates should accept the
// narrower capability set (see binning.Axis) instead.
type Axis interface {
	// GetNBinsNoOver returns the number of regular bins.
	GetNBinsNoOver() int
	// CanGrow reports whether the axis lacks underflow and overflow bins.
	CanGrow() bool
	// GetBinFrom returns the lower edge of a local bin, or NaN if the bin
	// does not exist on this axis.
	GetBinFrom(bin int) float64
	// GetBinCenter returns the center of a local bin, or NaN if the bin
	// does not exist on this axis.
	GetBinCenter(bin int) float64
	// GetBinTo returns the upper edge of a local bin, or NaN if the bin
	// does not exist on this axis.
	GetBinTo(bin int) float64
	// FindBin classifies a coordinate into a local bin identifier.
	FindBin(x float64) int

	// Kind returns the axis variant.
	Kind() format.AxisKind
	// Descriptor returns the parameters the axis was built from.
	Descriptor() Descriptor

	sealed()
}

// Descriptor holds the construction parameters of an axis.
//
// Equidistant axes use NBins, Low and High. Growable axes use either NBins,
// Low and High (uniform initial partition) or Boundaries (explicit initial
// partition, NBins+1 strictly increasing edges; NBins may be left zero).
type Descriptor struct {
	Kind       format.AxisKind
	NBins      int
	Low        float64
	High       float64
	Boundaries []float64
}

// New builds the axis variant a descriptor names.
func New(d Descriptor) (Axis, error) {
	switch d.Kind {
	case format.KindEquidistant:
		if len(d.Boundaries) > 0 {
			return nil, fmt.Errorf("%w: equidistant axis takes a range, not boundaries", errs.ErrInvalidBoundaries)
		}

		return NewEquidistant(d.NBins, d.Low, d.High)
	case format.KindGrowable:
		if len(d.Boundaries) == 0 {
			return NewGrowable(d.NBins, d.Low, d.High)
		}
		if d.NBins != 0 && d.NBins != len(d.Boundaries)-1 {
			return nil, fmt.Errorf("%w: %d bins need %d boundaries, got %d",
				errs.ErrInvalidBoundaries, d.NBins, d.NBins+1, len(d.Boundaries))
		}

		return NewGrowableFromBoundaries(d.Boundaries)
	default:
		return nil, fmt.Errorf("%w: %v", errs.ErrUnknownAxisKind, d.Kind)
	}
}

// BinProperties describes one local bin of an axis.
type BinProperties struct {
	Index  int
	From   float64
	Center float64
	To     float64
}

// Sequence returns the local bin identifiers of an axis in enumeration order:
// [-1, 1, ..., n, -2] for fixed-range axes and [1, ..., n] for growable ones.
func Sequence(a Axis) []int {
	n := a.GetNBinsNoOver()
	seq := make([]int, 0, TotalBins(a))
	if !a.CanGrow() {
		seq = append(seq, Underflow)
	}
	for bin := 1; bin <= n; bin++ {
		seq = append(seq, bin)
	}
	if !a.CanGrow() {
		seq = append(seq, Overflow)
	}

	return seq
}

// Properties returns the boundaries and center of every local bin of an
// axis, in the order given by Sequence.
func Properties(a Axis) []BinProperties {
	seq := Sequence(a)
	props := make([]BinProperties, len(seq))
	for i, bin := range seq {
		props[i] = BinProperties{
			Index:  bin,
			From:   a.GetBinFrom(bin),
			Center: a.GetBinCenter(bin),
			To:     a.GetBinTo(bin),
		}
	}

	return props
}

// TotalBins returns the number of local bins of an axis, including
// underflow and overflow when the axis has them.
func TotalBins(a Axis) int {
	if a.CanGrow() {
		return a.GetNBinsNoOver()
	}

	return a.GetNBinsNoOver() + 2
}

// midpoint halves before adding so that extreme edges do not overflow.
func midpoint(from, to float64) float64 {
	return 0.5*from + 0.5*to
}

// checkRange validates the range of an axis split into nBins equal bins.
func checkRange(nBins int, low, high float64) error {
	if nBins < 1 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBinCount, nBins)
	}
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return fmt.Errorf("%w: [%g, %g) is not finite", errs.ErrInvalidRange, low, high)
	}
	if low >= high {
		return fmt.Errorf("%w: low %g must be below high %g", errs.ErrInvalidRange, low, high)
	}

	span := high - low
	if math.IsInf(span, 0) {
		return fmt.Errorf("%w: [%g, %g) is too wide", errs.ErrInvalidRange, low, high)
	}

	width := span / float64(nBins)
	if width == 0 || low+width == low || high-width == high {
		return fmt.Errorf("%w: [%g, %g) is too narrow for %d bins", errs.ErrInvalidRange, low, high, nBins)
	}

	return nil
}

// refine corrects an arithmetic bin guess so that it agrees with the
// reported edges: edge(k-1) <= x < edge(k), where edge(0) is the lower
// edge of bin 1.
func refine(bin, nBins int, x float64, edge func(int) float64) int {
	bin = min(max(bin, 1), nBins)
	for bin > 1 && x < edge(bin-1) {
		bin--
	}
	for bin < nBins && x >= edge(bin) {
		bin++
	}

	return bin
}
