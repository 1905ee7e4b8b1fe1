package axis

import (
	"math"

	"github.com/claireguyot/root/format"
)

// Equidistant is a fixed-range axis split into bins of equal width, with an
// underflow bin below its range and an overflow bin above it.
//
// The underflow bin spans [-math.MaxFloat64, low) and the overflow bin spans
// [high, math.MaxFloat64), so boundary arithmetic never meets infinities.
type Equidistant struct {
	nBins int
	low   float64
	high  float64
	width float64
}

var _ Axis = (*Equidistant)(nil)

// NewEquidistant creates an axis with nBins regular bins of equal width
// covering [low, high).
//
// Returns errs.ErrInvalidBinCount if nBins < 1 and errs.ErrInvalidRange if
// the range is not finite, not increasing, or too narrow to separate the bins.
func NewEquidistant(nBins int, low, high float64) (*Equidistant, error) {
	if err := checkRange(nBins, low, high); err != nil {
		return nil, err
	}

	return &Equidistant{
		nBins: nBins,
		low:   low,
		high:  high,
		width: (high - low) / float64(nBins),
	}, nil
}

func (a *Equidistant) sealed() {}

// Kind returns format.KindEquidistant.
func (a *Equidistant) Kind() format.AxisKind { return format.KindEquidistant }

// Descriptor returns the parameters the axis was built from.
func (a *Equidistant) Descriptor() Descriptor {
	return Descriptor{Kind: format.KindEquidistant, NBins: a.nBins, Low: a.low, High: a.high}
}

func (a *Equidistant) GetNBinsNoOver() int { return a.nBins }

func (a *Equidistant) CanGrow() bool { return false }

// Low returns the lower edge of the first regular bin.
func (a *Equidistant) Low() float64 { return a.low }

// High returns the upper edge of the last regular bin.
func (a *Equidistant) High() float64 { return a.high }

// Width returns the width of a regular bin.
func (a *Equidistant) Width() float64 { return a.width }

// edge returns the k-th regular edge, 0 <= k <= nBins.
// The outer edges are returned exactly as given at construction.
func (a *Equidistant) edge(k int) float64 {
	switch k {
	case 0:
		return a.low
	case a.nBins:
		return a.high
	default:
		return a.low + float64(k)*a.width
	}
}

func (a *Equidistant) GetBinFrom(bin int) float64 {
	switch {
	case bin == Underflow:
		return -math.MaxFloat64
	case bin == Overflow:
		return a.high
	case bin >= 1 && bin <= a.nBins:
		return a.edge(bin - 1)
	default:
		return math.NaN()
	}
}

func (a *Equidistant) GetBinTo(bin int) float64 {
	switch {
	case bin == Underflow:
		return a.low
	case bin == Overflow:
		return math.MaxFloat64
	case bin >= 1 && bin <= a.nBins:
		return a.edge(bin)
	default:
		return math.NaN()
	}
}

func (a *Equidistant) GetBinCenter(bin int) float64 {
	return midpoint(a.GetBinFrom(bin), a.GetBinTo(bin))
}

// FindBin returns Underflow for x < low, Overflow for x >= high (and for
// NaN), and the regular bin whose half-open interval holds x otherwise.
func (a *Equidistant) FindBin(x float64) int {
	switch {
	case x < a.low:
		return Underflow
	case x >= a.high, math.IsNaN(x):
		return Overflow
	}

	return refine(1+int((x-a.low)/a.width), a.nBins, x, a.edge)
}
