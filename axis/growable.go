package axis

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/format"
	"gonum.org/v1/gonum/floats"
)

// Growable is an axis whose range may be extended, and which therefore has
// no underflow or overflow bins.
//
// Extending the range is not supported yet: coordinates outside the initial
// partition are clamped into the first or last bin. Callers that must not
// clamp check the range themselves (see hist.WithGrowthPolicy).
type Growable struct {
	bounds  []float64
	uniform bool
	width   float64
}

var _ Axis = (*Growable)(nil)

// NewGrowable creates a growable axis whose initial partition splits
// [low, high) into nBins bins of equal width.
func NewGrowable(nBins int, low, high float64) (*Growable, error) {
	if err := checkRange(nBins, low, high); err != nil {
		return nil, err
	}

	bounds := floats.Span(make([]float64, nBins+1), low, high)
	bounds[0], bounds[nBins] = low, high

	if err := checkBoundaries(bounds); err != nil {
		return nil, err
	}

	return &Growable{
		bounds:  bounds,
		uniform: true,
		width:   (high - low) / float64(nBins),
	}, nil
}

// NewGrowableFromBoundaries creates a growable axis from an explicit initial
// partition. bounds holds the nBins+1 strictly increasing, finite bin edges.
// The slice is copied.
func NewGrowableFromBoundaries(bounds []float64) (*Growable, error) {
	if len(bounds) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 boundaries, got %d", errs.ErrInvalidBoundaries, len(bounds))
	}
	if err := checkBoundaries(bounds); err != nil {
		return nil, err
	}

	return &Growable{bounds: slices.Clone(bounds)}, nil
}

func checkBoundaries(bounds []float64) error {
	if floats.HasNaN(bounds) {
		return fmt.Errorf("%w: NaN boundary", errs.ErrInvalidBoundaries)
	}
	for i, b := range bounds {
		if math.IsInf(b, 0) {
			return fmt.Errorf("%w: boundary %d is infinite", errs.ErrInvalidBoundaries, i)
		}
		if i > 0 && b <= bounds[i-1] {
			return fmt.Errorf("%w: boundary %d (%g) does not exceed boundary %d (%g)",
				errs.ErrInvalidBoundaries, i, b, i-1, bounds[i-1])
		}
	}

	return nil
}

func (a *Growable) sealed() {}

// Kind returns format.KindGrowable.
func (a *Growable) Kind() format.AxisKind { return format.KindGrowable }

// Descriptor returns the parameters the axis was built from.
func (a *Growable) Descriptor() Descriptor {
	n := a.GetNBinsNoOver()
	if a.uniform {
		return Descriptor{Kind: format.KindGrowable, NBins: n, Low: a.bounds[0], High: a.bounds[n]}
	}

	return Descriptor{Kind: format.KindGrowable, NBins: n, Boundaries: slices.Clone(a.bounds)}
}

func (a *Growable) GetNBinsNoOver() int { return len(a.bounds) - 1 }

func (a *Growable) CanGrow() bool { return true }

// Boundaries returns a copy of the bin edges.
func (a *Growable) Boundaries() []float64 { return slices.Clone(a.bounds) }

func (a *Growable) edge(k int) float64 { return a.bounds[k] }

func (a *Growable) GetBinFrom(bin int) float64 {
	if bin < 1 || bin > a.GetNBinsNoOver() {
		return math.NaN()
	}

	return a.bounds[bin-1]
}

func (a *Growable) GetBinTo(bin int) float64 {
	if bin < 1 || bin > a.GetNBinsNoOver() {
		return math.NaN()
	}

	return a.bounds[bin]
}

func (a *Growable) GetBinCenter(bin int) float64 {
	return midpoint(a.GetBinFrom(bin), a.GetBinTo(bin))
}

// FindBin returns the bin whose half-open interval holds x. Coordinates
// below the partition map to bin 1; coordinates at or above it, and NaN,
// map to the last bin.
func (a *Growable) FindBin(x float64) int {
	n := a.GetNBinsNoOver()
	switch {
	case math.IsNaN(x), x >= a.bounds[n]:
		return n
	case x < a.bounds[0]:
		return 1
	}

	if a.uniform {
		return refine(1+int((x-a.bounds[0])/a.width), n, x, a.edge)
	}

	// First bin whose upper edge lies above x.
	return 1 + sort.Search(n, func(i int) bool { return a.bounds[i+1] > x })
}
