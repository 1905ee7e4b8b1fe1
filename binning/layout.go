package binning

import (
	"fmt"
	"math"

	"github.com/claireguyot/root/axis"
	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/internal/hash"
	"github.com/claireguyot/root/internal/options"
)

// Axis is the capability set the composer needs from an axis.
// *axis.Equidistant and *axis.Growable satisfy it.
type Axis interface {
	GetNBinsNoOver() int
	CanGrow() bool
	GetBinFrom(bin int) float64
	GetBinCenter(bin int) float64
	GetBinTo(bin int) float64
	FindBin(x float64) int
}

// dim is the per-axis part of a layout.
//
// Row-major positions number the identifier sequence of the axis from 0:
// [-1, 1..n, -2] maps to [0, 1..n, n+1] on fixed-range axes and [1..n] maps
// to [0..n-1] on growable ones.
type dim struct {
	nBins   int  // regular bins
	fixed   bool // has underflow and overflow bins
	extent  int  // all bins
	stride  int  // product of the extents of the faster axes
	rstride int  // product of the regular bin counts of the faster axes
}

func (d dim) position(bin int) (int, bool) {
	switch {
	case bin >= 1 && bin <= d.nBins:
		if d.fixed {
			return bin, true
		}

		return bin - 1, true
	case d.fixed && bin == axis.Underflow:
		return 0, true
	case d.fixed && bin == axis.Overflow:
		return d.nBins + 1, true
	default:
		return 0, false
	}
}

func (d dim) local(pos int) int {
	if !d.fixed {
		return pos + 1
	}
	switch pos {
	case 0:
		return axis.Underflow
	case d.nBins + 1:
		return axis.Overflow
	default:
		return pos
	}
}

func (d dim) isRegular(pos int) bool {
	return !d.fixed || (pos >= 1 && pos <= d.nBins)
}

// regularBelow counts the regular bins at positions lower than pos.
func (d dim) regularBelow(pos int) int {
	if !d.fixed {
		return pos
	}

	return min(max(pos-1, 0), d.nBins)
}

// Layout composes per-axis local bin identifiers into global bin indices.
//
// Bin combinations are enumerated row-major with axis 0 advancing fastest.
// Walking that enumeration once, fully regular combinations receive
// 1, 2, 3, ... and every combination touching an underflow or overflow bin
// receives -1, -2, -3, ... in visitation order. Layout computes the same
// assignment in O(D) without walking.
//
// A Layout never mutates its axes and is safe for concurrent use.
type Layout struct {
	axes      []Axis
	dims      []dim
	nBins     int
	nRegular  int
	nOverflow int

	// overflow maps overflow index -m to the row-major position of its
	// combination at overflow[m-1]. Nil unless WithOverflowTable is used.
	// Shared between layouts of the same shape; never written after build.
	overflow []int
}

// NewLayout builds the global index layout of an ordered list of axes.
//
// Returns errs.ErrNoAxes if axes is empty, errs.ErrInvalidBinCount if an
// axis reports fewer than one regular bin, and errs.ErrTooManyBins if the
// number of bin combinations does not fit in an int.
func NewLayout(axes []Axis, opts ...Option) (*Layout, error) {
	if len(axes) == 0 {
		return nil, errs.ErrNoAxes
	}

	cfg := &layoutConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	l := &Layout{
		axes: append([]Axis(nil), axes...),
		dims: make([]dim, len(axes)),
	}

	stride, rstride := 1, 1
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("axis %d: %w: nil axis", i, errs.ErrInvalidConfig)
		}

		n := a.GetNBinsNoOver()
		if n < 1 {
			return nil, fmt.Errorf("axis %d: %w: %d", i, errs.ErrInvalidBinCount, n)
		}

		d := dim{nBins: n, fixed: !a.CanGrow(), extent: n, stride: stride, rstride: rstride}
		if d.fixed {
			d.extent = n + 2
		}
		l.dims[i] = d

		var ok bool
		if stride, ok = mulInt(stride, d.extent); !ok {
			return nil, fmt.Errorf("axis %d: %w", i, errs.ErrTooManyBins)
		}
		rstride, _ = mulInt(rstride, d.nBins) // rstride <= stride
	}

	l.nBins = stride
	l.nRegular = rstride
	l.nOverflow = stride - rstride

	if cfg.cache != nil {
		l.overflow = cfg.cache.table(l)
	}

	return l, nil
}

func mulInt(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}

	return a * b, true
}

// NDims returns the number of axes.
func (l *Layout) NDims() int { return len(l.dims) }

// Axis returns the i-th axis.
func (l *Layout) Axis(i int) Axis { return l.axes[i] }

// NBins returns the number of addressable bins, regular and overflow.
func (l *Layout) NBins() int { return l.nBins }

// NRegularBins returns the number of fully regular bin combinations.
func (l *Layout) NRegularBins() int { return l.nRegular }

// NOverflowBins returns the number of bin combinations touching an
// underflow or overflow bin.
func (l *Layout) NOverflowBins() int { return l.nOverflow }

// HasOverflowTable reports whether overflow indices are inverted through a
// precomputed table rather than by search.
func (l *Layout) HasOverflowTable() bool { return l.overflow != nil }

// shapes returns the per-axis shape list that determines this layout.
func (l *Layout) shapes() []hash.Shape {
	shapes := make([]hash.Shape, len(l.dims))
	for i, d := range l.dims {
		shapes[i] = hash.Shape{NBins: d.nBins, CanGrow: !d.fixed}
	}

	return shapes
}

// Fingerprint returns the xxHash64 fingerprint of the layout shape. Layouts
// whose axes have the same bin counts and kinds share a fingerprint even if
// their ranges differ, since the index assignment does not depend on ranges.
func (l *Layout) Fingerprint() uint64 { return hash.Layout(l.shapes()) }

// Key returns the canonical text form of the layout shape, e.g. "E2.G3".
func (l *Layout) Key() string { return hash.Key(l.shapes()) }
