package binning

import (
	"fmt"

	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/internal/pool"
)

// GlobalIndex composes one local bin identifier per axis into a global bin
// index: positive for fully regular combinations, negative otherwise.
//
// Returns errs.ErrDimensionMismatch if len(local) differs from the number of
// axes and errs.ErrInvalidLocalBin if an identifier does not exist on its axis.
func (l *Layout) GlobalIndex(local []int) (int, error) {
	if len(local) != len(l.dims) {
		return 0, fmt.Errorf("%w: got %d local bins for %d axes", errs.ErrDimensionMismatch, len(local), len(l.dims))
	}

	// Walk from the slowest axis down. pos is the row-major position of the
	// combination; regBefore counts the fully regular combinations enumerated
	// before it, and stops growing at the first non-regular axis since no
	// regular combination shares that prefix.
	pos, regBefore, regular := 0, 0, true
	for a := len(l.dims) - 1; a >= 0; a-- {
		d := l.dims[a]

		p, ok := d.position(local[a])
		if !ok {
			return 0, fmt.Errorf("axis %d: %w: %d", a, errs.ErrInvalidLocalBin, local[a])
		}

		pos += p * d.stride
		if regular {
			regBefore += d.regularBelow(p) * d.rstride
			regular = d.isRegular(p)
		}
	}

	if regular {
		return regBefore + 1, nil
	}

	return -(pos + 1 - regBefore), nil
}

// FindGlobal classifies each coordinate on its axis and returns the global
// bin index of the resulting combination.
//
// Returns errs.ErrDimensionMismatch if len(coords) differs from the number
// of axes.
func (l *Layout) FindGlobal(coords []float64) (int, error) {
	if len(coords) != len(l.dims) {
		return 0, fmt.Errorf("%w: got %d coordinates for %d axes", errs.ErrDimensionMismatch, len(coords), len(l.dims))
	}

	local, release := pool.GetIntSlice(len(coords))
	defer release()

	l.FindLocal(coords, local)

	return l.GlobalIndex(local)
}

// FindLocal classifies each coordinate on its axis and stores the local bin
// identifiers in dst, which must have one element per axis.
func (l *Layout) FindLocal(coords []float64, dst []int) {
	for a, x := range coords {
		dst[a] = l.axes[a].FindBin(x)
	}
}

// LocalBins returns the per-axis local bin identifiers of a global bin index,
// reusing dst when it has enough capacity.
//
// Returns errs.ErrInvalidBinIndex for 0 and for indices outside
// [-NOverflowBins(), NRegularBins()].
func (l *Layout) LocalBins(global int, dst []int) ([]int, error) {
	if cap(dst) < len(l.dims) {
		dst = make([]int, len(l.dims))
	}
	dst = dst[:len(l.dims)]

	switch {
	case global > 0 && global <= l.nRegular:
		k := global - 1
		for a, d := range l.dims {
			dst[a] = k%d.nBins + 1
			k /= d.nBins
		}
	case global < 0 && global >= -l.nOverflow:
		pos := l.overflowPosition(-global)
		for a, d := range l.dims {
			dst[a] = d.local(pos % d.extent)
			pos /= d.extent
		}
	default:
		return nil, l.invalidIndex(global)
	}

	return dst, nil
}

func (l *Layout) invalidIndex(global int) error {
	return fmt.Errorf("%w: %d (layout has %d regular and %d overflow bins)",
		errs.ErrInvalidBinIndex, global, l.nRegular, l.nOverflow)
}

// BinFrom returns the lower edge of the bin on every axis.
func (l *Layout) BinFrom(global int) ([]float64, error) {
	return l.binCoords(global, Axis.GetBinFrom)
}

// BinCenter returns the center of the bin on every axis.
func (l *Layout) BinCenter(global int) ([]float64, error) {
	return l.binCoords(global, Axis.GetBinCenter)
}

// BinTo returns the upper edge of the bin on every axis.
func (l *Layout) BinTo(global int) ([]float64, error) {
	return l.binCoords(global, Axis.GetBinTo)
}

func (l *Layout) binCoords(global int, coord func(Axis, int) float64) ([]float64, error) {
	scratch, release := pool.GetIntSlice(len(l.dims))
	defer release()

	local, err := l.LocalBins(global, scratch)
	if err != nil {
		return nil, err
	}

	coords := make([]float64, len(local))
	for a, bin := range local {
		coords[a] = coord(l.axes[a], bin)
	}

	return coords, nil
}

// Slot maps a global bin index to a dense offset in [0, NBins()): regular
// index k maps to k-1 and overflow index -m to NRegularBins()+m-1.
func (l *Layout) Slot(global int) (int, error) {
	switch {
	case global > 0 && global <= l.nRegular:
		return global - 1, nil
	case global < 0 && global >= -l.nOverflow:
		return l.nRegular - global - 1, nil
	default:
		return 0, l.invalidIndex(global)
	}
}

// GlobalFromSlot is the inverse of Slot.
func (l *Layout) GlobalFromSlot(slot int) (int, error) {
	switch {
	case slot >= 0 && slot < l.nRegular:
		return slot + 1, nil
	case slot >= l.nRegular && slot < l.nBins:
		return l.nRegular - slot - 1, nil
	default:
		return 0, fmt.Errorf("%w: %d not in [0, %d)", errs.ErrInvalidSlot, slot, l.nBins)
	}
}

// overflowPosition returns the row-major position of the m-th non-regular
// combination, 1 <= m <= nOverflow.
func (l *Layout) overflowPosition(m int) int {
	if l.overflow != nil {
		return l.overflow[m-1]
	}

	// The number of non-regular combinations at positions <= p is
	// p+1-regularBefore(p+1), which is non-decreasing in p; the m-th one
	// sits where that count first reaches m.
	lo, hi := 0, l.nBins-1
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if mid+1-l.regularBefore(mid+1) >= m {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// regularBefore counts the fully regular combinations at row-major positions
// lower than pos.
func (l *Layout) regularBefore(pos int) int {
	if pos >= l.nBins {
		return l.nRegular
	}

	n := 0
	for a := len(l.dims) - 1; a >= 0; a-- {
		d := l.dims[a]
		p := (pos / d.stride) % d.extent
		n += d.regularBelow(p) * d.rstride
		if !d.isRegular(p) {
			break
		}
	}

	return n
}
