package hist

import (
	"fmt"
	"math"

	"github.com/claireguyot/root/axis"
	"github.com/claireguyot/root/binning"
	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/format"
	"github.com/claireguyot/root/internal/options"
	"github.com/sirupsen/logrus"
)

// Histogram owns a fixed tuple of axes, the global index layout composed
// from them, and a bin-content container addressed by global bin index.
//
// The query methods (GetBinIndex, GetBinFrom, GetBinCenter, GetBinTo and
// the Get* counters) are safe for concurrent use. Fill and FillWeight
// mutate the content and require exclusive access.
type Histogram struct {
	axes    []axis.Axis
	layout  *binning.Layout
	policy  format.GrowthPolicy
	content *Content
}

// New creates a histogram over the given axes, in order.
//
// The histogram rebuilds each axis from its descriptor, so it never shares
// axis objects with the caller or with other histograms.
//
// Parameters:
//   - axes: One axis per dimension, at least one
//   - opts: Optional configuration (WithGrowthPolicy, WithOverflowTable, ...)
//
// Returns:
//   - *Histogram: The created histogram
//   - error: errs.ErrNoAxes, errs.ErrTooManyBins, or an option error
func New(axes []axis.Axis, opts ...Option) (*Histogram, error) {
	descs := make([]axis.Descriptor, len(axes))
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("axis %d: %w: nil axis", i, errs.ErrInvalidConfig)
		}
		descs[i] = a.Descriptor()
	}

	return NewFromDescriptors(descs, opts...)
}

// NewFromDescriptors creates a histogram from an ordered list of axis
// descriptors.
//
// Example:
//
//	h, err := hist.NewFromDescriptors([]axis.Descriptor{
//	    {Kind: format.KindEquidistant, NBins: 2, Low: 0, High: 2},
//	    {Kind: format.KindGrowable, NBins: 3, Low: -1, High: 1},
//	})
func NewFromDescriptors(descs []axis.Descriptor, opts ...Option) (*Histogram, error) {
	if len(descs) == 0 {
		return nil, errs.ErrNoAxes
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	axes := make([]axis.Axis, len(descs))
	caps := make([]binning.Axis, len(descs))
	for i, d := range descs {
		a, err := axis.New(d)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		axes[i], caps[i] = a, a
	}

	layout, err := binning.NewLayout(caps, cfg.layoutOpts...)
	if err != nil {
		return nil, err
	}

	h := &Histogram{
		axes:    axes,
		layout:  layout,
		policy:  cfg.policy,
		content: newContent(layout.NBins()),
	}

	cfg.logger.WithFields(logrus.Fields{
		"dims":           layout.NDims(),
		"shape":          layout.Key(),
		"bins":           layout.NBins(),
		"regular_bins":   layout.NRegularBins(),
		"overflow_bins":  layout.NOverflowBins(),
		"overflow_table": layout.HasOverflowTable(),
		"growth_policy":  cfg.policy,
	}).Debug("histogram created")

	return h, nil
}

// GetNDims returns the number of axes.
func (h *Histogram) GetNDims() int { return len(h.axes) }

// GetAxis returns the i-th axis.
func (h *Histogram) GetAxis(i int) axis.Axis { return h.axes[i] }

// GetNBins returns the number of addressable bins, regular and overflow.
// It is the size of the content container.
func (h *Histogram) GetNBins() int { return h.layout.NBins() }

// GetNRegularBins returns the number of fully regular bins.
func (h *Histogram) GetNRegularBins() int { return h.layout.NRegularBins() }

// GetNOverflowBins returns the number of bins touching an underflow or
// overflow bin of some axis.
func (h *Histogram) GetNOverflowBins() int { return h.layout.NOverflowBins() }

// GetGrowthPolicy returns how out-of-partition coordinates on growable axes
// are handled.
func (h *Histogram) GetGrowthPolicy() format.GrowthPolicy { return h.policy }

// Layout returns the global index layout of the histogram.
func (h *Histogram) Layout() *binning.Layout { return h.layout }

// GetBinIndex returns the global bin index of a point, one coordinate per
// axis: positive for a regular bin, negative for a bin touching underflow or
// overflow.
//
// Returns errs.ErrDimensionMismatch if the number of coordinates differs
// from the number of axes, errs.ErrNaNCoordinate for NaN coordinates, and,
// under format.GrowthStrict, errs.ErrCoordinateOutOfRange for coordinates
// outside the partition of a growable axis.
func (h *Histogram) GetBinIndex(coords ...float64) (int, error) {
	if err := h.checkCoords(coords); err != nil {
		return 0, err
	}

	return h.layout.FindGlobal(coords)
}

func (h *Histogram) checkCoords(coords []float64) error {
	if len(coords) != len(h.axes) {
		return fmt.Errorf("%w: got %d coordinates for %d axes", errs.ErrDimensionMismatch, len(coords), len(h.axes))
	}

	for i, x := range coords {
		if math.IsNaN(x) {
			return fmt.Errorf("axis %d: %w", i, errs.ErrNaNCoordinate)
		}

		a := h.axes[i]
		if h.policy != format.GrowthStrict || !a.CanGrow() {
			continue
		}
		if low, high := a.GetBinFrom(1), a.GetBinTo(a.GetNBinsNoOver()); x < low || x >= high {
			return fmt.Errorf("axis %d: %w: %g not in [%g, %g)", i, errs.ErrCoordinateOutOfRange, x, low, high)
		}
	}

	return nil
}

// GetBinFrom returns the lower edge on every axis of the bin with the given
// global index. Returns errs.ErrInvalidBinIndex if no bin has that index.
func (h *Histogram) GetBinFrom(index int) ([]float64, error) {
	return h.layout.BinFrom(index)
}

// GetBinCenter returns the center on every axis of the bin with the given
// global index. Returns errs.ErrInvalidBinIndex if no bin has that index.
func (h *Histogram) GetBinCenter(index int) ([]float64, error) {
	return h.layout.BinCenter(index)
}

// GetBinTo returns the upper edge on every axis of the bin with the given
// global index. Returns errs.ErrInvalidBinIndex if no bin has that index.
func (h *Histogram) GetBinTo(index int) ([]float64, error) {
	return h.layout.BinTo(index)
}
