// Package hist provides the histogram façade: a fixed tuple of axes, the
// global bin index composed from them, and a weighted bin-content container.
//
// A point maps to one global bin index. Positive indices 1..GetNRegularBins()
// name bins that are regular on every axis; negative indices
// -1..-GetNOverflowBins() name bins that touch the underflow or overflow bin
// of at least one fixed-range axis.
//
// Basic usage:
//
//	h, err := hist.NewFromDescriptors([]axis.Descriptor{
//	    {Kind: format.KindEquidistant, NBins: 2, Low: 0, High: 2},
//	    {Kind: format.KindEquidistant, NBins: 2, Low: -1, High: 1},
//	})
//	if err != nil {
//	    return err
//	}
//
//	idx, _ := h.GetBinIndex(0.5, -0.5)   // 1
//	idx, _ = h.GetBinIndex(100, 100)     // -12
//	from, _ := h.GetBinFrom(1)           // [0 -1]
//	to, _ := h.GetBinTo(1)               // [1 0]
//
// Growable axes have no underflow or overflow bins. Until their range can be
// extended, coordinates outside the partition are clamped to the nearest bin,
// or rejected with errs.ErrCoordinateOutOfRange under format.GrowthStrict.
package hist
