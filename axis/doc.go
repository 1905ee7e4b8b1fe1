// Package axis implements the axis variants of a histogram and the local
// bin classification of a single coordinate.
//
// Two variants exist:
//
//   - Equidistant: a fixed range [low, high) split into n bins of equal
//     width, plus an underflow bin (local id -1) and an overflow bin
//     (local id -2).
//   - Growable: an ordered initial partition of n bins with no underflow or
//     overflow bins.
//
// Regular bins are numbered 1..n. Every bin is half-open: a coordinate equal
// to a bin's upper edge belongs to the next bin, or to the overflow bin when
// it is the upper edge of the last regular bin.
//
// # Usage
//
//	a, err := axis.NewEquidistant(4, 0.0, 2.0)
//	if err != nil {
//	    return err
//	}
//	bin := a.FindBin(0.6)       // 2
//	from := a.GetBinFrom(bin)   // 0.5
//	to := a.GetBinTo(bin)       // 1.0
//
// Axes are immutable and safe for concurrent use.
package axis
