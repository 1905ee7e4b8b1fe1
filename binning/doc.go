// Package binning composes per-axis local bin identifiers into a single
// global bin index and back.
//
// # Enumeration
//
// Each axis contributes its identifier sequence: [-1, 1, ..., n, -2] for a
// fixed-range axis and [1, ..., n] for a growable one. The bin combinations
// of a histogram are the Cartesian product of these sequences, enumerated
// row-major with axis 0 advancing fastest. Walking the enumeration once,
// every fully regular combination receives the next positive index and
// every other combination the next negative index. For two fixed-range
// axes of 2 and 3 regular bins:
//
//	                 Axis 0
//	           UF  Reg1  Reg2  OF
//	     --------------------------
//	  A   UF  | -1   -2    -3   -4
//	  x  Reg1 | -5    1     2   -6
//	  .  Reg2 | -7    3     4   -8
//	     Reg3 | -9    5     6   -10
//	  1   OF  | -11 -12   -13   -14
//
// # Queries
//
// Layout.GlobalIndex computes the index of a combination in O(D).
// Layout.LocalBins inverts it: regular indices decode directly, overflow
// indices either through a binary search over row-major positions (the
// default, no extra memory) or through a lookup table (WithOverflowTable).
// Layout.All enumerates every combination with its index.
//
// Layouts only read their axes and are safe for concurrent use.
package binning
