package binning

import "iter"

// All enumerates every bin combination in row-major order, axis 0 advancing
// fastest, and yields the global index assigned to it together with its
// local bin identifiers.
//
// The indices are assigned while walking, one counter for fully regular
// combinations counting up from 1 and one for the others counting down
// from -1. This is the reference assignment that GlobalIndex computes in
// closed form.
//
// The local slice is reused between iterations; copy it to retain it.
//
// Example:
//
//	for global, local := range layout.All() {
//	    fmt.Println(global, local)
//	}
func (l *Layout) All() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		ndims := len(l.dims)
		pos := make([]int, ndims)
		local := make([]int, ndims)
		for a, d := range l.dims {
			local[a] = d.local(0)
		}

		nextRegular, nextOverflow := 0, 0
		for {
			regular := true
			for a, d := range l.dims {
				if !d.isRegular(pos[a]) {
					regular = false
					break
				}
			}

			var global int
			if regular {
				nextRegular++
				global = nextRegular
			} else {
				nextOverflow--
				global = nextOverflow
			}

			if !yield(global, local) {
				return
			}

			// Advance the odometer.
			a := 0
			for ; a < ndims; a++ {
				d := l.dims[a]
				pos[a]++
				if pos[a] < d.extent {
					local[a] = d.local(pos[a])
					break
				}
				pos[a] = 0
				local[a] = d.local(0)
			}
			if a == ndims {
				return
			}
		}
	}
}
