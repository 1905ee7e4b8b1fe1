package pool

import "sync"

// intSlicePool holds per-call local bin tuples, one int per axis.
var intSlicePool = sync.Pool{
	New: func() any { return &[]int{} },
}

// GetIntSlice retrieves and resizes an int slice from the pool.
//
// The returned slice has length size; its contents are unspecified.
// The caller must call the returned cleanup function once it no longer
// uses the slice, and must not keep references to it afterwards.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []int: A slice with length equal to size
//   - func(): Cleanup function that returns the slice to the pool
//
// Example:
//
//	local, release := pool.GetIntSlice(layout.NDims())
//	defer release()
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	if cap(*ptr) < size {
		*ptr = make([]int, size)
	}
	*ptr = (*ptr)[:size]

	return *ptr, func() { intSlicePool.Put(ptr) }
}
