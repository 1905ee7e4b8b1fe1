package hash

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Shape is the part of an axis that determines a global index layout:
// the number of regular bins and whether underflow/overflow bins exist.
type Shape struct {
	NBins   int
	CanGrow bool
}

// Layout computes the xxHash64 fingerprint of an ordered list of axis shapes.
// Equal lists always produce equal fingerprints; different lists may
// collide, so callers that share state by fingerprint must compare Key too.
func Layout(shapes []Shape) uint64 {
	d := xxhash.New()

	var buf [9]byte
	for _, s := range shapes {
		binary.LittleEndian.PutUint64(buf[:8], uint64(s.NBins))
		buf[8] = 0
		if s.CanGrow {
			buf[8] = 1
		}
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Key returns the canonical text form of a list of shapes, one element per
// axis separated by dots: "E<n>" for fixed-range axes and "G<n>" for
// growable ones, e.g. "E8.G3".
func Key(shapes []Shape) string {
	var sb strings.Builder
	for i, s := range shapes {
		if i > 0 {
			sb.WriteByte('.')
		}
		if s.CanGrow {
			sb.WriteByte('G')
		} else {
			sb.WriteByte('E')
		}
		sb.WriteString(strconv.Itoa(s.NBins))
	}

	return sb.String()
}
