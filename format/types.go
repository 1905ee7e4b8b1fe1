package format

import (
	"fmt"
	"strings"
)

type (
	AxisKind     uint8
	GrowthPolicy uint8
)

const (
	KindEquidistant AxisKind = 0x1 // KindEquidistant is a fixed-range axis with underflow and overflow bins.
	KindGrowable    AxisKind = 0x2 // KindGrowable is an axis without underflow and overflow bins.

	GrowthClamp  GrowthPolicy = 0x1 // GrowthClamp maps out-of-partition coordinates to the nearest bin.
	GrowthStrict GrowthPolicy = 0x2 // GrowthStrict rejects out-of-partition coordinates.
)

func (k AxisKind) String() string {
	switch k {
	case KindEquidistant:
		return "Equidistant"
	case KindGrowable:
		return "Growable"
	default:
		return "Unknown"
	}
}

// CanGrow reports whether axes of this kind lack underflow and overflow bins.
func (k AxisKind) CanGrow() bool {
	return k == KindGrowable
}

// MarshalText implements encoding.TextMarshaler.
func (k AxisKind) MarshalText() ([]byte, error) {
	if k != KindEquidistant && k != KindGrowable {
		return nil, fmt.Errorf("invalid axis kind: %d", uint8(k))
	}

	return []byte(strings.ToLower(k.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AxisKind) UnmarshalText(text []byte) error {
	kind, err := ParseAxisKind(string(text))
	if err != nil {
		return err
	}
	*k = kind

	return nil
}

// ParseAxisKind parses an axis kind name, case-insensitively.
// "fixed" and "grow" are accepted as aliases.
func ParseAxisKind(s string) (AxisKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equidistant", "fixed":
		return KindEquidistant, nil
	case "growable", "grow":
		return KindGrowable, nil
	default:
		return 0, fmt.Errorf("invalid axis kind: %q", s)
	}
}

func (p GrowthPolicy) String() string {
	switch p {
	case GrowthClamp:
		return "Clamp"
	case GrowthStrict:
		return "Strict"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p GrowthPolicy) MarshalText() ([]byte, error) {
	if p != GrowthClamp && p != GrowthStrict {
		return nil, fmt.Errorf("invalid growth policy: %d", uint8(p))
	}

	return []byte(strings.ToLower(p.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *GrowthPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseGrowthPolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy

	return nil
}

// ParseGrowthPolicy parses a growth policy name, case-insensitively.
func ParseGrowthPolicy(s string) (GrowthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp":
		return GrowthClamp, nil
	case "strict":
		return GrowthStrict, nil
	default:
		return 0, fmt.Errorf("invalid growth policy: %q", s)
	}
}
