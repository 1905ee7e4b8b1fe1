package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/claireguyot/root/axis"
	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/format"
	"github.com/stretchr/testify/require"
)

const sample = `
growth: strict
overflow_table: true
axes:
  - {kind: equidistant, bins: 2, low: 0, high: 2}
  - {kind: growable, bins: 3, low: 3.0, high: 5.3}
  - {kind: grow, boundaries: [0, 1, 3, 7]}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Equal(t, format.GrowthStrict, cfg.Growth)
	require.True(t, cfg.OverflowTable)
	require.Equal(t, []axis.Descriptor{
		{Kind: format.KindEquidistant, NBins: 2, Low: 0, High: 2},
		{Kind: format.KindGrowable, NBins: 3, Low: 3.0, High: 5.3},
		{Kind: format.KindGrowable, Boundaries: []float64{0, 1, 3, 7}},
	}, cfg.Descriptors())
	require.NoError(t, cfg.Validate())
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("axes:\n  - {kind: fixed, bins: 4, low: -1, high: 1}\n"))
	require.NoError(t, err)
	require.Equal(t, format.GrowthClamp, cfg.Growth)
	require.False(t, cfg.OverflowTable)
	require.Equal(t, format.KindEquidistant, cfg.Axes[0].Kind)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "axes: []\nbinz: 3\n"},
		{"unknown axis kind", "axes:\n  - {kind: circular, bins: 4, low: 0, high: 1}\n"},
		{"unknown growth policy", "growth: sometimes\naxes: []\n"},
		{"malformed", "axes: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty document", "", errs.ErrNoAxes},
		{"no axes", "axes: []\n", errs.ErrNoAxes},
		{"zero bins", "axes:\n  - {kind: equidistant, bins: 0, low: 0, high: 1}\n", errs.ErrInvalidBinCount},
		{"inverted range", "axes:\n  - {kind: equidistant, bins: 2, low: 1, high: 0}\n", errs.ErrInvalidRange},
		{"missing kind", "axes:\n  - {bins: 2, low: 0, high: 1}\n", errs.ErrUnknownAxisKind},
		{"unsorted boundaries", "axes:\n  - {kind: growable, boundaries: [0, 2, 1]}\n", errs.ErrInvalidBoundaries},
		{"boundaries on equidistant", "axes:\n  - {kind: equidistant, boundaries: [0, 1]}\n", errs.ErrInvalidBoundaries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			require.ErrorIs(t, cfg.Validate(), tt.want)

			_, err = cfg.Build()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	h, err := cfg.Build()
	require.NoError(t, err)

	require.Equal(t, 3, h.GetNDims())
	require.Equal(t, format.GrowthStrict, h.GetGrowthPolicy())
	require.True(t, h.Layout().HasOverflowTable())
	require.Equal(t, 4*3*3, h.GetNBins())
	require.Equal(t, 2*3*3, h.GetNRegularBins())

	_, err = h.GetBinIndex(0.5, 4, 8)
	require.ErrorIs(t, err, errs.ErrCoordinateOutOfRange)

	index, err := h.GetBinIndex(1.5, 3.1, 0.5)
	require.NoError(t, err)
	require.Equal(t, 2, index)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Axes, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := Marshal(cfg)
	require.NoError(t, err)
	require.Contains(t, string(data), "growth: strict")
	require.Contains(t, string(data), "kind: growable")

	again, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}
