package binning

import (
	"fmt"

	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/internal/options"
)

type layoutConfig struct {
	cache *TableCache
}

// Option configures a Layout at construction.
type Option = options.Option[*layoutConfig]

// WithOverflowTable inverts overflow indices through a precomputed lookup
// table shared via DefaultTableCache, instead of searching. The table costs
// one int per overflow bin.
func WithOverflowTable() Option {
	return options.NoError("WithOverflowTable", func(c *layoutConfig) {
		c.cache = defaultTableCache
	})
}

// WithTableCache is like WithOverflowTable but shares tables through the
// given cache.
func WithTableCache(cache *TableCache) Option {
	return options.New("WithTableCache", func(c *layoutConfig) error {
		if cache == nil {
			return fmt.Errorf("%w: nil table cache", errs.ErrInvalidConfig)
		}
		c.cache = cache

		return nil
	})
}
