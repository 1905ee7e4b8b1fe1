package hist

import (
	"fmt"
	"io"

	"github.com/claireguyot/root/binning"
	"github.com/claireguyot/root/errs"
	"github.com/claireguyot/root/format"
	"github.com/claireguyot/root/internal/options"
	"github.com/sirupsen/logrus"
)

// Config holds the construction settings of a Histogram.
type Config struct {
	policy     format.GrowthPolicy
	layoutOpts []binning.Option
	logger     logrus.FieldLogger
}

func defaultConfig() *Config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &Config{
		policy: format.GrowthClamp,
		logger: logger,
	}
}

// Option configures a Histogram at construction.
type Option = options.Option[*Config]

// WithGrowthPolicy selects how coordinates outside the partition of a
// growable axis are handled. The default, format.GrowthClamp, maps them to
// the nearest bin; format.GrowthStrict makes GetBinIndex and Fill return
// errs.ErrCoordinateOutOfRange.
func WithGrowthPolicy(policy format.GrowthPolicy) Option {
	return options.New("WithGrowthPolicy", func(c *Config) error {
		switch policy {
		case format.GrowthClamp, format.GrowthStrict:
			c.policy = policy
			return nil
		default:
			return fmt.Errorf("%w: growth policy %v", errs.ErrInvalidConfig, policy)
		}
	})
}

// WithOverflowTable precomputes the inverse lookup table of overflow
// indices, shared with every histogram of the same shape.
func WithOverflowTable() Option {
	return options.NoError("WithOverflowTable", func(c *Config) {
		c.layoutOpts = append(c.layoutOpts, binning.WithOverflowTable())
	})
}

// WithTableCache is like WithOverflowTable but shares the table through the
// given cache.
func WithTableCache(cache *binning.TableCache) Option {
	return options.NoError("WithTableCache", func(c *Config) {
		c.layoutOpts = append(c.layoutOpts, binning.WithTableCache(cache))
	})
}

// WithLogger sets the logger for construction diagnostics. Queries never log.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.New("WithLogger", func(c *Config) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidConfig)
		}
		c.logger = logger

		return nil
	})
}
