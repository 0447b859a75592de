package line

import (
	"fmt"

	"github.com/khooz/polyline/encoding"
	"github.com/khooz/polyline/errs"
	"github.com/khooz/polyline/format"
	"github.com/khooz/polyline/internal/options"
)

// Config holds construction and decoding settings. It is populated through Option values.
type Config struct {
	order     format.CoordOrder
	precision int
	diffs     bool
}

// Option configures New, Decode and Unpack.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		order:     format.OrderLatLng,
		precision: format.DefaultPrecision,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithOrder sets the order of coordinates in raw pairs and in decoded input.
// The default is format.OrderLatLng.
func WithOrder(order format.CoordOrder) Option {
	return options.New(func(c *Config) error {
		switch order {
		case format.OrderLatLng, format.OrderLngLat:
			c.order = order
			return nil
		default:
			return fmt.Errorf("%w: %s", errs.ErrInvalidOrder, order)
		}
	})
}

// WithPrecision sets the number of decimals kept by the fixed-point encoding.
// The default is format.DefaultPrecision (5); some routing engines use 6.
func WithPrecision(precision int) Option {
	return options.New(func(c *Config) error {
		if err := encoding.CheckPrecision(precision); err != nil {
			return err
		}
		c.precision = precision

		return nil
	})
}

// WithDiffs makes New treat every item as a delta from the previous point.
// It has no effect on Decode, whose input is always a delta chain.
func WithDiffs() Option {
	return options.NoError(func(c *Config) {
		c.diffs = true
	})
}
