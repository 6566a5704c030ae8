package slider

import (
	"errors"
	"fmt"

	"github.com/alkime/frostslider/pkg/uictl"
)

// ErrInvalidArgument is returned by New for a missing host or an unusable range.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// DefaultMin is the lower bound when none is given.
	DefaultMin = 0
	// DefaultMax is the upper bound when none is given.
	DefaultMax = 100
	// DefaultStep is the increment applied per key press.
	DefaultStep = 1
)

// Option configures a Slider.
type Option[N uictl.SignedNumber] func(*config[N])

type config[N uictl.SignedNumber] struct {
	min, max, step N
	onChange       func(N)
	keys           KeyMap
}

func defaultConfig[N uictl.SignedNumber]() config[N] {
	return config[N]{
		min:  DefaultMin,
		max:  DefaultMax,
		step: DefaultStep,
		keys: DefaultKeyMap(),
	}
}

// WithMin sets the lower bound. The slider starts at this value.
func WithMin[N uictl.SignedNumber](lo N) Option[N] {
	return func(c *config[N]) { c.min = lo }
}

// WithMax sets the upper bound.
func WithMax[N uictl.SignedNumber](hi N) Option[N] {
	return func(c *config[N]) { c.max = hi }
}

// WithRange sets both bounds.
func WithRange[N uictl.SignedNumber](lo, hi N) Option[N] {
	return func(c *config[N]) {
		c.min = lo
		c.max = hi
	}
}

// WithStep sets the increment applied per key press.
func WithStep[N uictl.SignedNumber](step N) Option[N] {
	return func(c *config[N]) { c.step = step }
}

// WithOnChange sets the change notifier. A nil fn means no notification.
func WithOnChange[N uictl.SignedNumber](fn func(N)) Option[N] {
	return func(c *config[N]) { c.onChange = fn }
}

// WithKeyMap replaces the default arrow-key bindings.
func WithKeyMap[N uictl.SignedNumber](keys KeyMap) Option[N] {
	return func(c *config[N]) { c.keys = keys }
}

// validate returns an error if the range cannot be stepped through.
func (c config[N]) validate() error {
	if isNaN(c.min) || isNaN(c.max) || isNaN(c.step) {
		return fmt.Errorf("%w: bounds and step must be numbers", ErrInvalidArgument)
	}

	if c.min > c.max {
		return fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidArgument, c.min, c.max)
	}

	if c.step == 0 {
		return fmt.Errorf("%w: step must be non-zero", ErrInvalidArgument)
	}

	// the most negative integer has no positive counterpart, so it cannot
	// step backwards
	if c.step < 0 && -c.step < 0 {
		return fmt.Errorf("%w: step %v cannot be negated", ErrInvalidArgument, c.step)
	}

	return nil
}

// isNaN reports whether v is a float NaN. Always false for integers.
func isNaN[N uictl.SignedNumber](v N) bool {
	return v != v //nolint:gocritic // NaN is the only value not equal to itself
}
