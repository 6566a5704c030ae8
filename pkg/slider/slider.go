// Package slider provides a keyboard-controlled numeric slider.
//
// A Slider binds to a uictl.Host, keeps its value within [min, max], moves by
// a fixed step on arrow keys and renders "Value: {value}" into the host after
// every accepted change.
package slider

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/alkime/frostslider/pkg/uictl"
	"github.com/charmbracelet/bubbles/key"
)

// Slider is a bounded value moved by key presses.
// It is not safe for concurrent use; drive it from one goroutine, the way a
// bubbletea model is driven.
type Slider[N uictl.SignedNumber] struct {
	host     uictl.Host
	keys     KeyMap
	lower    N
	upper    N
	step     N
	value    N
	onChange func(N)
	unbind   func()
}

// New binds a slider to host and renders its initial value, which is min.
// On error the host is left untouched.
func New[N uictl.SignedNumber](host uictl.Host, opts ...Option[N]) (*Slider[N], error) {
	if isNilHost(host) {
		return nil, fmt.Errorf("%w: a host element is required", ErrInvalidArgument)
	}

	cfg := defaultConfig[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	onChange := cfg.onChange
	if onChange == nil {
		onChange = func(N) {}
	}

	s := &Slider[N]{
		host:     host,
		keys:     cfg.keys,
		lower:    cfg.min,
		upper:    cfg.max,
		step:     cfg.step,
		value:    cfg.min,
		onChange: onChange,
	}

	host.SetAttribute(uictl.AttrTabIndex, "0")
	s.unbind = host.AddKeyListener(s.HandleKey)
	s.render()

	return s, nil
}

// HandleKey moves the slider for increment and decrement keys and marks the
// event handled. Other keys are left alone.
func (s *Slider[N]) HandleKey(ev *uictl.KeyEvent) {
	switch {
	case key.Matches(ev, s.keys.Increment):
		s.Increment()
		ev.PreventDefault()
	case key.Matches(ev, s.keys.Decrement):
		s.Decrement()
		ev.PreventDefault()
	}
}

// Increment requests value + step.
func (s *Slider[N]) Increment() bool {
	return s.Set(s.shift(s.step))
}

// Decrement requests value - step.
func (s *Slider[N]) Decrement() bool {
	return s.Set(s.shift(-s.step))
}

// Set clamps proposed into [min, max]. When the result differs from the
// current value it is stored, rendered and then passed to the change
// notifier. It reports whether the value changed.
func (s *Slider[N]) Set(proposed N) bool {
	if isNaN(proposed) {
		return false
	}

	clamped := min(s.upper, max(s.lower, proposed))
	if clamped == s.value {
		return false
	}

	s.value = clamped
	s.render()
	s.onChange(s.value)

	return true
}

// Dispose detaches the key listener. It is safe to call more than once.
func (s *Slider[N]) Dispose() {
	if s.unbind == nil {
		return
	}

	s.unbind()
	s.unbind = nil
}

// Value returns the current value.
func (s *Slider[N]) Value() N {
	return s.value
}

// Read implements uictl.Dial.
func (s *Slider[N]) Read() N {
	return s.value
}

// Cap implements uictl.CappedDial.
func (s *Slider[N]) Cap() (N, N) {
	return s.value, s.upper
}

// Bounds returns the lower and upper bound.
func (s *Slider[N]) Bounds() (N, N) {
	return s.lower, s.upper
}

func (s *Slider[N]) Step() N {
	return s.step
}

// Text returns what the slider last rendered into its host.
func (s *Slider[N]) Text() string {
	return Format(s.value)
}

// Format renders a value the way a slider shows it.
func Format[N uictl.SignedNumber](v N) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() { //nolint:exhaustive // everything else is an integer
	case reflect.Float32:
		return "Value: " + formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return "Value: " + formatFloat(rv.Float(), 64)
	default:
		return "Value: " + strconv.FormatInt(rv.Int(), 10)
	}
}

// formatFloat writes f in plain decimal within [1e-6, 1e21) and in short
// exponent form ("1e-7", "1.5e+21") outside it. Zero has no sign.
func formatFloat(f float64, bitSize int) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}

	return fmt.Sprintf("%se%+d", mantissa, n)
}

func (s *Slider[N]) render() {
	s.host.SetText(Format(s.value))
}

// shift returns value+delta, saturating to the bound in the direction of
// travel when the sum overflows N.
func (s *Slider[N]) shift(delta N) N {
	sum := s.value + delta

	switch {
	case delta > 0 && sum < s.value:
		return s.upper
	case delta < 0 && sum > s.value:
		return s.lower
	}

	return sum
}

// isNilHost catches both a nil interface and an interface holding a nil pointer.
func isNilHost(host uictl.Host) bool {
	if host == nil {
		return true
	}

	v := reflect.ValueOf(host)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
