// Package span normalizes scalar-or-pair parameter specifications into
// canonical (low, high) ranges.
//
// Every randomized transform parameter is ultimately drawn from a range.
// Callers may configure that range as a single number ("vary by up to v"),
// an explicit pair, or leave it unset. [Normalize] folds all of these into
// a single canonical representation:
//
//	span.Normalize(0.2)                      // -> {-0.2, 0.2}
//	span.Normalize([]float64{0.1, 0.3})      // -> {0.1, 0.3}
//	span.Normalize(3, span.WithAnchor(1))    // -> {1, 3}
//	span.Normalize(nil)                      // -> nil (parameter absent)
//
// Normalize is pure: the same input always yields the identical result.
package span

import (
	"github.com/augmentlab/augment/pkg/errors"
)

// Span is a canonical ordered parameter range.
type Span struct {
	Low  float64
	High float64
}

type config struct {
	anchor    float64
	bias      float64
	hasAnchor bool
	hasBias   bool
}

// Option configures normalization.
type Option func(*config)

// WithAnchor pins one end of the range when the parameter is a scalar v:
// the result is the ascending ordering of (anchor, v). Mutually exclusive
// with WithBias.
func WithAnchor(a float64) Option {
	return func(c *config) {
		c.anchor = a
		c.hasAnchor = true
	}
}

// WithBias adds an offset to both ends of the resolved range. Mutually
// exclusive with WithAnchor.
func WithBias(b float64) Option {
	return func(c *config) {
		c.bias = b
		c.hasBias = true
	}
}

// Normalize converts a scalar-or-pair parameter specification into a
// canonical range.
//
// Accepted parameter forms:
//   - nil: returns (nil, nil), meaning "parameter absent"
//   - numeric scalar v: (-v, +v) without an anchor, or the ascending
//     ordering of (anchor, v) with one
//   - a 2-element numeric sequence: taken verbatim, order preserved
//
// Any other type or sequence length fails with INVALID_ARGUMENT, as does
// combining WithAnchor and WithBias.
func Normalize(param any, opts ...Option) (*Span, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasAnchor && cfg.hasBias {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "anchor and bias are mutually exclusive")
	}

	if param == nil {
		return nil, nil
	}

	var s Span
	if v, ok := asFloat(param); ok {
		if cfg.hasAnchor {
			if cfg.anchor < v {
				s = Span{Low: cfg.anchor, High: v}
			} else {
				s = Span{Low: v, High: cfg.anchor}
			}
		} else {
			s = Span{Low: -v, High: +v}
		}
	} else if pair, ok := asPair(param); ok {
		s = pair
	} else {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"parameter must be a numeric scalar or a 2-element sequence, got %T", param)
	}

	if cfg.hasBias {
		s.Low += cfg.bias
		s.High += cfg.bias
	}
	return &s, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asPair(v any) (Span, bool) {
	switch p := v.(type) {
	case Span:
		return p, true
	case [2]float64:
		return Span{Low: p[0], High: p[1]}, true
	case []float64:
		if len(p) != 2 {
			return Span{}, false
		}
		return Span{Low: p[0], High: p[1]}, true
	case []int:
		if len(p) != 2 {
			return Span{}, false
		}
		return Span{Low: float64(p[0]), High: float64(p[1])}, true
	case []any:
		if len(p) != 2 {
			return Span{}, false
		}
		lo, okLo := asFloat(p[0])
		hi, okHi := asFloat(p[1])
		if !okLo || !okHi {
			return Span{}, false
		}
		return Span{Low: lo, High: hi}, true
	}
	return Span{}, false
}
