package cliopt

import (
	"context"

	"github.com/dmitrymomot/ordutils/pkg/pathprobe"
	"github.com/dmitrymomot/ordutils/pkg/validator"
)

// Option modifies a single validation call.
type Option func(*options)

type options struct {
	ctx         context.Context
	prober      pathprobe.Prober
	nullable    bool
	shouldExist bool
	minInt      *int
	minFloat    *float64
	separator   string
}

func newOptions(opts []Option) *options {
	o := &options{
		ctx:         context.Background(),
		prober:      pathprobe.NewLocalProber(),
		shouldExist: true,
		separator:   validator.DefaultSeparator,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AllowAbsent lets a nil value pass without being checked.
func AllowAbsent() Option {
	return func(o *options) { o.nullable = true }
}

// MustNotExist requires that nothing exists at the path.
func MustNotExist() Option {
	return func(o *options) { o.shouldExist = false }
}

// ShouldExist sets the existence polarity explicitly.
func ShouldExist(exist bool) Option {
	return func(o *options) { o.shouldExist = exist }
}

func MinInt(n int) Option {
	return func(o *options) { o.minInt = &n }
}

func MinFloat(x float64) Option {
	return func(o *options) { o.minFloat = &x }
}

// WithSeparator sets the list separator. Empty separators are ignored.
func WithSeparator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// WithProber sets the prober used by path checks. Nil probers are ignored.
func WithProber(p pathprobe.Prober) Option {
	return func(o *options) {
		if p != nil {
			o.prober = p
		}
	}
}

// WithContext bounds path probes that may block, such as S3 lookups.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
