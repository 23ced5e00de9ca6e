package mockup

import (
	"github.com/gogpu/mockup/internal/blend"
	"github.com/gogpu/mockup/internal/image"
	"golang.org/x/text/language"
)

// Option configures a Composer or Session.
//
// Example:
//
//	s, err := mockup.NewSession(assets,
//	    mockup.WithInteriorRatio(0.58),
//	    mockup.WithNotifier(mockup.NotifierFunc(showDialog)),
//	)
type Option func(*options)

// options holds optional configuration.
type options struct {
	pool          *image.Pool
	interp        image.InterpolationMode
	tintMode      blend.BlendMode
	interiorRatio float64
	alpha         float64
	outputName    string
	notifier      Notifier
	lang          language.Tag
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		pool:          image.Default(),
		interp:        image.InterpBilinear,
		tintMode:      blend.BlendMultiply,
		interiorRatio: DefaultInteriorRatio,
		alpha:         DefaultAlpha,
		outputName:    DefaultOutputName,
		notifier:      nopNotifier{},
		lang:          language.Spanish,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTemplate applies the render and output settings of t.
// Invalid entries are ignored with a warning; use Template.Validate to
// reject them up front.
func WithTemplate(t *Template) Option {
	return func(o *options) {
		if t == nil {
			return
		}
		for _, opt := range t.options() {
			opt(o)
		}
	}
}

// WithInteriorRatio sets the interior/exterior scale ratio.
// Non-positive values are ignored.
func WithInteriorRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 {
			o.interiorRatio = ratio
		}
	}
}

// WithDefaultAlpha sets the initial tint opacity, clamped to [0, 1].
func WithDefaultAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = clampUnit(alpha)
	}
}

// WithInterpolation selects how the user image and masks are resampled:
// "nearest", "bilinear" (default) or "catmullrom".
func WithInterpolation(name string) Option {
	return func(o *options) {
		m, err := image.ParseInterpolation(name)
		if err != nil {
			Logger().Warn("ignoring interpolation option", "err", err)
			return
		}
		o.interp = m
	}
}

// WithTintBlend selects the blend mode of the color tints by its canvas
// name. Only "multiply" (default), "screen", "overlay", "darken" and
// "lighten" are accepted.
func WithTintBlend(name string) Option {
	return func(o *options) {
		m, err := parseTintBlend(name)
		if err != nil {
			Logger().Warn("ignoring tint blend option", "err", err)
			return
		}
		o.tintMode = m
	}
}

// WithPoolSize gives the session its own scratch buffer pool keeping at
// most n idle buffers per size. The default is a shared package pool.
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pool = image.NewPool(n)
		}
	}
}

// WithOutputName sets the file name used by Session.ExportFile.
func WithOutputName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.outputName = name
		}
	}
}

// WithNotifier sets where user-facing failure messages are delivered.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithLanguage sets the language of user-facing messages.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}
