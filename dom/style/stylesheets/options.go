package stylesheets

import (
	"fmt"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/invalidation"
	"github.com/npillmayer/schuko"
)

// Configuration keys read by OptionsFromConfig.
const (
	ConfigLenientRemoval = "stylesheets.lenient-removal" // comma-separated origin names
	ConfigTraceFlush     = "stylesheets.trace-flush"     // dump sets on flush
)

// Options controls the behaviour of stylesheet sets.
type Options struct {
	// LenientRemoval lists the origins for which removing a sheet which is
	// not part of the set is silently ignored. For all other origins such
	// a removal is a programming error and will panic.
	//
	// Some host environments are known to remove user-agent sheets
	// redundantly; they will want to set this to OriginSetOf(UserAgent).
	LenientRemoval cssom.OriginSet
	// TraceFlush will dump the contents of a set to the tracer on every flush.
	TraceFlush bool
}

// OptionsFromConfig reads options from an application configuration.
func OptionsFromConfig(conf schuko.Configuration) (Options, error) {
	var opts Options
	if conf == nil {
		return opts, nil
	}
	if conf.IsSet(ConfigLenientRemoval) {
		origins, err := cssom.ParseOriginSet(conf.GetString(ConfigLenientRemoval))
		if err != nil {
			return opts, fmt.Errorf("configuration key %s: %w", ConfigLenientRemoval, err)
		}
		opts.LenientRemoval = origins
	}
	opts.TraceFlush = conf.GetBool(ConfigTraceFlush)
	return opts, nil
}

// Option is a type to help initializing stylesheet sets at creation time.
type Option struct {
	config func(settings) settings
}

type settings struct {
	options       Options
	invalidations Invalidator
}

// WithOptions sets all options at once, e.g. from OptionsFromConfig.
func WithOptions(opts Options) Option {
	return Option{config: func(s settings) settings {
		s.options = opts
		return s
	}}
}

// WithLenientRemoval makes removal of sheets not present a no-op for
// the given origins.
func WithLenientRemoval(origins cssom.OriginSet) Option {
	return Option{config: func(s settings) settings {
		s.options.LenientRemoval = origins
		return s
	}}
}

// WithInvalidator replaces the default invalidation set of a stylesheet set.
// The stylesheet set takes ownership of inv.
func WithInvalidator(inv Invalidator) Option {
	return Option{config: func(s settings) settings {
		s.invalidations = inv
		return s
	}}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, option := range opts {
		s = option.config(s)
	}
	if s.invalidations == nil {
		s.invalidations = invalidation.New()
	}
	return s
}
