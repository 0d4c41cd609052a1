package markdown

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mdpage/core/parameters"
	"github.com/npillmayer/schuko"
)

// Options control a rendering call.
type Options struct {
	Hooks               Hooks // collaborators; nil selects DefaultHooks
	MaxDepth            int   // maximum nesting of sub-documents
	ExternalLinksNewTab bool  // open absolute http(s) links in a new tab
	LazyImages          bool  // add loading="lazy" to images
}

// Option is a functional option for Parse and FormatInline.
type Option func(*Options)

// WithHooks replaces the default collaborators.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}

// WithMaxDepth limits the nesting of block quotes, callouts and table cells.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth > 0 {
			o.MaxDepth = depth
		}
	}
}

// WithNewTab switches target="_blank" for external links on or off.
func WithNewTab(on bool) Option {
	return func(o *Options) {
		o.ExternalLinksNewTab = on
	}
}

// WithLazyImages switches lazy loading of images on or off.
func WithLazyImages(on bool) Option {
	return func(o *Options) {
		o.LazyImages = on
	}
}

// Configuration keys read by OptionsFromConfig.
const (
	ConfMaxDepth   = "markdown.maxdepth"
	ConfNewTab     = "markdown.newtab"
	ConfLazyImages = "markdown.lazyimages"
)

// OptionsFromConfig reads rendering options from a configuration.
// Missing or malformed values leave the defaults in place.
func OptionsFromConfig(conf schuko.Configuration) []Option {
	var opts []Option
	if conf == nil {
		return opts
	}
	if s := strings.TrimSpace(conf.GetString(ConfMaxDepth)); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			opts = append(opts, WithMaxDepth(n))
		} else {
			tracer().Errorf("config %s: %v", ConfMaxDepth, err)
		}
	}
	if s := strings.TrimSpace(conf.GetString(ConfNewTab)); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			opts = append(opts, WithNewTab(b))
		} else {
			tracer().Errorf("config %s: %v", ConfNewTab, err)
		}
	}
	if s := strings.TrimSpace(conf.GetString(ConfLazyImages)); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			opts = append(opts, WithLazyImages(b))
		} else {
			tracer().Errorf("config %s: %v", ConfLazyImages, err)
		}
	}
	return opts
}

// registers creates the rendering registers for one call. Defaults are
// taken from package parameters and overridden by options.
func registers(baseDir string, opts []Option) (Hooks, *parameters.RenderRegisters) {
	regs := parameters.NewRenderRegisters()
	o := Options{
		MaxDepth:            regs.N(parameters.P_MAXDEPTH),
		ExternalLinksNewTab: regs.B(parameters.P_NEWTAB),
		LazyImages:          regs.B(parameters.P_LAZYIMAGES),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Hooks == nil {
		o.Hooks = DefaultHooks()
	}
	regs.Push(parameters.P_BASEDIR, baseDir)
	regs.Push(parameters.P_MAXDEPTH, o.MaxDepth)
	regs.Push(parameters.P_NEWTAB, o.ExternalLinksNewTab)
	regs.Push(parameters.P_LAZYIMAGES, o.LazyImages)
	return o.Hooks, regs
}
