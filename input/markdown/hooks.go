package markdown

import (
	"github.com/npillmayer/mdpage/core/locate/resources"
	"github.com/npillmayer/mdpage/input/frontmatter"
	"github.com/npillmayer/mdpage/input/html"
)

// Hooks bundles the collaborators of the renderer. Every method must be
// safe for concurrent use if Parse is called concurrently.
type Hooks interface {
	// StripFrontMatter removes a metadata header from a document.
	StripFrontMatter(text string) string
	// EscapeMarkup prepares a source line for block classification.
	EscapeMarkup(text string) string
	// EscapeForDisplay escapes literal text, e.g. code block content.
	EscapeForDisplay(text string) string
	// SanitizeURL returns a safe link target or a placeholder.
	SanitizeURL(raw string) string
	// ResolveAssetPath maps an image or video source to a servable path.
	ResolveAssetPath(raw string, baseDir string) string
	// AllowRawMarkup filters markup which passes through to the output.
	AllowRawMarkup(text string, baseDir string) string
}

// DefaultHooks returns the standard collaborators: front matter handling
// of package frontmatter, escaping, URL sanitizing and raw markup policy of
// package html, and asset resolution of package resources.
func DefaultHooks() Hooks {
	return defaultHooks{}
}

type defaultHooks struct{}

func (defaultHooks) StripFrontMatter(text string) string {
	return frontmatter.Strip(text)
}

func (defaultHooks) EscapeMarkup(text string) string {
	return html.EscapeMarkup(text)
}

func (defaultHooks) EscapeForDisplay(text string) string {
	return html.EscapeForDisplay(text)
}

func (defaultHooks) SanitizeURL(raw string) string {
	return html.SanitizeURL(raw)
}

// ResolveAssetPath joins relative sources to baseDir. Everything else is
// treated as a link target and sanitized.
func (defaultHooks) ResolveAssetPath(raw string, baseDir string) string {
	p, relative := resources.ResolveAssetPath(raw, baseDir)
	if relative {
		return p
	}
	return html.SanitizeURL(p)
}

func (defaultHooks) AllowRawMarkup(text string, baseDir string) string {
	return html.AllowRawMarkup(text)
}
