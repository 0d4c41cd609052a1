/*
Package markdown renders markdown posts to markup.

Rendering is line oriented: the block engine walks a document top to
bottom, tracking at most one open leaf block (fenced code, table, to-do
list or paragraph) plus a stack of nested lists. Block quotes, callouts
and table cells are rendered as sub-documents by a recursive call to the
block engine. Inline spans (emphasis, links, images, embeds, code) are
formatted per line by an inline formatter, and headings of level 2 and 3
are collected for a table of contents.

	out := markdown.Parse(text, "/posts/2021")
	fmt.Println(out.Post)
	fmt.Println(out.TOC)

Parsing never fails. Malformed input degrades to a best-effort rendering;
a panic in any stage is recovered and yields the escaped source text.

Escaping, URL sanitizing, asset resolution and the raw markup policy are
not part of this package. They are injected as Hooks, with DefaultHooks
wiring the implementations of packages html, frontmatter and resources.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdpage.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mdpage.markdown")
}

// ErrNestingTooDeep is returned for sub-documents nested deeper than the
// configured maximum depth.
var ErrNestingTooDeep = errors.New("markdown: sub-documents nested too deeply")

// ErrNotACallout signals a block quote which does not start with a
// callout marker.
var ErrNotACallout = errors.New("markdown: block quote is not a callout")

// errRenderPanic wraps a recovered panic of a rendering tier.
var errRenderPanic = errors.New("markdown: rendering failed")
