/*
Package frontmatter separates a leading metadata block from the markdown
body of a post. YAML (---), TOML (+++) and JSON blocks are recognized.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frontmatter

import (
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/npillmayer/mdpage/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdpage.frontmatter'.
func tracer() tracing.Trace {
	return tracing.Select("mdpage.frontmatter")
}

// Meta is the decoded metadata of a post.
type Meta map[string]interface{}

// Split decodes the metadata block at the start of text, if any, and
// returns it together with the remaining body. Text without front matter
// yields an empty Meta and the unchanged text.
func Split(text string) (Meta, string, error) {
	meta := Meta{}
	rest, err := frontmatter.Parse(strings.NewReader(text), &meta)
	if err != nil {
		return nil, text, core.WrapError(err, core.EINVALID, "malformed front matter")
	}
	return meta, string(rest), nil
}

// Strip removes the metadata block from text. Malformed blocks are left
// in place.
func Strip(text string) string {
	_, body, err := Split(text)
	if err != nil {
		tracer().Errorf("front matter not stripped: %v", err)
		return text
	}
	return body
}

// Title returns the "title" entry of the metadata, if present.
func (m Meta) Title() string {
	if s, ok := m["title"].(string); ok {
		return s
	}
	return ""
}
