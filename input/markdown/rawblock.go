package markdown

import (
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

var rawTagRx = regexp.MustCompile(`^<(/?)([A-Za-z][A-Za-z0-9-]*)(\s[^>]*)?>`)

// blockTags are the elements which start a raw markup block when a line
// begins with them.
var blockTags = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Audio: true,
	atom.Blockquote: true, atom.Br: true, atom.Canvas: true, atom.Center: true,
	atom.Code: true, atom.Dd: true, atom.Details: true, atom.Dialog: true,
	atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Embed: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true,
	atom.Iframe: true, atom.Img: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Picture: true,
	atom.Pre: true, atom.Section: true, atom.Source: true, atom.Summary: true,
	atom.Table: true, atom.Tbody: true, atom.Td: true, atom.Tfoot: true,
	atom.Th: true, atom.Thead: true, atom.Tr: true, atom.Ul: true, atom.Video: true,
}

// containerTags capture every line up to their matching end tag.
var containerTags = map[atom.Atom]bool{
	atom.Table: true, atom.Figure: true, atom.Details: true, atom.Video: true,
	atom.Picture: true, atom.Iframe: true, atom.Div: true, atom.Section: true,
	atom.Article: true, atom.P: true, atom.Blockquote: true, atom.Pre: true,
	atom.Code: true, atom.Ul: true, atom.Ol: true,
}

var voidTags = map[atom.Atom]bool{
	atom.Br: true, atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Source: true,
}

// rawTag is the tag a raw markup line starts with.
type rawTag struct {
	name        string
	a           atom.Atom
	closing     bool
	selfClosing bool
}

// parseRawTag checks if a line starts with a tag of an allowed block element.
func parseRawTag(raw string) (rawTag, bool) {
	m := rawTagRx.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return rawTag{}, false
	}
	name := strings.ToLower(m[2])
	a := atom.Lookup([]byte(name))
	if !blockTags[a] {
		return rawTag{}, false
	}
	return rawTag{
		name:        name,
		a:           a,
		closing:     m[1] == "/",
		selfClosing: strings.HasSuffix(m[0], "/>"),
	}, true
}

// rawBlock passes markup through the raw markup policy. Container elements
// capture lines until their end tag, counting nested elements of the same
// name; without an end tag the capture runs to the end of the document.
func (p *blockParser) rawBlock(i int, tag rawTag) int {
	p.closeBlocks()
	first := strings.TrimSpace(p.lines[i])
	if tag.closing || tag.selfClosing || voidTags[tag.a] || !containerTags[tag.a] ||
		tagBalance(first, tag.name) <= 0 {
		p.emitRaw(first)
		return i
	}
	depth, j := 0, i
	for ; j < len(p.lines); j++ {
		if depth += tagBalance(p.lines[j], tag.name); depth <= 0 {
			break
		}
	}
	if j == len(p.lines) {
		tracer().Infof("<%s> at line %d is never closed", tag.name, i)
		j = len(p.lines) - 1
	}
	p.emitRaw(strings.Join(p.lines[i:j+1], "\n"))
	return j
}

func (p *blockParser) emitRaw(markup string) {
	if out := p.hooks.AllowRawMarkup(markup, p.baseDir); strings.TrimSpace(out) != "" {
		p.out.WriteString(out)
		p.out.WriteByte('\n')
	}
}

// tagBalance counts start tags minus end tags of element name in line.
func tagBalance(line string, name string) int {
	line = strings.ToLower(line)
	return countTags(line, "<"+name) - countTags(line, "</"+name)
}

// countTags counts occurrences of prefix which are followed by whitespace,
// '>' or '/', i.e. which are not a prefix of a longer tag name.
func countTags(line string, prefix string) int {
	n := 0
	for k := strings.Index(line, prefix); k >= 0; {
		rest := line[k+len(prefix):]
		if rest == "" || strings.IndexByte(" \t\n>/", rest[0]) >= 0 {
			n++
		}
		next := strings.Index(rest, prefix)
		if next < 0 {
			break
		}
		k += len(prefix) + next
	}
	return n
}
