package markdown

import (
	"strconv"
	"strings"
)

// fenceState describes an open fenced code block.
type fenceState struct {
	big    bool   // opened by four or more backticks
	indent string // leading whitespace of the opening line
	lang   string
}

// detectFence checks if raw is a fence line: three backticks for a normal
// fence, four or more for a big one, after leading whitespace.
func detectFence(raw string) (fenceState, bool) {
	trimmed := strings.TrimLeft(raw, " \t")
	n := len(trimmed) - len(strings.TrimLeft(trimmed, "`"))
	if n < 3 {
		return fenceState{}, false
	}
	f := fenceState{
		big:    n > 3,
		indent: raw[:len(raw)-len(trimmed)],
	}
	if info := strings.Fields(trimmed[n:]); len(info) > 0 {
		f.lang = strings.ToLower(info[0])
	}
	return f, true
}

func (p *blockParser) openFence(f fenceState) {
	p.closeBlocks()
	p.fence = &f
	p.out.WriteString(`<pre class="code-block`)
	if n := countIndent(f.indent) / 4; n > 0 {
		p.out.WriteString(" indent-" + strconv.Itoa(n))
	}
	p.out.WriteString(`"><code`)
	if f.lang != "" {
		p.out.WriteString(` class="language-` + p.hooks.EscapeForDisplay(f.lang) + `"`)
	}
	p.out.WriteByte('>')
}

// fenceLine handles a line inside a fence. Only a fence line of the same
// size closes; the other size is content.
func (p *blockParser) fenceLine(raw string) {
	if f, ok := detectFence(raw); ok && f.big == p.fence.big {
		p.closeFence()
		return
	}
	line := strings.TrimPrefix(raw, p.fence.indent)
	p.out.WriteString(p.hooks.EscapeForDisplay(line))
	p.out.WriteByte('\n')
}

func (p *blockParser) closeFence() {
	if p.fence != nil {
		p.out.WriteString("</code></pre>\n")
		p.fence = nil
	}
}

// countIndent measures leading whitespace: a space counts 1, a tab 4.
func countIndent(s string) int {
	n := 0
	for _, c := range s {
		switch c {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}
