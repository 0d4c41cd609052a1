package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/mdpage/core/parameters"
	nethtml "golang.org/x/net/html"
)

// Output is the result of rendering a document.
type Output struct {
	Post string // rendered body
	TOC  string // nested list of level 2 and 3 headings, or ""
}

// Parse renders a markdown document. Relative image and video sources are
// resolved against baseDir.
//
// Parse never fails: unrecognized constructs render as paragraphs, and an
// internal failure yields the escaped source text.
func Parse(text string, baseDir string, opts ...Option) (out Output) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("rendering aborted: %v", r)
			out = Output{Post: "<p>" + nethtml.EscapeString(text) + "</p>\n"}
		}
	}()
	hooks, regs := registers(baseDir, opts)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = hooks.StripFrontMatter(text)
	p := newBlockParser(hooks, regs)
	post := p.run(strings.Split(text, "\n"))
	levels := make([]int, len(p.headings))
	anchors := make([]string, len(p.headings))
	for i, h := range p.headings {
		levels[i], anchors[i] = h.level, h.anchor
	}
	tracer().Debugf("rendered %d bytes, %d headings in TOC", len(post), len(levels))
	return Output{Post: post, TOC: BuildTOC(levels, anchors)}
}

// headingRecord is a table of contents entry.
type headingRecord struct {
	level  int
	anchor string
}

// blockParser holds the state of the block engine for one (sub-)document.
type blockParser struct {
	hooks    Hooks
	regs     *parameters.RenderRegisters
	inline   *inlineFormatter
	baseDir  string
	lines    []string
	out      strings.Builder
	fence    *fenceState
	table    *tableState
	inTodo   bool
	inPara   bool
	lists    *arraystack.Stack // of *listFrame
	headings []headingRecord
}

func newBlockParser(hooks Hooks, regs *parameters.RenderRegisters) *blockParser {
	return &blockParser{
		hooks:   hooks,
		regs:    regs,
		inline:  newInlineFormatter(hooks, regs),
		baseDir: regs.S(parameters.P_BASEDIR),
		lists:   arraystack.New(),
	}
}

// run renders lines and force-closes every open block at the end.
func (p *blockParser) run(lines []string) string {
	p.lines = lines
	for i := 0; i < len(lines); i++ {
		i = p.line(i)
	}
	p.closeFence()
	p.closePara()
	p.closeTable()
	p.closeTodo()
	p.closeLists()
	return p.out.String()
}

// line processes line i and returns the index of the last line consumed.
func (p *blockParser) line(i int) int {
	raw := p.lines[i]
	if p.fence != nil {
		p.fenceLine(raw)
		return i
	}
	if f, ok := detectFence(raw); ok {
		p.openFence(f)
		return i
	}
	escaped := p.hooks.EscapeMarkup(raw)
	_, _, isList := listMarker(escaped)
	if !isList {
		p.closeLists()
	}
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(escaped, ">"):
		return p.quote(i)
	case p.table != nil && strings.HasPrefix(trimmed, "|"):
		p.tableRow(i, escaped)
		return i
	case strings.HasPrefix(trimmed, "|") && i+1 < len(p.lines) && isSeparatorRow(p.lines[i+1]):
		p.openTable(i, escaped)
		return i + 1
	case todoRx.MatchString(escaped):
		p.todoItem(i, escaped)
		return i
	case isList:
		p.listItem(escaped)
		return i
	case strings.HasPrefix(escaped, "#"):
		p.heading(i, escaped)
		return i
	}
	if tag, ok := parseRawTag(raw); ok {
		return p.rawBlock(i, tag)
	}
	if trimmed == "" {
		p.closePara()
		return i
	}
	p.paragraph(i, escaped)
	return i
}

// closeBlocks closes every open block except a fence.
func (p *blockParser) closeBlocks() {
	p.closePara()
	p.closeTable()
	p.closeTodo()
	p.closeLists()
}

// subDocument renders lines as a nested document one level deeper.
func (p *blockParser) subDocument(lines []string) (string, error) {
	depth := p.regs.N(parameters.P_DEPTH) + 1
	if depth > p.regs.N(parameters.P_MAXDEPTH) {
		return "", ErrNestingTooDeep
	}
	p.regs.Begingroup()
	defer p.regs.Endgroup()
	p.regs.Push(parameters.P_DEPTH, depth)
	sub := newBlockParser(p.hooks, p.regs)
	return sub.run(lines), nil
}

// formatLine inline-formats text and filters the result through the raw
// markup policy.
func (p *blockParser) formatLine(text string) string {
	return p.hooks.AllowRawMarkup(p.inline.format(text), p.baseDir)
}

// --- Paragraphs ------------------------------------------------------------

func (p *blockParser) paragraph(i int, escaped string) {
	formatted := p.inline.format(strings.TrimSpace(escaped))
	if formatted == lineBreak {
		return
	}
	if formatted == hrule {
		p.closePara()
		p.out.WriteString(hrule + "\n")
		return
	}
	formatted = p.hooks.AllowRawMarkup(formatted, p.baseDir)
	if strings.TrimSpace(formatted) == "" {
		return
	}
	if !p.inPara {
		p.closeTable()
		p.closeTodo()
		p.out.WriteString("<p>")
		p.inPara = true
	}
	p.out.WriteString(formatted)
	if i+1 < len(p.lines) {
		next := p.lines[i+1]
		if _, isTag := parseRawTag(next); strings.TrimSpace(next) != "" && !isTag {
			p.out.WriteString(lineBreak)
		}
	}
}

func (p *blockParser) closePara() {
	if p.inPara {
		p.out.WriteString("</p>\n")
		p.inPara = false
	}
}

// --- Headings --------------------------------------------------------------

func (p *blockParser) heading(i int, escaped string) {
	p.closeBlocks()
	level := len(escaped) - len(strings.TrimLeft(escaped, "#"))
	text := strings.TrimSpace(escaped[level:])
	if level > 6 {
		level = 6
	}
	var formatted string
	if text != "" {
		formatted = p.formatLine(text)
	}
	id := strconv.Itoa(i)
	fmt.Fprintf(&p.out, `<h%d id="%s">%s<a class="heading-anchor" href="#%s" aria-hidden="true">#</a></h%d>`+"\n",
		level, id, formatted, id, level)
	if level == 2 || level == 3 {
		p.headings = append(p.headings, headingRecord{
			level:  level,
			anchor: `<a href="#` + id + `">` + formatted + `</a>`,
		})
	}
}
