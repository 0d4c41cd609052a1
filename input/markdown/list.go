package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	todoRx      = regexp.MustCompile(`^[-*] \[( |x)\]\s?(.*)$`)
	unorderedRx = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	orderedRx   = regexp.MustCompile(`^(\s*)(\d{1,9})[.)]\s+(.*)$`)
)

// listFrame is an open list on the list stack.
type listFrame struct {
	indent   int
	ordered  bool
	start    int
	itemOpen bool
}

// listMarker matches an unordered or ordered list item. It returns a new
// frame for the item's list, the item content, and whether the line is a
// list item at all.
func listMarker(escaped string) (*listFrame, string, bool) {
	if m := unorderedRx.FindStringSubmatch(escaped); m != nil {
		return &listFrame{indent: countIndent(m[1])}, m[2], true
	}
	if m := orderedRx.FindStringSubmatch(escaped); m != nil {
		start, _ := strconv.Atoi(m[2])
		return &listFrame{indent: countIndent(m[1]), ordered: true, start: start}, m[3], true
	}
	return nil, "", false
}

// --- To-do lists -----------------------------------------------------------

func (p *blockParser) todoItem(i int, escaped string) {
	m := todoRx.FindStringSubmatch(escaped)
	if !p.inTodo {
		p.closeBlocks()
		p.out.WriteString(`<ul class="todo-list">` + "\n")
		p.inTodo = true
	}
	p.out.WriteString(`<li class="todo-item"><input type="checkbox" disabled`)
	if m[1] == "x" {
		p.out.WriteString(" checked")
	}
	p.out.WriteString("> ")
	if label := strings.TrimSpace(m[2]); label != "" {
		p.out.WriteString(p.formatLine(label))
	}
	p.out.WriteString("</li>\n")
	if i+1 >= len(p.lines) || !todoRx.MatchString(p.hooks.EscapeMarkup(p.lines[i+1])) {
		p.closeTodo()
	}
}

func (p *blockParser) closeTodo() {
	if p.inTodo {
		p.out.WriteString("</ul>\n")
		p.inTodo = false
	}
}

// --- Nested lists ----------------------------------------------------------

// listItem places an item on the list stack. Deeper indentation opens a
// nested list inside the open item, shallower indentation closes lists, and
// a change of list kind at the same indentation replaces the list.
func (p *blockParser) listItem(escaped string) {
	item, content, _ := listMarker(escaped)
	p.closePara()
	p.closeTable()
	p.closeTodo()
	for !p.lists.Empty() {
		top := p.topList()
		if item.indent < top.indent || (item.indent == top.indent && item.ordered != top.ordered) {
			p.popList()
			continue
		}
		break
	}
	if p.lists.Empty() || item.indent > p.topList().indent {
		p.pushList(item)
	} else if top := p.topList(); top.itemOpen {
		p.out.WriteString("</li>\n")
	}
	top := p.topList()
	p.out.WriteString("<li>")
	if strings.TrimSpace(content) != "" {
		p.out.WriteString(p.formatLine(strings.TrimSpace(content)))
	}
	top.itemOpen = true
}

func (p *blockParser) topList() *listFrame {
	top, _ := p.lists.Peek()
	return top.(*listFrame)
}

func (p *blockParser) pushList(l *listFrame) {
	switch {
	case !l.ordered:
		p.out.WriteString("<ul>\n")
	case l.start != 1:
		p.out.WriteString(`<ol start="` + strconv.Itoa(l.start) + `">` + "\n")
	default:
		p.out.WriteString("<ol>\n")
	}
	p.lists.Push(l)
}

func (p *blockParser) popList() {
	v, ok := p.lists.Pop()
	if !ok {
		return
	}
	l := v.(*listFrame)
	if l.itemOpen {
		p.out.WriteString("</li>\n")
	}
	if l.ordered {
		p.out.WriteString("</ol>\n")
	} else {
		p.out.WriteString("</ul>\n")
	}
}

func (p *blockParser) closeLists() {
	for !p.lists.Empty() {
		p.popList()
	}
}
