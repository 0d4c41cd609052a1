package markdown

import (
	"regexp"
	"strings"

	"github.com/npillmayer/mdpage/input/html"
)

var separatorCellRx = regexp.MustCompile(`^:?-{3,}:?$`)

// tableState holds the column alignments of an open table.
type tableState struct {
	align []string
}

// splitRow splits a table row on '|', ignoring pipes inside code spans.
// Leading and trailing pipes are optional.
func splitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	var cells []string
	var cell strings.Builder
	inCode := false
	for _, r := range line {
		switch {
		case r == '`':
			inCode = !inCode
			cell.WriteRune(r)
		case r == '|' && !inCode:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	return append(cells, strings.TrimSpace(cell.String()))
}

// isSeparatorRow is true for a delimiter row like |:---|---:|.
func isSeparatorRow(line string) bool {
	if !strings.Contains(line, "-") {
		return false
	}
	for _, c := range splitRow(line) {
		if !separatorCellRx.MatchString(c) {
			return false
		}
	}
	return true
}

func alignments(separator string) []string {
	cells := splitRow(separator)
	align := make([]string, len(cells))
	for i, c := range cells {
		left, right := strings.HasPrefix(c, ":"), strings.HasSuffix(c, ":")
		switch {
		case left && right:
			align[i] = "center"
		case right:
			align[i] = "right"
		case left:
			align[i] = "left"
		}
	}
	return align
}

// openTable renders the header row at line i; line i+1 is the separator.
func (p *blockParser) openTable(i int, escaped string) {
	p.closeBlocks()
	p.table = &tableState{align: alignments(p.lines[i+1])}
	p.out.WriteString("<table>\n<thead>")
	p.row("th", escaped)
	p.out.WriteString("</thead>\n<tbody>\n")
	p.closeTableUnlessContinued(i + 1)
}

func (p *blockParser) tableRow(i int, escaped string) {
	p.row("td", escaped)
	p.out.WriteByte('\n')
	p.closeTableUnlessContinued(i)
}

func (p *blockParser) closeTableUnlessContinued(i int) {
	if i+1 >= len(p.lines) || !strings.HasPrefix(strings.TrimSpace(p.lines[i+1]), "|") {
		p.closeTable()
	}
}

func (p *blockParser) closeTable() {
	if p.table != nil {
		p.out.WriteString("</tbody>\n</table>\n")
		p.table = nil
	}
}

// row renders the cells of an escaped table line. Each cell is rendered
// as a sub-document.
func (p *blockParser) row(tag string, escaped string) {
	p.out.WriteString("<tr>")
	for col, cell := range splitRow(escaped) {
		p.out.WriteString("<" + tag)
		if col < len(p.table.align) {
			if style := html.AlignStyle(p.table.align[col]); style != "" {
				p.out.WriteString(` style="` + style + `"`)
			}
		}
		p.out.WriteByte('>')
		p.out.WriteString(p.cell(cell))
		p.out.WriteString("</" + tag + ">")
	}
	p.out.WriteString("</tr>")
}

func (p *blockParser) cell(text string) string {
	post, err := p.subDocument([]string{text})
	if err != nil {
		tracer().Infof("table cell rendered as text: %v", err)
		return p.hooks.EscapeForDisplay(text)
	}
	return strings.TrimSpace(post)
}
