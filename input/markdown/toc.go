package markdown

import "strings"

// BuildTOC renders headings as nested unordered lists. levels and anchors
// are parallel slices in document order; anchors are the link markup of
// the entries. Deeper levels are nested inside the list item of the
// preceding entry. A jump of more than one level opens intermediate lists,
// each inside a list item of its own. Levels below 1 count as 1.
//
// BuildTOC returns "" if there are no headings.
func BuildTOC(levels []int, anchors []string) string {
	n := len(levels)
	if len(anchors) < n {
		n = len(anchors)
	}
	if n == 0 {
		return ""
	}
	var b strings.Builder
	current := 0
	for i := 0; i < n; i++ {
		level := levels[i]
		if level < 1 {
			level = 1
		}
		switch {
		case level > current:
			for k := current; k < level; k++ {
				if k > current {
					b.WriteString("<li>")
				}
				b.WriteString("<ul>")
			}
		case level < current:
			b.WriteString("</li>")
			for k := level; k < current; k++ {
				b.WriteString("</ul></li>")
			}
		default:
			b.WriteString("</li>")
		}
		b.WriteString("<li>")
		b.WriteString(anchors[i])
		current = level
	}
	b.WriteString("</li>")
	for k := current; k > 1; k-- {
		b.WriteString("</ul></li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
