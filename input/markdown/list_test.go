package markdown

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestListMarker(t *testing.T) {
	l, content, ok := listMarker("\t  - item")
	assert.True(t, ok)
	assert.Equal(t, 6, l.indent)
	assert.False(t, l.ordered)
	assert.Equal(t, "item", content)
	l, _, ok = listMarker("12) twelve")
	assert.True(t, ok)
	assert.True(t, l.ordered)
	assert.Equal(t, 12, l.start)
	for _, s := range []string{"---", "-no space", "1234567890. too long", "text"} {
		_, _, ok = listMarker(s)
		assert.False(t, ok, "%q is not a list item", s)
	}
}

func TestListStackMatchesOpenTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.markdown")
	defer teardown()
	//
	lines := strings.Split("- a\n    - b\n        1. c\n    - d\n* e\n1. f\n   - g\ntext\n- h\n\n5. i", "\n")
	hooks, regs := registers("", nil)
	p := newBlockParser(hooks, regs)
	p.lines = lines
	for i := 0; i < len(lines); i++ {
		i = p.line(i)
		out := p.out.String()
		open := strings.Count(out, "<ul>") + strings.Count(out, "<ol") -
			strings.Count(out, "</ul>") - strings.Count(out, "</ol>")
		assert.Equal(t, p.lists.Size(), open, "after line %d: %s", i, out)
	}
	p.closeLists()
	assert.Equal(t, 0, p.lists.Size())
}
