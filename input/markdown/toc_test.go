package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTOCShape(t *testing.T) {
	toc := BuildTOC([]int{2, 3, 3, 2, 3}, []string{"A", "B", "C", "D", "E"})
	assert.Equal(t,
		"<ul><li><ul><li>A<ul><li>B</li><li>C</li></ul></li><li>D<ul><li>E</li></ul></li></ul></li></ul>",
		toc)
	assert.Equal(t, 4, strings.Count(toc, "<ul>"))
	assert.Equal(t, 4, strings.Count(toc, "</ul>"))
	assert.Equal(t, strings.Count(toc, "<li>"), strings.Count(toc, "</li>"))
}

func TestTOCEdgeCases(t *testing.T) {
	assert.Equal(t, "", BuildTOC(nil, nil))
	assert.Equal(t, "", BuildTOC([]int{2}, nil), "anchors missing")
	assert.Equal(t, "<ul><li>A</li></ul>", BuildTOC([]int{0}, []string{"A"}), "level clamped to 1")
	assert.Equal(t, "<ul><li>A</li><li>B</li></ul>", BuildTOC([]int{1, 1, 1}, []string{"A", "B"}))
	assert.Equal(t,
		"<ul><li>A<ul><li><ul><li>B</li></ul></li></ul></li></ul>",
		BuildTOC([]int{1, 3}, []string{"A", "B"}))
}

func TestTOCBalanced(t *testing.T) {
	for _, levels := range [][]int{
		{3, 2, 1},
		{1, 3, 1, 3},
		{2, 2, 3, 3, 3, 2},
		{3, 3, 2},
	} {
		anchors := make([]string, len(levels))
		for i := range anchors {
			anchors[i] = "x"
		}
		toc := BuildTOC(levels, anchors)
		assert.Equal(t, strings.Count(toc, "<ul>"), strings.Count(toc, "</ul>"), "levels %v: %s", levels, toc)
		assert.Equal(t, strings.Count(toc, "<li>"), strings.Count(toc, "</li>"), "levels %v: %s", levels, toc)
		assert.Equal(t, len(levels), strings.Count(toc, ">x"), "levels %v", levels)
	}
}
