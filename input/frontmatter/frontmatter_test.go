package frontmatter

import (
	"strings"
	"testing"

	"github.com/npillmayer/mdpage/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestStripYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.frontmatter")
	defer teardown()
	//
	text := "---\ntitle: Hello\ntags: [a, b]\n---\n# Heading\nbody\n"
	meta, body, err := Split(text)
	assert.NoError(t, err)
	assert.Equal(t, "Hello", meta.Title())
	assert.True(t, strings.HasSuffix(body, "# Heading\nbody\n"), "unexpected body %q", body)
	assert.NotContains(t, Strip(text), "title:")
}

func TestStripWithoutFrontMatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.frontmatter")
	defer teardown()
	//
	text := "# Just a post\n\ntext"
	assert.Equal(t, text, Strip(text))
}

func TestMalformedFrontMatter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.frontmatter")
	defer teardown()
	//
	text := "---\ntitle: [unclosed\n---\nbody"
	_, _, err := Split(text)
	if assert.Error(t, err) {
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
	assert.Equal(t, text, Strip(text))
}
