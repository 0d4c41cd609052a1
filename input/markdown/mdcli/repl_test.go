package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mdpage/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.cli")
	defer teardown()
	//
	cmd, err := parseCommand("  # Heading")
	require.NoError(t, err)
	assert.Equal(t, APPEND, cmd.code)
	assert.Equal(t, "  # Heading", cmd.arg)
	cmd, _ = parseCommand("::not a command")
	assert.Equal(t, APPEND, cmd.code)
	assert.Equal(t, ":not a command", cmd.arg)
	cmd, _ = parseCommand(":base /posts/2021 ")
	assert.Equal(t, BASE, cmd.code)
	assert.Equal(t, "/posts/2021", cmd.arg)
	cmd, _ = parseCommand(":Q")
	assert.Equal(t, QUIT, cmd.code)
	_, err = parseCommand(":frobnicate")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = parseCommand(":load")
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.cli")
	defer teardown()
	//
	intp := &Intp{}
	for _, line := range []string{"## Intro", "![cat](cat.png)", ":base /img"} {
		cmd, err := parseCommand(line)
		require.NoError(t, err)
		quit, err := intp.execute(cmd)
		require.NoError(t, err)
		assert.False(t, quit)
	}
	out := intp.render()
	assert.Contains(t, out.Post, `src="/img/cat.png"`)
	assert.Contains(t, out.TOC, "Intro")
	quit, _ := intp.execute(&Command{code: CLEAR})
	assert.False(t, quit)
	assert.Empty(t, intp.buffer)
	quit, _ = intp.execute(&Command{code: QUIT})
	assert.True(t, quit)
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.cli")
	defer teardown()
	//
	filename := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(filename, []byte("---\ntitle: Post\n---\r\n# Hello\r\n"), 0o644))
	intp := &Intp{}
	require.NoError(t, intp.load(filename))
	assert.Contains(t, intp.render().Post, "<h1")
	assert.NotContains(t, intp.render().Post, "title")
	err := intp.load(filepath.Join(t.TempDir(), "missing.md"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestMissingAssets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpage.cli")
	defer teardown()
	//
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "img", "cat.png"), []byte("png"), 0o644))
	intp := &Intp{baseDir: "/img", root: root}
	intp.buffer = []string{
		"![cat](cat.png) ![dog](dog.png) ![[clip.mp4]]",
		"![ext](https://example.com/x.png) ![cat again](cat.png)",
	}
	missing := missingAssets(intp.render().Post, intp.root)
	require.Len(t, missing, 2)
	assert.Equal(t, core.EMISSING, core.Code(missing[0]))
	assert.Equal(t, "image not found: /img/dog.png", core.UserMessage(missing[0]))
	assert.Equal(t, "video not found: /img/clip.mp4", core.UserMessage(missing[1]))
	cmd, err := parseCommand(":check")
	require.NoError(t, err)
	quit, err := intp.execute(cmd)
	assert.NoError(t, err)
	assert.False(t, quit)
}
