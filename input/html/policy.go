package html

import (
	"regexp"
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/microcosm-cc/bluemonday"
)

var plainText = regexp.MustCompile(`^[^<>]*$`)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// rawMarkupPolicy is built once; bluemonday policies are safe for
// concurrent use after construction.
func rawMarkupPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.RequireNoFollowOnLinks(false)
		p.AllowURLSchemes("tel")
		p.AllowAttrs("class").Globally()
		// alt and title carry plain text, punctuation included
		p.AllowAttrs("alt", "title").Matching(plainText).OnElements("img", "a", "video", "abbr")
		p.AllowAttrs("title").Matching(plainText).Globally()
		p.AllowAttrs("aria-hidden").Matching(regexp.MustCompile(`^(true|false)$`)).Globally()
		p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
		p.AllowAttrs("rel").Matching(regexp.MustCompile(`^[a-z ]+$`)).OnElements("a")
		p.AllowAttrs("loading").Matching(regexp.MustCompile(`^(lazy|eager)$`)).OnElements("img", "iframe")
		p.AllowElements("video", "audio", "source", "picture", "figure", "figcaption",
			"details", "summary", "iframe", "input", "span", "div", "section", "article")
		p.AllowAttrs("src").OnElements("video", "audio", "source", "iframe")
		p.AllowAttrs("poster").OnElements("video")
		p.AllowAttrs("controls", "preload", "autoplay", "muted", "loop", "playsinline",
			"width", "height").OnElements("video", "audio")
		p.AllowAttrs("type", "srcset", "media").OnElements("source")
		p.AllowAttrs("width", "height", "allow", "allowfullscreen", "frameborder").OnElements("iframe")
		p.AllowAttrs("open").OnElements("details")
		p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
		p.AllowAttrs("disabled", "checked").OnElements("input")
		p.AllowAttrs("data-callout").Matching(regexp.MustCompile(`^[a-z-]+$`)).OnElements("div", "details")
		p.AllowStyles("text-align").MatchingEnum("left", "center", "right").Globally()
		policy = p
	})
	return policy
}

// AllowRawMarkup lets a constrained subset of markup pass through unchanged
// and strips everything else. Text content is re-escaped where necessary.
func AllowRawMarkup(text string) string {
	if text == "" {
		return ""
	}
	return rawMarkupPolicy().Sanitize(text)
}

// AlignStyle returns the inline style declaration for a table column
// alignment ("left", "center" or "right"), or "" for default alignment.
func AlignStyle(align string) string {
	switch align {
	case "left", "center", "right":
	default:
		return ""
	}
	decl := &css.Declaration{Property: "text-align", Value: align}
	return decl.String()
}
