/*
Package html holds the markup-level collaborators of the markdown renderer:
escaping of markdown source and literal text, URL sanitizing, and the
policy for raw markup which is allowed to pass through into rendered posts.

The markdown parser does not call this package directly. It receives these
functions bundled as hooks, which lets clients replace any of them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/npillmayer/mdpage/core"
	"github.com/npillmayer/schuko/tracing"
	nethtml "golang.org/x/net/html"
)

// tracer traces with key 'mdpage.html'.
func tracer() tracing.Trace {
	return tracing.Select("mdpage.html")
}

// --- Escaping --------------------------------------------------------------

var commentRx = regexp.MustCompile(`<!--.*?-->`)

// structural lists the characters which may be backslash-escaped in
// markdown source.
const structural = "\\`*_{}[]()#+-.!|<>~"

// EscapeMarkup prepares a line of markdown source for block classification.
// It strips HTML comments and, outside of backtick spans, replaces
// backslash-escaped structural characters by numeric character references.
// A '<' which cannot start a tag is escaped as well.
func EscapeMarkup(text string) string {
	text = commentRx.ReplaceAllString(text, "")
	var b strings.Builder
	b.Grow(len(text))
	inCode := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '`':
			inCode = !inCode
			b.WriteByte(c)
		case inCode:
			b.WriteByte(c)
		case c == '\\' && i+1 < len(text) && strings.IndexByte(structural, text[i+1]) >= 0:
			fmt.Fprintf(&b, "&#%d;", text[i+1])
			i++
		case c == '<' && !startsTag(text[i+1:]):
			b.WriteString("&lt;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func startsTag(rest string) bool {
	if rest == "" {
		return false
	}
	c := rest[0]
	return c == '/' || c == '!' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// EscapeForDisplay escapes literal text for use as markup text content,
// e.g. the contents of code blocks.
func EscapeForDisplay(text string) string {
	return nethtml.EscapeString(text)
}

// --- URLs ------------------------------------------------------------------

// Placeholder replaces link targets which did not pass the sanitizer.
const Placeholder = "#"

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// CheckURL validates a link destination. Relative references and fragments
// are allowed, as are absolute URLs with an allow-listed scheme.
// Protocol-relative URLs and destinations containing control or
// formatting characters are rejected.
func CheckURL(raw string) (string, error) {
	dest := strings.TrimSpace(raw)
	if dest == "" {
		return "", core.Error(core.EINVALID, "empty link destination")
	}
	for _, r := range dest {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return "", core.Error(core.EUNSAFE, "link destination contains control characters")
		}
	}
	if strings.HasPrefix(dest, "//") || strings.HasPrefix(dest, `\\`) {
		return "", core.Error(core.EUNSAFE, "protocol-relative link destination %q", dest)
	}
	u, err := url.Parse(dest)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot parse link destination %q", dest)
	}
	if u.Scheme == "" || allowedSchemes[strings.ToLower(u.Scheme)] {
		return dest, nil
	}
	return "", core.Error(core.EUNSAFE, "scheme %q not allowed", u.Scheme)
}

// SanitizeURL returns raw if it is an acceptable link destination, and
// Placeholder otherwise.
func SanitizeURL(raw string) string {
	dest, err := CheckURL(raw)
	if err != nil {
		tracer().Infof("link destination dropped: %s", core.UserMessage(err))
		return Placeholder
	}
	return dest
}
