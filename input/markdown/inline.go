package markdown

import (
	"regexp"
	"strings"

	"github.com/npillmayer/mdpage/core/parameters"
)

const (
	lineBreak = "<br>"
	hrule     = "<hr>"
)

var (
	boldRx   = regexp.MustCompile(`\*\*([^*\s].*?)\*\*`)
	italicRx = regexp.MustCompile(`\*([^*\s][^*]*?)\*`)
	embedRx  = regexp.MustCompile(`!\[\[([^\]|]+)(?:\|([^\]]*))?\]\]`)
	imageRx  = regexp.MustCompile(`!\[([^\]]*)\]\(\s*([^)\s]+)(?:\s+"([^"]*)")?\s*\)`)
	linkRx   = regexp.MustCompile(`\[([^\]]+)\]\(\s*([^)\s]+)(?:\s+"([^"]*)")?\s*\)`)
	strikeRx = regexp.MustCompile(`~~(.+?)~~`)
	ruleRx   = regexp.MustCompile(`^(\*\*\*|---)$`)
	codeRx   = regexp.MustCompile("`([^`]+)`")
)

// inlineFormatter formats the spans of a single line.
type inlineFormatter struct {
	hooks   Hooks
	baseDir string
	newTab  bool
	lazy    bool
}

func newInlineFormatter(hooks Hooks, regs *parameters.RenderRegisters) *inlineFormatter {
	return &inlineFormatter{
		hooks:   hooks,
		baseDir: regs.S(parameters.P_BASEDIR),
		newTab:  regs.B(parameters.P_NEWTAB),
		lazy:    regs.B(parameters.P_LAZYIMAGES),
	}
}

// FormatInline formats the inline spans of a line of (escaped) markdown.
// Text between backticks is left untouched by every rule except code spans.
// An empty line yields a line break.
func FormatInline(text string, baseDir string, opts ...Option) string {
	hooks, regs := registers(baseDir, opts)
	return newInlineFormatter(hooks, regs).format(text)
}

func (f *inlineFormatter) format(text string) string {
	segments := strings.Split(text, "`")
	for i := 0; i < len(segments); i += 2 {
		segments[i] = f.spans(segments[i])
	}
	out := strings.Join(segments, "`")
	out = codeRx.ReplaceAllStringFunc(out, func(m string) string {
		return "<code>" + f.hooks.EscapeForDisplay(m[1:len(m)-1]) + "</code>"
	})
	if strings.TrimSpace(out) == "" {
		return lineBreak
	}
	return out
}

// spans applies the span rules to a segment outside of code.
func (f *inlineFormatter) spans(s string) string {
	s = boldRx.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRx.ReplaceAllString(s, "<em>$1</em>")
	s = replaceSubmatches(embedRx, s, f.embed)
	s = replaceSubmatches(imageRx, s, f.image)
	s = f.links(s)
	s = strikeRx.ReplaceAllString(s, "<del>$1</del>")
	return ruleRx.ReplaceAllString(s, hrule)
}

// links replaces [text](href "title"), skipping matches directly preceded
// by '!'. Go regular expressions lack look-behind, so matches are filtered
// by index.
func (f *inlineFormatter) links(s string) string {
	locs := linkRx.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		if loc[0] > 0 && s[loc[0]-1] == '!' {
			continue
		}
		b.WriteString(s[prev:loc[0]])
		b.WriteString(f.link(group(s, loc, 1), group(s, loc, 2), group(s, loc, 3)))
		prev = loc[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

func (f *inlineFormatter) link(text, href, title string) string {
	dest := f.hooks.SanitizeURL(href)
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(f.hooks.EscapeForDisplay(dest))
	b.WriteByte('"')
	f.attr(&b, "title", title)
	if f.newTab && isExternal(dest) {
		b.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	b.WriteByte('>')
	b.WriteString(text)
	b.WriteString("</a>")
	return b.String()
}

func isExternal(dest string) bool {
	d := strings.ToLower(dest)
	return strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://")
}

// attr writes ` name="value"` if value is non-empty.
func (f *inlineFormatter) attr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(f.hooks.EscapeForDisplay(value))
	b.WriteByte('"')
}

// replaceSubmatches is ReplaceAllStringFunc with access to sub-matches.
// Unmatched optional groups are passed as "".
func replaceSubmatches(rx *regexp.Regexp, s string, repl func([]string) string) string {
	locs := rx.FindAllStringSubmatchIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(s[prev:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			groups[i] = group(s, loc, i)
		}
		b.WriteString(repl(groups))
		prev = loc[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}

func group(s string, loc []int, i int) string {
	if 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return s[loc[2*i]:loc[2*i+1]]
}
