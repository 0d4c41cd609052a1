package markdown

import (
	"path"
	"strings"

	"github.com/npillmayer/mdpage/core/locate/resources"
)

// mediaTitle holds the directives of an image title.
//
//	![clip](clip.mp4 "Intro | poster=intro.jpg | formats=webm")
type mediaTitle struct {
	title   string
	poster  string
	sources []string
	formats []string
}

// parseMediaTitle splits a title into directives. Directives are separated
// by '|' or ';', list values by ',' or ';'. A plain title without any '='
// is taken verbatim.
func parseMediaTitle(title string) mediaTitle {
	var mt mediaTitle
	if !strings.Contains(title, "=") {
		mt.title = strings.TrimSpace(title)
		return mt
	}
	var words []string
	var list *[]string // open list directive, continued by plain values
	for _, part := range strings.FieldsFunc(title, func(r rune) bool { return r == '|' || r == ';' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		switch {
		case ok && key == "poster":
			mt.poster = strings.TrimSpace(value)
			list = nil
		case ok && key == "sources":
			mt.sources = append(mt.sources, splitList(value)...)
			list = &mt.sources
		case ok && key == "formats":
			mt.formats = append(mt.formats, splitList(value)...)
			list = &mt.formats
		case !ok && list != nil:
			*list = append(*list, splitList(part)...)
		default:
			words = append(words, part)
			list = nil
		}
	}
	mt.title = strings.Join(words, " ")
	return mt
}

func splitList(s string) []string {
	var l []string
	for _, v := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if v = strings.TrimSpace(v); v != "" {
			l = append(l, v)
		}
	}
	return l
}

// asset resolves an image or video source.
func (f *inlineFormatter) asset(src string) string {
	return f.hooks.ResolveAssetPath(src, f.baseDir)
}

// embed renders ![[path|alias]].
func (f *inlineFormatter) embed(m []string) string {
	target := strings.TrimSpace(m[1])
	alias := strings.TrimSpace(m[2])
	if resources.IsVideo(target) {
		return f.video(target, mediaTitle{title: alias})
	}
	alt := alias
	if alt == "" {
		alt = path.Base(target)
	}
	return f.img(f.asset(target), alt, "")
}

// image renders ![alt](src "title"), which may denote a video.
func (f *inlineFormatter) image(m []string) string {
	alt, src := m[1], m[2]
	mt := parseMediaTitle(m[3])
	if resources.IsVideo(src) || mt.poster != "" || len(mt.sources) > 0 {
		if mt.title == "" {
			mt.title = alt
		}
		return f.video(src, mt)
	}
	if len(mt.formats) > 0 {
		return f.picture(src, alt, mt)
	}
	return f.img(f.asset(src), alt, mt.title)
}

func (f *inlineFormatter) img(src, alt, title string) string {
	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(f.hooks.EscapeForDisplay(src))
	b.WriteString(`" alt="`)
	b.WriteString(f.hooks.EscapeForDisplay(alt))
	b.WriteByte('"')
	f.attr(&b, "title", title)
	if f.lazy {
		b.WriteString(` loading="lazy"`)
	}
	b.WriteByte('>')
	return b.String()
}

func (f *inlineFormatter) video(src string, mt mediaTitle) string {
	var b strings.Builder
	b.WriteString(`<video controls preload="metadata"`)
	if mt.poster != "" {
		f.attr(&b, "poster", f.asset(mt.poster))
	}
	f.attr(&b, "title", mt.title)
	b.WriteByte('>')
	for _, s := range f.alternatives(src, mt) {
		f.source(&b, "src", s)
	}
	b.WriteString("</video>")
	return b.String()
}

func (f *inlineFormatter) picture(src, alt string, mt mediaTitle) string {
	var b strings.Builder
	b.WriteString("<picture>")
	for _, s := range f.alternatives(src, mt)[1:] {
		f.source(&b, "srcset", s)
	}
	b.WriteString(f.img(f.asset(src), alt, mt.title))
	b.WriteString("</picture>")
	return b.String()
}

// alternatives lists src, then explicit sources, then sources derived from
// src by swapping the extension for each format. Duplicates are dropped.
func (f *inlineFormatter) alternatives(src string, mt mediaTitle) []string {
	all := []string{src}
	seen := map[string]bool{src: true}
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			all = append(all, s)
		}
	}
	for _, s := range mt.sources {
		add(s)
	}
	for _, ext := range mt.formats {
		add(resources.SwapExtension(src, ext))
	}
	return all
}

// source writes a <source> element with its MIME type, if known.
func (f *inlineFormatter) source(b *strings.Builder, attr string, src string) {
	b.WriteString("<source")
	f.attr(b, attr, f.asset(src))
	_, mime := resources.MediaType(src)
	f.attr(b, "type", mime)
	b.WriteByte('>')
}
