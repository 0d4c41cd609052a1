package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var calloutRx = regexp.MustCompile(`^\s*\[!([A-Za-z][\w-]*)\]([+-]?)\s*(.*)$`)

// calloutType is a canonical callout type with its icon.
type calloutType struct {
	name string
	icon string
}

var (
	noteCallout     = calloutType{"note", "✎"}
	abstractCallout = calloutType{"abstract", "☰"}
	infoCallout     = calloutType{"info", "ℹ"}
	todoCallout     = calloutType{"todo", "☐"}
	tipCallout      = calloutType{"tip", "✦"}
	successCallout  = calloutType{"success", "✔"}
	questionCallout = calloutType{"question", "?"}
	warningCallout  = calloutType{"warning", "⚠"}
	failureCallout  = calloutType{"failure", "✘"}
	dangerCallout   = calloutType{"danger", "⚡"}
	bugCallout      = calloutType{"bug", "✱"}
	exampleCallout  = calloutType{"example", "▤"}
	quoteCallout    = calloutType{"quote", "❝"}
)

// calloutTypes maps type names and aliases to canonical types.
var calloutTypes = map[string]calloutType{
	"note":      noteCallout,
	"abstract":  abstractCallout,
	"summary":   abstractCallout,
	"tldr":      abstractCallout,
	"info":      infoCallout,
	"todo":      todoCallout,
	"tip":       tipCallout,
	"hint":      tipCallout,
	"important": tipCallout,
	"success":   successCallout,
	"check":     successCallout,
	"done":      successCallout,
	"question":  questionCallout,
	"help":      questionCallout,
	"faq":       questionCallout,
	"warning":   warningCallout,
	"caution":   warningCallout,
	"attention": warningCallout,
	"failure":   failureCallout,
	"fail":      failureCallout,
	"missing":   failureCallout,
	"danger":    dangerCallout,
	"error":     dangerCallout,
	"bug":       bugCallout,
	"example":   exampleCallout,
	"quote":     quoteCallout,
	"cite":      quoteCallout,
}

func lookupCallout(name string) calloutType {
	if t, ok := calloutTypes[strings.ToLower(name)]; ok {
		return t
	}
	return noteCallout
}

// quote collects a block quote starting at line i: consecutive '>' lines,
// for callouts followed by lazy continuation lines. It returns the last
// line consumed.
func (p *blockParser) quote(i int) int {
	p.closeBlocks()
	var inner []string
	j := i
	for ; j < len(p.lines); j++ {
		escaped := p.hooks.EscapeMarkup(p.lines[j])
		if !strings.HasPrefix(escaped, ">") {
			break
		}
		line := p.lines[j]
		if !strings.HasPrefix(line, ">") {
			line = escaped
		}
		line = strings.TrimPrefix(line[1:], " ")
		inner = append(inner, line)
	}
	if len(inner) > 0 && calloutRx.MatchString(p.hooks.EscapeMarkup(inner[0])) {
		for ; j < len(p.lines) && p.isLazyContinuation(p.lines[j]); j++ {
			inner = append(inner, p.lines[j])
		}
	}
	p.out.WriteString(p.renderQuote(inner))
	return j - 1
}

// isLazyContinuation is true for a non-blank line which starts no block
// of its own.
func (p *blockParser) isLazyContinuation(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "|") {
		return false
	}
	if _, ok := detectFence(raw); ok {
		return false
	}
	if _, ok := parseRawTag(raw); ok {
		return false
	}
	escaped := p.hooks.EscapeMarkup(raw)
	if strings.HasPrefix(escaped, "#") || strings.HasPrefix(escaped, ">") || todoRx.MatchString(escaped) {
		return false
	}
	_, _, isList := listMarker(escaped)
	return !isList
}

// renderQuote tries the rendering tiers in turn: typed callout, plain
// block quote, escaped text.
func (p *blockParser) renderQuote(inner []string) string {
	out, err := tryRender(func() (string, error) { return p.callout(inner) })
	if err == nil {
		return out
	}
	if !errors.Is(err, ErrNotACallout) {
		tracer().Infof("callout rendered as block quote: %v", err)
	}
	if out, err = tryRender(func() (string, error) { return p.blockquote(inner) }); err == nil {
		return out
	}
	tracer().Infof("block quote rendered as text: %v", err)
	return p.escapedQuote(inner)
}

// tryRender calls a rendering tier, converting a panic into an error.
func tryRender(render func() (string, error)) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("%w: %v", errRenderPanic, r)
		}
	}()
	return render()
}

func (p *blockParser) callout(inner []string) (string, error) {
	if len(inner) == 0 {
		return "", ErrNotACallout
	}
	m := calloutRx.FindStringSubmatch(p.hooks.EscapeMarkup(inner[0]))
	if m == nil {
		return "", ErrNotACallout
	}
	typ := lookupCallout(m[1])
	label := strings.TrimSpace(m[3])
	if label == "" {
		label = cases.Title(language.English).String(typ.name)
	} else {
		label = p.formatLine(label)
	}
	body, err := p.subDocument(inner[1:])
	if err != nil {
		return "", err
	}
	attrs := fmt.Sprintf(`class="callout callout-%s" data-callout="%s"`, typ.name, typ.name)
	title := `<span class="callout-icon" aria-hidden="true">` + typ.icon +
		`</span><span class="callout-label">` + label + `</span>`
	var b strings.Builder
	switch m[2] {
	case "":
		b.WriteString(`<div ` + attrs + `><div class="callout-title">` + title + `</div>`)
	case "+":
		b.WriteString(`<details ` + attrs + ` open><summary class="callout-title">` + title + `</summary>`)
	default:
		b.WriteString(`<details ` + attrs + `><summary class="callout-title">` + title + `</summary>`)
	}
	b.WriteString(`<div class="callout-body">` + body + `</div>`)
	if m[2] == "" {
		b.WriteString("</div>\n")
	} else {
		b.WriteString("</details>\n")
	}
	return b.String(), nil
}

func (p *blockParser) blockquote(inner []string) (string, error) {
	body, err := p.subDocument(inner)
	if err != nil {
		return "", err
	}
	return "<blockquote>" + body + "</blockquote>\n", nil
}

func (p *blockParser) escapedQuote(inner []string) string {
	lines := make([]string, len(inner))
	for i, l := range inner {
		lines[i] = p.hooks.EscapeForDisplay(l)
	}
	return "<blockquote>" + strings.Join(lines, lineBreak) + "</blockquote>\n"
}
