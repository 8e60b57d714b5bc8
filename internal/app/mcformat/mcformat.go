// Package mcformat converts between legacy formatting codes, styled runs,
// HTML for the preview page and ANSI for terminal previews.
package mcformat

import (
	"html/template"
	"strings"

	"github.com/jmoiron/mccmd/internal/mccolor"
	"github.com/jmoiron/mccmd/internal/richtext"
)

// isPrefix reports whether r can introduce a formatting code. Both the
// section sign and the '&' used by chat plugins are accepted.
func isPrefix(r rune) bool { return r == '§' || r == '&' }

// apply updates f for code c. ok is false if c is not a formatting code.
// A color code resets styles, as in game.
func apply(f richtext.Format, c rune) (richtext.Format, bool) {
	if c < 0x80 {
		if n, ok := mccolor.FromCode(byte(c)); ok {
			return richtext.Format{Color: richtext.Color(n.Name)}, true
		}
	}
	switch c {
	case 'k', 'K':
		f.Obfuscated = true
	case 'l', 'L':
		f.Bold = true
	case 'm', 'M':
		f.Strikethrough = true
	case 'n', 'N':
		f.Underlined = true
	case 'o', 'O':
		f.Italic = true
	case 'r', 'R':
		f = richtext.Format{}
	default:
		return f, false
	}
	return f, true
}

// Parse reads a §/& coded string into a buffer. A prefix not followed by a
// valid code is kept as text.
func Parse(s string) richtext.Buffer {
	rs := []rune(s)
	buf := make(richtext.Buffer, 0, len(rs))
	var f richtext.Format
	for i := 0; i < len(rs); i++ {
		if isPrefix(rs[i]) && i+1 < len(rs) {
			if nf, ok := apply(f, rs[i+1]); ok {
				f = nf
				i++
				continue
			}
		}
		buf = append(buf, richtext.Char{Rune: rs[i], Format: f})
	}
	return buf
}

// ParseRuns is Parse followed by compression.
func ParseRuns(s string) []richtext.Run {
	return richtext.Compress(Parse(s))
}

// Strip removes formatting codes from s, leaving the text.
func Strip(s string) string {
	if !strings.ContainsAny(s, "&§") {
		return s
	}
	return Parse(s).Text()
}

// Format converts a coded string to HTML. See HTML.
func Format(s string) template.HTML {
	return HTML(ParseRuns(s))
}

// HTML renders runs as spans. Palette colors get an mc-c<code> class, hex
// colors an inline style; both carry data-color so the markup parses back
// to the same runs. Line breaks become <br>.
func HTML(runs []richtext.Run) template.HTML {
	var b strings.Builder
	for _, r := range runs {
		for i, line := range strings.Split(r.Text, "\n") {
			if i > 0 {
				b.WriteString("<br>")
			}
			if line == "" {
				continue
			}
			openSpan(&b, r.Format)
			b.WriteString(template.HTMLEscapeString(line))
			b.WriteString("</span>")
		}
	}
	return template.HTML(b.String())
}

func openSpan(b *strings.Builder, f richtext.Format) {
	classes := []string{"mc-text"}
	var style string
	if n, ok := mccolor.Lookup(string(f.Color)); ok {
		classes = append(classes, "mc-c"+string(n.Code))
	} else if hex, ok := mccolor.Hex(string(f.Color)); ok {
		style = "color:" + hex
	}
	if f.Bold {
		classes = append(classes, "mc-bold")
	}
	if f.Italic {
		classes = append(classes, "mc-italic")
	}
	if f.Underlined {
		classes = append(classes, "mc-underline")
	}
	if f.Strikethrough {
		classes = append(classes, "mc-strike")
	}
	if f.Obfuscated {
		classes = append(classes, "mc-obf")
	}
	b.WriteString(`<span class="`)
	b.WriteString(strings.Join(classes, " "))
	b.WriteString(`"`)
	if f.Color != "" {
		b.WriteString(` data-color="`)
		b.WriteString(template.HTMLEscapeString(string(f.Color)))
		b.WriteString(`"`)
	}
	if style != "" {
		b.WriteString(` style="`)
		b.WriteString(style)
		b.WriteString(`"`)
	}
	b.WriteString(">")
}
