package mcformat

import (
	"strings"

	"github.com/jmoiron/mccmd/internal/mccolor"
	"github.com/jmoiron/mccmd/internal/richtext"
	"github.com/muesli/termenv"
)

// ANSI renders runs for a terminal with the given color profile. Obfuscated
// text has no terminal equivalent and blinks instead. The Ascii profile
// yields the plain text.
func ANSI(runs []richtext.Run, p termenv.Profile) string {
	var b strings.Builder
	for _, r := range runs {
		if r.Format.IsPlain() || p == termenv.Ascii {
			b.WriteString(r.Text)
			continue
		}
		s := p.String(r.Text)
		if hex, ok := mccolor.Hex(string(r.Format.Color)); ok {
			s = s.Foreground(p.Color(hex))
		}
		f := r.Format
		if f.Bold {
			s = s.Bold()
		}
		if f.Italic {
			s = s.Italic()
		}
		if f.Underlined {
			s = s.Underline()
		}
		if f.Strikethrough {
			s = s.CrossOut()
		}
		if f.Obfuscated {
			s = s.Blink()
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Terminal renders runs for the profile detected on stdout.
func Terminal(runs []richtext.Run) string {
	return ANSI(runs, termenv.ColorProfile())
}
