package textcomp

import (
	"strings"

	"github.com/jmoiron/mccmd/internal/mccolor"
	"github.com/jmoiron/mccmd/internal/richtext"
)

// SectionSign introduces a legacy formatting code.
const SectionSign = '§'

// Legacy renders runs as a §-coded string, the inline formatting used by
// pre-1.13 names and signs. Hex colors are downsampled to the nearest
// palette code. A run following a styled run starts with §r, since legacy
// codes only accumulate.
func Legacy(runs []richtext.Run) string {
	var b strings.Builder
	var prev richtext.Format
	for i, r := range runs {
		if i > 0 && r.Format == prev {
			b.WriteString(r.Text)
			continue
		}
		if i > 0 && !prev.IsPlain() {
			code(&b, 'r')
		}
		f := r.Format
		if c, ok := mccolor.Code(string(f.Color)); ok {
			code(&b, c)
		}
		if f.Obfuscated {
			code(&b, 'k')
		}
		if f.Bold {
			code(&b, 'l')
		}
		if f.Strikethrough {
			code(&b, 'm')
		}
		if f.Underlined {
			code(&b, 'n')
		}
		if f.Italic {
			code(&b, 'o')
		}
		b.WriteString(r.Text)
		prev = f
	}
	return b.String()
}

func code(b *strings.Builder, c byte) {
	b.WriteRune(SectionSign)
	b.WriteByte(c)
}
