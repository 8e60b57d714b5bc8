package richtext

import "strings"

// Char is one editable character and its style.
type Char struct {
	Rune   rune
	Format Format
}

// Buffer is the per-character style buffer of an editor. Its length is the
// authored text length, line breaks included.
type Buffer []Char

// NewBuffer returns a buffer holding text with every character in format f.
func NewBuffer(text string, f Format) Buffer {
	b := make(Buffer, 0, len(text))
	for _, r := range text {
		b = append(b, Char{Rune: r, Format: f})
	}
	return b
}

// Text returns the characters of b.
func (b Buffer) Text() string {
	var sb strings.Builder
	for _, c := range b {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Run is a maximal span of characters sharing one Format. Text is never empty.
type Run struct {
	Text   string
	Format Format
}

// Compress collapses b into maximal same-format runs in a single pass.
// Adjacent runs never share a format and their texts concatenate to b.
// An empty buffer yields no runs.
func Compress(b Buffer) []Run {
	var (
		runs []Run
		cur  strings.Builder
		f    Format
	)
	for i, c := range b {
		if i > 0 && c.Format != f {
			runs = append(runs, Run{Text: cur.String(), Format: f})
			cur.Reset()
		}
		f = c.Format
		cur.WriteRune(c.Rune)
	}
	if cur.Len() > 0 {
		runs = append(runs, Run{Text: cur.String(), Format: f})
	}
	return runs
}

// Expand is the inverse of Compress.
func Expand(runs []Run) Buffer {
	n := 0
	for _, r := range runs {
		n += len(r.Text)
	}
	b := make(Buffer, 0, n)
	for _, r := range runs {
		for _, c := range r.Text {
			b = append(b, Char{Rune: c, Format: r.Format})
		}
	}
	return b
}

// Lines splits runs at line breaks. Each line holds the runs (or run
// fragments) between two breaks; the breaks themselves are dropped.
func Lines(runs []Run) [][]Run {
	lines := [][]Run{nil}
	for _, r := range runs {
		parts := strings.Split(r.Text, "\n")
		for i, p := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if p != "" {
				n := len(lines) - 1
				lines[n] = append(lines[n], Run{Text: p, Format: r.Format})
			}
		}
	}
	return lines
}
