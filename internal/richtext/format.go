// Package richtext holds the editable text model: one style record per
// character, compression into maximal same-style runs, and selection-based
// formatting.
package richtext

// Color is a text color reference: one of the 16 palette names
// ("gold", "dark_red", ...) or a "#RRGGBB" literal. The empty Color means
// no color is set.
type Color string

// Format is the style of a single character. Two formats are equal when all
// fields are equal; colors compare by their raw value.
type Format struct {
	Color         Color
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
}

// IsPlain is true when f carries no styling at all.
func (f Format) IsPlain() bool { return f == Format{} }

// Field names one of the boolean style fields of a Format.
type Field int

const (
	Bold Field = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated
)

var fieldNames = [...]string{"bold", "italic", "underlined", "strikethrough", "obfuscated"}

func (f Field) String() string {
	if f < Bold || f > Obfuscated {
		return "unknown"
	}
	return fieldNames[f]
}

// ParseField returns the field named s.
func ParseField(s string) (Field, bool) {
	for i, n := range fieldNames {
		if n == s {
			return Field(i), true
		}
	}
	return 0, false
}

// Get returns the value of field.
func (f Format) Get(field Field) bool {
	switch field {
	case Bold:
		return f.Bold
	case Italic:
		return f.Italic
	case Underlined:
		return f.Underlined
	case Strikethrough:
		return f.Strikethrough
	case Obfuscated:
		return f.Obfuscated
	}
	return false
}

// With returns f with field set to v.
func (f Format) With(field Field, v bool) Format {
	switch field {
	case Bold:
		f.Bold = v
	case Italic:
		f.Italic = v
	case Underlined:
		f.Underlined = v
	case Strikethrough:
		f.Strikethrough = v
	case Obfuscated:
		f.Obfuscated = v
	}
	return f
}

// Patch is a partial Format. Nil fields are left alone when the patch is
// applied; set fields replace the target value outright.
type Patch struct {
	Color         *Color
	Bold          *bool
	Italic        *bool
	Underlined    *bool
	Strikethrough *bool
	Obfuscated    *bool
}

// SetColor returns a patch that replaces the color.
func SetColor(c Color) Patch { return Patch{Color: &c} }

// SetField returns a patch that sets one boolean field.
func SetField(field Field, v bool) Patch {
	var p Patch
	switch field {
	case Bold:
		p.Bold = &v
	case Italic:
		p.Italic = &v
	case Underlined:
		p.Underlined = &v
	case Strikethrough:
		p.Strikethrough = &v
	case Obfuscated:
		p.Obfuscated = &v
	}
	return p
}

// IsEmpty is true when the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Color == nil && p.Bold == nil && p.Italic == nil &&
		p.Underlined == nil && p.Strikethrough == nil && p.Obfuscated == nil
}

// Merge returns f with the patch applied.
func (p Patch) Merge(f Format) Format {
	if p.Color != nil {
		f.Color = *p.Color
	}
	if p.Bold != nil {
		f.Bold = *p.Bold
	}
	if p.Italic != nil {
		f.Italic = *p.Italic
	}
	if p.Underlined != nil {
		f.Underlined = *p.Underlined
	}
	if p.Strikethrough != nil {
		f.Strikethrough = *p.Strikethrough
	}
	if p.Obfuscated != nil {
		f.Obfuscated = *p.Obfuscated
	}
	return f
}
