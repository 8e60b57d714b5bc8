// Package mccolor resolves text colors: the fixed 16-color palette, arbitrary
// hex colors, and downsampling hex to the palette for releases without hex
// support.
package mccolor

import (
	"strings"

	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/lucasb-eyer/go-colorful"
)

// Named is one of the 16 palette colors.
type Named struct {
	Name string
	Code byte // legacy formatting code, '0'-'9' 'a'-'f'
	Hex  string
}

// Palette is the fixed 16-color palette in declaration order. Ties in
// Nearest resolve to the earlier entry.
var Palette = [16]Named{
	{"black", '0', "#000000"},
	{"dark_blue", '1', "#0000AA"},
	{"dark_green", '2', "#00AA00"},
	{"dark_aqua", '3', "#00AAAA"},
	{"dark_red", '4', "#AA0000"},
	{"dark_purple", '5', "#AA00AA"},
	{"gold", '6', "#FFAA00"},
	{"gray", '7', "#AAAAAA"},
	{"dark_gray", '8', "#555555"},
	{"blue", '9', "#5555FF"},
	{"green", 'a', "#55FF55"},
	{"aqua", 'b', "#55FFFF"},
	{"red", 'c', "#FF5555"},
	{"light_purple", 'd', "#FF55FF"},
	{"yellow", 'e', "#FFFF55"},
	{"white", 'f', "#FFFFFF"},
}

var (
	byName = make(map[string]int, len(Palette))
	byCode = make(map[byte]int, len(Palette))
	rgb    [len(Palette)][3]int
)

func init() {
	for i, n := range Palette {
		byName[n.Name] = i
		byCode[n.Code] = i
		c, _ := colorful.Hex(n.Hex)
		r, g, b := c.RGB255()
		rgb[i] = [3]int{int(r), int(g), int(b)}
	}
}

// Lookup returns the palette entry called name.
func Lookup(name string) (Named, bool) {
	i, ok := byName[strings.ToLower(name)]
	if !ok {
		return Named{}, false
	}
	return Palette[i], true
}

// FromCode returns the palette entry for a legacy formatting code.
func FromCode(code byte) (Named, bool) {
	if code >= 'A' && code <= 'F' {
		code = code - 'A' + 'a'
	}
	i, ok := byCode[code]
	if !ok {
		return Named{}, false
	}
	return Palette[i], true
}

// IsHex reports whether s is a "#RRGGBB" literal.
func IsHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}

// Hex returns the display value of a color reference: the palette's hex for
// a name, the normalized literal for a hex color. ok is false for anything
// else.
func Hex(ref string) (string, bool) {
	if n, ok := Lookup(ref); ok {
		return n.Hex, true
	}
	if IsHex(ref) {
		return strings.ToUpper(ref), true
	}
	return "", false
}

// Nearest returns the palette color closest to hex by Euclidean distance in
// RGB space. ok is false if hex does not parse.
func Nearest(hex string) (Named, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Named{}, false
	}
	r8, g8, b8 := c.RGB255()
	r, g, b := int(r8), int(g8), int(b8)
	best, bestDist := 0, -1
	for i, p := range rgb {
		dr, dg, db := r-p[0], g-p[1], b-p[2]
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return Palette[best], true
}

// Resolve returns the color value to write for ref in group g: palette names
// pass through (lowercased), hex literals pass through when g supports hex
// colors and are downsampled to the nearest palette name otherwise. Unknown
// references return ok false and should be omitted.
func Resolve(ref string, g mcver.Group) (string, bool) {
	if n, ok := Lookup(ref); ok {
		return n.Name, true
	}
	if !IsHex(ref) {
		return "", false
	}
	if g.Has(mcver.HexColors) {
		return ref, true
	}
	n, _ := Nearest(ref)
	return n.Name, true
}

// Code returns the legacy formatting code for ref, downsampling hex colors.
func Code(ref string) (byte, bool) {
	if n, ok := Lookup(ref); ok {
		return n.Code, true
	}
	if IsHex(ref) {
		n, _ := Nearest(ref)
		return n.Code, true
	}
	return 0, false
}
