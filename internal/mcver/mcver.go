// Package mcver resolves Minecraft release strings into the format group
// that decides how commands are written for that release.
package mcver

import (
	"strings"
)

// Compare compares two dotted version strings component-wise as integers,
// padding the shorter one with zeros. It returns -1, 0 or 1.
// "1.21" and "1.21.0" compare equal.
func Compare(a, b string) int {
	pa, pb := parse(a), parse(b)
	n := max(len(pa), len(pb))
	for i := range n {
		var x, y int
		if i < len(pa) {
			x = pa[i]
		}
		if i < len(pb) {
			y = pb[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v >= min.
func AtLeast(v, min string) bool { return Compare(v, min) >= 0 }

// parse splits v on '.' and reads the leading digits of each component.
// Components without digits read as 0, so garbage parses as 0.0.0.
func parse(v string) []int {
	parts := strings.Split(strings.TrimSpace(v), ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n := 0
		for _, r := range p {
			if r < '0' || r > '9' {
				break
			}
			n = n*10 + int(r-'0')
		}
		out[i] = n
	}
	return out
}

// Resolve returns the format group for a version string. Each band is
// inclusive on its lower bound. Unparsable input resolves to Legacy.
func Resolve(version string) Group {
	switch {
	case AtLeast(version, "1.21"):
		return Latest
	case AtLeast(version, "1.20.5"):
		return Component
	case AtLeast(version, "1.16"):
		return NBTModern
	case AtLeast(version, "1.13"):
		return NBTLegacy
	default:
		return Legacy
	}
}

// Supports reports whether the group version resolves to has feature.
// Unknown feature names are not supported.
func Supports(version string, feature Feature) bool {
	return Resolve(version).Has(feature)
}
