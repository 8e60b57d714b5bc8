// Package textcomp serializes styled runs into Minecraft text: plain legacy
// strings, quoted JSON text components, or SNBT text components, depending
// on the target format group.
package textcomp

import (
	"strings"

	"github.com/jmoiron/mccmd/internal/mccolor"
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/richtext"
	"github.com/jmoiron/mccmd/snbt"
)

// Options adjust serialization for the destination of the text.
type Options struct {
	// CustomName marks text used as an item or entity custom name. Those
	// render italic by default, so multi-part names get a non-italic empty
	// parent component first. This holds for the display.Name tag and for
	// the minecraft:custom_name item component alike (only item_name is
	// upright), so every group with rich text gets the parent.
	CustomName bool
}

// Dialect returns the encoding text components use in group g.
func Dialect(g mcver.Group) snbt.Dialect {
	if g.Has(mcver.SNBTText) {
		return snbt.SNBT
	}
	return snbt.JSON
}

// Component builds the component for a single run. Style fields are present
// only when set; the color is omitted when it does not resolve.
func Component(r richtext.Run, g mcver.Group) *snbt.Compound {
	c := snbt.NewCompound().Set("text", r.Text)
	f := r.Format
	if f.Bold {
		c.Set("bold", true)
	}
	if f.Italic {
		c.Set("italic", true)
	}
	if f.Underlined {
		c.Set("underlined", true)
	}
	if f.Strikethrough {
		c.Set("strikethrough", true)
	}
	if f.Obfuscated {
		c.Set("obfuscated", true)
	}
	if col, ok := mccolor.Resolve(string(f.Color), g); ok {
		c.Set("color", col)
	}
	return c
}

// Build returns the structured value for runs: an empty string when there
// are no runs, a single compound for one run, and a list otherwise.
func Build(runs []richtext.Run, ev Events, g mcver.Group, opts Options) snbt.Value {
	if len(runs) == 0 {
		return ""
	}
	comps := make(snbt.List, 0, len(runs)+1)
	for _, r := range runs {
		comps = append(comps, Component(r, g))
	}
	ev.attach(comps[0].(*snbt.Compound), g)
	if len(comps) == 1 {
		return comps[0]
	}
	if opts.CustomName {
		placeholder := snbt.NewCompound().Set("text", "").Set("italic", false)
		comps = append(snbt.List{placeholder}, comps...)
	}
	return comps
}

// Serialize renders runs for group g. The legacy group has no rich text and
// gets the plain concatenated text; other groups get a JSON or SNBT text
// component. Output depends only on the arguments.
func Serialize(runs []richtext.Run, ev Events, g mcver.Group, opts Options) string {
	if g == mcver.Legacy {
		return Plain(runs)
	}
	return encode(Build(runs, ev, g, opts), Dialect(g))
}

// Embed renders runs as a value that can be placed inside NBT or an item
// component: JSON components are wrapped in a single-quoted string, SNBT
// components are inlined, and legacy text becomes a quoted string.
func Embed(runs []richtext.Run, ev Events, g mcver.Group, opts Options) snbt.Raw {
	switch {
	case g == mcver.Legacy:
		return snbt.Raw(snbt.Quote(Plain(runs)))
	case g.Has(mcver.SNBTText):
		return snbt.Raw(Serialize(runs, ev, g, opts))
	default:
		return snbt.Raw(snbt.QuoteSingle(Serialize(runs, ev, g, opts)))
	}
}

// Plain returns the concatenated text of runs.
func Plain(runs []richtext.Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// encode marshals values built by this package, which only hold types the
// encoder supports.
func encode(v snbt.Value, d snbt.Dialect) string {
	var b strings.Builder
	if err := snbt.NewEncoder(&b, d).Encode(v); err != nil {
		panic("textcomp: " + err.Error())
	}
	return b.String()
}
