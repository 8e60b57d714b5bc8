package command

import (
	"strconv"
	"strings"

	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/richtext"
	"github.com/jmoiron/mccmd/internal/textcomp"
	"github.com/jmoiron/mccmd/snbt"
)

// Item describes an item to give.
type Item struct {
	ID           string
	Count        int
	Name         Text
	Lore         []richtext.Run // split into lines at line breaks
	Enchantments []Enchantment
	Modifiers    []AttributeModifier
	Unbreakable  bool
	Damage       int
}

// IsBook reports whether enchantments are stored rather than applied.
func (it Item) IsBook() bool { return Unnamespaced(it.ID) == "enchanted_book" }

func (it Item) count() int {
	if it.Count <= 0 {
		return 1
	}
	return it.Count
}

func (it Item) lore(g mcver.Group) snbt.List {
	if len(it.Lore) == 0 {
		return nil
	}
	lines := richtext.Lines(it.Lore)
	out := make(snbt.List, 0, len(lines))
	for _, l := range lines {
		out = append(out, textcomp.Embed(l, textcomp.Events{}, g, textcomp.Options{}))
	}
	return out
}

// Give returns a /give command for target in the syntax of version.
func Give(target string, it Item, version string) string {
	g := mcver.Resolve(version)
	target = orDefault(target, "@p")
	id := Namespaced(it.ID)
	count := strconv.Itoa(it.count())

	switch {
	case g.Has(mcver.ItemComponents):
		return join("/give", target, id+it.components(g), count)
	case g == mcver.Legacy:
		tag := it.tag(g)
		return join("/give", target, id, count, strconv.Itoa(it.Damage), encodeTag(tag))
	}
	return join("/give", target, id+encodeTag(it.tag(g)), count)
}

// components renders the [k=v,...] item component block, or "" if empty.
func (it Item) components(g mcver.Group) string {
	var parts []string
	add := func(k string, v snbt.Value) {
		parts = append(parts, k+"="+encode(v))
	}
	if !it.Name.IsEmpty() {
		add("custom_name", textcomp.Embed(it.Name.Runs, it.Name.Events, g, textcomp.Options{CustomName: true}))
	}
	if lore := it.lore(g); lore != nil {
		add("lore", lore)
	}
	if len(it.Enchantments) > 0 {
		key := "enchantments"
		if it.IsBook() {
			key = "stored_enchantments"
		}
		add(key, EnchantmentComponent(it.Enchantments, g))
	}
	if len(it.Modifiers) > 0 {
		add("attribute_modifiers", ModifierComponent(it.Modifiers, g))
	}
	if it.Unbreakable {
		add("unbreakable", snbt.NewCompound())
	}
	if it.Damage > 0 {
		add("damage", snbt.Int(it.Damage))
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// tag builds the item NBT tag used before item components.
func (it Item) tag(g mcver.Group) *snbt.Compound {
	tag := snbt.NewCompound()
	display := snbt.NewCompound()
	if !it.Name.IsEmpty() {
		display.Set("Name", textcomp.Embed(it.Name.Runs, it.Name.Events, g, textcomp.Options{CustomName: true}))
	}
	if lore := it.lore(g); lore != nil {
		display.Set("Lore", lore)
	}
	if display.Len() > 0 {
		tag.Set("display", display)
	}
	if len(it.Enchantments) > 0 {
		name, list := EnchantmentTag(it.Enchantments, g, it.IsBook())
		tag.Set(name, list)
	}
	if len(it.Modifiers) > 0 {
		tag.Set("AttributeModifiers", ModifierTag(it.Modifiers, g))
	}
	if it.Unbreakable {
		tag.Set("Unbreakable", snbt.Byte(1))
	}
	if it.Damage > 0 && g != mcver.Legacy {
		tag.Set("Damage", snbt.Int(it.Damage))
	}
	return tag
}

func encodeTag(tag *snbt.Compound) string {
	if tag.Len() == 0 {
		return ""
	}
	return encode(tag)
}

// encode marshals values assembled in this package; they only hold types the
// encoder supports.
func encode(v snbt.Value) string {
	s, err := snbt.Marshal(v)
	if err != nil {
		panic("command: " + err.Error())
	}
	return s
}
