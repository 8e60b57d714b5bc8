package command

import (
	"strconv"

	"github.com/jmoiron/mccmd/internal/legacyid"
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/snbt"
)

// Enchantment is one enchantment row. Level is not range checked.
type Enchantment struct {
	ID    string `json:"id" yaml:"id"`
	Level int    `json:"level" yaml:"level"`
}

// EnchantmentComponent returns the value of the enchantments item component.
// The latest group uses the simplified {"id":level} map with unprefixed keys;
// the component group wraps namespaced keys in {levels:{...}}.
func EnchantmentComponent(es []Enchantment, g mcver.Group) *snbt.Compound {
	levels := snbt.NewQuotedCompound()
	for _, e := range es {
		key := Namespaced(e.ID)
		if g.Has(mcver.SimplifiedEnchantments) {
			key = Unnamespaced(e.ID)
		}
		levels.Set(key, snbt.Int(e.Level))
	}
	if g.Has(mcver.SimplifiedEnchantments) {
		return levels
	}
	return snbt.NewCompound().Set("levels", levels)
}

// EnchantmentTag returns the NBT list form of es along with its tag name:
// Enchantments (StoredEnchantments for books) with string ids, or ench with
// legacy numeric ids.
func EnchantmentTag(es []Enchantment, g mcver.Group, book bool) (string, snbt.List) {
	list := make(snbt.List, 0, len(es))
	for _, e := range es {
		var id snbt.Value = Namespaced(e.ID)
		if g.Has(mcver.NumericIDs) {
			n, _ := legacyid.Enchantment(e.ID)
			id = snbt.Short(n)
		}
		list = append(list, snbt.NewCompound().Set("id", id).Set("lvl", snbt.Short(e.Level)))
	}
	switch {
	case book:
		return "StoredEnchantments", list
	case g.Has(mcver.NumericIDs):
		return "ench", list
	}
	return "Enchantments", list
}

// Enchant returns an /enchant command applying e to target.
func Enchant(target string, e Enchantment, version string) string {
	id := Namespaced(e.ID)
	if mcver.Supports(version, mcver.NumericIDs) {
		n, _ := legacyid.Enchantment(e.ID)
		id = strconv.Itoa(n)
	}
	return join("/enchant", orDefault(target, "@p"), id, strconv.Itoa(e.Level))
}
