package command

import (
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/snbt"
)

// ItemStack is an item placed in an entity's equipment.
type ItemStack struct {
	ID           string        `json:"id" yaml:"id"`
	Count        int           `json:"count,omitempty" yaml:"count,omitempty"`
	Enchantments []Enchantment `json:"enchantments,omitempty" yaml:"enchantments,omitempty"`
}

// Entry returns the NBT form of the stack: id, count and, only when
// enchanted, a components map keyed by namespaced component name.
func (s ItemStack) Entry(g mcver.Group) *snbt.Compound {
	count := s.Count
	if count <= 0 {
		count = 1
	}
	c := snbt.NewCompound().
		Set("id", Namespaced(s.ID)).
		Set("count", snbt.Int(count))
	if len(s.Enchantments) > 0 {
		c.Set("components", snbt.NewCompound().
			Set("minecraft:enchantments", EnchantmentComponent(s.Enchantments, g)))
	}
	return c
}

// Equipment maps slots to the items an entity wears or holds.
type Equipment map[Slot]ItemStack

var (
	// equipment map order for the latest group
	slotOrder = []Slot{MainHand, OffHand, Head, Chest, Legs, Feet}
	// fixed list orders for ArmorItems and HandItems
	armorOrder = []Slot{Feet, Legs, Chest, Head}
	handOrder  = []Slot{MainHand, OffHand}
)

func (e Equipment) has(slots []Slot) bool {
	for _, s := range slots {
		if it, ok := e[s]; ok && it.ID != "" {
			return true
		}
	}
	return false
}

func (e Equipment) list(slots []Slot, g mcver.Group) snbt.List {
	out := make(snbt.List, 0, len(slots))
	for _, s := range slots {
		if it, ok := e[s]; ok && it.ID != "" {
			out = append(out, it.Entry(g))
		} else {
			out = append(out, snbt.NewCompound())
		}
	}
	return out
}

// Apply writes the equipment into an entity's NBT: a single equipment map
// keyed by slot in the latest group, ArmorItems/HandItems lists with empty
// placeholders otherwise. Lists are only written when one of their slots is
// filled.
func (e Equipment) Apply(nbt *snbt.Compound, g mcver.Group) {
	if g.Has(mcver.EquipmentMap) {
		if !e.has(slotOrder) {
			return
		}
		m := snbt.NewCompound()
		for _, s := range slotOrder {
			if it, ok := e[s]; ok && it.ID != "" {
				m.Set(string(s), it.Entry(g))
			}
		}
		nbt.Set("equipment", m)
		return
	}
	if e.has(handOrder) {
		nbt.Set("HandItems", e.list(handOrder, g))
	}
	if e.has(armorOrder) {
		nbt.Set("ArmorItems", e.list(armorOrder, g))
	}
}
