package command

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/snbt"
)

// Operation is how an attribute modifier combines with the base value.
type Operation string

const (
	AddValue           Operation = "add_value"
	AddMultipliedBase  Operation = "add_multiplied_base"
	AddMultipliedTotal Operation = "add_multiplied_total"
)

// Code is the numeric operation used by NBT attribute modifiers.
func (o Operation) Code() int {
	switch o {
	case AddMultipliedBase:
		return 1
	case AddMultipliedTotal:
		return 2
	}
	return 0
}

// Slot is an equipment slot.
type Slot string

const (
	AnySlot  Slot = "any"
	MainHand Slot = "mainhand"
	OffHand  Slot = "offhand"
	Head     Slot = "head"
	Chest    Slot = "chest"
	Legs     Slot = "legs"
	Feet     Slot = "feet"
)

// AttributeModifier is one item attribute modifier row.
type AttributeModifier struct {
	ID        string    `json:"id" yaml:"id"`
	Amount    float64   `json:"amount" yaml:"amount"`
	Operation Operation `json:"operation" yaml:"operation"`
	Slot      Slot      `json:"slot" yaml:"slot"`
}

// Attribute is an entity base attribute value.
type Attribute struct {
	ID   string  `json:"id" yaml:"id"`
	Base float64 `json:"base" yaml:"base"`
}

// modifierNamespace seeds modifier ids so that they are unique within one
// command and identical across repeated renders of the same input.
var modifierNamespace = uuid.MustParse("6f0c7e36-7d0e-4d5c-9a1b-2f5c6d7e8f90")

func modifierID(i int, m AttributeModifier) string {
	key := fmt.Sprintf("%d|%s|%s|%g|%s", i, m.ID, m.Slot, m.Amount, m.Operation)
	return "mccmd:" + uuid.NewSHA1(modifierNamespace, []byte(key)).String()
}

// attributeID returns the namespaced attribute id for g: the latest group
// drops the "generic." style prefix, older groups keep it.
func attributeID(id string, g mcver.Group) string {
	id = Unnamespaced(id)
	if g.Has(mcver.UnprefixedAttributes) {
		for _, p := range []string{"generic.", "player.", "zombie.", "horse."} {
			if rest, ok := strings.CutPrefix(id, p); ok {
				id = rest
				break
			}
		}
	}
	return Namespaced(id)
}

func operation(o Operation) Operation {
	if o == "" {
		return AddValue
	}
	return o
}

// ModifierComponent returns the attribute_modifiers item component: a flat
// list of {type,amount,operation,slot,id}.
func ModifierComponent(ms []AttributeModifier, g mcver.Group) snbt.List {
	out := make(snbt.List, 0, len(ms))
	for i, m := range ms {
		slot := m.Slot
		if slot == "" {
			slot = AnySlot
		}
		out = append(out, snbt.NewCompound().
			Set("type", attributeID(m.ID, g)).
			Set("amount", snbt.Double(m.Amount)).
			Set("operation", string(operation(m.Operation))).
			Set("slot", string(slot)).
			Set("id", modifierID(i, m)))
	}
	return out
}

// ModifierTag returns the AttributeModifiers NBT list. Every modifier gets
// the all-zero UUID, as an int array where supported and as a most/least
// long pair otherwise.
func ModifierTag(ms []AttributeModifier, g mcver.Group) snbt.List {
	out := make(snbt.List, 0, len(ms))
	for _, m := range ms {
		name := Unnamespaced(m.ID)
		c := snbt.NewCompound().
			Set("AttributeName", name).
			Set("Name", name).
			Set("Amount", snbt.Double(m.Amount)).
			Set("Operation", snbt.Int(operation(m.Operation).Code()))
		if g.Has(mcver.IntArrayUUID) {
			c.Set("UUID", snbt.IntArray{0, 0, 0, 0})
		} else {
			c.Set("UUIDMost", snbt.Long(0)).Set("UUIDLeast", snbt.Long(0))
		}
		if m.Slot != "" && m.Slot != AnySlot {
			c.Set("Slot", string(m.Slot))
		}
		out = append(out, c)
	}
	return out
}

// BaseAttributes returns an entity's Attributes list.
func BaseAttributes(as []Attribute, g mcver.Group) snbt.List {
	out := make(snbt.List, 0, len(as))
	for _, a := range as {
		if g.Has(mcver.ItemComponents) {
			out = append(out, snbt.NewCompound().
				Set("id", attributeID(a.ID, g)).
				Set("base", snbt.Double(a.Base)))
			continue
		}
		out = append(out, snbt.NewCompound().
			Set("Name", Unnamespaced(a.ID)).
			Set("Base", snbt.Double(a.Base)))
	}
	return out
}
