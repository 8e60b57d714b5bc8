package command

import (
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/textcomp"
	"github.com/jmoiron/mccmd/snbt"
)

// Entity describes an entity to summon.
type Entity struct {
	ID           string
	Pos          string // defaults to "~ ~ ~"
	Name         Text
	NameVisible  bool
	NoAI         bool
	Silent       bool
	Invulnerable bool
	Glowing      bool
	Persistent   bool
	Attributes   []Attribute
	Equipment    Equipment
}

// Summon returns a /summon command in the syntax of version. The NBT block
// is left off entirely when the entity has nothing set.
func Summon(e Entity, version string) string {
	g := mcver.Resolve(version)
	return join("/summon", Namespaced(e.ID), orDefault(e.Pos, "~ ~ ~"), encodeTag(e.nbt(g)))
}

func (e Entity) nbt(g mcver.Group) *snbt.Compound {
	c := snbt.NewCompound()
	if !e.Name.IsEmpty() {
		c.Set("CustomName", textcomp.Embed(e.Name.Runs, e.Name.Events, g, textcomp.Options{CustomName: true}))
	}
	flags := []struct {
		key string
		on  bool
	}{
		{"CustomNameVisible", e.NameVisible},
		{"NoAI", e.NoAI},
		{"Silent", e.Silent},
		{"Invulnerable", e.Invulnerable},
		{"Glowing", e.Glowing},
		{"PersistenceRequired", e.Persistent},
	}
	for _, f := range flags {
		if f.on {
			c.Set(f.key, snbt.Byte(1))
		}
	}
	if len(e.Attributes) > 0 {
		c.Set("Attributes", BaseAttributes(e.Attributes, g))
	}
	e.Equipment.Apply(c, g)
	return c
}
