package mcver

// Group is one of the five compatibility bands a version resolves into.
// Groups are ordered: a later group is a newer band.
type Group int

const (
	Legacy Group = iota
	NBTLegacy
	NBTModern
	Component
	Latest
)

var groupNames = [...]string{
	Legacy:    "legacy",
	NBTLegacy: "nbt-legacy",
	NBTModern: "nbt-modern",
	Component: "component",
	Latest:    "latest",
}

func (g Group) String() string {
	if g < Legacy || g > Latest {
		return "unknown"
	}
	return groupNames[g]
}

// ParseGroup returns the group named s.
func ParseGroup(s string) (Group, bool) {
	for i, n := range groupNames {
		if n == s {
			return Group(i), true
		}
	}
	return Legacy, false
}

// Feature names a capability that differs between groups.
type Feature string

const (
	// NumericIDs: enchantments and effects are addressed by small integers.
	NumericIDs Feature = "numeric_ids"
	// JSONText: names and messages are JSON text components.
	JSONText Feature = "json_text"
	// HexColors: text colors may be arbitrary #RRGGBB values.
	HexColors Feature = "hex_colors"
	// IntArrayUUID: UUIDs are written as [I;a,b,c,d].
	IntArrayUUID Feature = "int_array_uuid"
	// ItemComponents: items carry [components] instead of an NBT tag.
	ItemComponents Feature = "item_components"
	// SNBTText: text components are SNBT literals rather than quoted JSON.
	SNBTText Feature = "snbt_text"
	// SnakeCaseEvents: click_event/hover_event instead of clickEvent/hoverEvent.
	SnakeCaseEvents Feature = "snake_case_events"
	// SimplifiedEnchantments: enchantments={"id":lvl} without the levels wrapper.
	SimplifiedEnchantments Feature = "simplified_enchantments"
	// EquipmentMap: entity equipment is a map keyed by slot name.
	EquipmentMap Feature = "equipment_map"
	// UnprefixedAttributes: attribute ids drop the "generic." prefix.
	UnprefixedAttributes Feature = "unprefixed_attributes"
)

var groupFeatures = map[Group][]Feature{
	Legacy:    {NumericIDs},
	NBTLegacy: {JSONText},
	NBTModern: {JSONText, HexColors, IntArrayUUID},
	Component: {JSONText, HexColors, IntArrayUUID, ItemComponents},
	Latest: {HexColors, IntArrayUUID, ItemComponents, SNBTText, SnakeCaseEvents,
		SimplifiedEnchantments, EquipmentMap, UnprefixedAttributes},
}

// Features returns the feature set of g.
func (g Group) Features() []Feature {
	fs := groupFeatures[g]
	out := make([]Feature, len(fs))
	copy(out, fs)
	return out
}

// Has reports whether g has feature f.
func (g Group) Has(f Feature) bool {
	for _, x := range groupFeatures[g] {
		if x == f {
			return true
		}
	}
	return false
}
