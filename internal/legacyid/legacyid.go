// Package legacyid maps enchantment and status effect ids to the numeric ids
// used before string identifiers existed (Minecraft 1.12 and older).
package legacyid

import "strings"

var enchantments = map[string]int{
	"protection":            0,
	"fire_protection":       1,
	"feather_falling":       2,
	"blast_protection":      3,
	"projectile_protection": 4,
	"respiration":           5,
	"aqua_affinity":         6,
	"thorns":                7,
	"depth_strider":         8,
	"frost_walker":          9,
	"binding_curse":         10,
	"sharpness":             16,
	"smite":                 17,
	"bane_of_arthropods":    18,
	"knockback":             19,
	"fire_aspect":           20,
	"looting":               21,
	"sweeping":              22,
	"efficiency":            32,
	"silk_touch":            33,
	"unbreaking":            34,
	"fortune":               35,
	"power":                 48,
	"punch":                 49,
	"flame":                 50,
	"infinity":              51,
	"luck_of_the_sea":       61,
	"lure":                  62,
	"mending":               70,
	"vanishing_curse":       71,
}

var effects = map[string]int{
	"speed":           1,
	"slowness":        2,
	"haste":           3,
	"mining_fatigue":  4,
	"strength":        5,
	"instant_health":  6,
	"instant_damage":  7,
	"jump_boost":      8,
	"nausea":          9,
	"regeneration":    10,
	"resistance":      11,
	"fire_resistance": 12,
	"water_breathing": 13,
	"invisibility":    14,
	"blindness":       15,
	"night_vision":    16,
	"hunger":          17,
	"weakness":        18,
	"poison":          19,
	"wither":          20,
	"health_boost":    21,
	"absorption":      22,
	"saturation":      23,
	"glowing":         24,
	"levitation":      25,
	"luck":            26,
	"unluck":          27,
}

// later ids that were renamed; the numeric slot is the same
var aliases = map[string]string{
	"sweeping_edge":      "sweeping",
	"curse_of_binding":   "binding_curse",
	"curse_of_vanishing": "vanishing_curse",
	"bad_luck":           "unluck",
}

var (
	enchantmentNames = invert(enchantments)
	effectNames      = invert(effects)
)

func invert(m map[string]int) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Strip removes a "minecraft:" namespace.
func Strip(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "minecraft:")
}

func lookup(m map[string]int, id string) (int, bool) {
	id = Strip(id)
	if a, ok := aliases[id]; ok {
		id = a
	}
	n, ok := m[id]
	return n, ok
}

// Enchantment returns the legacy numeric id for an enchantment id, with or
// without namespace. Unknown ids fall back to 0 and ok is false.
func Enchantment(id string) (n int, ok bool) { return lookup(enchantments, id) }

// Effect returns the legacy numeric id for a status effect id. Unknown ids
// fall back to 0 and ok is false.
func Effect(id string) (n int, ok bool) { return lookup(effects, id) }

// EnchantmentName returns the string id for a legacy enchantment number.
func EnchantmentName(n int) (string, bool) {
	s, ok := enchantmentNames[n]
	return s, ok
}

// EffectName returns the string id for a legacy effect number.
func EffectName(n int) (string, bool) {
	s, ok := effectNames[n]
	return s, ok
}
