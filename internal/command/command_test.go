package command

import (
	"strings"
	"testing"

	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/richtext"
	"github.com/jmoiron/mccmd/internal/textcomp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func plain(s string) Text {
	return Text{Runs: []richtext.Run{{Text: s}}}
}

func sword() Item {
	return Item{
		ID:           "diamond_sword",
		Enchantments: []Enchantment{{ID: "sharpness", Level: 5}},
		Unbreakable:  true,
	}
}

func TestNamespaced(t *testing.T) {
	assert.Equal(t, "minecraft:stone", Namespaced("stone"))
	assert.Equal(t, "minecraft:stone", Namespaced(" minecraft:stone "))
	assert.Equal(t, "mymod:thing", Namespaced("mymod:thing"))
	assert.Equal(t, "", Namespaced(""))
	assert.Equal(t, "stone", Unnamespaced("minecraft:stone"))
	assert.Equal(t, "mymod:thing", Unnamespaced("mymod:thing"))
}

func TestEnchantmentForms(t *testing.T) {
	es := []Enchantment{{ID: "sharpness", Level: 5}}
	cases := []struct {
		version, want string
	}{
		{"1.21.5", `enchantments={"sharpness":5}`},
		{"1.20.6", `enchantments={levels:{"minecraft:sharpness":5}}`},
		{"1.16.5", `Enchantments:[{id:"minecraft:sharpness",lvl:5s}]`},
		{"1.13", `Enchantments:[{id:"minecraft:sharpness",lvl:5s}]`},
		{"1.12", `ench:[{id:16s,lvl:5s}]`},
	}
	for _, tc := range cases {
		it := Item{ID: "stick", Enchantments: es}
		assert.Contains(t, Give("", it, tc.version), tc.want, tc.version)
	}
}

func TestEnchantmentUnmappedLegacyID(t *testing.T) {
	_, list := EnchantmentTag([]Enchantment{{ID: "swift_sneak", Level: 3}}, mcver.Legacy, false)
	got := encode(list)
	assert.Equal(t, `[{id:0s,lvl:3s}]`, got)
}

func TestGiveSword(t *testing.T) {
	cases := []struct {
		version, want string
	}{
		{"1.21.5", `/give @p minecraft:diamond_sword[enchantments={"sharpness":5},unbreakable={}] 1`},
		{"1.20.5", `/give @p minecraft:diamond_sword[enchantments={levels:{"minecraft:sharpness":5}},unbreakable={}] 1`},
		{"1.16", `/give @p minecraft:diamond_sword{Enchantments:[{id:"minecraft:sharpness",lvl:5s}],Unbreakable:1b} 1`},
		{"1.12.2", `/give @p minecraft:diamond_sword 1 0 {ench:[{id:16s,lvl:5s}],Unbreakable:1b}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Give("", sword(), tc.version), tc.version)
	}
}

func TestGivePlainItem(t *testing.T) {
	assert.Equal(t, "/give @a minecraft:stone 1", Give("@a", Item{ID: "stone"}, "1.21"))
	assert.Equal(t, "/give @p minecraft:stone 64", Give("", Item{ID: "stone", Count: 64}, "1.16"))
	assert.Equal(t, "/give @p minecraft:wool 3 14", Give("", Item{ID: "wool", Count: 3, Damage: 14}, "1.12"))
	assert.Equal(t, "/give @p minecraft:bow[damage=10] 1", Give("", Item{ID: "bow", Damage: 10}, "1.21"))
	assert.Equal(t, "/give @p minecraft:bow{Damage:10} 1", Give("", Item{ID: "bow", Damage: 10}, "1.14"))
}

func TestGiveName(t *testing.T) {
	it := Item{ID: "stick", Name: Text{Runs: []richtext.Run{{Text: "Wand", Format: richtext.Format{Color: "gold"}}}}}
	assert.Equal(t, `/give @p minecraft:stick[custom_name={text:"Wand",color:"gold"}] 1`, Give("", it, "1.21.5"))
	assert.Equal(t, `/give @p minecraft:stick[custom_name='{"text":"Wand","color":"gold"}'] 1`, Give("", it, "1.20.5"))
	assert.Equal(t, `/give @p minecraft:stick{display:{Name:'{"text":"Wand","color":"gold"}'}} 1`, Give("", it, "1.13"))
	assert.Equal(t, `/give @p minecraft:stick 1 0 {display:{Name:"Wand"}}`, Give("", it, "1.8.9"))
}

func TestGiveNamePlaceholder(t *testing.T) {
	it := Item{ID: "stick", Name: Text{Runs: []richtext.Run{
		{Text: "A", Format: richtext.Format{Color: "red"}},
		{Text: "B"},
	}}}
	got := Give("", it, "1.20.5")
	assert.Equal(t, `/give @p minecraft:stick[custom_name='[{"text":"","italic":false},{"text":"A","color":"red"},{"text":"B"}]'] 1`, got)

	start := strings.Index(got, "'") + 1
	end := strings.LastIndex(got, "'")
	js := got[start:end]
	require.True(t, gjson.Valid(js))
	assert.Equal(t, int64(3), gjson.Get(js, "#").Int())
	assert.False(t, gjson.Get(js, "0.italic").Bool())
}

func TestGiveLore(t *testing.T) {
	it := Item{ID: "paper", Lore: []richtext.Run{
		{Text: "first\nsec", Format: richtext.Format{Italic: true}},
		{Text: "ond"},
	}}
	assert.Equal(t,
		`/give @p minecraft:paper[lore=['{"text":"first","italic":true}','[{"text":"sec","italic":true},{"text":"ond"}]']] 1`,
		Give("", it, "1.20.5"))
	assert.Equal(t,
		`/give @p minecraft:paper[lore=[{text:"first",italic:true},[{text:"sec",italic:true},{text:"ond"}]]] 1`,
		Give("", it, "1.21.5"))
	assert.Equal(t,
		`/give @p minecraft:paper{display:{Lore:['{"text":"first","italic":true}','[{"text":"sec","italic":true},{"text":"ond"}]']}} 1`,
		Give("", it, "1.16"))
}

func TestGiveEnchantedBook(t *testing.T) {
	book := Item{ID: "minecraft:enchanted_book", Enchantments: []Enchantment{{ID: "mending", Level: 1}}}
	assert.Equal(t, `/give @p minecraft:enchanted_book[stored_enchantments={"mending":1}] 1`, Give("", book, "1.21.5"))
	assert.Equal(t, `/give @p minecraft:enchanted_book{StoredEnchantments:[{id:"minecraft:mending",lvl:1s}]} 1`, Give("", book, "1.16"))
	assert.Equal(t, `/give @p minecraft:enchanted_book 1 0 {StoredEnchantments:[{id:70s,lvl:1s}]}`, Give("", book, "1.12"))
}

func TestGiveModifiers(t *testing.T) {
	it := Item{ID: "iron_sword", Modifiers: []AttributeModifier{
		{ID: "generic.attack_damage", Amount: 5, Operation: AddValue, Slot: MainHand},
	}}
	got := Give("", it, "1.21.5")
	assert.True(t, strings.HasPrefix(got,
		`/give @p minecraft:iron_sword[attribute_modifiers=[{type:"minecraft:attack_damage",amount:5d,operation:"add_value",slot:"mainhand",id:"mccmd:`), got)
	assert.Equal(t, got, Give("", it, "1.21.5"))

	got = Give("", it, "1.20.5")
	assert.Contains(t, got, `type:"minecraft:generic.attack_damage"`)

	assert.Equal(t,
		`/give @p minecraft:iron_sword{AttributeModifiers:[{AttributeName:"generic.attack_damage",Name:"generic.attack_damage",Amount:5d,Operation:0,UUID:[I;0,0,0,0],Slot:"mainhand"}]} 1`,
		Give("", it, "1.16"))
	assert.Equal(t,
		`/give @p minecraft:iron_sword{AttributeModifiers:[{AttributeName:"generic.attack_damage",Name:"generic.attack_damage",Amount:5d,Operation:0,UUIDMost:0l,UUIDLeast:0l,Slot:"mainhand"}]} 1`,
		Give("", it, "1.13"))
}

func TestModifierIDsUnique(t *testing.T) {
	m := AttributeModifier{ID: "generic.armor", Amount: 2}
	list := ModifierComponent([]AttributeModifier{m, m}, mcver.Component)
	require.Len(t, list, 2)
	a := encode(list[0])
	b := encode(list[1])
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, `slot:"any"`)
	assert.Contains(t, a, `operation:"add_value"`)
}

func TestOperationCodes(t *testing.T) {
	assert.Equal(t, 0, AddValue.Code())
	assert.Equal(t, 1, AddMultipliedBase.Code())
	assert.Equal(t, 2, AddMultipliedTotal.Code())
	assert.Equal(t, 0, Operation("").Code())
}

func TestSummonBoss(t *testing.T) {
	e := Entity{
		ID:         "zombie",
		Name:       plain("Boss"),
		Attributes: []Attribute{{ID: "generic.max_health", Base: 100}},
	}
	cases := []struct {
		version, want string
	}{
		{"1.20.5", `/summon minecraft:zombie ~ ~ ~ {CustomName:'{"text":"Boss"}',Attributes:[{id:"minecraft:generic.max_health",base:100d}]}`},
		{"1.21.5", `/summon minecraft:zombie ~ ~ ~ {CustomName:{text:"Boss"},Attributes:[{id:"minecraft:max_health",base:100d}]}`},
		{"1.16", `/summon minecraft:zombie ~ ~ ~ {CustomName:'{"text":"Boss"}',Attributes:[{Name:"generic.max_health",Base:100d}]}`},
		{"1.12", `/summon minecraft:zombie ~ ~ ~ {CustomName:"Boss",Attributes:[{Name:"generic.max_health",Base:100d}]}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Summon(e, tc.version), tc.version)
	}
}

func TestSummonFlags(t *testing.T) {
	assert.Equal(t, "/summon minecraft:pig ~ ~ ~", Summon(Entity{ID: "pig"}, "1.21"))
	e := Entity{ID: "villager", Pos: "0 64 0", Name: plain("Bob"), NameVisible: true, NoAI: true, Silent: true, Invulnerable: true, Glowing: true, Persistent: true}
	assert.Equal(t,
		`/summon minecraft:villager 0 64 0 {CustomName:{text:"Bob"},CustomNameVisible:1b,NoAI:1b,Silent:1b,Invulnerable:1b,Glowing:1b,PersistenceRequired:1b}`,
		Summon(e, "1.21.5"))
}

func TestSummonEquipment(t *testing.T) {
	e := Entity{ID: "zombie", Equipment: Equipment{
		MainHand: {ID: "diamond_sword"},
		Head:     {ID: "iron_helmet", Enchantments: []Enchantment{{ID: "protection", Level: 4}}},
	}}
	assert.Equal(t,
		`/summon minecraft:zombie ~ ~ ~ {equipment:{mainhand:{id:"minecraft:diamond_sword",count:1},head:{id:"minecraft:iron_helmet",count:1,components:{"minecraft:enchantments":{"protection":4}}}}}`,
		Summon(e, "1.21.5"))
	assert.Equal(t,
		`/summon minecraft:zombie ~ ~ ~ {HandItems:[{id:"minecraft:diamond_sword",count:1},{}],ArmorItems:[{},{},{},{id:"minecraft:iron_helmet",count:1,components:{"minecraft:enchantments":{levels:{"minecraft:protection":4}}}}]}`,
		Summon(e, "1.20.6"))

	shield := Entity{ID: "skeleton", Equipment: Equipment{OffHand: {ID: "shield", Count: 1}}}
	assert.Equal(t, `/summon minecraft:skeleton ~ ~ ~ {HandItems:[{},{id:"minecraft:shield",count:1}]}`, Summon(shield, "1.16"))

	empty := Entity{ID: "zombie", Equipment: Equipment{Feet: {}}}
	assert.Equal(t, "/summon minecraft:zombie ~ ~ ~", Summon(empty, "1.21.5"))
	assert.Equal(t, "/summon minecraft:zombie ~ ~ ~", Summon(empty, "1.18"))
}

func TestEffect(t *testing.T) {
	speed := Effect{ID: "speed", Seconds: 30, Level: 2, HideParticles: true}
	assert.Equal(t, "/effect give @p minecraft:speed 30 1 true", GiveEffect("", speed, "1.21"))
	assert.Equal(t, "/effect @p 1 30 1 true", GiveEffect("", speed, "1.12"))

	inf := Effect{ID: "night_vision", Infinite: true}
	assert.Equal(t, "/effect give @a minecraft:night_vision infinite 0 false", GiveEffect("@a", inf, "1.19.4"))
	assert.Equal(t, "/effect give @a minecraft:night_vision 1000000 0 false", GiveEffect("@a", inf, "1.19.3"))

	// unmapped legacy ids fall back to 0
	assert.Equal(t, "/effect @p 0 30 0 false", GiveEffect("", Effect{ID: "darkness"}, "1.10"))
}

func TestEnchantCommand(t *testing.T) {
	e := Enchantment{ID: "sharpness", Level: 5}
	assert.Equal(t, "/enchant @p minecraft:sharpness 5", Enchant("", e, "1.21"))
	assert.Equal(t, "/enchant @s 16 5", Enchant("@s", e, "1.12"))
	// levels pass through unchecked
	assert.Equal(t, "/enchant @p minecraft:sharpness 255", Enchant("", Enchantment{ID: "sharpness", Level: 255}, "1.20"))
}

func TestTellraw(t *testing.T) {
	msg := Text{
		Runs: []richtext.Run{
			{Text: "H", Format: richtext.Format{Bold: true, Color: "red"}},
			{Text: "i"},
		},
	}
	assert.Equal(t, `/tellraw @a [{"text":"H","bold":true,"color":"red"},{"text":"i"}]`, Tellraw("", msg, "1.20"))
	assert.Equal(t, `/tellraw @a [{text:"H",bold:true,color:"red"},{text:"i"}]`, Tellraw("", msg, "1.21.5"))
	assert.Equal(t, `/tellraw @p "Hi"`, Tellraw("@p", msg, "1.12"))

	msg.Events = textcomp.Events{Click: &textcomp.ClickEvent{Action: textcomp.RunCommand, Value: "/spawn"}}
	got := Tellraw("", msg, "1.21.5")
	assert.Equal(t, `/tellraw @a [{text:"H",bold:true,color:"red",click_event:{action:"run_command",command:"spawn"}},{text:"i"}]`, got)
}

func TestCommandsDeterministic(t *testing.T) {
	e := Entity{ID: "zombie", Name: plain("x"), Attributes: []Attribute{{ID: "generic.armor", Base: 4}}}
	for _, v := range []string{"1.8", "1.13", "1.16", "1.20.5", "1.21.5"} {
		assert.Equal(t, Summon(e, v), Summon(e, v))
		assert.Equal(t, Give("", sword(), v), Give("", sword(), v))
	}
}
