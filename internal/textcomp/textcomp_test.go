package textcomp

import (
	"testing"

	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func hiRuns() []richtext.Run {
	b := richtext.NewBuffer("Hi", richtext.Format{})
	richtext.ApplyFormat(b, richtext.Range{Start: 0, End: 1}, richtext.SetField(richtext.Bold, true))
	richtext.ApplyFormat(b, richtext.Range{Start: 0, End: 1}, richtext.SetColor("red"))
	return richtext.Compress(b)
}

func TestSerializeLegacyPlain(t *testing.T) {
	runs := richtext.Compress(richtext.NewBuffer("Hi", richtext.Format{}))
	assert.Equal(t, "Hi", Serialize(runs, Events{}, mcver.Resolve("1.12"), Options{}))
	// styling and events are dropped
	ev := Events{Click: &ClickEvent{Action: RunCommand, Value: "/say hi"}}
	assert.Equal(t, "Hi", Serialize(hiRuns(), ev, mcver.Legacy, Options{}))
}

func TestSerializeJSONArray(t *testing.T) {
	got := Serialize(hiRuns(), Events{}, mcver.Resolve("1.20"), Options{})
	assert.Equal(t, `[{"text":"H","bold":true,"color":"red"},{"text":"i"}]`, got)
	require.True(t, gjson.Valid(got))
	assert.Equal(t, "H", gjson.Get(got, "0.text").String())
	assert.False(t, gjson.Get(got, "1.bold").Exists())
}

func TestSerializeSNBTArray(t *testing.T) {
	got := Serialize(hiRuns(), Events{}, mcver.Resolve("1.21.5"), Options{})
	assert.Equal(t, `[{text:"H",bold:true,color:"red"},{text:"i"}]`, got)
}

func TestSerializeEmpty(t *testing.T) {
	assert.Equal(t, `""`, Serialize(nil, Events{}, mcver.NBTModern, Options{}))
	assert.Equal(t, `""`, Serialize(nil, Events{}, mcver.Latest, Options{}))
	assert.Equal(t, ``, Serialize(nil, Events{}, mcver.Legacy, Options{}))
}

func TestSerializeSingleComponent(t *testing.T) {
	runs := []richtext.Run{{Text: "Boss", Format: richtext.Format{Color: "gold", Italic: true}}}
	got := Serialize(runs, Events{}, mcver.Component, Options{CustomName: true})
	assert.Equal(t, `{"text":"Boss","italic":true,"color":"gold"}`, got)
}

func TestSerializeAllStyles(t *testing.T) {
	runs := []richtext.Run{{Text: "x", Format: richtext.Format{
		Bold: true, Italic: true, Underlined: true, Strikethrough: true, Obfuscated: true,
	}}}
	got := Serialize(runs, Events{}, mcver.Latest, Options{})
	assert.Equal(t, `{text:"x",bold:true,italic:true,underlined:true,strikethrough:true,obfuscated:true}`, got)
}

func TestClickEventRemap(t *testing.T) {
	runs := []richtext.Run{{Text: "go"}}
	ev := Events{Click: &ClickEvent{Action: RunCommand, Value: "/say hi"}}

	got := Serialize(runs, ev, mcver.Resolve("1.21"), Options{})
	assert.Equal(t, `{text:"go",click_event:{action:"run_command",command:"say hi"}}`, got)

	got = Serialize(runs, ev, mcver.Resolve("1.20"), Options{})
	assert.Equal(t, `{"text":"go","clickEvent":{"action":"run_command","value":"/say hi"}}`, got)
}

func TestClickEventKeys(t *testing.T) {
	cases := []struct{ action, key string }{
		{OpenURL, "url"},
		{CopyToClipboard, "contents"},
		{SuggestCommand, "value"},
		{ChangePage, "value"},
	}
	runs := []richtext.Run{{Text: "x"}}
	for _, tc := range cases {
		ev := Events{Click: &ClickEvent{Action: tc.action, Value: "/v"}}
		got := Serialize(runs, ev, mcver.Latest, Options{})
		assert.Contains(t, got, `click_event:{action:"`+tc.action+`",`+tc.key+`:"/v"}`)
	}
}

func TestHoverEvent(t *testing.T) {
	runs := []richtext.Run{{Text: "x"}}
	ev := Events{Hover: &HoverEvent{Action: ShowText, Contents: "tip"}}
	assert.Equal(t, `{"text":"x","hoverEvent":{"action":"show_text","contents":"tip"}}`,
		Serialize(runs, ev, mcver.NBTModern, Options{}))
	assert.Equal(t, `{text:"x",hover_event:{action:"show_text",value:"tip"}}`,
		Serialize(runs, ev, mcver.Latest, Options{}))

	ev.Hover.Structured = true
	assert.Equal(t, `{text:"x",hover_event:{action:"show_text",value:{text:"tip"}}}`,
		Serialize(runs, ev, mcver.Latest, Options{}))

	ev = Events{Hover: &HoverEvent{Action: ShowItem, Contents: "minecraft:stone"}}
	assert.Equal(t, `{text:"x",hover_event:{action:"show_item",contents:"minecraft:stone"}}`,
		Serialize(runs, ev, mcver.Latest, Options{}))
}

func TestEventsOnlyOnFirstComponent(t *testing.T) {
	ev := Events{
		Click: &ClickEvent{Action: OpenURL, Value: "https://example.com"},
		Hover: &HoverEvent{Action: ShowText, Contents: "open"},
	}
	got := Serialize(hiRuns(), ev, mcver.Component, Options{})
	require.True(t, gjson.Valid(got))
	assert.True(t, gjson.Get(got, "0.clickEvent").Exists())
	assert.True(t, gjson.Get(got, "0.hoverEvent").Exists())
	assert.False(t, gjson.Get(got, "1.clickEvent").Exists())
	assert.False(t, gjson.Get(got, "1.hoverEvent").Exists())
}

func TestCustomNamePlaceholder(t *testing.T) {
	got := Serialize(hiRuns(), Events{}, mcver.NBTModern, Options{CustomName: true})
	assert.Equal(t, `[{"text":"","italic":false},{"text":"H","bold":true,"color":"red"},{"text":"i"}]`, got)

	got = Serialize(hiRuns(), Events{}, mcver.Latest, Options{CustomName: true})
	assert.Equal(t, `[{text:"",italic:false},{text:"H",bold:true,color:"red"},{text:"i"}]`, got)

	// custom_name components stay italic by default after 1.20.5 too
	for _, g := range []mcver.Group{mcver.NBTLegacy, mcver.Component} {
		got = Serialize(hiRuns(), Events{}, g, Options{CustomName: true})
		assert.False(t, gjson.Get(got, "0.italic").Bool(), g.String())
		assert.True(t, gjson.Get(got, "0.italic").Exists(), g.String())
		assert.Equal(t, "H", gjson.Get(got, "1.text").String(), g.String())
	}
	got = Serialize(hiRuns(), Events{}, mcver.Component, Options{})
	assert.Equal(t, "H", gjson.Get(got, "0.text").String())
}

func TestHexDownsample(t *testing.T) {
	runs := []richtext.Run{{Text: "x", Format: richtext.Format{Color: "#123456"}}}
	assert.Equal(t, `{"text":"x","color":"dark_gray"}`, Serialize(runs, Events{}, mcver.NBTLegacy, Options{}))
	assert.Equal(t, `{"text":"x","color":"#123456"}`, Serialize(runs, Events{}, mcver.NBTModern, Options{}))
}

func TestUnknownColorOmitted(t *testing.T) {
	runs := []richtext.Run{{Text: "x", Format: richtext.Format{Color: "chartreuse"}}}
	assert.Equal(t, `{text:"x"}`, Serialize(runs, Events{}, mcver.Latest, Options{}))
}

func TestEscaping(t *testing.T) {
	runs := []richtext.Run{{Text: "a\"b\\c\nd"}}
	want := `"a\"b\\c\nd"`
	assert.Equal(t, `{"text":`+want+`}`, Serialize(runs, Events{}, mcver.NBTModern, Options{}))
	assert.Equal(t, `{text:`+want+`}`, Serialize(runs, Events{}, mcver.Latest, Options{}))
	got := Serialize(runs, Events{}, mcver.Component, Options{})
	assert.Equal(t, "a\"b\\c\nd", gjson.Get(got, "text").String())
}

func TestSerializeIdempotent(t *testing.T) {
	ev := Events{Click: &ClickEvent{Action: RunCommand, Value: "/tp @s ~ ~ ~"}}
	for g := mcver.Legacy; g <= mcver.Latest; g++ {
		a := Serialize(hiRuns(), ev, g, Options{CustomName: true})
		b := Serialize(hiRuns(), ev, g, Options{CustomName: true})
		assert.Equal(t, a, b, g.String())
	}
}

func TestEmbed(t *testing.T) {
	runs := []richtext.Run{{Text: "Boss's"}}
	assert.Equal(t, `'{"text":"Boss\'s"}'`, string(Embed(runs, Events{}, mcver.NBTModern, Options{})))
	assert.Equal(t, `{text:"Boss's"}`, string(Embed(runs, Events{}, mcver.Latest, Options{})))
	assert.Equal(t, `"Boss's"`, string(Embed(runs, Events{}, mcver.Legacy, Options{})))
}

func TestLegacyCodes(t *testing.T) {
	assert.Equal(t, "§c§lH§ri", Legacy(hiRuns()))
	runs := []richtext.Run{
		{Text: "a"},
		{Text: "b", Format: richtext.Format{Color: "#123456", Italic: true}},
		{Text: "c", Format: richtext.Format{Color: "gold"}},
	}
	assert.Equal(t, "a§8§ob§r§6c", Legacy(runs))
	assert.Equal(t, "", Legacy(nil))
}
