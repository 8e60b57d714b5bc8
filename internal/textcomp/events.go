package textcomp

import (
	"strings"

	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/snbt"
)

// Click actions.
const (
	OpenURL         = "open_url"
	RunCommand      = "run_command"
	SuggestCommand  = "suggest_command"
	ChangePage      = "change_page"
	CopyToClipboard = "copy_to_clipboard"
)

// Hover actions.
const (
	ShowText   = "show_text"
	ShowItem   = "show_item"
	ShowEntity = "show_entity"
)

// ClickEvent is what happens when the text is clicked.
type ClickEvent struct {
	Action string `json:"action" yaml:"action"`
	Value  string `json:"value" yaml:"value"`
}

// HoverEvent is what is shown when the text is hovered. Contents is written
// as a bare string, or as {text:...} when Structured is set.
type HoverEvent struct {
	Action     string `json:"action" yaml:"action"`
	Contents   string `json:"contents" yaml:"contents"`
	Structured bool   `json:"structured,omitempty" yaml:"structured,omitempty"`
}

// Events are the interaction descriptors of a serialized text. They attach
// once, to the first component.
type Events struct {
	Click *ClickEvent `json:"click,omitempty" yaml:"click,omitempty"`
	Hover *HoverEvent `json:"hover,omitempty" yaml:"hover,omitempty"`
}

// IsZero is true when there are no events.
func (e Events) IsZero() bool { return e.Click == nil && e.Hover == nil }

// clickValueKey returns the key carrying a click action's payload in the
// snake_case form; older forms always use "value".
func clickValueKey(action string) string {
	switch action {
	case RunCommand:
		return "command"
	case OpenURL:
		return "url"
	case CopyToClipboard:
		return "contents"
	}
	return "value"
}

func (c *ClickEvent) compound(g mcver.Group) *snbt.Compound {
	out := snbt.NewCompound().Set("action", c.Action)
	if !g.Has(mcver.SnakeCaseEvents) {
		return out.Set("value", c.Value)
	}
	v := c.Value
	if c.Action == RunCommand {
		v = strings.TrimPrefix(v, "/")
	}
	return out.Set(clickValueKey(c.Action), v)
}

func (h *HoverEvent) compound(g mcver.Group) *snbt.Compound {
	out := snbt.NewCompound().Set("action", h.Action)
	var contents snbt.Value = h.Contents
	if h.Structured {
		contents = snbt.NewCompound().Set("text", h.Contents)
	}
	key := "contents"
	if g.Has(mcver.SnakeCaseEvents) && h.Action == ShowText {
		key = "value"
	}
	return out.Set(key, contents)
}

func (e Events) attach(c *snbt.Compound, g mcver.Group) {
	clickKey, hoverKey := "clickEvent", "hoverEvent"
	if g.Has(mcver.SnakeCaseEvents) {
		clickKey, hoverKey = "click_event", "hover_event"
	}
	if e.Click != nil {
		c.Set(clickKey, e.Click.compound(g))
	}
	if e.Hover != nil {
		c.Set(hoverKey, e.Hover.compound(g))
	}
}
