// Package command assembles complete Minecraft commands (give, summon,
// enchant, effect, tellraw) for a target release, combining serialized text
// with enchantment, attribute and equipment blocks whose shape depends on
// the release's format group.
package command

import (
	"strings"

	"github.com/jmoiron/mccmd/internal/richtext"
	"github.com/jmoiron/mccmd/internal/textcomp"
)

// Text is styled text plus its interaction events.
type Text struct {
	Runs   []richtext.Run
	Events textcomp.Events
}

// IsEmpty is true when there is no text.
func (t Text) IsEmpty() bool { return len(t.Runs) == 0 }

// Namespaced prefixes id with "minecraft:" unless it already has a namespace.
func Namespaced(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, ":") {
		return id
	}
	return "minecraft:" + id
}

// Unnamespaced removes a "minecraft:" prefix.
func Unnamespaced(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "minecraft:")
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}

// join writes a command from its space separated parts, skipping empty ones.
func join(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}
