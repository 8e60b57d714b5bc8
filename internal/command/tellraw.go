package command

import (
	"github.com/jmoiron/mccmd/internal/mcver"
	"github.com/jmoiron/mccmd/internal/textcomp"
	"github.com/jmoiron/mccmd/snbt"
)

// Tellraw returns a /tellraw command sending t to target (default @a).
func Tellraw(target string, t Text, version string) string {
	g := mcver.Resolve(version)
	msg := textcomp.Serialize(t.Runs, t.Events, g, textcomp.Options{})
	if g == mcver.Legacy {
		msg = snbt.Quote(msg)
	}
	return join("/tellraw", orDefault(target, "@a"), msg)
}
