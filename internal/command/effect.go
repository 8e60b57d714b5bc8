package command

import (
	"strconv"

	"github.com/jmoiron/mccmd/internal/legacyid"
	"github.com/jmoiron/mccmd/internal/mcver"
)

// InfiniteSince is the first release accepting "infinite" as a duration.
const InfiniteSince = "1.19.4"

// Effect is a status effect application. Level is one based; the command
// takes the zero based amplifier.
type Effect struct {
	ID            string `json:"id" yaml:"id"`
	Seconds       int    `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	Level         int    `json:"level,omitempty" yaml:"level,omitempty"`
	Infinite      bool   `json:"infinite,omitempty" yaml:"infinite,omitempty"`
	HideParticles bool   `json:"hideParticles,omitempty" yaml:"hide_particles,omitempty"`
}

func (e Effect) duration(version string) string {
	switch {
	case e.Infinite && mcver.AtLeast(version, InfiniteSince):
		return "infinite"
	case e.Infinite:
		return "1000000"
	case e.Seconds <= 0:
		return "30"
	}
	return strconv.Itoa(e.Seconds)
}

func (e Effect) amplifier() int {
	if e.Level == 0 {
		return 0
	}
	return e.Level - 1
}

// GiveEffect returns an /effect command applying e to target.
func GiveEffect(target string, e Effect, version string) string {
	target = orDefault(target, "@p")
	amp := strconv.Itoa(e.amplifier())
	hide := strconv.FormatBool(e.HideParticles)
	if mcver.Supports(version, mcver.NumericIDs) {
		n, _ := legacyid.Effect(e.ID)
		return join("/effect", target, strconv.Itoa(n), e.duration(version), amp, hide)
	}
	return join("/effect", "give", target, Namespaced(e.ID), e.duration(version), amp, hide)
}
