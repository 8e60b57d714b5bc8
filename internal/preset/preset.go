// Package preset loads YAML files describing commands and renders them for a
// target release. Text fields use §/& formatting codes.
package preset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/jmoiron/mccmd/internal/app/mcformat"
	"github.com/jmoiron/mccmd/internal/command"
	"github.com/jmoiron/mccmd/internal/textcomp"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned for a preset whose kind is not a command.
var ErrUnknownKind = errors.New("unknown preset kind")

// Kinds of preset.
const (
	Give    = "give"
	Summon  = "summon"
	Effect  = "effect"
	Enchant = "enchant"
	Tellraw = "tellraw"
)

// File is a preset file. Version is the release used when the caller does
// not pick one.
type File struct {
	Version string   `json:"version" yaml:"version"`
	Presets []Preset `json:"presets" yaml:"presets"`
}

// Preset is one command. Which fields apply depends on Kind.
type Preset struct {
	Name   string `json:"name,omitempty" yaml:"name"`
	Kind   string `json:"kind,omitempty" yaml:"kind"`
	Target string `json:"target,omitempty" yaml:"target"`
	ID     string `json:"id,omitempty" yaml:"id"`
	Count  int    `json:"count,omitempty" yaml:"count"`
	Damage int    `json:"damage,omitempty" yaml:"damage"`
	Pos    string `json:"pos,omitempty" yaml:"pos"`

	Text   string          `json:"text,omitempty" yaml:"text"`
	Lore   []string        `json:"lore,omitempty" yaml:"lore"`
	Events textcomp.Events `json:"events,omitempty" yaml:"events"`

	Enchantments []command.Enchantment        `json:"enchantments,omitempty" yaml:"enchantments"`
	Modifiers    []command.AttributeModifier  `json:"modifiers,omitempty" yaml:"modifiers"`
	Attributes   []command.Attribute          `json:"attributes,omitempty" yaml:"attributes"`
	Equipment    map[string]command.ItemStack `json:"equipment,omitempty" yaml:"equipment"`
	Unbreakable  bool                         `json:"unbreakable,omitempty" yaml:"unbreakable"`

	NameVisible  bool `json:"nameVisible,omitempty" yaml:"name_visible"`
	NoAI         bool `json:"noAI,omitempty" yaml:"no_ai"`
	Silent       bool `json:"silent,omitempty" yaml:"silent"`
	Invulnerable bool `json:"invulnerable,omitempty" yaml:"invulnerable"`
	Glowing      bool `json:"glowing,omitempty" yaml:"glowing"`
	Persistent   bool `json:"persistent,omitempty" yaml:"persistent"`

	Effect command.Effect `json:"effect,omitempty" yaml:"effect"`
	Level  int            `json:"level,omitempty" yaml:"level"`
}

// Result is a rendered preset.
type Result struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Text    string `json:"text,omitempty"`
	Command string `json:"command"`
}

// Parse decodes a preset file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return &f, nil
}

// Load reads and decodes the preset file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (p Preset) text() command.Text {
	return command.Text{Runs: mcformat.ParseRuns(p.Text), Events: p.Events}
}

// Render returns the command for p in the syntax of version.
func (p Preset) Render(version string) (string, error) {
	switch strings.ToLower(p.Kind) {
	case Give:
		it := command.Item{
			ID:           p.ID,
			Count:        p.Count,
			Name:         p.text(),
			Enchantments: p.Enchantments,
			Modifiers:    p.Modifiers,
			Unbreakable:  p.Unbreakable,
			Damage:       p.Damage,
		}
		// each line keeps its own codes
		for i, line := range p.Lore {
			if i > 0 {
				it.Lore = append(it.Lore, mcformat.ParseRuns("\n")...)
			}
			it.Lore = append(it.Lore, mcformat.ParseRuns(line)...)
		}
		return command.Give(p.Target, it, version), nil
	case Summon:
		e := command.Entity{
			ID:           p.ID,
			Pos:          p.Pos,
			Name:         p.text(),
			NameVisible:  p.NameVisible,
			NoAI:         p.NoAI,
			Silent:       p.Silent,
			Invulnerable: p.Invulnerable,
			Glowing:      p.Glowing,
			Persistent:   p.Persistent,
			Attributes:   p.Attributes,
		}
		if len(p.Equipment) > 0 {
			e.Equipment = make(command.Equipment, len(p.Equipment))
			for slot, it := range p.Equipment {
				e.Equipment[command.Slot(strings.ToLower(slot))] = it
			}
		}
		return command.Summon(e, version), nil
	case Effect:
		eff := p.Effect
		if eff.ID == "" {
			eff.ID = p.ID
		}
		return command.GiveEffect(p.Target, eff, version), nil
	case Enchant:
		return command.Enchant(p.Target, command.Enchantment{ID: p.ID, Level: p.Level}, version), nil
	case Tellraw:
		return command.Tellraw(p.Target, p.text(), version), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, p.Kind)
}

// RenderAll renders presets for version in parallel. Results are in the
// order of the presets. The first failure is returned.
func RenderAll(ctx context.Context, presets []Preset, version string) ([]Result, error) {
	results := make([]Result, len(presets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range presets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmd, err := p.Render(version)
			if err != nil {
				name := p.Name
				if name == "" {
					name = fmt.Sprintf("#%d", i+1)
				}
				return fmt.Errorf("preset %s: %w", name, err)
			}
			results[i] = Result{Name: p.Name, Kind: strings.ToLower(p.Kind), Text: p.Text, Command: cmd}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Render renders every preset in f for version, or f's own version when
// version is empty.
func (f *File) Render(ctx context.Context, version string) ([]Result, error) {
	if version == "" {
		version = f.Version
	}
	return RenderAll(ctx, f.Presets, version)
}
