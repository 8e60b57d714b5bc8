package app

import (
	"strings"

	"github.com/jmoiron/mccmd/internal/app/mcformat"
	"github.com/jmoiron/mccmd/internal/preset"
)

// matchPreset reports whether all query terms appear as substrings in any of
// the preset's text fields (name, id, text, or lore) with formatting codes
// removed. Terms should be pre-split; case-insensitive mode lowercases the
// fields.
func matchPreset(p preset.Preset, terms []string, caseSensitive bool) bool {
	if len(terms) == 0 {
		return true
	}
	fields := []string{p.Name, p.ID, mcformat.Strip(p.Text)}
	for _, l := range p.Lore {
		fields = append(fields, mcformat.Strip(l))
	}
	if !caseSensitive {
		for i := range fields {
			fields[i] = strings.ToLower(fields[i])
		}
	}
	for _, term := range terms {
		found := false
		for _, f := range fields {
			if strings.Contains(f, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// splitTerms splits a search query into terms, lowercased unless the search
// is case sensitive.
func splitTerms(q string, caseSensitive bool) []string {
	if !caseSensitive {
		q = strings.ToLower(q)
	}
	return strings.Fields(q)
}
