package search

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// SkillEffect identifies a skill effect category selectable in the filter UI.
type SkillEffect string

// TraitEffect identifies a trait effect category.
type TraitEffect string

//go:embed keywords.toml
var keywordTableTOML []byte

type keywordEntry struct {
	ID       string   `toml:"id"`
	Keywords []string `toml:"keywords"`
}

type keywordTable struct {
	Skill []keywordEntry `toml:"skill"`
	Trait []keywordEntry `toml:"trait"`
}

var (
	skillKeywords    map[SkillEffect][]string
	traitKeywords    map[TraitEffect][]string
	skillEffectOrder []SkillEffect
	traitEffectOrder []TraitEffect
)

func init() {
	var table keywordTable
	if err := toml.Unmarshal(keywordTableTOML, &table); err != nil {
		panic(fmt.Sprintf("search: embedded keyword table is malformed: %v", err))
	}

	skillKeywords = make(map[SkillEffect][]string, len(table.Skill))
	for _, e := range table.Skill {
		id := SkillEffect(e.ID)
		if _, dup := skillKeywords[id]; dup {
			panic(fmt.Sprintf("search: duplicate skill effect %q in keyword table", e.ID))
		}
		skillKeywords[id] = e.Keywords
		skillEffectOrder = append(skillEffectOrder, id)
	}

	traitKeywords = make(map[TraitEffect][]string, len(table.Trait))
	for _, e := range table.Trait {
		id := TraitEffect(e.ID)
		if _, dup := traitKeywords[id]; dup {
			panic(fmt.Sprintf("search: duplicate trait effect %q in keyword table", e.ID))
		}
		traitKeywords[id] = e.Keywords
		traitEffectOrder = append(traitEffectOrder, id)
	}
}

// SkillEffects returns every skill effect id in table order, for UI listings.
func SkillEffects() []SkillEffect {
	return append([]SkillEffect(nil), skillEffectOrder...)
}

// TraitEffects returns every trait effect id in table order.
func TraitEffects() []TraitEffect {
	return append([]TraitEffect(nil), traitEffectOrder...)
}

// SkillKeywordsFor flattens the keyword lists of the given effects,
// preserving input order then table order. Duplicates are kept on purpose:
// the lists become alternation branches downstream and order decides
// leftmost-match precedence.
func SkillKeywordsFor(ids []SkillEffect) []string {
	var out []string
	for _, id := range ids {
		out = append(out, skillKeywords[id]...)
	}
	return out
}

// TraitKeywordsFor is SkillKeywordsFor for trait effects.
func TraitKeywordsFor(ids []TraitEffect) []string {
	var out []string
	for _, id := range ids {
		out = append(out, traitKeywords[id]...)
	}
	return out
}

// isPattern reports whether a keyword entry is a regular expression rather
// than literal text. The backslash heuristic is how the keyword tables have
// always been written; an explicit per-entry flag would be safer but changes
// matching for existing tables.
func isPattern(keyword string) bool {
	return strings.ContainsRune(keyword, '\\')
}
