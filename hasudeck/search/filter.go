package search

import (
	"regexp"
	"strings"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
)

// Mode is the combination semantics when several effects are selected.
type Mode string

const (
	ModeOr  Mode = "OR"
	ModeAnd Mode = "AND"
)

// SearchTarget names a card text field that effect keywords are matched
// against.
type SearchTarget string

const (
	TargetSpecialAppeal SearchTarget = "specialAppeal"
	TargetSkill         SearchTarget = "skill"
	TargetTrait         SearchTarget = "trait"
)

var allSearchTargets = []SearchTarget{TargetSpecialAppeal, TargetSkill, TargetTrait}

// CardFilter is a set of optional criteria. Every populated criterion
// narrows the candidate set; zero values impose no constraint.
type CardFilter struct {
	Keyword       string
	Rarities      []cards.Rarity
	StyleTypes    []cards.StyleType
	LimitedTypes  []cards.LimitedType
	FavoriteModes []cards.FavoriteMode
	Characters    []string
	SkillEffects  []SkillEffect
	TraitEffects  []TraitEffect
	SearchTargets []SearchTarget // effect-match fields; empty means all three
	Mode          Mode           // empty defaults to OR
	HasAccessory  *bool          // nil imposes no constraint
}

// Matches evaluates the filter against one card. A nil filter matches
// everything. The card is never mutated.
func Matches(card *cards.Card, f *CardFilter) bool {
	if card == nil {
		return false
	}
	if f == nil {
		return true
	}

	if !matchesKeywordText(card, f) {
		return false
	}
	if len(f.Rarities) > 0 && !containsRarity(f.Rarities, card.Rarity) {
		return false
	}
	if len(f.StyleTypes) > 0 && !containsStyle(f.StyleTypes, card.StyleType) {
		return false
	}
	if len(f.LimitedTypes) > 0 && !containsLimited(f.LimitedTypes, card.LimitedType) {
		return false
	}
	if len(f.FavoriteModes) > 0 && !containsFavorite(f.FavoriteModes, card.FavoriteMode) {
		return false
	}
	if len(f.Characters) > 0 && !containsString(f.Characters, card.CharacterName) {
		return false
	}
	if f.HasAccessory != nil && card.HasAccessory() != *f.HasAccessory {
		return false
	}
	if !matchesEffects(card, f) {
		return false
	}
	return true
}

// FilterCards returns the cards matching the filter, freshly allocated and in
// input order.
func FilterCards(in []*cards.Card, f *CardFilter) []*cards.Card {
	out := make([]*cards.Card, 0, len(in))
	for _, c := range in {
		if Matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

// matchesKeywordText applies the free-text criterion: a case-insensitive
// substring test against the card and character names, widened to the
// effect text fields when the caller set explicit search targets.
func matchesKeywordText(card *cards.Card, f *CardFilter) bool {
	if f.Keyword == "" {
		return true
	}
	needle := strings.ToLower(f.Keyword)

	if strings.Contains(strings.ToLower(card.Name), needle) ||
		strings.Contains(strings.ToLower(card.CharacterName), needle) {
		return true
	}

	if len(f.SearchTargets) == 0 {
		return false
	}
	for _, target := range f.SearchTargets {
		for _, text := range targetTexts(card, target) {
			if strings.Contains(strings.ToLower(text), needle) {
				return true
			}
		}
	}
	return false
}

// matchesEffects evaluates the skill/trait effect criteria. In OR mode any
// selected effect matching any target field passes; in AND mode every
// selected effect must match in at least one field, each independently.
func matchesEffects(card *cards.Card, f *CardFilter) bool {
	if len(f.SkillEffects) == 0 && len(f.TraitEffects) == 0 {
		return true
	}

	targets := f.SearchTargets
	if len(targets) == 0 {
		targets = allSearchTargets
	}

	keywordSets := make([][]string, 0, len(f.SkillEffects)+len(f.TraitEffects))
	for _, id := range f.SkillEffects {
		keywordSets = append(keywordSets, SkillKeywordsFor([]SkillEffect{id}))
	}
	for _, id := range f.TraitEffects {
		keywordSets = append(keywordSets, TraitKeywordsFor([]TraitEffect{id}))
	}

	and := f.Mode == ModeAnd
	for _, keywords := range keywordSets {
		matched := effectMatchesAnyTarget(card, keywords, targets)
		if and && !matched {
			return false
		}
		if !and && matched {
			return true
		}
	}
	return and
}

func effectMatchesAnyTarget(card *cards.Card, keywords []string, targets []SearchTarget) bool {
	for _, target := range targets {
		for _, text := range targetTexts(card, target) {
			for _, kw := range keywords {
				if keywordMatches(kw, text) {
					return true
				}
			}
		}
	}
	return false
}

// targetTexts collects the card texts a search target names. Accessory
// skill/trait text counts toward the skill/trait targets because accessories
// carry their own effects.
func targetTexts(card *cards.Card, target SearchTarget) []string {
	d := card.Detail
	if d == nil {
		return nil
	}

	var texts []string
	switch target {
	case TargetSpecialAppeal:
		if d.SpecialAppealText != "" {
			texts = append(texts, d.SpecialAppealText)
		}
	case TargetSkill:
		if d.SkillText != "" {
			texts = append(texts, d.SkillText)
		}
		for _, a := range d.Accessories {
			if a.SkillText != "" {
				texts = append(texts, a.SkillText)
			}
		}
	case TargetTrait:
		if d.TraitText != "" {
			texts = append(texts, d.TraitText)
		}
		for _, a := range d.Accessories {
			if a.TraitText != "" {
				texts = append(texts, a.TraitText)
			}
		}
	}
	return texts
}

// keywordMatches matches one keyword entry against one text. Pattern entries
// are compiled as regular expressions; a compile failure degrades to literal
// matching of the raw string instead of failing the filter.
func keywordMatches(keyword, text string) bool {
	if keyword == "" {
		return false
	}
	if isPattern(keyword) {
		if re, err := compileKeyword(keyword); err == nil {
			return re.MatchString(text)
		}
	}
	return strings.Contains(text, keyword)
}

func compileKeyword(keyword string) (*regexp.Regexp, error) {
	if cached, ok := regexpCache.Get(keyword); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(keyword)
	if err != nil {
		return nil, err
	}
	regexpCache.Add(keyword, re)
	return re, nil
}

func containsRarity(set []cards.Rarity, v cards.Rarity) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsStyle(set []cards.StyleType, v cards.StyleType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsLimited(set []cards.LimitedType, v cards.LimitedType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsFavorite(set []cards.FavoriteMode, v cards.FavoriteMode) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
