package cards

import "time"

// Rarity is the card tier. The rank ordering LR > UR > SR > R > BR > DR is a
// strict total order used by sorting and placement rules.
type Rarity string

const (
	RarityLR Rarity = "LR"
	RarityUR Rarity = "UR"
	RaritySR Rarity = "SR"
	RarityR  Rarity = "R"
	RarityBR Rarity = "BR"
	RarityDR Rarity = "DR"
)

var rarityRank = map[Rarity]int{
	RarityLR: 6,
	RarityUR: 5,
	RaritySR: 4,
	RarityR:  3,
	RarityBR: 2,
	RarityDR: 1,
}

// Rank returns the ordering rank of the rarity, highest for LR. Unknown
// rarities rank 0 and therefore sort below every known tier.
func (r Rarity) Rank() int {
	return rarityRank[r]
}

// Known reports whether r is one of the catalog rarities.
func (r Rarity) Known() bool {
	_, ok := rarityRank[r]
	return ok
}

// StyleType is the card's play style.
type StyleType string

const (
	StylePerformer    StyleType = "パフォーマー"
	StyleMoodMaker    StyleType = "ムードメーカー"
	StyleCheerleader  StyleType = "チアリーダー"
	StyleTrickster    StyleType = "トリックスター"
)

// LimitedType describes how a card is acquired.
type LimitedType string

const (
	LimitedNone     LimitedType = "恒常"
	LimitedSeasonal LimitedType = "期間限定"
	LimitedFes      LimitedType = "フェス限定"
	LimitedBirthday LimitedType = "バースデー限定"
	LimitedParty    LimitedType = "パーティ限定"
)

// FavoriteMode is a per-card display preference merged in by the caller.
type FavoriteMode string

const (
	FavoriteModeSet   FavoriteMode = "お気に入り"
	FavoriteModeUnset FavoriteMode = "未設定"
)

// Accessory is an equipment attached to a card, carrying its own effect text.
type Accessory struct {
	Name      string
	SkillText string
	TraitText string
}

// CardDetail is the optional effect payload of a catalog entry. Special
// appeals exist only on LR cards.
type CardDetail struct {
	SkillName         string
	SkillText         string
	TraitName         string
	TraitText         string
	SpecialAppealName string
	SpecialAppealText string
	Accessories       []Accessory
}

// Card is an immutable catalog entry. The engines only ever read cards; all
// derived values are freshly constructed.
type Card struct {
	ID            string
	Name          string
	Rarity        Rarity
	CharacterName string
	StyleType     StyleType
	LimitedType   LimitedType
	FavoriteMode  FavoriteMode
	ReleaseDate   string // catalog date string, parsed lazily
	Detail        *CardDetail
}

// HasAccessory reports whether the card carries at least one accessory.
func (c *Card) HasAccessory() bool {
	return c.Detail != nil && len(c.Detail.Accessories) > 0
}

var releaseDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	time.RFC3339,
}

// ReleaseTime parses the catalog release date. The second return is false for
// absent or unparseable dates; callers sort those last rather than erroring.
func (c *Card) ReleaseTime() (time.Time, bool) {
	if c.ReleaseDate == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, c.ReleaseDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
