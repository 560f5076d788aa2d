package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
)

func boolPtr(b bool) *bool { return &b }

func fixtureCards() []*cards.Card {
	return []*cards.Card{
		{
			ID:            "1031501",
			Name:          "［Dream Believers］日野下花帆",
			Rarity:        cards.RarityLR,
			CharacterName: "日野下花帆",
			StyleType:     cards.StylePerformer,
			LimitedType:   cards.LimitedNone,
			FavoriteMode:  cards.FavoriteModeSet,
			ReleaseDate:   "2024-04-01",
			Detail: &cards.CardDetail{
				SkillText:         "APを10回復し、ボルテージを5獲得する",
				TraitText:         "AP回復量が10%増加する",
				SpecialAppealText: "スコアを獲得し、ムードが変化しない",
			},
		},
		{
			ID:            "1032502",
			Name:          "［On your mark］村野さやか",
			Rarity:        cards.RarityUR,
			CharacterName: "村野さやか",
			StyleType:     cards.StyleCheerleader,
			LimitedType:   cards.LimitedSeasonal,
			FavoriteMode:  cards.FavoriteModeUnset,
			ReleaseDate:   "2024-05-15",
			Detail: &cards.CardDetail{
				SkillText: "ハートを3個獲得する",
				TraitText: "ハート獲得数が1個増加する",
				Accessories: []cards.Accessory{
					{Name: "青いリボン", SkillText: "メンタルを5回復する"},
				},
			},
		},
		{
			ID:            "1022503",
			Name:          "［ツバサ・ラ・リベルテ］乙宗梢",
			Rarity:        cards.RaritySR,
			CharacterName: "乙宗梢",
			StyleType:     cards.StyleMoodMaker,
			LimitedType:   cards.LimitedFes,
			FavoriteMode:  cards.FavoriteModeUnset,
			ReleaseDate:   "2023-12-01",
			Detail: &cards.CardDetail{
				SkillText: "AP回復速度を2倍にする",
			},
		},
		{
			ID:            "1042504",
			Name:          "［れもんふぇすた］安養寺姫芽",
			Rarity:        cards.RarityR,
			CharacterName: "安養寺姫芽",
			StyleType:     cards.StyleTrickster,
			LimitedType:   cards.LimitedNone,
			FavoriteMode:  cards.FavoriteModeUnset,
			ReleaseDate:   "2024-02-20",
		},
	}
}

func TestMatchesSetCriteria(t *testing.T) {
	pool := fixtureCards()

	tests := []struct {
		name   string
		filter CardFilter
		want   []string // matching card ids
	}{
		{
			name:   "empty filter matches everything",
			filter: CardFilter{},
			want:   []string{"1031501", "1032502", "1022503", "1042504"},
		},
		{
			name:   "rarity set",
			filter: CardFilter{Rarities: []cards.Rarity{cards.RarityLR, cards.RarityUR}},
			want:   []string{"1031501", "1032502"},
		},
		{
			name:   "style set",
			filter: CardFilter{StyleTypes: []cards.StyleType{cards.StyleMoodMaker}},
			want:   []string{"1022503"},
		},
		{
			name:   "limited set",
			filter: CardFilter{LimitedTypes: []cards.LimitedType{cards.LimitedNone}},
			want:   []string{"1031501", "1042504"},
		},
		{
			name:   "favorite mode set",
			filter: CardFilter{FavoriteModes: []cards.FavoriteMode{cards.FavoriteModeSet}},
			want:   []string{"1031501"},
		},
		{
			name:   "character set",
			filter: CardFilter{Characters: []string{"村野さやか", "乙宗梢"}},
			want:   []string{"1032502", "1022503"},
		},
		{
			name:   "criteria combine conjunctively",
			filter: CardFilter{Characters: []string{"村野さやか", "乙宗梢"}, Rarities: []cards.Rarity{cards.RaritySR}},
			want:   []string{"1022503"},
		},
		{
			name:   "has accessory true",
			filter: CardFilter{HasAccessory: boolPtr(true)},
			want:   []string{"1032502"},
		},
		{
			name:   "has accessory false",
			filter: CardFilter{HasAccessory: boolPtr(false)},
			want:   []string{"1031501", "1022503", "1042504"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCards(pool, &tt.filter)
			ids := make([]string, len(got))
			for i, c := range got {
				ids[i] = c.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMatchesKeywordText(t *testing.T) {
	pool := fixtureCards()

	t.Run("case-insensitive name substring", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{Keyword: "dream believers"})
		require.Len(t, got, 1)
		assert.Equal(t, "1031501", got[0].ID)
	})

	t.Run("character name substring", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{Keyword: "さやか"})
		require.Len(t, got, 1)
		assert.Equal(t, "1032502", got[0].ID)
	})

	t.Run("effect text searched only with explicit targets", func(t *testing.T) {
		narrow := FilterCards(pool, &CardFilter{Keyword: "ボルテージ"})
		assert.Empty(t, narrow)

		wide := FilterCards(pool, &CardFilter{Keyword: "ボルテージ", SearchTargets: []SearchTarget{TargetSkill}})
		require.Len(t, wide, 1)
		assert.Equal(t, "1031501", wide[0].ID)
	})
}

func TestMatchesEffects(t *testing.T) {
	pool := fixtureCards()

	t.Run("single skill effect via pattern keyword", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{SkillEffects: []SkillEffect{"AP回復"}})
		ids := cardIDs(got)
		// pattern APを\d+回復 hits the LR, literal AP回復速度を hits the SR
		assert.Equal(t, []string{"1031501", "1022503"}, ids)
	})

	t.Run("accessory skill text counts toward the skill target", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{SkillEffects: []SkillEffect{"メンタル回復"}})
		assert.Equal(t, []string{"1032502"}, cardIDs(got))
	})

	t.Run("OR mode unions effects", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{
			SkillEffects: []SkillEffect{"ハート獲得", "ボルテージ獲得"},
			Mode:         ModeOr,
		})
		assert.Equal(t, []string{"1031501", "1032502"}, cardIDs(got))
	})

	t.Run("AND mode requires every effect", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{
			SkillEffects: []SkillEffect{"ハート獲得", "ボルテージ獲得"},
			Mode:         ModeAnd,
		})
		assert.Empty(t, got)

		got = FilterCards(pool, &CardFilter{
			SkillEffects: []SkillEffect{"AP回復", "ボルテージ獲得"},
			Mode:         ModeAnd,
		})
		assert.Equal(t, []string{"1031501"}, cardIDs(got))
	})

	t.Run("mixed skill and trait selection", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{
			SkillEffects: []SkillEffect{"ボルテージ獲得"},
			TraitEffects: []TraitEffect{"AP回復量上昇"},
			Mode:         ModeAnd,
		})
		assert.Equal(t, []string{"1031501"}, cardIDs(got))
	})

	t.Run("restricting targets hides matches elsewhere", func(t *testing.T) {
		got := FilterCards(pool, &CardFilter{
			TraitEffects:  []TraitEffect{"AP回復量上昇"},
			SearchTargets: []SearchTarget{TargetSkill},
		})
		assert.Empty(t, got)
	})
}

func TestAndModeIsSubsetOfOrMode(t *testing.T) {
	pool := fixtureCards()
	effects := []SkillEffect{"AP回復", "ハート獲得", "ボルテージ獲得"}

	orIDs := cardIDs(FilterCards(pool, &CardFilter{SkillEffects: effects, Mode: ModeOr}))
	andIDs := cardIDs(FilterCards(pool, &CardFilter{SkillEffects: effects, Mode: ModeAnd}))

	orSet := make(map[string]bool, len(orIDs))
	for _, id := range orIDs {
		orSet[id] = true
	}
	for _, id := range andIDs {
		assert.True(t, orSet[id], "card %s matched AND but not OR", id)
	}
}

func TestKeywordMatchesPatternFallback(t *testing.T) {
	// A broken pattern (backslash present but not compilable) degrades to
	// literal matching of the raw string.
	assert.False(t, keywordMatches(`AP\q(`, "APを10回復"))
	assert.True(t, keywordMatches(`AP\q(`, `消費AP\q(を軽減`))
}

func TestKeywordsForPreservesOrderAndDuplicates(t *testing.T) {
	got := SkillKeywordsFor([]SkillEffect{"AP回復", "ハート獲得", "AP回復"})
	want := []string{
		"AP回復速度を", `APを\d+回復`,
		"ハートを\\d+個獲得", "ハート獲得数",
		"AP回復速度を", `APを\d+回復`,
	}
	assert.Equal(t, want, got)

	assert.Empty(t, SkillKeywordsFor(nil))
	assert.Empty(t, SkillKeywordsFor([]SkillEffect{"未知の効果"}))
}

func TestFilterCardsDoesNotMutateInput(t *testing.T) {
	pool := fixtureCards()
	before := cardIDs(pool)

	FilterCards(pool, &CardFilter{Rarities: []cards.Rarity{cards.RarityLR}})
	assert.Equal(t, before, cardIDs(pool))
}

func cardIDs(in []*cards.Card) []string {
	ids := make([]string, len(in))
	for i, c := range in {
		ids[i] = c.ID
	}
	return ids
}
