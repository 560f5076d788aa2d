package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
)

func sortFixture() []*cards.Card {
	return []*cards.Card{
		{ID: "c1", Name: "いろは", Rarity: cards.RaritySR, ReleaseDate: "2024-03-01"},
		{ID: "c2", Name: "あおい", Rarity: cards.RarityLR, ReleaseDate: "2024-01-15"},
		{ID: "c3", Name: "うたげ", Rarity: cards.RarityLR, ReleaseDate: "2024-04-10"},
		{ID: "c4", Name: "あおい", Rarity: cards.RarityUR, ReleaseDate: "不明"},
		{ID: "c5", Name: "えがお", Rarity: cards.RarityDR, ReleaseDate: "2023-11-05"},
	}
}

func TestSortCardsByReleaseDate(t *testing.T) {
	pool := sortFixture()

	asc := SortCards(pool, SortByReleaseDate, OrderAsc)
	// Invalid date sorts last regardless of direction.
	assert.Equal(t, []string{"c5", "c2", "c1", "c3", "c4"}, cardIDs(asc))

	desc := SortCards(pool, SortByReleaseDate, OrderDesc)
	assert.Equal(t, []string{"c3", "c1", "c2", "c5", "c4"}, cardIDs(desc))
}

func TestSortCardsByReleaseDateTieBreaksByID(t *testing.T) {
	pool := []*cards.Card{
		{ID: "b", ReleaseDate: "2024-01-01"},
		{ID: "a", ReleaseDate: "2024-01-01"},
		{ID: "d", ReleaseDate: "junk"},
		{ID: "c", ReleaseDate: "junk"},
	}

	for _, order := range []SortOrder{OrderAsc, OrderDesc} {
		got := SortCards(pool, SortByReleaseDate, order)
		// id tie-break is absolute, never re-inverted
		assert.Equal(t, []string{"a", "b", "c", "d"}, cardIDs(got), "order %s", order)
	}
}

func TestSortCardsByRarity(t *testing.T) {
	pool := sortFixture()

	desc := SortCards(pool, SortByRarity, OrderDesc)
	// LR before UR before SR before DR; within LR the newest release first.
	assert.Equal(t, []string{"c3", "c2", "c4", "c1", "c5"}, cardIDs(desc))

	asc := SortCards(pool, SortByRarity, OrderAsc)
	// Fully inverted: weakest rarity first, oldest release first within a tier.
	assert.Equal(t, []string{"c5", "c1", "c4", "c2", "c3"}, cardIDs(asc))
}

func TestSortCardsByRarityOrdersAllTiers(t *testing.T) {
	pool := []*cards.Card{
		{ID: "dr", Rarity: cards.RarityDR},
		{ID: "sr", Rarity: cards.RaritySR},
		{ID: "lr", Rarity: cards.RarityLR},
		{ID: "br", Rarity: cards.RarityBR},
		{ID: "r", Rarity: cards.RarityR},
		{ID: "ur", Rarity: cards.RarityUR},
	}
	got := SortCards(pool, SortByRarity, OrderDesc)
	assert.Equal(t, []string{"lr", "ur", "sr", "r", "br", "dr"}, cardIDs(got))
}

func TestSortCardsByCardName(t *testing.T) {
	pool := sortFixture()

	asc := SortCards(pool, SortByCardName, OrderAsc)
	// Equal names (c2, c4) fall back to id, direction-independent.
	assert.Equal(t, []string{"c2", "c4", "c1", "c3", "c5"}, cardIDs(asc))

	desc := SortCards(pool, SortByCardName, OrderDesc)
	assert.Equal(t, []string{"c5", "c3", "c1", "c2", "c4"}, cardIDs(desc))
}

func TestSortCardsLeavesInputUntouched(t *testing.T) {
	pool := sortFixture()
	before := cardIDs(pool)

	SortCards(pool, SortByRarity, OrderDesc)
	assert.Equal(t, before, cardIDs(pool))
}
