package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
)

// SortBy selects the primary sort key.
type SortBy string

const (
	SortByReleaseDate SortBy = "releaseDate"
	SortByRarity      SortBy = "rarity"
	SortByCardName    SortBy = "cardName"
)

// SortOrder selects the direction of the primary key. Documented tie-break
// directions are absolute and not re-inverted, except for the rarity sort
// where the release-date tie-break flips with the order.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortCards returns a stably sorted copy; the input slice is left untouched.
// Unknown sort keys fall back to release date.
func SortCards(in []*cards.Card, by SortBy, order SortOrder) []*cards.Card {
	out := make([]*cards.Card, len(in))
	copy(out, in)

	desc := order == OrderDesc

	var less func(a, b *cards.Card) bool
	switch by {
	case SortByRarity:
		less = rarityLess(desc)
	case SortByCardName:
		less = cardNameLess(desc)
	default:
		less = releaseDateLess(desc)
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// releaseDateLess orders chronologically. Cards with unparseable dates sort
// last regardless of direction; ties break by id lexicographically, also
// direction-independent.
func releaseDateLess(desc bool) func(a, b *cards.Card) bool {
	return func(a, b *cards.Card) bool {
		ta, oka := a.ReleaseTime()
		tb, okb := b.ReleaseTime()

		if oka != okb {
			return oka
		}
		if !oka {
			return a.ID < b.ID
		}
		if ta.Equal(tb) {
			return a.ID < b.ID
		}
		if desc {
			return tb.Before(ta)
		}
		return ta.Before(tb)
	}
}

// rarityLess orders by rarity rank; within equal rarity, newest release
// first. Both the primary key and the tie-break invert together, so asc
// yields weakest rarity first with oldest releases first.
func rarityLess(desc bool) func(a, b *cards.Card) bool {
	return func(a, b *cards.Card) bool {
		ra, rb := a.Rarity.Rank(), b.Rarity.Rank()
		if ra != rb {
			if desc {
				return ra > rb
			}
			return ra < rb
		}

		ta, oka := a.ReleaseTime()
		tb, okb := b.ReleaseTime()
		if oka != okb {
			return oka
		}
		if oka && !ta.Equal(tb) {
			newestFirst := tb.Before(ta)
			if desc {
				return newestFirst
			}
			return !newestFirst
		}
		return a.ID < b.ID
	}
}

// cardNameLess orders by locale-aware name comparison; ties break by id,
// direction-independent.
func cardNameLess(desc bool) func(a, b *cards.Card) bool {
	c := collate.New(language.Japanese)
	return func(a, b *cards.Card) bool {
		cmp := c.CompareString(a.Name, b.Name)
		if cmp == 0 {
			cmp = strings.Compare(a.Name, b.Name)
		}
		if cmp == 0 {
			return a.ID < b.ID
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	}
}
