package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
)

// cardSource implements fuzzy.Source over a card slice.
type cardSource []*cards.Card

func (s cardSource) String(i int) string { return s[i].Name }

func (s cardSource) Len() int { return len(s) }

// SuggestCards fuzzy-matches query against the card names in pool and
// returns up to limit candidates, best score first. Used for "did you mean"
// hints when a filtered search comes back empty.
func SuggestCards(query string, pool []*cards.Card, limit int) []*cards.Card {
	if query == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, cardSource(pool))
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]*cards.Card, len(matches))
	for i, m := range matches {
		out[i] = pool[m.Index]
	}
	return out
}
