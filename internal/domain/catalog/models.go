package catalog

import (
	"github.com/yuigaoka/hasudeck/hasudeck/cards"
	"github.com/yuigaoka/hasudeck/hasudeck/search"
)

type SortSpec struct {
	By    search.SortBy
	Order search.SortOrder
}

// SearchResult carries the filtered card list plus fuzzy suggestions
// for when the filter matched nothing.
type SearchResult struct {
	Cards       []*cards.Card
	Suggestions []*cards.Card
}
