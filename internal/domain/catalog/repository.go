package catalog

import (
	"context"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
	"github.com/yuigaoka/hasudeck/hasudeck/deck"
)

type Repository interface {
	GetAllCards(ctx context.Context) ([]*cards.Card, error)
	GetCardByID(ctx context.Context, id string) (*cards.Card, error)
	GetLiveEvent(ctx context.Context, id string) (*deck.LiveEvent, error)
	GetGradeChallenge(ctx context.Context, id string) (*deck.GradeChallenge, error)
}
