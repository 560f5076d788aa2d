package repositories

import (
	"context"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
	"github.com/yuigaoka/hasudeck/hasudeck/deck"
	"github.com/yuigaoka/hasudeck/internal/domain/catalog"
)

// catalogRepository adapts the stored rows to the engine-facing domain
// types the catalog service works with.
type catalogRepository struct {
	cards  CardRepository
	events EventRepository
}

func NewCatalogRepository(cardRepo CardRepository, eventRepo EventRepository) catalog.Repository {
	return &catalogRepository{
		cards:  cardRepo,
		events: eventRepo,
	}
}

func (r *catalogRepository) GetAllCards(ctx context.Context) ([]*cards.Card, error) {
	rows, err := r.cards.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*cards.Card, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

func (r *catalogRepository) GetCardByID(ctx context.Context, id string) (*cards.Card, error) {
	row, err := r.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

func (r *catalogRepository) GetLiveEvent(ctx context.Context, id string) (*deck.LiveEvent, error) {
	row, err := r.events.GetLiveEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return &deck.LiveEvent{
		ID:        row.ID,
		Name:      row.Name,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		StageName: row.StageName,
	}, nil
}

func (r *catalogRepository) GetGradeChallenge(ctx context.Context, id string) (*deck.GradeChallenge, error) {
	row, err := r.events.GetGradeChallenge(ctx, id)
	if err != nil {
		return nil, err
	}
	return &deck.GradeChallenge{
		ID:        row.ID,
		Title:     row.Title,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		StageName: row.StageName,
	}, nil
}
