package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/yuigaoka/hasudeck/hasudeck/config"
	"github.com/yuigaoka/hasudeck/hasudeck/database/models"
	"github.com/yuigaoka/hasudeck/hasudeck/deck"
)

type DeckRepository interface {
	Create(ctx context.Context, d *models.Deck) error
	GetByID(ctx context.Context, id int64) (*models.Deck, error)
	GetAll(ctx context.Context) ([]*models.Deck, error)
	GetByDeckType(ctx context.Context, deckType string) ([]*models.Deck, error)
	Update(ctx context.Context, d *models.Deck) error
	Delete(ctx context.Context, id int64) error
}

type deckRepository struct {
	db *bun.DB
}

func NewDeckRepository(db *bun.DB) DeckRepository {
	return &deckRepository{db: db}
}

// validateDeck rejects rows that the deck engines could never have
// produced: unknown deck types and out-of-range limit break values.
// A limit break of 0 means unset and is always accepted.
func validateDeck(d *models.Deck) error {
	if !deck.KnownDeckType(d.DeckType) {
		return fmt.Errorf("unknown deck type: %q", d.DeckType)
	}
	for _, slot := range d.Slots {
		if slot.LimitBreak == 0 {
			continue
		}
		if slot.LimitBreak < deck.LimitBreakMin || slot.LimitBreak > deck.LimitBreakMax {
			return fmt.Errorf("slot %d: limit break %d out of range [%d, %d]",
				slot.SlotID, slot.LimitBreak, deck.LimitBreakMin, deck.LimitBreakMax)
		}
	}
	return nil
}

func (r *deckRepository) Create(ctx context.Context, d *models.Deck) error {
	if err := validateDeck(d); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(d).
		Returning("id").
		Exec(ctx)

	return err
}

func (r *deckRepository) GetByID(ctx context.Context, id int64) (*models.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	d := new(models.Deck)
	err := r.db.NewSelect().
		Model(d).
		Where("id = ?", id).
		Scan(ctx)

	return d, err
}

func (r *deckRepository) GetAll(ctx context.Context) ([]*models.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var decks []*models.Deck
	err := r.db.NewSelect().
		Model(&decks).
		Order("updated_at DESC").
		Scan(ctx)

	return decks, err
}

func (r *deckRepository) GetByDeckType(ctx context.Context, deckType string) ([]*models.Deck, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	var decks []*models.Deck
	err := r.db.NewSelect().
		Model(&decks).
		Where("deck_type = ?", deckType).
		Order("updated_at DESC").
		Scan(ctx)

	return decks, err
}

func (r *deckRepository) Update(ctx context.Context, d *models.Deck) error {
	if err := validateDeck(d); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	d.UpdatedAt = time.Now()

	_, err := r.db.NewUpdate().
		Model(d).
		WherePK().
		Exec(ctx)

	return err
}

func (r *deckRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	_, err := r.db.NewDelete().
		Model((*models.Deck)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	return err
}
