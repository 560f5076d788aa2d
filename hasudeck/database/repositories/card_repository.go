package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/uptrace/bun"

	"github.com/yuigaoka/hasudeck/hasudeck/config"
	"github.com/yuigaoka/hasudeck/hasudeck/database/models"
)

const (
	maxBatchSize = 1000
)

type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	GetByID(ctx context.Context, id string) (*models.Card, error)
	GetAll(ctx context.Context) ([]*models.Card, error)
	GetByCharacter(ctx context.Context, characterName string) ([]*models.Card, error)
	GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id string) error
	BulkCreate(ctx context.Context, cards []*models.Card) (int, error)
	GetCardCount(ctx context.Context) (int64, error)
}

type cardRepository struct {
	db    *bun.DB
	cache *sync.Map
}

func NewCardRepository(db *bun.DB) CardRepository {
	return &cardRepository{
		db:    db,
		cache: &sync.Map{},
	}
}

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

func (r *cardRepository) getFromCache(key string) (interface{}, bool) {
	value, ok := r.cache.Load(key)
	if !ok {
		return nil, false
	}

	entry := value.(cacheEntry)
	if time.Now().After(entry.expiresAt) {
		r.cache.Delete(key)
		return nil, false
	}

	return entry.data, true
}

func (r *cardRepository) setCache(key string, value interface{}, duration time.Duration) {
	r.cache.Store(key, cacheEntry{
		data:      value,
		expiresAt: time.Now().Add(duration),
	})
}

func (r *cardRepository) invalidateCache() {
	r.cache.Range(func(key, _ interface{}) bool {
		r.cache.Delete(key)
		return true
	})
}

func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	card.CreatedAt = time.Now()
	card.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(card).
		Exec(ctx)

	if err == nil {
		r.invalidateCache()
	}
	return err
}

func (r *cardRepository) GetByID(ctx context.Context, id string) (*models.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	card := new(models.Card)
	err := r.db.NewSelect().
		Model(card).
		Where("id = ?", id).
		Scan(ctx)

	return card, err
}

func (r *cardRepository) GetAll(ctx context.Context) ([]*models.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	if cached, ok := r.getFromCache("all"); ok {
		return cached.([]*models.Card), nil
	}

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Order("id ASC").
		Scan(ctx)

	if err == nil {
		r.setCache("all", cards, config.CacheExpiration)
	}

	return cards, err
}

func (r *cardRepository) GetByCharacter(ctx context.Context, characterName string) ([]*models.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	cacheKey := fmt.Sprintf("character:%s", characterName)
	if cached, ok := r.getFromCache(cacheKey); ok {
		return cached.([]*models.Card), nil
	}

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Where("character_name = ?", characterName).
		Order("id ASC").
		Scan(ctx)

	if err == nil {
		r.setCache(cacheKey, cards, config.CacheExpiration)
	}

	return cards, err
}

func (r *cardRepository) GetByRarity(ctx context.Context, rarity string) ([]*models.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	cacheKey := fmt.Sprintf("rarity:%s", rarity)
	if cached, ok := r.getFromCache(cacheKey); ok {
		return cached.([]*models.Card), nil
	}

	var cards []*models.Card
	err := r.db.NewSelect().
		Model(&cards).
		Where("rarity = ?", rarity).
		Order("id ASC").
		Scan(ctx)

	if err == nil {
		r.setCache(cacheKey, cards, config.CacheExpiration)
	}

	return cards, err
}

func (r *cardRepository) Update(ctx context.Context, card *models.Card) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	card.UpdatedAt = time.Now()

	_, err := r.db.NewUpdate().
		Model(card).
		WherePK().
		Exec(ctx)

	if err == nil {
		r.invalidateCache()
	}
	return err
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	_, err := r.db.NewDelete().
		Model((*models.Card)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err == nil {
		r.invalidateCache()
	}
	return err
}

func (r *cardRepository) BulkCreate(ctx context.Context, cards []*models.Card) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.BatchQueryTimeout)
	defer cancel()

	if len(cards) == 0 {
		return 0, nil
	}

	now := time.Now()
	for _, card := range cards {
		card.CreatedAt = now
		card.UpdatedAt = now
	}

	total := 0
	for start := 0; start < len(cards); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(cards) {
			end = len(cards)
		}
		chunk := cards[start:end]

		_, err := r.db.NewInsert().
			Model(&chunk).
			On("CONFLICT (id) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("rarity = EXCLUDED.rarity").
			Set("character_name = EXCLUDED.character_name").
			Set("detail = EXCLUDED.detail").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to bulk create cards [%d:%d]: %w", start, end, err)
		}
		total += len(chunk)
	}

	r.invalidateCache()
	return total, nil
}

func (r *cardRepository) GetCardCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	count, err := r.db.NewSelect().
		Model((*models.Card)(nil)).
		Count(ctx)

	return int64(count), err
}
