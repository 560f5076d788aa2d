package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/yuigaoka/hasudeck/hasudeck/config"
	"github.com/yuigaoka/hasudeck/hasudeck/database/models"
)

type EventRepository interface {
	UpsertLiveEvent(ctx context.Context, event *models.LiveEvent) error
	GetLiveEvent(ctx context.Context, id string) (*models.LiveEvent, error)
	UpsertGradeChallenge(ctx context.Context, challenge *models.GradeChallenge) error
	GetGradeChallenge(ctx context.Context, id string) (*models.GradeChallenge, error)
}

type eventRepository struct {
	db *bun.DB
}

func NewEventRepository(db *bun.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) UpsertLiveEvent(ctx context.Context, event *models.LiveEvent) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(event).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("start_date = EXCLUDED.start_date").
		Set("end_date = EXCLUDED.end_date").
		Set("stage_name = EXCLUDED.stage_name").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	return err
}

func (r *eventRepository) GetLiveEvent(ctx context.Context, id string) (*models.LiveEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	event := new(models.LiveEvent)
	err := r.db.NewSelect().
		Model(event).
		Where("id = ?", id).
		Scan(ctx)

	return event, err
}

func (r *eventRepository) UpsertGradeChallenge(ctx context.Context, challenge *models.GradeChallenge) error {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	challenge.CreatedAt = time.Now()
	challenge.UpdatedAt = time.Now()

	_, err := r.db.NewInsert().
		Model(challenge).
		On("CONFLICT (id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Set("start_date = EXCLUDED.start_date").
		Set("end_date = EXCLUDED.end_date").
		Set("stage_name = EXCLUDED.stage_name").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)

	return err
}

func (r *eventRepository) GetGradeChallenge(ctx context.Context, id string) (*models.GradeChallenge, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DefaultQueryTimeout)
	defer cancel()

	challenge := new(models.GradeChallenge)
	err := r.db.NewSelect().
		Model(challenge).
		Where("id = ?", id).
		Scan(ctx)

	return challenge, err
}
