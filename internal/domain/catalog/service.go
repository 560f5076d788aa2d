package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yuigaoka/hasudeck/hasudeck/config"
	"github.com/yuigaoka/hasudeck/hasudeck/deck"
	"github.com/yuigaoka/hasudeck/hasudeck/logger"
	"github.com/yuigaoka/hasudeck/hasudeck/search"
)

type Service interface {
	SearchCards(ctx context.Context, filter *search.CardFilter, sortSpec SortSpec) (*SearchResult, error)
	PublishTags(ctx context.Context, d *deck.Deck) ([]string, error)
}

type service struct {
	repository Repository
	now        func() time.Time
}

func NewService(repository Repository) *service {
	return &service{
		repository: repository,
		now:        time.Now,
	}
}

// SearchCards runs the filter pipeline over the full catalog. When the
// filter matches nothing but carries a keyword, fuzzy suggestions against
// the whole pool are returned instead.
func (s *service) SearchCards(ctx context.Context, filter *search.CardFilter, sortSpec SortSpec) (*SearchResult, error) {
	start := time.Now()

	pool, err := s.repository.GetAllCards(ctx)
	if err != nil {
		logger.LogError("card catalog fetch failed", err)
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}

	matched := search.FilterCards(pool, filter)
	matched = search.SortCards(matched, sortSpec.By, sortSpec.Order)

	result := &SearchResult{Cards: matched}
	if len(matched) == 0 && filter != nil && filter.Keyword != "" {
		result.Suggestions = search.SuggestCards(filter.Keyword, pool, config.MaxSuggestions)
	}

	logger.LogOperation("search", time.Since(start), nil)
	return result, nil
}

// PublishTags resolves the deck's linked event records and derives the
// full hashtag list. Event lookups run concurrently; a missing record
// simply drops its tags rather than failing the whole call.
func (s *service) PublishTags(ctx context.Context, d *deck.Deck) ([]string, error) {
	if d == nil {
		return nil, nil
	}

	var (
		live  *deck.LiveEvent
		grade *deck.GradeChallenge
	)

	g, gctx := errgroup.WithContext(ctx)
	if d.LiveGrandPrixID != "" {
		g.Go(func() error {
			event, err := s.repository.GetLiveEvent(gctx, d.LiveGrandPrixID)
			if err != nil {
				logger.LogError("live event lookup failed", err)
				return nil
			}
			live = event
			return nil
		})
	}
	if d.GradeChallengeID != "" {
		g.Go(func() error {
			challenge, err := s.repository.GetGradeChallenge(gctx, d.GradeChallengeID)
			if err != nil {
				logger.LogError("grade challenge lookup failed", err)
				return nil
			}
			grade = challenge
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return deck.AutoHashtags(d, live, grade, s.now()), nil
}
