package catalog

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
	"github.com/yuigaoka/hasudeck/hasudeck/deck"
	"github.com/yuigaoka/hasudeck/hasudeck/search"
	"github.com/yuigaoka/hasudeck/internal/domain/catalog/mock"
)

var mockCards = []*cards.Card{
	{ID: "1031501", Name: "［Dream Believers］日野下花帆", Rarity: cards.RarityLR, CharacterName: "日野下花帆", ReleaseDate: "2024-04-18"},
	{ID: "1032502", Name: "［On your mark］村野さやか", Rarity: cards.RarityUR, CharacterName: "村野さやか", ReleaseDate: "2024-06-01"},
	{ID: "1022503", Name: "［ツバサ・ラ・リベルテ］乙宗梢", Rarity: cards.RaritySR, CharacterName: "乙宗梢", ReleaseDate: "2024-05-10"},
}

func repoMock(t *testing.T) *mock.MockRepository {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		GetAllCards(gomock.Any()).
		Return(mockCards, nil).
		AnyTimes()
	return repo
}

func Test_service_SearchCards(t *testing.T) {
	tests := []struct {
		name            string
		filter          *search.CardFilter
		sortSpec        SortSpec
		wantIDs         []string
		wantSuggestions []string
	}{
		{
			name:     "rarity filter",
			filter:   &search.CardFilter{Rarities: []cards.Rarity{cards.RarityLR}},
			sortSpec: SortSpec{By: search.SortByReleaseDate, Order: search.OrderAsc},
			wantIDs:  []string{"1031501"},
		},
		{
			name:     "no filter returns whole catalog sorted",
			filter:   nil,
			sortSpec: SortSpec{By: search.SortByReleaseDate, Order: search.OrderAsc},
			wantIDs:  []string{"1031501", "1022503", "1032502"},
		},
		{
			name:            "empty match yields fuzzy suggestions",
			filter:          &search.CardFilter{Keyword: "Drem Belivers"},
			sortSpec:        SortSpec{By: search.SortByReleaseDate, Order: search.OrderAsc},
			wantIDs:         []string{},
			wantSuggestions: []string{"1031501"},
		},
	}

	s := NewService(repoMock(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchCards(context.Background(), tt.filter, tt.sortSpec)
			if err != nil {
				t.Fatalf("service.SearchCards() error = %v", err)
			}
			if gotIDs := cardIDs(got.Cards); !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("service.SearchCards() cards = %v, want %v", gotIDs, tt.wantIDs)
			}
			gotSuggestions := cardIDs(got.Suggestions)
			wantSuggestions := tt.wantSuggestions
			if wantSuggestions == nil {
				wantSuggestions = []string{}
			}
			if !reflect.DeepEqual(gotSuggestions, wantSuggestions) {
				t.Errorf("service.SearchCards() suggestions = %v, want %v", gotSuggestions, wantSuggestions)
			}
		})
	}
}

func Test_service_PublishTags(t *testing.T) {
	end := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)

	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		GetLiveEvent(gomock.Any(), "lgp-2603").
		Return(&deck.LiveEvent{
			ID:        "lgp-2603",
			Name:      "春のライブグランプリ",
			StartDate: end.AddDate(0, 0, -14),
			EndDate:   end,
		}, nil)

	s := NewService(repo)
	s.now = func() time.Time { return end.Add(-48 * time.Hour) }

	d := &deck.Deck{
		DeckType:               "105期",
		LiveGrandPrixID:        "lgp-2603",
		LiveGrandPrixStageName: "3",
	}

	got, err := s.PublishTags(context.Background(), d)
	if err != nil {
		t.Fatalf("service.PublishTags() error = %v", err)
	}
	want := []string{"#105期", "#ライグラ", "#春のライブグランプリ", "#ステージ3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("service.PublishTags() = %v, want %v", got, want)
	}
}

func Test_service_PublishTagsMissingEventRecord(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		GetLiveEvent(gomock.Any(), "lgp-gone").
		Return(nil, context.DeadlineExceeded)

	s := NewService(repo)

	d := &deck.Deck{
		DeckType:        "104期",
		LiveGrandPrixID: "lgp-gone",
	}

	got, err := s.PublishTags(context.Background(), d)
	if err != nil {
		t.Fatalf("service.PublishTags() error = %v", err)
	}
	// Lookup failures degrade to the generic tag rather than failing.
	want := []string{"#104期", "#ライグラ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("service.PublishTags() = %v, want %v", got, want)
	}
}

func cardIDs(in []*cards.Card) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		out = append(out, c.ID)
	}
	return out
}
