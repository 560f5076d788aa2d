// models/deck.go
package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Deck struct {
	bun.BaseModel `bun:"table:decks,alias:d"`

	ID                     int64      `bun:"id,pk,autoincrement"`
	Name                   string     `bun:"name,notnull"`
	DeckType               string     `bun:"deck_type,notnull"`
	Slots                  []DeckSlot `bun:"slots,type:jsonb"`
	AceSlotID              int        `bun:"ace_slot_id,notnull,default:0"`
	CenterCharacter        string     `bun:"center_character,type:text,default:''"`
	SongName               string     `bun:"song_name,type:text,default:''"`
	LiveGrandPrixID        string     `bun:"live_grand_prix_id,type:text,default:''"`
	LiveGrandPrixStageName string     `bun:"live_grand_prix_stage_name,type:text,default:''"`
	GradeChallengeID       string     `bun:"grade_challenge_id,type:text,default:''"`
	CustomHashtags         []string   `bun:"custom_hashtags,type:jsonb"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// DeckSlot is the stored form of one slot assignment. Only filled slots
// are persisted; empty slots are reconstructed from the slot catalog.
type DeckSlot struct {
	SlotID     int    `json:"slot_id"`
	CardID     string `json:"card_id"`
	LimitBreak int    `json:"limit_break"`
}

type LiveEvent struct {
	bun.BaseModel `bun:"table:live_events,alias:le"`

	ID        string    `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	StartDate time.Time `bun:"start_date,notnull"`
	EndDate   time.Time `bun:"end_date,notnull"`
	StageName string    `bun:"stage_name,type:text,default:''"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type GradeChallenge struct {
	bun.BaseModel `bun:"table:grade_challenges,alias:gc"`

	ID        string    `bun:"id,pk"`
	Title     string    `bun:"title,notnull"`
	StartDate time.Time `bun:"start_date,notnull"`
	EndDate   time.Time `bun:"end_date,notnull"`
	StageName string    `bun:"stage_name,type:text,default:''"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
