package deck

import (
	"time"

	"github.com/yuigaoka/hasudeck/hasudeck/cards"
)

// SlotType classifies a deck position.
type SlotType string

const (
	SlotTypeMain   SlotType = "main"
	SlotTypeSide   SlotType = "side"
	SlotTypeFree   SlotType = "free"
	SlotTypeFriend SlotType = "friend"
)

// Slot is a fixed position in a slot catalog. CharacterName is the default
// occupant identity used for validation, not necessarily the assigned card's
// character.
type Slot struct {
	SlotID        int
	CharacterName string
	SlotType      SlotType
}

// Limit break bounds. The exact semantics of the counter vary by card
// variant, the range does not.
const (
	LimitBreakMin = 1
	LimitBreakMax = 14
)

// DeckSlot is a catalog slot plus its runtime assignment. An empty CardID
// means the slot is unoccupied. LimitBreak is 0 when unset.
type DeckSlot struct {
	Slot
	CardID     string
	Card       *cards.Card
	LimitBreak int
}

// Deck is an ordered set of deck slots plus publish metadata. The engines
// only read decks; the UI layer owns mutation between calls.
type Deck struct {
	Name            string
	DeckType        string
	Slots           []DeckSlot
	AceSlotID       int // 0 means no ace slot
	CenterCharacter string

	SongName               string
	LiveGrandPrixID        string
	LiveGrandPrixStageName string
	GradeChallengeID       string
}

// LimitBreakInRange reports whether the slot's limit-break counter is unset
// or within bounds.
func (s *DeckSlot) LimitBreakInRange() bool {
	return s.LimitBreak == 0 || (s.LimitBreak >= LimitBreakMin && s.LimitBreak <= LimitBreakMax)
}

// SlotByID returns the deck slot with the given id, or nil.
func (d *Deck) SlotByID(id int) *DeckSlot {
	for i := range d.Slots {
		if d.Slots[i].SlotID == id {
			return &d.Slots[i]
		}
	}
	return nil
}

// LiveEvent is the summary record the external query service supplies for a
// linked live grand prix.
type LiveEvent struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	StageName string
}

// GradeChallenge is the summary record for a linked grade challenge.
type GradeChallenge struct {
	ID        string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	StageName string
}
