package deck

import (
	"github.com/yuigaoka/hasudeck/hasudeck/cards"
	"github.com/yuigaoka/hasudeck/hasudeck/roster"
)

// PlacementCard is the minimal card view the placement rules inspect.
type PlacementCard struct {
	CharacterName string
	Rarity        cards.Rarity
}

// PlacementResult is a structured allow/deny outcome. Reason is set on deny
// and is meant for direct UI display.
type PlacementResult struct {
	Allowed bool
	Reason  string
}

// FriendPredicate reports whether the player has marked a card as
// friend-eligible. Friend membership is a player-specific runtime choice, so
// it is supplied by the caller instead of being stored on the card. A nil
// predicate means nothing is friend-eligible.
type FriendPredicate func(PlacementCard) bool

// Deny reasons shown in the deck builder.
const (
	ReasonUnknownSlot       = "unknown slot"
	ReasonCharacterMismatch = "character mismatch"
	ReasonFriendNotEligible = "not marked friend-eligible"
)

func allow() PlacementResult {
	return PlacementResult{Allowed: true}
}

func deny(reason string) PlacementResult {
	return PlacementResult{Allowed: false, Reason: reason}
}

// CanPlace decides whether a card may legally occupy a slot within a deck
// type. It is the single source of truth for slot validity; callers that
// bypass it (moderation overrides) own the consequences. It never panics and
// never errors, every outcome is a structured result.
func CanPlace(card PlacementCard, slotID int, deckType string, friendOK FriendPredicate) PlacementResult {
	catalog := CatalogFor(deckType)

	slot, ok := catalog.Slot(slotID)
	if !ok {
		return deny(ReasonUnknownSlot)
	}

	switch slot.SlotType {
	case SlotTypeFree:
		return allow()
	case SlotTypeFriend:
		if friendOK != nil && friendOK(card) {
			return allow()
		}
		return deny(ReasonFriendNotEligible)
	}

	if card.CharacterName == slot.CharacterName {
		return allow()
	}
	if crossGenerationOverride(card, slot) {
		return allow()
	}
	return deny(ReasonCharacterMismatch)
}

// crossGenerationOverride covers the one sanctioned mismatch: LR cards of
// 102期 members may stand in for their 103期/104期 juniors' side slots.
func crossGenerationOverride(card PlacementCard, slot Slot) bool {
	if card.Rarity != cards.RarityLR || slot.SlotType != SlotTypeSide {
		return false
	}
	cardGen, ok := roster.GenerationOf(card.CharacterName)
	if !ok || cardGen != 102 {
		return false
	}
	slotGen, ok := roster.GenerationOf(slot.CharacterName)
	if !ok {
		return false
	}
	return slotGen == 103 || slotGen == 104
}

// SelectableCharacters lists the roster names that could occupy the targeted
// slot for some rarity, with the slot's own default character moved to the
// front. That front-of-list ordering is a presentation contract the deck
// builder relies on. A nil slotID (no slot targeted) and unknown slot ids
// both yield the full roster.
func SelectableCharacters(slotID *int, deckType string) []string {
	names := roster.Names()
	if slotID == nil {
		return names
	}

	catalog := CatalogFor(deckType)
	slot, ok := catalog.Slot(*slotID)
	if !ok {
		return names
	}

	// Probe at LR, the rarity with the widest placement rights, and treat
	// every card as friend-eligible; "could occupy for some rarity" is
	// exactly that upper bound.
	anyFriend := func(PlacementCard) bool { return true }

	selectable := make([]string, 0, len(names))
	for _, name := range names {
		res := CanPlace(PlacementCard{CharacterName: name, Rarity: cards.RarityLR}, *slotID, deckType, anyFriend)
		if res.Allowed {
			selectable = append(selectable, name)
		}
	}

	return moveToFront(selectable, slot.CharacterName)
}

func moveToFront(names []string, name string) []string {
	for i, n := range names {
		if n == name {
			out := make([]string, 0, len(names))
			out = append(out, name)
			out = append(out, names[:i]...)
			return append(out, names[i+1:]...)
		}
	}
	return names
}
