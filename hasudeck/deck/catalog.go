package deck

import (
	"strings"

	"github.com/yuigaoka/hasudeck/hasudeck/roster"
)

// SlotCatalog is the ordered slot layout for one deck type. Catalogs are
// built once at init and never written again.
type SlotCatalog struct {
	DeckType string
	Slots    []Slot
}

// Slot returns the catalog slot with the given id.
func (c *SlotCatalog) Slot(id int) (Slot, bool) {
	for _, s := range c.Slots {
		if s.SlotID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// MainSlotFor returns the main slot whose default occupant is the named
// character.
func (c *SlotCatalog) MainSlotFor(characterName string) (Slot, bool) {
	for _, s := range c.Slots {
		if s.SlotType == SlotTypeMain && s.CharacterName == characterName {
			return s, true
		}
	}
	return Slot{}, false
}

// DefaultDeckType is used whenever a deck type is absent or unknown.
const DefaultDeckType = "105期"

const freeSlotCount = 2

// Active lineup per term, seniors first. These lists drive the generated slot
// catalogs; order matters because slot ids follow it.
//
// To add a new term:
//  1. Append its lineup here.
//  2. Featuring variants for every roster guest are derived automatically.
var termLineups = map[string][]string{
	"102期": {"大賀美沙知", "乙宗梢", "夕霧綴理", "藤島慈"},
	"103期": {"乙宗梢", "夕霧綴理", "藤島慈", "日野下花帆", "村野さやか", "大沢瑠璃乃"},
	"104期": {"日野下花帆", "村野さやか", "大沢瑠璃乃", "百生吟子", "徒町小鈴", "安養寺姫芽"},
	"105期": {"百生吟子", "徒町小鈴", "安養寺姫芽", "桂城泉", "セラス柳田リリエンフェルト"},
}

var catalogs = make(map[string]*SlotCatalog)

func init() {
	for deckType, lineup := range termLineups {
		catalogs[deckType] = buildCatalog(deckType, lineup)

		// Featuring variants append one guest to the base lineup.
		for _, guest := range roster.Names() {
			if containsName(lineup, guest) {
				continue
			}
			featuring := deckType + "(" + guest + ")"
			catalogs[featuring] = buildCatalog(featuring, append(append([]string{}, lineup...), guest))
		}
	}
}

// buildCatalog lays out slot ids as: one main per lineup member, one side per
// member, two free slots, one friend slot.
func buildCatalog(deckType string, lineup []string) *SlotCatalog {
	n := len(lineup)
	slots := make([]Slot, 0, 2*n+freeSlotCount+1)

	id := 1
	for _, name := range lineup {
		slots = append(slots, Slot{SlotID: id, CharacterName: name, SlotType: SlotTypeMain})
		id++
	}
	for _, name := range lineup {
		slots = append(slots, Slot{SlotID: id, CharacterName: name, SlotType: SlotTypeSide})
		id++
	}
	for i := 0; i < freeSlotCount; i++ {
		slots = append(slots, Slot{SlotID: id, CharacterName: roster.FreeLabel, SlotType: SlotTypeFree})
		id++
	}
	slots = append(slots, Slot{SlotID: id, CharacterName: roster.FriendLabel, SlotType: SlotTypeFriend})

	return &SlotCatalog{DeckType: deckType, Slots: slots}
}

// CatalogFor resolves the slot catalog for a deck type. Unknown or empty deck
// types fall back to the DefaultDeckType catalog rather than erroring.
func CatalogFor(deckType string) *SlotCatalog {
	if c, ok := catalogs[normalizeDeckType(deckType)]; ok {
		return c
	}
	return catalogs[DefaultDeckType]
}

// KnownDeckType reports whether deckType resolves to its own catalog rather
// than the fallback.
func KnownDeckType(deckType string) bool {
	_, ok := catalogs[normalizeDeckType(deckType)]
	return ok
}

var deckTypeNormalizer = strings.NewReplacer("（", "(", "）", ")")

// normalizeDeckType folds full-width parentheses so featuring deck types
// match however the client wrote them.
func normalizeDeckType(deckType string) string {
	return deckTypeNormalizer.Replace(strings.TrimSpace(deckType))
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
