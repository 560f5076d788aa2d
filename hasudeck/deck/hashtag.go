package deck

import (
	"fmt"
	"strings"
	"time"

	"github.com/yuigaoka/hasudeck/hasudeck/roster"
)

// Fixed tag text used by hashtag derivation.
const (
	tagLiveGrandPrix       = "#ライグラ"
	tagLiveGrandPrixReview = "#ライグラ振り返り"
	tagGradeChallenge      = "#グレードチャレンジ"
	tagGenesis             = "#ジェネシス"
)

// reviewWindow is the closed window before a live event's end during which
// decks are tagged as look-backs instead of entries.
const reviewWindow = 24 * time.Hour

// GenesisCardID pins the ジェネシス combo tag to the single 大賀美沙知
// memorial card it was introduced for. Magic constant from the game data; do
// not generalize to other cards without a ruling from the game side.
const GenesisCardID = "10110100010"

// AutoHashtags derives the ordered list of descriptive tags for a deck at
// publish time. Emission order is significant because the UI displays tags in
// this order. The live and grade records are optional summaries resolved by
// the caller; now is the publish timestamp.
func AutoHashtags(d *Deck, live *LiveEvent, grade *GradeChallenge, now time.Time) []string {
	if d == nil {
		return nil
	}

	var tags []string
	if d.DeckType != "" {
		tags = append(tags, "#"+d.DeckType)
	}

	if d.LiveGrandPrixID != "" {
		tag := tagLiveGrandPrix
		if live != nil && withinReviewWindow(now, live.EndDate) {
			tag = tagLiveGrandPrixReview
		}
		tags = append(tags, tag)
		if live != nil && live.Name != "" {
			tags = append(tags, "#"+live.Name)
		}
		if d.LiveGrandPrixStageName != "" {
			tags = append(tags, "#ステージ"+d.LiveGrandPrixStageName)
		}
	}

	if d.GradeChallengeID != "" {
		tags = append(tags, tagGradeChallenge)
		if grade != nil && grade.Title != "" {
			tags = append(tags, fmt.Sprintf("#%s ステージ%s", grade.Title, grade.StageName))
		}
	}

	if d.SongName != "" {
		tags = append(tags, "#"+d.SongName)
	}

	if isGenesisDeck(d) {
		tags = append(tags, tagGenesis)
	}

	return tags
}

// AutoHashtagsNow is AutoHashtags evaluated at the current time.
func AutoHashtagsNow(d *Deck, live *LiveEvent, grade *GradeChallenge) []string {
	return AutoHashtags(d, live, grade, time.Now())
}

// withinReviewWindow reports whether now falls inside the closed interval
// [end-24h, end].
func withinReviewWindow(now, end time.Time) bool {
	if end.IsZero() {
		return false
	}
	return !now.Before(end.Add(-reviewWindow)) && !now.After(end)
}

// isGenesisDeck checks the hand-coded combo: the deck is centered on the sole
// 101期 member, her main slot exists in the deck type's catalog, and that
// slot actually holds the one sentinel card.
func isGenesisDeck(d *Deck) bool {
	first := roster.Roster[0]
	if d.CenterCharacter != first.Name {
		return false
	}

	main, ok := CatalogFor(d.DeckType).MainSlotFor(first.Name)
	if !ok {
		return false
	}

	ds := d.SlotByID(main.SlotID)
	return ds != nil && ds.CardID == GenesisCardID
}

// CustomHashtagResult reports the outcome of adding a user-entered tag.
// CustomTags is a fresh slice; the input slices are never mutated.
type CustomHashtagResult struct {
	Success    bool
	Tag        string
	CustomTags []string
}

// AddCustomHashtag normalizes a user-entered tag (prefixing # when absent)
// and rejects duplicates against both the auto-derived and existing custom
// sets. Empty input fails without a tag.
func AddCustomHashtag(input string, autoTags, customTags []string) CustomHashtagResult {
	tag := strings.TrimSpace(input)
	if tag == "" || tag == "#" {
		return CustomHashtagResult{}
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}

	if containsTag(autoTags, tag) || containsTag(customTags, tag) {
		return CustomHashtagResult{}
	}

	out := make([]string, 0, len(customTags)+1)
	out = append(out, customTags...)
	out = append(out, tag)

	return CustomHashtagResult{Success: true, Tag: tag, CustomTags: out}
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
