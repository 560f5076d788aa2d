package search

import (
	"regexp"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/yuigaoka/hasudeck/hasudeck/config"
)

// Span is one segment of highlighted text. Concatenating the Text of every
// span in a result reproduces the input exactly.
type Span struct {
	Text    string
	IsMatch bool
}

// regexpCache holds compiled keyword and alternation expressions. Keyword
// sets repeat across a whole catalog render, so the hit rate is high.
var regexpCache *lru.Cache

func init() {
	regexpCache, _ = lru.New(config.RegexpCacheSize)
}

// Highlight splits text into alternating plain/matched spans for the given
// keyword set. Matches are found through one combined alternation; overlaps
// are resolved leftmost-match-wins. Zero matches yields a single plain span
// covering the whole text. The function is pure and idempotent: highlighting
// the plain spans of a previous run finds nothing new.
func Highlight(text string, keywords []string) []Span {
	if text == "" {
		return nil
	}

	re := alternation(keywords)
	if re == nil {
		return []Span{{Text: text}}
	}

	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i][0] < matches[j][0] })

	// Greedily drop any match starting before the previous accepted end.
	accepted := matches[:0]
	prevEnd := -1
	for _, m := range matches {
		if m[0] < prevEnd || m[0] == m[1] {
			continue
		}
		accepted = append(accepted, m)
		prevEnd = m[1]
	}

	spans := make([]Span, 0, 2*len(accepted)+1)
	cursor := 0
	for _, m := range accepted {
		if m[0] > cursor {
			spans = append(spans, Span{Text: text[cursor:m[0]]})
		}
		// Matches with no gap between them fold into one span so the
		// result always alternates plain/matched.
		if n := len(spans); n > 0 && spans[n-1].IsMatch && m[0] == cursor {
			spans[n-1].Text += text[m[0]:m[1]]
		} else {
			spans = append(spans, Span{Text: text[m[0]:m[1]], IsMatch: true})
		}
		cursor = m[1]
	}
	if cursor < len(text) {
		spans = append(spans, Span{Text: text[cursor:]})
	}
	if len(spans) == 0 {
		return []Span{{Text: text}}
	}
	return spans
}

// alternation builds one regular expression from the keyword set: literal
// entries are escaped, pattern entries used verbatim, each wrapped in a
// non-capturing group so branch boundaries stay intact. Returns nil when no
// usable keyword remains.
func alternation(keywords []string) *regexp.Regexp {
	parts := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if isPattern(kw) {
			if _, err := compileKeyword(kw); err == nil {
				parts = append(parts, "(?:"+kw+")")
				continue
			}
			// Unparseable pattern degrades to its literal text.
		}
		parts = append(parts, "(?:"+regexp.QuoteMeta(kw)+")")
	}
	if len(parts) == 0 {
		return nil
	}

	joined := strings.Join(parts, "|")
	if cached, ok := regexpCache.Get(joined); ok {
		return cached.(*regexp.Regexp)
	}
	re, err := regexp.Compile(joined)
	if err != nil {
		return nil
	}
	regexpCache.Add(joined, re)
	return re
}
