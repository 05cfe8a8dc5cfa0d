// File path: internal/retriever/keyword.go
package retriever

import (
	"strings"
	"unicode"

	"github.com/penguinworks/tftcoach/internal/common/telemetry"
	"github.com/penguinworks/tftcoach/internal/meta"
)

// Keyword matching is deliberately narrow: the only normalization is
// whitespace removal, so "밀리오 덱" and "밀리오덱" compare equal but
// case and punctuation still have to line up. Short champion names can
// false-positive inside longer tokens; that tradeoff is accepted to
// keep recall on localized names.

const (
	matchReasonName     = "name"
	matchReasonChampion = "champion"
)

// MatchDecks scans the raw deck records for whitespace-insensitive
// substring occurrences of the deck display name or any champion name
// inside the query. Matching decks come back re-rendered as documents
// tagged with keyword provenance, in corpus order. No score is
// attached; keyword hits are treated as maximal relevance.
func MatchDecks(query string, decks []meta.Deck) []meta.Document {
	needle := stripSpace(query)
	if needle == "" {
		return nil
	}
	var out []meta.Document
	for _, deck := range decks {
		reason := deckMatchReason(needle, deck)
		if reason == "" {
			continue
		}
		telemetry.RecordKeywordHit(reason)
		doc := meta.ProjectDeck(deck)
		doc.Source = meta.SourceKeyword
		out = append(out, doc)
	}
	return out
}

// deckMatchReason reports why a deck matched, with the deck name taking
// priority over champion names, or "" for no match.
func deckMatchReason(needle string, deck meta.Deck) string {
	if name := stripSpace(deck.DisplayName()); name != "" && strings.Contains(needle, name) {
		return matchReasonName
	}
	for _, champ := range deck.Champions {
		if name := stripSpace(champ.Name); name != "" && strings.Contains(needle, name) {
			return matchReasonChampion
		}
	}
	return ""
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
