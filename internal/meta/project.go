// File path: internal/meta/project.go
package meta

import (
	"fmt"
	"strconv"
	"strings"
)

// Document provenance values. Keyword-matched documents are re-rendered
// with SourceKeyword so callers can tell exact hits from similarity hits.
const (
	SourceVector  = "vector"
	SourceKeyword = "keyword"
)

// Document is the flattened, embeddable rendering of one record plus a
// small provenance tag. Documents live only as long as the index built
// over them.
type Document struct {
	Text   string `json:"text"`
	Kind   Kind   `json:"kind"`
	Name   string `json:"name,omitempty"`
	Source string `json:"source"`
}

// ProjectDeck renders a deck card into the text blob fed to the
// embedding index. The rendering is deterministic; the same deck always
// produces identical bytes.
func ProjectDeck(d Deck) Document {
	champs := make([]string, 0, len(d.Champions))
	var itemSettings strings.Builder
	for _, c := range d.Champions {
		champs = append(champs, c.Name)
		if len(c.Items) > 0 {
			fmt.Fprintf(&itemSettings, "%s(%s), ", c.Name, strings.Join(c.Items, ", "))
		}
	}
	synergies := make([]string, 0, len(d.Synergies))
	for _, s := range d.Synergies {
		synergies = append(synergies, fmt.Sprintf("%s x%d", s.Name, s.Count))
	}
	guide := strings.TrimSpace(string(d.Guide))
	if guide == "" || guide == "null" {
		guide = UnknownStat
	}
	var b strings.Builder
	b.WriteString("[덱 정보]\n")
	b.WriteString("이름: " + d.DisplayName() + "\n")
	b.WriteString("티어: " + d.Tier + " | 평균 등수: " + d.AvgPlace + " | 승률: " + d.WinRate + "\n")
	b.WriteString("HOT: " + strconv.FormatBool(d.IsHot) + "\n")
	b.WriteString("시너지: " + strings.Join(synergies, ", ") + "\n")
	b.WriteString("구성 챔피언: " + strings.Join(champs, ", ") + "\n")
	b.WriteString("핵심 아이템 세팅: " + itemSettings.String() + "\n")
	b.WriteString("운영 가이드: " + guide)
	return Document{Text: b.String(), Kind: KindDeck, Name: d.DisplayName(), Source: SourceVector}
}

// ProjectItem renders an item record. An empty recipe renders as an
// empty component list, meaning the item is not craftable.
func ProjectItem(i Item) Document {
	text := fmt.Sprintf("[아이템 정보] 이름: %s\n조합법: %s\n효과: %s",
		i.Name, strings.Join(i.Recipe, ", "), i.Effect)
	return Document{Text: text, Kind: KindItem, Name: i.Name, Source: SourceVector}
}

// ProjectChampion renders a champion record.
func ProjectChampion(c Champion) Document {
	var b strings.Builder
	b.WriteString("[챔피언 정보]\n")
	b.WriteString("이름: " + c.Name + "\n")
	b.WriteString("비용(Cost): " + strconv.Itoa(c.Cost) + "코스트\n")
	b.WriteString("특성(Traits): " + strings.Join(c.Traits, ", ") + "\n")
	b.WriteString("통계 티어: " + c.Tier + " (평균등수: " + c.AvgPlace + ")\n")
	b.WriteString("추천 아이템: " + strings.Join(c.PopularItems, ", "))
	return Document{Text: b.String(), Kind: KindChampion, Name: c.Name, Source: SourceVector}
}

// Documents projects every record in the snapshot, decks first, then
// items, then champions, preserving file order within each kind.
func (s *Snapshot) Documents() []Document {
	if s == nil {
		return nil
	}
	docs := make([]Document, 0, s.Len())
	for _, d := range s.Decks {
		docs = append(docs, ProjectDeck(d))
	}
	for _, i := range s.Items {
		docs = append(docs, ProjectItem(i))
	}
	for _, c := range s.Champions {
		docs = append(docs, ProjectChampion(c))
	}
	return docs
}
