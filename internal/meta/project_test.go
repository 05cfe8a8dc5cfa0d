// File path: internal/meta/project_test.go
package meta

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleDeck() Deck {
	return Deck{
		Name:     "Milio Reroll",
		NameKR:   "밀리오 덱",
		Tier:     "S",
		AvgPlace: "3.9",
		WinRate:  "14.2%",
		IsHot:    true,
		Synergies: []Synergy{
			{Name: "요정", Count: 5, Style: "gold"},
		},
		Champions: []DeckChampion{
			{Name: "밀리오", Star: 3, Items: []string{"구인수의 격노검", "보석 건틀릿"}},
			{Name: "세나", Star: 2, Items: []string{}},
		},
		Guide: json.RawMessage(`{"early": "요정 오픈"}`),
	}
}

func TestProjectDeckIsDeterministic(t *testing.T) {
	deck := sampleDeck()
	first := ProjectDeck(deck)
	second := ProjectDeck(deck)
	if first.Text != second.Text {
		t.Fatal("projecting the same deck twice must yield identical text")
	}
	if first.Kind != KindDeck || first.Name != "밀리오 덱" || first.Source != SourceVector {
		t.Fatalf("unexpected provenance: %+v", first)
	}
}

func TestProjectDeckRendersFields(t *testing.T) {
	doc := ProjectDeck(sampleDeck())
	for _, want := range []string{
		"[덱 정보]",
		"이름: 밀리오 덱",
		"티어: S | 평균 등수: 3.9 | 승률: 14.2%",
		"HOT: true",
		"시너지: 요정 x5",
		"구성 챔피언: 밀리오, 세나",
		"핵심 아이템 세팅: 밀리오(구인수의 격노검, 보석 건틀릿), ",
		"운영 가이드: {\"early\": \"요정 오픈\"}",
	} {
		if !strings.Contains(doc.Text, want) {
			t.Fatalf("deck document missing %q:\n%s", want, doc.Text)
		}
	}
}

func TestProjectDeckRendersSentinels(t *testing.T) {
	deck := Deck{Name: "Bare Deck"}
	deck.normalize()
	doc := ProjectDeck(deck)
	if !strings.Contains(doc.Text, "티어: - | 평균 등수: - | 승률: -") {
		t.Fatalf("expected stat sentinels in:\n%s", doc.Text)
	}
	if !strings.Contains(doc.Text, "HOT: false") {
		t.Fatalf("expected hot sentinel in:\n%s", doc.Text)
	}
	if !strings.Contains(doc.Text, "운영 가이드: -") {
		t.Fatalf("expected guide sentinel in:\n%s", doc.Text)
	}
}

func TestProjectItem(t *testing.T) {
	doc := ProjectItem(Item{
		Name:   "구인수의 격노검",
		Recipe: []string{"곡궁", "쓸데없이 큰 지팡이"},
		Effect: "공격 시 중첩",
	})
	want := "[아이템 정보] 이름: 구인수의 격노검\n조합법: 곡궁, 쓸데없이 큰 지팡이\n효과: 공격 시 중첩"
	if doc.Text != want {
		t.Fatalf("unexpected item text:\n%s", doc.Text)
	}
	if doc.Kind != KindItem || doc.Name != "구인수의 격노검" {
		t.Fatalf("unexpected provenance: %+v", doc)
	}
}

func TestProjectChampion(t *testing.T) {
	doc := ProjectChampion(Champion{
		Name:         "밀리오",
		Cost:         4,
		Traits:       []string{"요정", "마법사"},
		Tier:         "S",
		AvgPlace:     "4.1",
		PopularItems: []string{"보석 건틀릿"},
	})
	for _, want := range []string{
		"[챔피언 정보]",
		"이름: 밀리오",
		"비용(Cost): 4코스트",
		"특성(Traits): 요정, 마법사",
		"통계 티어: S (평균등수: 4.1)",
		"추천 아이템: 보석 건틀릿",
	} {
		if !strings.Contains(doc.Text, want) {
			t.Fatalf("champion document missing %q:\n%s", want, doc.Text)
		}
	}
}

func TestSnapshotDocumentsPreserveOrder(t *testing.T) {
	snap := &Snapshot{
		Decks:     []Deck{sampleDeck()},
		Items:     []Item{{Name: "곡궁", Recipe: []string{}, Effect: "공격 속도"}},
		Champions: []Champion{{Name: "세나", Cost: 1}},
	}
	docs := snap.Documents()
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[0].Kind != KindDeck || docs[1].Kind != KindItem || docs[2].Kind != KindChampion {
		t.Fatalf("unexpected document order: %v %v %v", docs[0].Kind, docs[1].Kind, docs[2].Kind)
	}
}
