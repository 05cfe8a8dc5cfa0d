// File path: internal/meta/records.go
package meta

import "encoding/json"

// Kind discriminates the three record variants held in a corpus snapshot.
// The engine never infers the variant from record shape.
type Kind string

const (
	KindDeck     Kind = "deck"
	KindItem     Kind = "item"
	KindChampion Kind = "champion"
)

// UnknownStat is the sentinel substituted for missing statistic strings
// (tier, win rate, average placement).
const UnknownStat = "-"

// Synergy is one trait row on a deck card.
type Synergy struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Style string `json:"style,omitempty"`
}

// DeckChampion is one unit slot on a deck card, with the recommended
// star level and item build.
type DeckChampion struct {
	Name  string   `json:"name"`
	Star  int      `json:"star,omitempty"`
	Items []string `json:"items"`
}

// Deck is one recommended composition as merged from the scraped meta
// sources. Statistic fields are opaque strings; the scrapers emit them
// verbatim and may substitute UnknownStat.
type Deck struct {
	Name      string          `json:"name"`
	NameKR    string          `json:"name_kr,omitempty"`
	Tier      string          `json:"tier"`
	AvgPlace  string          `json:"avg_place"`
	WinRate   string          `json:"win_rate"`
	IsHot     bool            `json:"is_hot"`
	Synergies []Synergy       `json:"synergies"`
	Champions []DeckChampion  `json:"champions"`
	Guide     json.RawMessage `json:"guide,omitempty"`
}

// DisplayName prefers the localized deck name when the merge pass
// produced one.
func (d Deck) DisplayName() string {
	if d.NameKR != "" {
		return d.NameKR
	}
	return d.Name
}

// Item is one craftable or component item. An empty recipe means the
// item is not built from components.
type Item struct {
	Name   string   `json:"name"`
	Recipe []string `json:"recipe"`
	Effect string   `json:"effect"`
}

// Champion is one unit from the merged champion statistics file.
type Champion struct {
	Name         string   `json:"name"`
	Cost         int      `json:"cost"`
	Traits       []string `json:"traits"`
	Tier         string   `json:"tier"`
	AvgPlace     string   `json:"avg_place"`
	PopularItems []string `json:"popular_items"`
}

func (d *Deck) normalize() {
	if d.Tier == "" {
		d.Tier = UnknownStat
	}
	if d.AvgPlace == "" {
		d.AvgPlace = UnknownStat
	}
	if d.WinRate == "" {
		d.WinRate = UnknownStat
	}
	if d.Synergies == nil {
		d.Synergies = []Synergy{}
	}
	if d.Champions == nil {
		d.Champions = []DeckChampion{}
	}
	for i := range d.Champions {
		if d.Champions[i].Items == nil {
			d.Champions[i].Items = []string{}
		}
	}
}

func (i *Item) normalize() {
	if i.Recipe == nil {
		i.Recipe = []string{}
	}
}

func (c *Champion) normalize() {
	if c.Tier == "" {
		c.Tier = UnknownStat
	}
	if c.AvgPlace == "" {
		c.AvgPlace = UnknownStat
	}
	if c.Traits == nil {
		c.Traits = []string{}
	}
	if c.PopularItems == nil {
		c.PopularItems = []string{}
	}
}
