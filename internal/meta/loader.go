// File path: internal/meta/loader.go
package meta

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/penguinworks/tftcoach/internal/common"
)

// Paths names the flat-file collections produced by the scraping and
// merge pipelines. Any path may be empty or absent on disk; the
// corresponding collection loads as empty.
type Paths struct {
	Decks     string
	Items     string
	Champions string
}

// Snapshot is one immutable load of the three collections. Records are
// kept in file order; nothing mutates a snapshot after Load returns.
type Snapshot struct {
	Decks     []Deck
	Items     []Item
	Champions []Champion
}

// Len reports the total number of records across all kinds.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Decks) + len(s.Items) + len(s.Champions)
}

// DataFormatError reports a collection file that exists but does not
// match the expected record schema. The loader surfaces it instead of
// skipping records, so corpus corruption is visible to the caller.
type DataFormatError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("%s collection %s: %v", e.Kind, e.Path, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }

// Load reads the three collections into a snapshot. A missing file
// yields an empty collection; a malformed file fails the whole load
// with a *DataFormatError naming the offending path.
func Load(paths Paths) (*Snapshot, error) {
	logger := common.Logger()
	snap := &Snapshot{}
	if err := loadCollection(paths.Decks, KindDeck, &snap.Decks); err != nil {
		return nil, err
	}
	for i := range snap.Decks {
		snap.Decks[i].normalize()
	}
	if err := loadCollection(paths.Items, KindItem, &snap.Items); err != nil {
		return nil, err
	}
	for i := range snap.Items {
		snap.Items[i].normalize()
	}
	if err := loadCollection(paths.Champions, KindChampion, &snap.Champions); err != nil {
		return nil, err
	}
	for i := range snap.Champions {
		snap.Champions[i].normalize()
	}
	logger.Info(
		"meta: collections loaded",
		"decks", len(snap.Decks),
		"items", len(snap.Items),
		"champions", len(snap.Champions),
	)
	return snap, nil
}

func loadCollection(path string, kind Kind, out interface{}) error {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	data, err := os.ReadFile(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			common.Logger().Warn("meta: collection file missing", "kind", kind, "path", trimmed)
			return nil
		}
		return &DataFormatError{Path: trimmed, Kind: kind, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DataFormatError{Path: trimmed, Kind: kind, Err: err}
	}
	return nil
}
