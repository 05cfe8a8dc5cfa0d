// File path: internal/meta/corpus.go
package meta

import (
	"sync/atomic"

	"github.com/penguinworks/tftcoach/internal/common"
)

// Corpus owns the current record snapshot. Rebuilds load a complete new
// snapshot before publishing it with an atomic swap, so in-flight
// readers always see a fully-old or fully-new snapshot.
type Corpus struct {
	paths Paths
	snap  atomic.Pointer[Snapshot]
}

// NewCorpus constructs an empty corpus over the given collection paths.
// Call Rebuild to perform the first load.
func NewCorpus(paths Paths) *Corpus {
	c := &Corpus{paths: paths}
	c.snap.Store(&Snapshot{})
	return c
}

// Rebuild reloads every collection from disk. On failure the previous
// snapshot keeps serving and the error is returned to the caller.
func (c *Corpus) Rebuild() (*Snapshot, error) {
	snap, err := Load(c.paths)
	if err != nil {
		return nil, err
	}
	if snap.Len() == 0 {
		common.Logger().Warn("meta: corpus rebuilt empty", "paths", c.paths)
	}
	c.snap.Store(snap)
	return snap, nil
}

// Snapshot returns the currently published snapshot. Never nil.
func (c *Corpus) Snapshot() *Snapshot {
	return c.snap.Load()
}
