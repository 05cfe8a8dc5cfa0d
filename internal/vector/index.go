// File path: internal/vector/index.go
package vector

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/meta"
)

// Match is one similarity hit returned from an index search.
type Match struct {
	Doc   meta.Document `json:"doc"`
	Score float32       `json:"score"`
}

type entry struct {
	doc  meta.Document
	vec  []float32
	norm float32
}

// Index is an in-memory cosine-similarity index over projected
// documents. The corpus is small, so the search is an exact scan.
// An index is immutable after Build; rebuilds construct a new one.
type Index struct {
	entries []entry
	dim     int
}

// Build embeds every document text and constructs the index. The build
// is all-or-nothing: any provider failure or malformed vector leaves no
// partial index behind. Building over zero documents succeeds with an
// empty index that answers every query with no matches.
func Build(ctx context.Context, docs []meta.Document, embedder Embedder) (*Index, error) {
	logger := common.Logger()
	if len(docs) == 0 {
		logger.Warn("vector: building index over empty corpus")
		return &Index{}, nil
	}
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(docs) {
		return nil, &ProviderError{Op: "build", Err: fmt.Errorf("expected %d vectors, got %d", len(docs), len(vectors))}
	}
	dim := len(vectors[0])
	entries := make([]entry, 0, len(docs))
	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, &ProviderError{Op: "build", Err: fmt.Errorf("vector %d has dimension %d, want %d", i, len(vec), dim)}
		}
		entries = append(entries, entry{doc: docs[i], vec: vec, norm: norm(vec)})
	}
	logger.Info("vector: index built", "documents", len(entries), "dimension", dim)
	return &Index{entries: entries, dim: dim}, nil
}

// Len reports the number of indexed documents.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Search returns the k entries most similar to the query vector, ranked
// descending by cosine score. Ties keep insertion order. k below one is
// clamped to one; k beyond the corpus returns the whole corpus.
func (ix *Index) Search(queryVec []float32, k int) []Match {
	if ix == nil || len(ix.entries) == 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}
	qnorm := norm(queryVec)
	matches := make([]Match, 0, len(ix.entries))
	for _, ent := range ix.entries {
		matches = append(matches, Match{Doc: ent.doc, Score: cosine(queryVec, qnorm, ent.vec, ent.norm)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

func norm(vec []float32) float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return float32(math.Sqrt(sum))
}

func cosine(a []float32, anorm float32, b []float32, bnorm float32) float32 {
	if anorm == 0 || bnorm == 0 || len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return float32(dot) / (anorm * bnorm)
}
