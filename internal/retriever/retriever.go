// File path: internal/retriever/retriever.go
package retriever

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/common/telemetry"
	"github.com/penguinworks/tftcoach/internal/meta"
	"github.com/penguinworks/tftcoach/internal/vector"
)

const defaultVectorK = 5

// Service is the hybrid retriever: exact keyword matching over the raw
// deck records combined with similarity search over the embedded
// corpus. The index is rebuilt wholesale and published with an atomic
// swap, so queries in flight keep the index they started with.
type Service struct {
	corpus   *meta.Corpus
	embedder vector.Embedder
	index    atomic.Pointer[vector.Index]
	vectorK  int
}

type Option func(*Service)

// WithVectorK configures how many similarity matches a retrieval
// requests from the index.
func WithVectorK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.vectorK = k
		}
	}
}

// New constructs a service over the corpus. The index starts empty;
// call Rebuild to load records and embed them.
func New(corpus *meta.Corpus, embedder vector.Embedder, opts ...Option) *Service {
	s := &Service{corpus: corpus, embedder: embedder, vectorK: defaultVectorK}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.index.Store(&vector.Index{})
	return s
}

// Rebuild reloads the corpus from disk and builds a fresh index over
// it. The new index is constructed fully before being published; on any
// failure the last good index keeps serving and the error is returned.
func (s *Service) Rebuild(ctx context.Context) error {
	logger := common.Logger()
	snap, err := s.corpus.Rebuild()
	if err != nil {
		telemetry.RecordRebuild(true)
		logger.Error("retriever: corpus reload failed", "error", err)
		return err
	}
	idx, err := vector.Build(ctx, snap.Documents(), s.embedder)
	if err != nil {
		telemetry.RecordRebuild(true)
		logger.Error("retriever: index build failed", "error", err)
		return err
	}
	s.index.Store(idx)
	telemetry.RecordRebuild(false)
	logger.Info("retriever: index rebuilt", "documents", idx.Len())
	return nil
}

// Retrieve answers a free-text query. Keyword matches run first and are
// prepended to the vector hits; when both find the same deck it appears
// twice, which downstream prompt assembly relies on as implicit
// emphasis. A provider failure fails the whole call rather than
// degrading to keyword-only results.
func (s *Service) Retrieve(ctx context.Context, query string) ([]meta.Document, error) {
	start := time.Now()
	snap := s.corpus.Snapshot()
	keyword := MatchDecks(query, snap.Decks)
	matches, err := s.Search(ctx, query, s.vectorK)
	if err != nil {
		return nil, err
	}
	out := make([]meta.Document, 0, len(keyword)+len(matches))
	out = append(out, keyword...)
	for _, m := range matches {
		out = append(out, m.Doc)
	}
	telemetry.RecordRetrieve(time.Since(start))
	common.Logger().Debug(
		"retriever: query answered",
		"keyword_hits", len(keyword),
		"vector_hits", len(matches),
	)
	return out, nil
}

// Search runs the similarity half only: embed the query and scan the
// current index. An empty index answers without touching the provider.
func (s *Service) Search(ctx context.Context, query string, k int) ([]vector.Match, error) {
	idx := s.index.Load()
	if idx.Len() == 0 {
		return nil, nil
	}
	vecs, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, nil
	}
	telemetry.RecordVectorQuery()
	return idx.Search(vecs[0], k), nil
}

// Snapshot exposes the record snapshot currently backing the
// retriever.
func (s *Service) Snapshot() *meta.Snapshot {
	return s.corpus.Snapshot()
}

// IndexSize reports how many documents the published index holds.
func (s *Service) IndexSize() int {
	return s.index.Load().Len()
}

// VectorK exposes the configured similarity fan-out.
func (s *Service) VectorK() int {
	return s.vectorK
}
