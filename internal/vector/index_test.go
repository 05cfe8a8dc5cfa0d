// File path: internal/vector/index_test.go
package vector

import (
	"context"
	"errors"
	"testing"

	"github.com/penguinworks/tftcoach/internal/meta"
)

type fakeEmbedder struct {
	fn  func(text string) []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, input []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(input))
	for i, text := range input {
		out[i] = f.fn(text)
	}
	return out, nil
}

func axisEmbedder(axes map[string]int, dim int) *fakeEmbedder {
	return &fakeEmbedder{fn: func(text string) []float32 {
		vec := make([]float32, dim)
		if axis, ok := axes[text]; ok {
			vec[axis] = 1
		} else {
			vec[dim-1] = 1
		}
		return vec
	}}
}

func docFixtures(texts ...string) []meta.Document {
	docs := make([]meta.Document, 0, len(texts))
	for _, text := range texts {
		docs = append(docs, meta.Document{Text: text, Kind: meta.KindItem, Source: meta.SourceVector})
	}
	return docs
}

func TestBuildAndSearchRanking(t *testing.T) {
	embedder := &fakeEmbedder{fn: func(text string) []float32 {
		switch text {
		case "alpha":
			return []float32{1, 0}
		case "beta":
			return []float32{0.9, 0.1}
		default:
			return []float32{0, 1}
		}
	}}
	idx, err := Build(context.Background(), docFixtures("gamma", "beta", "alpha"), embedder)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	matches := idx.Search([]float32{1, 0}, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Doc.Text != "alpha" || matches[1].Doc.Text != "beta" {
		t.Fatalf("unexpected ranking: %q then %q", matches[0].Doc.Text, matches[1].Doc.Text)
	}
	if matches[0].Score < matches[1].Score {
		t.Fatal("scores must rank descending")
	}
}

func TestSearchTiesKeepInsertionOrder(t *testing.T) {
	embedder := &fakeEmbedder{fn: func(string) []float32 { return []float32{1, 0} }}
	idx, err := Build(context.Background(), docFixtures("first", "second", "third"), embedder)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	matches := idx.Search([]float32{1, 0}, 3)
	if matches[0].Doc.Text != "first" || matches[1].Doc.Text != "second" || matches[2].Doc.Text != "third" {
		t.Fatalf("ties must keep insertion order, got %q %q %q",
			matches[0].Doc.Text, matches[1].Doc.Text, matches[2].Doc.Text)
	}
}

func TestSearchBoundsK(t *testing.T) {
	embedder := axisEmbedder(nil, 2)
	idx, err := Build(context.Background(), docFixtures("one", "two"), embedder)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := len(idx.Search([]float32{0, 1}, 5)); got != 2 {
		t.Fatalf("k beyond corpus must return whole corpus, got %d", got)
	}
	if got := len(idx.Search([]float32{0, 1}, 0)); got != 1 {
		t.Fatalf("k below one must clamp to one, got %d", got)
	}
	if got := len(idx.Search([]float32{0, 1}, 1)); got != 1 {
		t.Fatalf("expected exactly k matches, got %d", got)
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	idx, err := Build(context.Background(), nil, axisEmbedder(nil, 2))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if idx.Len() != 0 {
		t.Fatalf("expected empty index, got %d entries", idx.Len())
	}
	if matches := idx.Search([]float32{1, 0}, 3); matches != nil {
		t.Fatalf("empty index must return no matches, got %d", len(matches))
	}
}

func TestBuildProviderFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: &ProviderError{Op: "embed", Err: errors.New("connection refused")}}
	_, err := Build(context.Background(), docFixtures("alpha"), embedder)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %T: %v", err, err)
	}
}

func TestBuildRejectsMismatchedDimensions(t *testing.T) {
	calls := 0
	embedder := &fakeEmbedder{fn: func(string) []float32 {
		calls++
		if calls == 1 {
			return []float32{1, 0}
		}
		return []float32{1, 0, 0}
	}}
	_, err := Build(context.Background(), docFixtures("alpha", "beta"), embedder)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError for malformed vectors, got %T: %v", err, err)
	}
}
