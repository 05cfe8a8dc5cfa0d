// File path: internal/vector/openai.go
package vector

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/sync/errgroup"

	"github.com/penguinworks/tftcoach/internal/common"
	"github.com/penguinworks/tftcoach/internal/common/telemetry"
)

// OpenAIEmbedder embeds texts through the OpenAI embeddings endpoint.
// Large inputs are split into batches embedded with bounded
// concurrency; a failure in any batch fails the whole call.
type OpenAIEmbedder struct {
	client openai.Client
	cfg    Config
}

// NewOpenAIEmbedder constructs an embedder from the provided
// configuration. The API key must be present.
func NewOpenAIEmbedder(cfg Config) (*OpenAIEmbedder, error) {
	cfg.applyDefaults()
	if cfg.APIKey == "" {
		return nil, errors.New("vector: OPENAI_API_KEY required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	common.Logger().Info("vector: openai embedder configured", "model", cfg.Model, "timeout", cfg.Timeout)
	return &OpenAIEmbedder{client: openai.NewClient(opts...), cfg: cfg}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, input []string) ([][]float32, error) {
	if len(input) == 0 {
		return nil, nil
	}
	vectors := make([][]float32, len(input))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)
	for start := 0; start < len(input); start += e.cfg.BatchSize {
		end := start + e.cfg.BatchSize
		if end > len(input) {
			end = len(input)
		}
		offset, batch := start, input[start:end]
		g.Go(func() error {
			resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
				Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: batch},
				Model: openai.EmbeddingModel(e.cfg.Model),
			})
			if err != nil {
				return &ProviderError{Op: "embed", Err: err}
			}
			if len(resp.Data) != len(batch) {
				return &ProviderError{Op: "embed", Err: fmt.Errorf("expected %d vectors, got %d", len(batch), len(resp.Data))}
			}
			for i, data := range resp.Data {
				if len(data.Embedding) == 0 {
					return &ProviderError{Op: "embed", Err: fmt.Errorf("empty vector at index %d", offset+i)}
				}
				vec := make([]float32, len(data.Embedding))
				for j, v := range data.Embedding {
					vec[j] = float32(v)
				}
				vectors[offset+i] = vec
			}
			telemetry.RecordEmbedBatch(len(batch))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}
