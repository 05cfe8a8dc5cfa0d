// File path: internal/vector/embedder.go
package vector

import "context"

// Embedder generates embedding vectors for a batch of texts. All
// vectors in one response must share the same dimension.
type Embedder interface {
	Embed(ctx context.Context, input []string) ([][]float32, error)
}

// ProviderError reports an unreachable, rate-limited, or malformed
// response from the external embedding provider. It is fatal to the
// index build or query that triggered it; retries belong to the caller.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return "embedding provider: " + e.Op + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }
