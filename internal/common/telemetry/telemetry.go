// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"expvar"
	"strings"
	"sync"
	"time"
)

var (
	initOnce sync.Once

	retrieveTotal     *expvar.Int
	retrieveLatencyMS *expvar.Int

	keywordHitTotal  *expvar.Map
	vectorQueryTotal *expvar.Int

	embedBatchTotal *expvar.Int
	embedDocsTotal  *expvar.Int

	rebuildTotal  *expvar.Int
	rebuildFailed *expvar.Int
)

func ensureInit() {
	initOnce.Do(func() {
		retrieveTotal = expvar.NewInt("tftcoach_retrieve_total")
		retrieveLatencyMS = expvar.NewInt("tftcoach_retrieve_latency_ms")

		keywordHitTotal = expvar.NewMap("tftcoach_keyword_hit_total")
		vectorQueryTotal = expvar.NewInt("tftcoach_vector_query_total")

		embedBatchTotal = expvar.NewInt("tftcoach_embed_batches_total")
		embedDocsTotal = expvar.NewInt("tftcoach_embed_docs_total")

		rebuildTotal = expvar.NewInt("tftcoach_index_rebuild_total")
		rebuildFailed = expvar.NewInt("tftcoach_index_rebuild_failed")
	})
}

// RecordRetrieve captures one hybrid retrieval round trip.
func RecordRetrieve(duration time.Duration) {
	ensureInit()
	retrieveTotal.Add(1)
	if duration > 0 {
		retrieveLatencyMS.Add(duration.Milliseconds())
	}
}

// RecordKeywordHit counts a keyword match by the reason it matched
// (deck name or champion name).
func RecordKeywordHit(reason string) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(reason))
	if key == "" {
		key = "unknown"
	}
	keywordHitTotal.Add(key, 1)
}

func RecordVectorQuery() {
	ensureInit()
	vectorQueryTotal.Add(1)
}

func RecordEmbedBatch(docs int) {
	ensureInit()
	if docs <= 0 {
		return
	}
	embedBatchTotal.Add(1)
	embedDocsTotal.Add(int64(docs))
}

func RecordRebuild(failed bool) {
	ensureInit()
	rebuildTotal.Add(1)
	if failed {
		rebuildFailed.Add(1)
	}
}
