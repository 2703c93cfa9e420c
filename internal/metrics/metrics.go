// Package metrics holds the process-wide counters exported in Prometheus text format.
package metrics

import (
	"fmt"
	"io"

	vm "github.com/VictoriaMetrics/metrics"
)

var set = vm.NewSet()

// Envelope decoding outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeMalformed = "malformed"
)

// EnvelopeDecoded counts one decoded response envelope by outcome.
func EnvelopeDecoded(outcome string) {
	set.GetOrCreateCounter(fmt.Sprintf(`neorpc_envelopes_decoded_total{outcome=%q}`, outcome)).Inc()
}

// EnvelopesDecoded returns the current count for outcome.
func EnvelopesDecoded(outcome string) uint64 {
	return set.GetOrCreateCounter(fmt.Sprintf(`neorpc_envelopes_decoded_total{outcome=%q}`, outcome)).Get()
}

// CacheHit and CacheMiss count token store cache lookups.
func CacheHit()  { set.GetOrCreateCounter(`neorpc_store_cache_total{result="hit"}`).Inc() }
func CacheMiss() { set.GetOrCreateCounter(`neorpc_store_cache_total{result="miss"}`).Inc() }

// CacheHits returns the number of cache hits so far.
func CacheHits() uint64 {
	return set.GetOrCreateCounter(`neorpc_store_cache_total{result="hit"}`).Get()
}

// CacheMisses returns the number of cache misses so far.
func CacheMisses() uint64 {
	return set.GetOrCreateCounter(`neorpc_store_cache_total{result="miss"}`).Get()
}

// StoreBytesWritten adds n to the bytes written to the store.
func StoreBytesWritten(n int) {
	set.GetOrCreateCounter(`neorpc_store_bytes_written_total`).Add(n)
}

// WritePrometheus writes every counter in Prometheus text exposition format.
func WritePrometheus(w io.Writer) {
	set.WritePrometheus(w)
}
