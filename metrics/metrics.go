// Package metrics aggregates dispatch outcomes: call and failure counts per
// worker, plus invoke latency quantiles over all dispatches.
package metrics

import (
	"fmt"
	"math"
	"sync"
	"time"

	tdigest "github.com/caio/go-tdigest/v4"
)

// Recorder accumulates dispatch measurements. Latencies fold into a t-digest
// sketch, so quantile queries stay cheap no matter how many dispatches have
// been recorded. The Recorder is safe for concurrent use even though the
// dispatch mechanism feeding it is single-threaded.
type Recorder struct {
	mu        sync.Mutex
	latencies *tdigest.TDigest
	calls     uint64
	failures  uint64
	perWorker map[string]*tally
}

type tally struct {
	calls    uint64
	failures uint64
}

// NewRecorder creates an empty Recorder.
func NewRecorder() (*Recorder, error) {
	td, err := tdigest.New(tdigest.Compression(100))
	if err != nil {
		return nil, err
	}
	return &Recorder{
		latencies: td,
		perWorker: make(map[string]*tally),
	}, nil
}

// Observe records one dispatch to worker that took took and ended with err,
// nil meaning success.
func (r *Recorder) Observe(worker string, took time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	t := r.perWorker[worker]
	if t == nil {
		t = &tally{}
		r.perWorker[worker] = t
	}
	t.calls++
	if err != nil {
		r.failures++
		t.failures++
	}
	// Compression is fixed at construction, Add cannot fail.
	_ = r.latencies.Add(float64(took) / float64(time.Millisecond))
}

// Calls reports the total number of recorded dispatches.
func (r *Recorder) Calls() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Failures reports the number of recorded dispatches that returned an error.
func (r *Recorder) Failures() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures
}

// Worker reports the call and failure counts recorded for one worker name.
func (r *Recorder) Worker(name string) (calls, failures uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.perWorker[name]
	if t == nil {
		return 0, 0
	}
	return t.calls, t.failures
}

// LatencyQuantile returns the q-quantile of recorded invoke latencies in
// milliseconds, NaN before the first observation.
func (r *Recorder) LatencyQuantile(q float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latencies.Count() == 0 {
		return math.NaN()
	}
	return r.latencies.Quantile(q)
}

// String summarizes the recorded dispatches.
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == 0 {
		return "no dispatches recorded"
	}
	return fmt.Sprintf("%d dispatches, %d failed, p50=%.3fms p99=%.3fms",
		r.calls, r.failures, r.latencies.Quantile(0.5), r.latencies.Quantile(0.99))
}
