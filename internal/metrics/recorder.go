package metrics

import "time"

// Recorder defines observability hooks for the content loader. Implementations
// may forward to Prometheus; NoopRecorder is used when metrics are disabled.
type Recorder interface {
	IncCacheHit()
	IncCacheMiss()
	ObserveFetchDuration(d time.Duration, success bool)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncCacheHit()                             {}
func (NoopRecorder) IncCacheMiss()                            {}
func (NoopRecorder) ObserveFetchDuration(time.Duration, bool) {}
