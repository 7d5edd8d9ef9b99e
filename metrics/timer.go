// Package metrics bridges stopwatches into prometheus instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tickwork/stopwatch/instants"
)

// Timer couples a monotonic stopwatch with a prometheus observer, typically
// a histogram or summary. Unlike prometheus.Timer it can be paused and
// resumed: the observed value is the stopwatch's accumulated elapsed time
// across all start/stop cycles since the last Reset.
//
// Timer is not safe for concurrent use.
type Timer struct {
	sw  instants.Sw
	obs prometheus.Observer
}

// NewTimer returns a stopped timer reporting to obs. A nil obs is allowed;
// the timer then only measures.
func NewTimer(obs prometheus.Observer) *Timer {
	return &Timer{obs: obs}
}

// NewStartedTimer returns a running timer reporting to obs.
func NewStartedTimer(obs prometheus.Observer) *Timer {
	t := NewTimer(obs)
	t.Start()
	return t
}

// Start resumes measuring. Starting a running timer restarts the interval
// in progress.
func (t *Timer) Start() {
	t.sw.Start()
}

// Stop stops measuring, observes the accumulated elapsed time in seconds
// and returns it. Stopping a stopped timer observes the unchanged total
// again.
func (t *Timer) Stop() time.Duration {
	t.sw.Stop()
	d := t.sw.Elapsed()
	if t.obs != nil {
		t.obs.Observe(d.Seconds())
	}
	return d
}

// Elapsed returns the accumulated elapsed time without observing it.
func (t *Timer) Elapsed() time.Duration {
	return t.sw.Elapsed()
}

// Reset stops the timer and discards the accumulated elapsed time.
func (t *Timer) Reset() {
	t.sw.Reset()
}

// NewElapsedGaugeFunc returns a GaugeFunc exposing the live elapsed seconds
// of sw, read at collection time. The caller keeps ownership of sw and must
// synchronize mutations against collection.
func NewElapsedGaugeFunc(opts prometheus.GaugeOpts, sw *instants.Sw) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(opts, func() float64 {
		return sw.Elapsed().Seconds()
	})
}
