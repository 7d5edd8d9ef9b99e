package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickwork/stopwatch/instants"
)

func histogramState(t *testing.T, h prometheus.Histogram) (count uint64, sum float64) {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, h.Write(m))
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestTimerObservesAccumulatedElapsed(t *testing.T) {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "test_timer_seconds",
	})

	timer := NewStartedTimer(h)
	time.Sleep(50 * time.Millisecond)
	d := timer.Stop()

	assert.GreaterOrEqual(t, d, 50*time.Millisecond)

	count, sum := histogramState(t, h)
	assert.Equal(t, uint64(1), count)
	assert.GreaterOrEqual(t, sum, 0.05)
}

func TestTimerPauseResume(t *testing.T) {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "test_timer_seconds",
	})

	timer := NewTimer(h)
	timer.Start()
	time.Sleep(20 * time.Millisecond)
	first := timer.Stop()

	timer.Start()
	time.Sleep(20 * time.Millisecond)
	second := timer.Stop()

	// the second observation contains the whole accumulated total
	assert.GreaterOrEqual(t, second, first+20*time.Millisecond)

	count, _ := histogramState(t, h)
	assert.Equal(t, uint64(2), count)

	timer.Reset()
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestTimerNilObserver(t *testing.T) {
	timer := NewStartedTimer(nil)
	d := timer.Stop()
	assert.GreaterOrEqual(t, d, time.Duration(0))
}

func TestElapsedGaugeFunc(t *testing.T) {
	var sw instants.Sw
	g := NewElapsedGaugeFunc(prometheus.GaugeOpts{
		Name: "test_elapsed_seconds",
	}, &sw)

	assert.Equal(t, 0.0, testutil.ToFloat64(g))

	sw.SetInPlace(3 * time.Second)
	assert.Equal(t, 3.0, testutil.ToFloat64(g))
}
