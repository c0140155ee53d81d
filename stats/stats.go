// Package stats exposes a process-wide, Prometheus-backed counter vector
// that any concise.Observer-compatible caller can increment by event name.
// concise itself never imports this package; the coupling runs the other
// way, with callers wiring an EventCounter into a ConciseSet via
// SetObserver, per concise's generic Observer contract.
package stats

import (
	"sync"

	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once    sync.Once
	counter *prometheus.CounterVec
)

func counterVec() *prometheus.CounterVec {
	once.Do(func() {
		counter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "conciseset",
			Name:      "events_total",
			Help:      "Count of ConciseSet mutation events, labeled by event name.",
		}, []string{"event"})
		prometheus.MustRegister(counter)
	})
	return counter
}

// Increment records one occurrence of the named event.
func Increment(name string) {
	counterVec().WithLabelValues(name).Inc()
}

// Snapshot returns the current count for every event name seen so far.
func Snapshot() map[string]float64 {
	metricCh := make(chan prometheus.Metric, 64)
	go func() {
		counterVec().Collect(metricCh)
		close(metricCh)
	}()

	out := make(map[string]float64)
	for m := range metricCh {
		var pb dto.Metric
		if err := m.Write(&pb); err != nil {
			continue
		}
		name := ""
		for _, lp := range pb.GetLabel() {
			if lp.GetName() == "event" {
				name = lp.GetValue()
			}
		}
		if name != "" {
			out[name] = pb.GetCounter().GetValue()
		}
	}
	return out
}

// EventCounter adapts this package's singleton counter to concise's
// generic Observer interface, so a *concise.ConciseSet can be wired
// directly to process-wide statistics via SetObserver(stats.Default()).
type EventCounter struct{}

// Default returns an Observer that forwards every event to this
// package's singleton counter vector.
func Default() EventCounter { return EventCounter{} }

// OnEvent implements concise.Observer.
func (EventCounter) OnEvent(name string) { Increment(name) }
