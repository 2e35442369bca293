package livesync

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Instruments are the synchronizer's own performance counters, exported on
// /metrics alongside what it displays.
type Instruments struct {
	Latency      prometheus.Gauge
	Events       *prometheus.CounterVec
	PollFailures prometheus.Counter
}

// NewInstruments registers the instrument set on reg.
func NewInstruments(reg prometheus.Registerer) *Instruments {
	in := &Instruments{
		Latency: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_ws_latency_ms",
			Help: "Observed event-stream latency in milliseconds.",
		}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_events_total",
			Help: "Stream events applied, by event name.",
		}, []string{"event"}),
		PollFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_schedule_poll_failures_total",
			Help: "Schedule re-polls that failed and degraded to an empty list.",
		}),
	}
	if reg != nil {
		reg.MustRegister(in.Latency, in.Events, in.PollFailures)
	}
	return in
}
