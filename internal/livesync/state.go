// Package livesync reconciles the dashboard's initial REST snapshot with the
// backend's event stream. The view state is three independent slices — class
// status, node health, performance metrics — each owned by its own reducer.
// Status is replaced wholesale per event; health and metrics merge partial
// patches. No ordering is imposed across event kinds: last applied wins per
// slice, and cross-slice consistency is explicitly not guaranteed.
package livesync

import (
	"time"

	"kelasboard/internal/backend"
)

// HealthUnknown is the liveness shown before any report arrives for a node.
const HealthUnknown = "TIDAK DIKETAHUI"

// Health is the merged liveness of the two edge nodes.
type Health struct {
	Esp32 string `json:"esp32"`
	Raspi string `json:"raspi"`
}

// NewHealth starts both nodes in the unknown state.
func NewHealth() Health {
	return Health{Esp32: HealthUnknown, Raspi: HealthUnknown}
}

// Metrics is the merged performance counter set. Nil means never reported.
type Metrics struct {
	YoloMS      *float64 `json:"yolo_ms"`
	RFIDTotalMS *float64 `json:"rfid_total_ms"`
	WSLatencyMS *float64 `json:"ws_latency_ms"`
}

// State is the full dashboard view state pushed to subscribers.
type State struct {
	Status   backend.LiveStatus `json:"status"`
	Health   Health             `json:"health"`
	Metrics  Metrics            `json:"metrics"`
	Schedule []backend.Jadwal   `json:"schedule"`
	Now      time.Time          `json:"now"`

	// Stale marks a state painted from the snapshot cache because the
	// initial fetch failed; SavedAt is when that snapshot was taken.
	Stale   bool      `json:"stale,omitempty"`
	SavedAt time.Time `json:"saved_at,omitempty"`
}

// ReduceStatus replaces the class-status slice wholesale. The backend always
// sends the complete current state, so nothing from the old value survives.
func ReduceStatus(_ backend.LiveStatus, next backend.LiveStatus) backend.LiveStatus {
	return next
}

// ReduceHealth merges a partial liveness patch. A field absent from the patch
// never erases a previously known value.
func ReduceHealth(old Health, patch backend.HealthPatch) Health {
	out := old
	if patch.Esp32 != nil {
		out.Esp32 = *patch.Esp32
	}
	if patch.Raspi != nil {
		out.Raspi = *patch.Raspi
	}
	return out
}

// ReduceMetrics merges a partial counter patch. The server timestamp is
// envelope metadata, stripped here and never stored as a metric.
func ReduceMetrics(old Metrics, patch backend.MetricsPatch) Metrics {
	out := old
	if patch.YoloMS != nil {
		out.YoloMS = patch.YoloMS
	}
	if patch.RFIDTotalMS != nil {
		out.RFIDTotalMS = patch.RFIDTotalMS
	}
	if patch.WSLatencyMS != nil {
		out.WSLatencyMS = patch.WSLatencyMS
	}
	return out
}
