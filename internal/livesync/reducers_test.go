package livesync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kelasboard/internal/backend"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func TestReduceStatusReplacesWholesale(t *testing.T) {
	old := backend.LiveStatus{
		StatusKelas: "SEDANG BERLANGSUNG",
		CountLive:   12,
		NamaMatkul:  "Jaringan Komputer",
		NamaDosen:   "Budi",
		WaktuMasuk:  "08:05",
	}
	next := backend.LiveStatus{StatusKelas: "Belum Mulai"}

	got := ReduceStatus(old, next)

	// nothing from the old value survives, even populated fields
	assert.Equal(t, next, got)
	assert.Equal(t, 0, got.CountLive)
	assert.Equal(t, "", got.NamaMatkul)
}

func TestReduceHealthMergesPartialPatch(t *testing.T) {
	tests := []struct {
		name     string
		old      Health
		patch    backend.HealthPatch
		expected Health
	}{
		{
			name:     "empty patch keeps everything",
			old:      Health{Esp32: "AKTIF", Raspi: "MATI"},
			patch:    backend.HealthPatch{},
			expected: Health{Esp32: "AKTIF", Raspi: "MATI"},
		},
		{
			name:     "esp32 only",
			old:      NewHealth(),
			patch:    backend.HealthPatch{Esp32: str("AKTIF")},
			expected: Health{Esp32: "AKTIF", Raspi: HealthUnknown},
		},
		{
			name:     "disjoint patches union",
			old:      Health{Esp32: "AKTIF", Raspi: HealthUnknown},
			patch:    backend.HealthPatch{Raspi: str("MATI")},
			expected: Health{Esp32: "AKTIF", Raspi: "MATI"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReduceHealth(tt.old, tt.patch))
		})
	}
}

func TestReduceMetricsMergesAndKeepsOldValues(t *testing.T) {
	old := Metrics{YoloMS: f64(42), WSLatencyMS: f64(120)}

	got := ReduceMetrics(old, backend.MetricsPatch{RFIDTotalMS: f64(7)})

	assert.Equal(t, f64(42), got.YoloMS)
	assert.Equal(t, f64(7), got.RFIDTotalMS)
	assert.Equal(t, f64(120), got.WSLatencyMS)
}

func TestReduceMetricsIgnoresServerTimestamp(t *testing.T) {
	ts := int64(1700000000000)
	got := ReduceMetrics(Metrics{}, backend.MetricsPatch{
		YoloMS:            f64(55),
		ServerTimestampMS: &ts,
	})
	// only the three counters exist on the state; the timestamp has nowhere
	// to land and must not disturb them
	assert.Equal(t, Metrics{YoloMS: f64(55)}, got)
}

func TestNewHealthStartsUnknown(t *testing.T) {
	h := NewHealth()
	assert.Equal(t, "TIDAK DIKETAHUI", h.Esp32)
	assert.Equal(t, "TIDAK DIKETAHUI", h.Raspi)
}
