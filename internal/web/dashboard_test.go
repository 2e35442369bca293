package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kelasboard/internal/backend"
	"kelasboard/internal/livesync"
	"kelasboard/internal/schedule"
)

func f64(v float64) *float64 { return &v }

func TestBuildDashboardMasksWhileNotStarted(t *testing.T) {
	st := livesync.State{
		Status: backend.LiveStatus{
			StatusKelas: "Belum Mulai",
			CountLive:   3, // stray data must stay hidden while idle
			NamaMatkul:  "Jaringan Komputer",
		},
		Health: livesync.NewHealth(),
		Now:    time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC),
	}

	d := buildDashboard(st)

	assert.Equal(t, "Belum Mulai", d.StatusKelas)
	assert.Equal(t, "-", d.CountLive)
	assert.Equal(t, "-", d.NamaMatkul)
	assert.Equal(t, "-", d.NamaDosen)
	assert.Equal(t, "-", d.YoloMS)
}

func TestBuildDashboardFinishedClassKeepsDetails(t *testing.T) {
	st := livesync.State{
		Status: backend.LiveStatus{
			StatusKelas: "SELESAI",
			CountLive:   0,
			NamaMatkul:  "Jaringan Komputer",
			NamaDosen:   "Budi Santoso",
			WaktuMasuk:  "08:05",
			WaktuKeluar: "09:40",
		},
		Health: livesync.NewHealth(),
		Now:    time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}

	d := buildDashboard(st)

	// only "Belum Mulai" masks; a finished class keeps its check-out time
	assert.Equal(t, "SELESAI", d.StatusKelas)
	assert.Equal(t, "Jaringan Komputer", d.NamaMatkul)
	assert.Equal(t, "Budi Santoso", d.NamaDosen)
	assert.Equal(t, "08:05", d.WaktuMasuk)
	assert.Equal(t, "09:40", d.WaktuKeluar)
	assert.Equal(t, "0", d.CountLive)
}

func TestBuildDashboardEmptyStatusFallsBack(t *testing.T) {
	d := buildDashboard(livesync.State{Health: livesync.NewHealth()})
	assert.Equal(t, "Belum Mulai", d.StatusKelas)
}

func TestBuildDashboardActiveShowsLiveFields(t *testing.T) {
	st := livesync.State{
		Status: backend.LiveStatus{
			StatusKelas: "SEDANG BERLANGSUNG",
			CountLive:   12,
			NamaMatkul:  "Jaringan Komputer",
			NamaDosen:   "Budi Santoso",
			WaktuMasuk:  "08:05",
		},
		Health:  livesync.Health{Esp32: "AKTIF", Raspi: "AKTIF"},
		Metrics: livesync.Metrics{YoloMS: f64(42.7), WSLatencyMS: f64(120)},
		Schedule: []backend.Jadwal{
			{IDJadwal: 1, WaktuMasuk: "08:05"},
			{IDJadwal: 2, StatusIzin: "sakit"},
		},
		Now: time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC),
	}

	d := buildDashboard(st)

	assert.Equal(t, "12", d.CountLive)
	assert.Equal(t, "Jaringan Komputer", d.NamaMatkul)
	assert.Equal(t, "Budi Santoso", d.NamaDosen)
	assert.Equal(t, "08:05", d.WaktuMasuk)
	assert.Equal(t, "-", d.WaktuKeluar)
	assert.Equal(t, "43 ms", d.YoloMS)
	assert.Equal(t, "-", d.RFIDTotalMS)
	assert.Equal(t, "08:15:00", d.Now)

	assert.Len(t, d.Rows, 2)
	assert.Equal(t, schedule.CategoryActive, d.Rows[0].Badge.Category)
	assert.Equal(t, schedule.CategorySick, d.Rows[1].Badge.Category)
}

func TestBuildDashboardStaleBanner(t *testing.T) {
	savedAt := time.Date(2025, 3, 9, 17, 0, 0, 0, time.UTC)
	d := buildDashboard(livesync.State{
		Health:  livesync.NewHealth(),
		Stale:   true,
		SavedAt: savedAt,
	})
	assert.True(t, d.Stale)
	assert.Equal(t, "2025-03-09T17:00:00Z", d.SavedAt)
}
