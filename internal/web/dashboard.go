package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kelasboard/internal/backend"
	"kelasboard/internal/livesync"
	"kelasboard/internal/schedule"
)

// statusIdle is the not-yet-started state; it is the only one that masks the
// live detail fields. Running and finished classes both show their details.
const statusIdle = "Belum Mulai"

type scheduleRow struct {
	Jadwal backend.Jadwal
	Badge  schedule.Badge
}

type dashboardData struct {
	Now         string
	StatusKelas string
	CountLive   string
	NamaMatkul  string
	NamaDosen   string
	WaktuMasuk  string
	WaktuKeluar string
	Health      livesync.Health
	YoloMS      string
	RFIDTotalMS string
	WSLatencyMS string
	Rows        []scheduleRow
	Stale       bool
	SavedAt     string
}

func (s *Server) handleDashboard(c *gin.Context) {
	st := s.sync.State()
	s.render(c, http.StatusOK, "dashboard.tmpl", buildDashboard(st))
}

// buildDashboard flattens the synchronizer state into display strings. Live
// counters show "-" only while no class has started yet; a finished class
// keeps its details (notably the check-out time) on screen.
func buildDashboard(st livesync.State) dashboardData {
	d := dashboardData{
		Now:         st.Now.Format("15:04:05"),
		StatusKelas: st.Status.StatusKelas,
		CountLive:   "-",
		NamaMatkul:  "-",
		NamaDosen:   "-",
		WaktuMasuk:  "-",
		WaktuKeluar: "-",
		Health:      st.Health,
		YoloMS:      millis(st.Metrics.YoloMS),
		RFIDTotalMS: millis(st.Metrics.RFIDTotalMS),
		WSLatencyMS: millis(st.Metrics.WSLatencyMS),
		Stale:       st.Stale,
	}
	if d.StatusKelas == "" {
		d.StatusKelas = statusIdle
	}
	if d.StatusKelas != statusIdle {
		d.CountLive = fmt.Sprintf("%d", st.Status.CountLive)
		d.NamaMatkul = orDash(st.Status.NamaMatkul)
		d.NamaDosen = orDash(st.Status.NamaDosen)
		d.WaktuMasuk = orDash(st.Status.WaktuMasuk)
		d.WaktuKeluar = orDash(st.Status.WaktuKeluar)
	}
	if st.Stale {
		d.SavedAt = st.SavedAt.Format(time.RFC3339)
	}
	for _, j := range st.Schedule {
		d.Rows = append(d.Rows, scheduleRow{Jadwal: j, Badge: schedule.Resolve(j)})
	}
	return d
}

func millis(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f ms", *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func badgeClass(b schedule.Badge) string {
	return b.Category.CSSClass()
}
