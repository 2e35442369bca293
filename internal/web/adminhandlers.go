package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kelasboard/internal/admin"
	"kelasboard/internal/backend"
)

type adminData struct {
	Greeting string
	View     admin.View
}

type confirmData struct {
	Entity string
	Label  string
	ID     int
}

func (s *Server) handleAdmin(c *gin.Context) {
	if tab := c.Query("tab"); tab != "" {
		if err := s.console.SwitchTab(c.Request.Context(), tab); s.bounceUnauthorized(c, err) {
			return
		}
	} else if err := s.console.SwitchTab(c.Request.Context(), s.console.Tab()); s.bounceUnauthorized(c, err) {
		return
	}
	s.render(c, http.StatusOK, "admin.tmpl", adminData{Greeting: s.greeting(), View: s.console.View()})
}

func (s *Server) handleAdminTab(c *gin.Context) {
	err := s.console.SwitchTab(c.Request.Context(), c.PostForm("tab"))
	s.finishAction(c, err)
}

// bounceUnauthorized redirects expired sessions back to the login form. The
// transport already cleared the token store on the 401.
func (s *Server) bounceUnauthorized(c *gin.Context, err error) bool {
	if backend.IsUnauthorized(err) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return true
	}
	return false
}

// finishAction is the common tail of every console post: expired sessions go
// to login, everything else back to the console where notices explain the
// outcome.
func (s *Server) finishAction(c *gin.Context, err error) {
	if s.bounceUnauthorized(c, err) {
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func formInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.PostForm(key))
	return n
}

// handleDelete runs one entity delete, rendering the confirm page on the
// first, unconfirmed attempt.
func (s *Server) handleDelete(c *gin.Context, entity, label string, del func(id int, confirmed bool) error) {
	id := formInt(c, "id")
	confirmed := c.PostForm("confirmed") == "1"
	err := del(id, confirmed)
	if errors.Is(err, admin.ErrConfirmRequired) {
		s.render(c, http.StatusOK, "confirm.tmpl", confirmData{Entity: entity, Label: label, ID: id})
		return
	}
	s.finishAction(c, err)
}

// Dosen

func (s *Server) handleDosenSubmit(c *gin.Context) {
	s.console.SetDosenForm(admin.DosenForm{
		NamaDosen: c.PostForm("nama_dosen"),
		UIDKartu:  c.PostForm("uid_kartu"),
	})
	s.finishAction(c, s.console.SubmitDosen(c.Request.Context()))
}

func (s *Server) handleDosenEdit(c *gin.Context) {
	s.console.BeginEditDosen(formInt(c, "id"))
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleDosenCancel(c *gin.Context) {
	s.console.CancelDosen()
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleDosenDelete(c *gin.Context) {
	s.handleDelete(c, "dosen", "dosen", func(id int, confirmed bool) error {
		return s.console.DeleteDosen(c.Request.Context(), id, confirmed)
	})
}

// Mata kuliah

func (s *Server) handleMataKuliahSubmit(c *gin.Context) {
	s.console.SetMataKuliahForm(admin.MataKuliahForm{
		KodeMatkul: c.PostForm("kode_matkul"),
		NamaMatkul: c.PostForm("nama_matkul"),
	})
	s.finishAction(c, s.console.SubmitMataKuliah(c.Request.Context()))
}

func (s *Server) handleMataKuliahEdit(c *gin.Context) {
	s.console.BeginEditMataKuliah(formInt(c, "id"))
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleMataKuliahCancel(c *gin.Context) {
	s.console.CancelMataKuliah()
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleMataKuliahDelete(c *gin.Context) {
	s.handleDelete(c, "mata_kuliah", "mata kuliah", func(id int, confirmed bool) error {
		return s.console.DeleteMataKuliah(c.Request.Context(), id, confirmed)
	})
}

// Jadwal

func (s *Server) handleJadwalSubmit(c *gin.Context) {
	s.console.SetJadwalForm(admin.JadwalForm{
		IDDosen:    c.PostForm("id_dosen"),
		IDMatkul:   c.PostForm("id_matkul"),
		Tanggal:    c.PostForm("tanggal"),
		JamMulai:   c.PostForm("jam_mulai"),
		JamSelesai: c.PostForm("jam_selesai"),
	})
	s.finishAction(c, s.console.SubmitJadwal(c.Request.Context()))
}

func (s *Server) handleJadwalEdit(c *gin.Context) {
	s.console.BeginEditJadwal(formInt(c, "id"))
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleJadwalCancel(c *gin.Context) {
	s.console.CancelJadwal()
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleJadwalDelete(c *gin.Context) {
	s.handleDelete(c, "jadwal", "jadwal", func(id int, confirmed bool) error {
		return s.console.DeleteJadwal(c.Request.Context(), id, confirmed)
	})
}

func (s *Server) handleJadwalFilter(c *gin.Context) {
	s.finishAction(c, s.console.SetDosenFilter(c.Request.Context(), formInt(c, "id_dosen")))
}

// Izin

func (s *Server) handleIzinSubmit(c *gin.Context) {
	s.console.SetIzinForm(admin.IzinForm{
		IDJadwal:   c.PostForm("id_jadwal"),
		Tanggal:    c.PostForm("tanggal"),
		Jenis:      c.PostForm("jenis"),
		Keterangan: c.PostForm("keterangan"),
	})
	s.finishAction(c, s.console.SubmitIzin(c.Request.Context()))
}

func (s *Server) handleIzinEdit(c *gin.Context) {
	s.console.BeginEditIzin(formInt(c, "id"))
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleIzinCancel(c *gin.Context) {
	s.console.CancelIzin()
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleIzinDelete(c *gin.Context) {
	s.handleDelete(c, "izin", "izin", func(id int, confirmed bool) error {
		return s.console.DeleteIzin(c.Request.Context(), id, confirmed)
	})
}

// Absensi

func (s *Server) handleAbsensiSubmit(c *gin.Context) {
	s.console.SetAbsensiForm(admin.AbsensiForm{
		IDJadwal:        c.PostForm("id_jadwal"),
		UIDKartu:        c.PostForm("uid_kartu"),
		WaktuMasuk:      c.PostForm("waktu_masuk"),
		WaktuKeluar:     c.PostForm("waktu_keluar"),
		StatusKehadiran: c.PostForm("status_kehadiran"),
		Keterangan:      c.PostForm("keterangan"),
	})
	err := s.console.SubmitAbsensi(c.Request.Context())
	if errors.Is(err, admin.ErrManualCreateDisabled) {
		// the notice already explains it; back to the console
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	s.finishAction(c, err)
}

func (s *Server) handleAbsensiEdit(c *gin.Context) {
	s.console.BeginEditAbsensi(formInt(c, "id"))
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleAbsensiCancel(c *gin.Context) {
	s.console.CancelAbsensi()
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleAbsensiDelete(c *gin.Context) {
	s.handleDelete(c, "absensi", "absensi", func(id int, confirmed bool) error {
		return s.console.DeleteAbsensi(c.Request.Context(), id, confirmed)
	})
}

func (s *Server) handleAbsensiSearch(c *gin.Context) {
	s.console.SetAbsensiSearch(c.PostForm("q"))
	s.finishAction(c, s.console.SubmitAbsensiSearch(c.Request.Context()))
}

func (s *Server) handleAbsensiSize(c *gin.Context) {
	s.finishAction(c, s.console.SetAbsensiPageSize(c.Request.Context(), formInt(c, "size")))
}

func (s *Server) handleAbsensiPage(c *gin.Context) {
	s.finishAction(c, s.console.GoToAbsensiPage(c.Request.Context(), formInt(c, "page")))
}
