package admin

import (
	"context"
	"strconv"
	"strings"

	"kelasboard/internal/backend"
)

// SetAbsensiForm replaces the attendance form with posted values.
func (c *Controller) SetAbsensiForm(f AbsensiForm) {
	c.mu.Lock()
	c.absensiForm = f
	c.mu.Unlock()
}

// BeginEditAbsensi prefills the form from a listed row. Timestamps are cut to
// minute precision so they round-trip through datetime-local inputs.
func (c *Controller) BeginEditAbsensi(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.absensi {
		if a.IDAbsensi == id {
			c.absensiEdit = id
			c.absensiForm = AbsensiForm{
				IDJadwal:        strconv.Itoa(a.IDJadwal),
				UIDKartu:        a.UIDKartu,
				WaktuMasuk:      trimToMinute(a.WaktuMasuk),
				WaktuKeluar:     trimToMinute(a.WaktuKeluar),
				StatusKehadiran: a.StatusKehadiran,
				Keterangan:      a.Keterangan,
			}
			return
		}
	}
}

// CancelAbsensi drops the edit state and clears the form.
func (c *Controller) CancelAbsensi() {
	c.mu.Lock()
	c.absensiEdit = 0
	c.absensiForm = AbsensiForm{}
	c.mu.Unlock()
}

// SubmitAbsensi updates an existing record. Without an edit target it
// returns ErrManualCreateDisabled: attendance rows come from tap events and
// leave submissions, never from this form.
func (c *Controller) SubmitAbsensi(ctx context.Context) error {
	c.mu.Lock()
	form, editID := c.absensiForm, c.absensiEdit
	c.mu.Unlock()

	if editID == 0 {
		c.notifyError("Fungsi tambah absensi manual telah dinonaktifkan.")
		return ErrManualCreateDisabled
	}
	if form.IDJadwal == "" || form.UIDKartu == "" || form.WaktuMasuk == "" || form.StatusKehadiran == "" {
		c.notifyError("ID jadwal, UID kartu, waktu masuk, dan status wajib diisi.")
		return nil
	}
	idJadwal, err := strconv.Atoi(form.IDJadwal)
	if err != nil {
		c.notifyError("ID jadwal harus berupa angka.")
		return nil
	}
	in := backend.AbsensiInput{
		IDJadwal:        idJadwal,
		UIDKartu:        form.UIDKartu,
		WaktuMasuk:      withSeconds(form.WaktuMasuk),
		WaktuKeluar:     withSeconds(form.WaktuKeluar),
		StatusKehadiran: form.StatusKehadiran,
		Keterangan:      form.Keterangan,
	}
	if err := c.api.UpdateAbsensi(ctx, editID, in); err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.notifySuccess("Absensi berhasil diperbarui")
	c.CancelAbsensi()
	return c.loadAbsensi(ctx)
}

// DeleteAbsensi removes an attendance record after confirmation.
func (c *Controller) DeleteAbsensi(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	if err := c.api.DeleteAbsensi(ctx, id); err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.notifySuccess("Absensi berhasil dihapus")
	return c.loadAbsensi(ctx)
}

// SetAbsensiSearch stores the draft search text; nothing is fetched until
// SubmitAbsensiSearch commits it.
func (c *Controller) SetAbsensiSearch(q string) {
	c.mu.Lock()
	c.absensiDraft = q
	c.mu.Unlock()
}

// SubmitAbsensiSearch commits the draft filter and jumps back to page one.
func (c *Controller) SubmitAbsensiSearch(ctx context.Context) error {
	c.mu.Lock()
	c.absensiSearch = c.absensiDraft
	c.absensiPage = 1
	c.mu.Unlock()
	return c.loadAbsensi(ctx)
}

// SetAbsensiPageSize changes the page size and resets to page one.
func (c *Controller) SetAbsensiPageSize(ctx context.Context, size int) error {
	if size <= 0 {
		size = 10
	}
	c.mu.Lock()
	c.absensiSize = size
	c.absensiPage = 1
	c.mu.Unlock()
	return c.loadAbsensi(ctx)
}

// GoToAbsensiPage moves within the current filter; search text is preserved.
func (c *Controller) GoToAbsensiPage(ctx context.Context, page int) error {
	c.mu.Lock()
	last := totalPages(c.absensiTotal, c.absensiSize)
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}
	c.absensiPage = page
	c.mu.Unlock()
	return c.loadAbsensi(ctx)
}

func totalPages(total, size int) int {
	if size <= 0 {
		return 1
	}
	n := (total + size - 1) / size
	if n < 1 {
		n = 1
	}
	return n
}

func trimToMinute(ts string) string {
	if len(ts) > 16 {
		return ts[:16]
	}
	return ts
}

// withSeconds pads a datetime-local value ("2006-01-02T15:04") to the
// second precision the backend stores.
func withSeconds(ts string) string {
	if len(ts) == 16 {
		return ts + ":00"
	}
	return ts
}

// attendance statuses that render as a warning badge
var badStatusMarks = []string{"tidak", "sakit", "izin", "libur", "dibatalkan"}

// AttendanceBad reports whether a status string describes an absence rather
// than a normal presence record.
func AttendanceBad(status string) bool {
	s := strings.ToLower(status)
	for _, mark := range badStatusMarks {
		if strings.Contains(s, mark) {
			return true
		}
	}
	return false
}

// PaginationWindow renders page navigation as numbered tokens with "..."
// gaps: first and last pages always show, plus a window around the current
// page.
func PaginationWindow(current, last int) []string {
	if last <= 1 {
		return []string{"1"}
	}
	var out []string
	prev := 0
	for p := 1; p <= last; p++ {
		if p != 1 && p != last && (p < current-1 || p > current+1) {
			continue
		}
		if prev != 0 && p-prev > 1 {
			out = append(out, "...")
		}
		out = append(out, strconv.Itoa(p))
		prev = p
	}
	return out
}
