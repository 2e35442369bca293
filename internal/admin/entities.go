package admin

import (
	"context"
	"strconv"

	"kelasboard/internal/backend"
)

// Dosen

// SetDosenForm replaces the lecturer form with posted values.
func (c *Controller) SetDosenForm(f DosenForm) {
	c.mu.Lock()
	c.dosenForm = f
	c.mu.Unlock()
}

// BeginEditDosen prefills the form from a listed row. An unknown id is a noop.
func (c *Controller) BeginEditDosen(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.dosen {
		if d.IDDosen == id {
			c.dosenEdit = id
			c.dosenForm = DosenForm{NamaDosen: d.NamaDosen, UIDKartu: d.UIDKartu}
			return
		}
	}
}

// CancelDosen drops the edit state and clears the form.
func (c *Controller) CancelDosen() {
	c.mu.Lock()
	c.dosenEdit = 0
	c.dosenForm = DosenForm{}
	c.mu.Unlock()
}

// SubmitDosen creates or updates depending on edit state. A save touches the
// joined schedule rows, so jadwal reloads too.
func (c *Controller) SubmitDosen(ctx context.Context) error {
	c.mu.Lock()
	form, editID := c.dosenForm, c.dosenEdit
	c.mu.Unlock()

	if form.NamaDosen == "" || form.UIDKartu == "" {
		c.notifyError("Nama dosen dan UID kartu wajib diisi.")
		return nil
	}
	in := backend.DosenInput{NamaDosen: form.NamaDosen, UIDKartu: form.UIDKartu}

	var err error
	if editID != 0 {
		err = c.api.UpdateDosen(ctx, editID, in)
	} else {
		err = c.api.CreateDosen(ctx, in)
	}
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	if editID != 0 {
		c.notifySuccess("Dosen berhasil diperbarui")
	} else {
		c.notifySuccess("Dosen berhasil ditambahkan")
	}
	c.CancelDosen()
	if err := c.loadDosen(ctx); err != nil {
		return err
	}
	return c.loadJadwal(ctx)
}

// DeleteDosen removes a lecturer after confirmation.
func (c *Controller) DeleteDosen(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	if err := c.api.DeleteDosen(ctx, id); err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.notifySuccess("Dosen berhasil dihapus")
	return c.loadDosen(ctx)
}

// Mata kuliah

func (c *Controller) SetMataKuliahForm(f MataKuliahForm) {
	c.mu.Lock()
	c.matkulForm = f
	c.mu.Unlock()
}

func (c *Controller) BeginEditMataKuliah(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.matkul {
		if m.IDMatkul == id {
			c.matkulEdit = id
			c.matkulForm = MataKuliahForm{KodeMatkul: m.KodeMatkul, NamaMatkul: m.NamaMatkul}
			return
		}
	}
}

func (c *Controller) CancelMataKuliah() {
	c.mu.Lock()
	c.matkulEdit = 0
	c.matkulForm = MataKuliahForm{}
	c.mu.Unlock()
}

func (c *Controller) SubmitMataKuliah(ctx context.Context) error {
	c.mu.Lock()
	form, editID := c.matkulForm, c.matkulEdit
	c.mu.Unlock()

	if form.KodeMatkul == "" || form.NamaMatkul == "" {
		c.notifyError("Kode dan nama mata kuliah wajib diisi.")
		return nil
	}
	in := backend.MataKuliahInput{KodeMatkul: form.KodeMatkul, NamaMatkul: form.NamaMatkul}

	var err error
	if editID != 0 {
		err = c.api.UpdateMataKuliah(ctx, editID, in)
	} else {
		err = c.api.CreateMataKuliah(ctx, in)
	}
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	if editID != 0 {
		c.notifySuccess("Mata kuliah berhasil diperbarui")
	} else {
		c.notifySuccess("Mata kuliah berhasil ditambahkan")
	}
	c.CancelMataKuliah()
	if err := c.loadMataKuliah(ctx); err != nil {
		return err
	}
	return c.loadJadwal(ctx)
}

func (c *Controller) DeleteMataKuliah(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	if err := c.api.DeleteMataKuliah(ctx, id); err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.notifySuccess("Mata kuliah berhasil dihapus")
	return c.loadMataKuliah(ctx)
}

// Jadwal

func (c *Controller) SetJadwalForm(f JadwalForm) {
	c.mu.Lock()
	c.jadwalForm = f
	c.mu.Unlock()
}

func (c *Controller) BeginEditJadwal(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, j := range c.jadwal {
		if j.IDJadwal == id {
			c.jadwalEdit = id
			c.jadwalForm = JadwalForm{
				IDDosen:    strconv.Itoa(j.IDDosen),
				IDMatkul:   strconv.Itoa(j.IDMatkul),
				Tanggal:    j.Tanggal,
				JamMulai:   j.JamMulai,
				JamSelesai: j.JamSelesai,
			}
			return
		}
	}
}

func (c *Controller) CancelJadwal() {
	c.mu.Lock()
	c.jadwalEdit = 0
	c.jadwalForm = JadwalForm{}
	c.mu.Unlock()
}

// SetDosenFilter narrows the jadwal table to one lecturer (0 clears) and
// refetches it.
func (c *Controller) SetDosenFilter(ctx context.Context, dosenID int) error {
	c.mu.Lock()
	c.filterDosen = dosenID
	c.mu.Unlock()
	return c.loadJadwal(ctx)
}

func (c *Controller) SubmitJadwal(ctx context.Context) error {
	c.mu.Lock()
	form, editID := c.jadwalForm, c.jadwalEdit
	c.mu.Unlock()

	if form.IDDosen == "" || form.IDMatkul == "" || form.Tanggal == "" ||
		form.JamMulai == "" || form.JamSelesai == "" {
		c.notifyError("Semua field jadwal wajib diisi.")
		return nil
	}
	idDosen, err1 := strconv.Atoi(form.IDDosen)
	idMatkul, err2 := strconv.Atoi(form.IDMatkul)
	if err1 != nil || err2 != nil {
		c.notifyError("ID dosen dan ID mata kuliah harus berupa angka.")
		return nil
	}
	in := backend.JadwalInput{
		IDDosen:    idDosen,
		IDMatkul:   idMatkul,
		Tanggal:    form.Tanggal,
		JamMulai:   form.JamMulai,
		JamSelesai: form.JamSelesai,
	}

	var err error
	if editID != 0 {
		err = c.api.UpdateJadwal(ctx, editID, in)
	} else {
		err = c.api.CreateJadwal(ctx, in)
	}
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	if editID != 0 {
		c.notifySuccess("Jadwal berhasil diperbarui")
	} else {
		c.notifySuccess("Jadwal berhasil ditambahkan")
	}
	c.CancelJadwal()
	return c.loadJadwal(ctx)
}

func (c *Controller) DeleteJadwal(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	if err := c.api.DeleteJadwal(ctx, id); err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.notifySuccess("Jadwal berhasil dihapus")
	return c.loadJadwal(ctx)
}

// Izin

func (c *Controller) SetIzinForm(f IzinForm) {
	c.mu.Lock()
	c.izinForm = f
	c.mu.Unlock()
}

func (c *Controller) BeginEditIzin(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, z := range c.izin {
		if z.IDIzin == id {
			c.izinEdit = id
			c.izinForm = IzinForm{
				IDJadwal:   strconv.Itoa(z.IDJadwal),
				Tanggal:    z.Tanggal,
				Jenis:      z.Jenis,
				Keterangan: z.Keterangan,
			}
			return
		}
	}
}

func (c *Controller) CancelIzin() {
	c.mu.Lock()
	c.izinEdit = 0
	c.izinForm = IzinForm{}
	c.mu.Unlock()
}

// SubmitIzin saves a leave record. Leave overrides ripple into the joined
// schedule rows and the attendance table, so both reload alongside izin.
func (c *Controller) SubmitIzin(ctx context.Context) error {
	c.mu.Lock()
	form, editID := c.izinForm, c.izinEdit
	c.mu.Unlock()

	if form.IDJadwal == "" || form.Tanggal == "" || form.Jenis == "" {
		c.notifyError("ID jadwal, tanggal, dan jenis izin wajib diisi.")
		return nil
	}
	idJadwal, err := strconv.Atoi(form.IDJadwal)
	if err != nil || !c.jadwalExists(idJadwal) {
		c.notifyError("ID Jadwal tidak valid atau tidak ditemukan.")
		return nil
	}
	in := backend.IzinInput{
		IDJadwal:   idJadwal,
		Tanggal:    form.Tanggal,
		Jenis:      form.Jenis,
		Keterangan: form.Keterangan,
	}

	if editID != 0 {
		err = c.api.UpdateIzin(ctx, editID, in)
	} else {
		err = c.api.CreateIzin(ctx, in)
	}
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	if editID != 0 {
		c.notifySuccess("Izin berhasil diperbarui")
	} else {
		c.notifySuccess("Izin berhasil ditambahkan")
	}
	c.CancelIzin()
	return c.reloadAfterIzin(ctx)
}

// DeleteIzin removes a leave record; the cascade matches SubmitIzin since a
// removed override also reshapes schedule and attendance rows.
func (c *Controller) DeleteIzin(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	if err := c.api.DeleteIzin(ctx, id); err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.notifySuccess("Izin berhasil dihapus")
	return c.reloadAfterIzin(ctx)
}

func (c *Controller) reloadAfterIzin(ctx context.Context) error {
	if err := c.loadIzin(ctx); err != nil {
		return err
	}
	if err := c.loadJadwal(ctx); err != nil {
		return err
	}
	return c.loadAbsensi(ctx)
}

func (c *Controller) jadwalExists(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, j := range c.jadwal {
		if j.IDJadwal == id {
			return true
		}
	}
	return false
}
