package admin

import "kelasboard/internal/backend"

// View is an immutable snapshot of console state handed to templates.
type View struct {
	Tab     string
	Notices []Notice

	Dosen     []backend.Dosen
	DosenForm DosenForm
	DosenEdit int

	MataKuliah     []backend.MataKuliah
	MataKuliahForm MataKuliahForm
	MataKuliahEdit int

	Jadwal      []backend.Jadwal
	JadwalForm  JadwalForm
	JadwalEdit  int
	FilterDosen int

	Izin     []backend.Izin
	IzinForm IzinForm
	IzinEdit int

	Absensi       []backend.Absensi
	AbsensiForm   AbsensiForm
	AbsensiEdit   int
	AbsensiSearch string
	AbsensiPage   int
	AbsensiSize   int
	AbsensiTotal  int
	AbsensiPages  []string
}

// View copies the current state.
func (c *Controller) View() View {
	notices := c.Notices()
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Tab:     c.tab,
		Notices: notices,

		Dosen:     append([]backend.Dosen(nil), c.dosen...),
		DosenForm: c.dosenForm,
		DosenEdit: c.dosenEdit,

		MataKuliah:     append([]backend.MataKuliah(nil), c.matkul...),
		MataKuliahForm: c.matkulForm,
		MataKuliahEdit: c.matkulEdit,

		Jadwal:      append([]backend.Jadwal(nil), c.jadwal...),
		JadwalForm:  c.jadwalForm,
		JadwalEdit:  c.jadwalEdit,
		FilterDosen: c.filterDosen,

		Izin:     append([]backend.Izin(nil), c.izin...),
		IzinForm: c.izinForm,
		IzinEdit: c.izinEdit,

		Absensi:       append([]backend.Absensi(nil), c.absensi...),
		AbsensiForm:   c.absensiForm,
		AbsensiEdit:   c.absensiEdit,
		AbsensiSearch: c.absensiSearch,
		AbsensiPage:   c.absensiPage,
		AbsensiSize:   c.absensiSize,
		AbsensiTotal:  c.absensiTotal,
		AbsensiPages:  PaginationWindow(c.absensiPage, totalPages(c.absensiTotal, c.absensiSize)),
	}
}
