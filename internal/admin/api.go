package admin

import (
	"context"

	"kelasboard/internal/backend"
)

// API is the slice of the backend the console drives. Attendance has no
// create on purpose: records are born from tap events and leave submissions.
type API interface {
	ListDosen(ctx context.Context, q string, page, size int) (backend.Page[backend.Dosen], error)
	CreateDosen(ctx context.Context, in backend.DosenInput) error
	UpdateDosen(ctx context.Context, id int, in backend.DosenInput) error
	DeleteDosen(ctx context.Context, id int) error

	ListMataKuliah(ctx context.Context, q string, page, size int) (backend.Page[backend.MataKuliah], error)
	CreateMataKuliah(ctx context.Context, in backend.MataKuliahInput) error
	UpdateMataKuliah(ctx context.Context, id int, in backend.MataKuliahInput) error
	DeleteMataKuliah(ctx context.Context, id int) error

	ListJadwal(ctx context.Context, q string, dosenID, page, size int) (backend.Page[backend.Jadwal], error)
	CreateJadwal(ctx context.Context, in backend.JadwalInput) error
	UpdateJadwal(ctx context.Context, id int, in backend.JadwalInput) error
	DeleteJadwal(ctx context.Context, id int) error

	ListIzin(ctx context.Context, page, size int) (backend.Page[backend.Izin], error)
	CreateIzin(ctx context.Context, in backend.IzinInput) error
	UpdateIzin(ctx context.Context, id int, in backend.IzinInput) error
	DeleteIzin(ctx context.Context, id int) error

	ListAbsensi(ctx context.Context, q, tanggal string, page, size int) (backend.Page[backend.Absensi], error)
	UpdateAbsensi(ctx context.Context, id int, in backend.AbsensiInput) error
	DeleteAbsensi(ctx context.Context, id int) error
}

// ClientAPI adapts the backend client to the API interface.
type ClientAPI struct {
	C *backend.Client
}

func (a ClientAPI) ListDosen(ctx context.Context, q string, page, size int) (backend.Page[backend.Dosen], error) {
	return a.C.Dosen.List(ctx, q, page, size)
}
func (a ClientAPI) CreateDosen(ctx context.Context, in backend.DosenInput) error {
	return a.C.Dosen.Create(ctx, in)
}
func (a ClientAPI) UpdateDosen(ctx context.Context, id int, in backend.DosenInput) error {
	return a.C.Dosen.Update(ctx, id, in)
}
func (a ClientAPI) DeleteDosen(ctx context.Context, id int) error {
	return a.C.Dosen.Delete(ctx, id)
}

func (a ClientAPI) ListMataKuliah(ctx context.Context, q string, page, size int) (backend.Page[backend.MataKuliah], error) {
	return a.C.MataKuliah.List(ctx, q, page, size)
}
func (a ClientAPI) CreateMataKuliah(ctx context.Context, in backend.MataKuliahInput) error {
	return a.C.MataKuliah.Create(ctx, in)
}
func (a ClientAPI) UpdateMataKuliah(ctx context.Context, id int, in backend.MataKuliahInput) error {
	return a.C.MataKuliah.Update(ctx, id, in)
}
func (a ClientAPI) DeleteMataKuliah(ctx context.Context, id int) error {
	return a.C.MataKuliah.Delete(ctx, id)
}

func (a ClientAPI) ListJadwal(ctx context.Context, q string, dosenID, page, size int) (backend.Page[backend.Jadwal], error) {
	return a.C.Jadwal.List(ctx, q, dosenID, page, size)
}
func (a ClientAPI) CreateJadwal(ctx context.Context, in backend.JadwalInput) error {
	return a.C.Jadwal.Create(ctx, in)
}
func (a ClientAPI) UpdateJadwal(ctx context.Context, id int, in backend.JadwalInput) error {
	return a.C.Jadwal.Update(ctx, id, in)
}
func (a ClientAPI) DeleteJadwal(ctx context.Context, id int) error {
	return a.C.Jadwal.Delete(ctx, id)
}

func (a ClientAPI) ListIzin(ctx context.Context, page, size int) (backend.Page[backend.Izin], error) {
	return a.C.Izin.List(ctx, page, size)
}
func (a ClientAPI) CreateIzin(ctx context.Context, in backend.IzinInput) error {
	return a.C.Izin.Create(ctx, in)
}
func (a ClientAPI) UpdateIzin(ctx context.Context, id int, in backend.IzinInput) error {
	return a.C.Izin.Update(ctx, id, in)
}
func (a ClientAPI) DeleteIzin(ctx context.Context, id int) error {
	return a.C.Izin.Delete(ctx, id)
}

func (a ClientAPI) ListAbsensi(ctx context.Context, q, tanggal string, page, size int) (backend.Page[backend.Absensi], error) {
	return a.C.Absensi.List(ctx, q, tanggal, page, size)
}
func (a ClientAPI) UpdateAbsensi(ctx context.Context, id int, in backend.AbsensiInput) error {
	return a.C.Absensi.Update(ctx, id, in)
}
func (a ClientAPI) DeleteAbsensi(ctx context.Context, id int) error {
	return a.C.Absensi.Delete(ctx, id)
}
