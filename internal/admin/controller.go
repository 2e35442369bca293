package admin

import (
	"context"
	"errors"
	"sync"
	"time"

	"kelasboard/internal/backend"
)

// Console tabs. Jadwal is the landing tab.
const (
	TabDosen      = "dosen"
	TabMataKuliah = "mata_kuliah"
	TabJadwal     = "jadwal"
	TabIzin       = "izin"
	TabAbsensi    = "absensi"
)

// ErrConfirmRequired is returned by deletes until the caller confirms.
var ErrConfirmRequired = errors.New("konfirmasi hapus diperlukan")

// ErrManualCreateDisabled rejects manual attendance creation; records are
// born from tap events and leave submissions only.
var ErrManualCreateDisabled = errors.New("tambah absensi manual dinonaktifkan")

// listSize is the fetch size for the unpaginated console tables.
const listSize = 200

// Controller drives the five admin workflows against the backend. Each tab
// keeps its own list and form state; only the active tab is refreshed on a
// switch. Every mutation reports back through Notices.
type Controller struct {
	api API
	now func() time.Time

	mu      sync.Mutex
	tab     string
	notices []Notice

	dosen     []backend.Dosen
	dosenForm DosenForm
	dosenEdit int

	matkul     []backend.MataKuliah
	matkulForm MataKuliahForm
	matkulEdit int

	jadwal      []backend.Jadwal
	jadwalForm  JadwalForm
	jadwalEdit  int
	filterDosen int

	izin     []backend.Izin
	izinForm IzinForm
	izinEdit int

	absensi       []backend.Absensi
	absensiForm   AbsensiForm
	absensiEdit   int
	absensiSearch string // committed filter
	absensiDraft  string // input box value, applied on submit
	absensiPage   int
	absensiSize   int
	absensiTotal  int
}

// NewController builds a console over the given API.
func NewController(api API) *Controller {
	return &Controller{
		api:         api,
		now:         time.Now,
		tab:         TabJadwal,
		absensiPage: 1,
		absensiSize: 10,
	}
}

// Tab returns the active tab.
func (c *Controller) Tab() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

// SwitchTab activates a tab and refreshes its data. Unknown names land on
// the jadwal tab.
func (c *Controller) SwitchTab(ctx context.Context, tab string) error {
	switch tab {
	case TabDosen, TabMataKuliah, TabJadwal, TabIzin, TabAbsensi:
	default:
		tab = TabJadwal
	}
	c.mu.Lock()
	c.tab = tab
	c.mu.Unlock()

	switch tab {
	case TabDosen:
		return c.loadDosen(ctx)
	case TabMataKuliah:
		return c.loadMataKuliah(ctx)
	case TabIzin:
		return c.loadIzin(ctx)
	case TabAbsensi:
		return c.loadAbsensi(ctx)
	default:
		return c.loadJadwal(ctx)
	}
}

// LoadAll primes every table; used once after login.
func (c *Controller) LoadAll(ctx context.Context) error {
	for _, load := range []func(context.Context) error{
		c.loadDosen, c.loadMataKuliah, c.loadJadwal, c.loadIzin, c.loadAbsensi,
	} {
		if err := load(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) loadDosen(ctx context.Context) error {
	page, err := c.api.ListDosen(ctx, "", 1, listSize)
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.mu.Lock()
	c.dosen = page.Data
	c.mu.Unlock()
	return nil
}

func (c *Controller) loadMataKuliah(ctx context.Context) error {
	page, err := c.api.ListMataKuliah(ctx, "", 1, listSize)
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.mu.Lock()
	c.matkul = page.Data
	c.mu.Unlock()
	return nil
}

func (c *Controller) loadJadwal(ctx context.Context) error {
	c.mu.Lock()
	filter := c.filterDosen
	c.mu.Unlock()
	page, err := c.api.ListJadwal(ctx, "", filter, 1, listSize)
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.mu.Lock()
	c.jadwal = page.Data
	c.mu.Unlock()
	return nil
}

func (c *Controller) loadIzin(ctx context.Context) error {
	page, err := c.api.ListIzin(ctx, 1, listSize)
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.mu.Lock()
	c.izin = page.Data
	c.mu.Unlock()
	return nil
}

func (c *Controller) loadAbsensi(ctx context.Context) error {
	c.mu.Lock()
	q, page, size := c.absensiSearch, c.absensiPage, c.absensiSize
	c.mu.Unlock()
	res, err := c.api.ListAbsensi(ctx, q, "", page, size)
	if err != nil {
		c.notifyError(err.Error())
		return err
	}
	c.mu.Lock()
	c.absensi = res.Data
	c.absensiTotal = res.Total
	if res.Page > 0 {
		c.absensiPage = res.Page
	}
	c.mu.Unlock()
	return nil
}
