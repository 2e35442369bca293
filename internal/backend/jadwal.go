package backend

import (
	"context"
	"net/http"
	"strconv"
)

// JadwalEndpoint is schedule CRUD. The backend rejects overlapping entries;
// its conflict message is surfaced verbatim.
type JadwalEndpoint struct {
	t *Transport
}

// List returns a page of schedule entries. dosenID 0 means no lecturer filter.
func (e *JadwalEndpoint) List(ctx context.Context, q string, dosenID, page, size int) (Page[Jadwal], error) {
	query := pageQuery(q, page, size)
	if dosenID > 0 {
		query["id_dosen"] = strconv.Itoa(dosenID)
	}
	raw, err := e.t.Request(ctx, http.MethodGet, "/jadwal", Options{Query: query, Auth: true})
	if err != nil {
		return Page[Jadwal]{}, err
	}
	return decode[Page[Jadwal]](raw)
}

// Create adds a schedule entry.
func (e *JadwalEndpoint) Create(ctx context.Context, in JadwalInput) error {
	_, err := e.t.Request(ctx, http.MethodPost, "/jadwal", Options{Body: in, Auth: true})
	return err
}

// Update modifies a schedule entry by id.
func (e *JadwalEndpoint) Update(ctx context.Context, id int, in JadwalInput) error {
	_, err := e.t.Request(ctx, http.MethodPut, "/jadwal/"+strconv.Itoa(id), Options{Body: in, Auth: true})
	return err
}

// Delete removes a schedule entry by id.
func (e *JadwalEndpoint) Delete(ctx context.Context, id int) error {
	_, err := e.t.Request(ctx, http.MethodDelete, "/jadwal/"+strconv.Itoa(id), Options{Auth: true})
	return err
}
