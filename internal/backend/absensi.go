package backend

import (
	"context"
	"net/http"
	"strconv"
)

// AbsensiEndpoint is attendance update/delete. There is deliberately no
// Create: attendance rows are born from tap events and leave submissions on
// the backend, never from this console.
type AbsensiEndpoint struct {
	t *Transport
}

// List returns a page of attendance records filtered by q and/or date.
func (e *AbsensiEndpoint) List(ctx context.Context, q, tanggal string, page, size int) (Page[Absensi], error) {
	query := pageQuery(q, page, size)
	if tanggal != "" {
		query["tanggal"] = tanggal
	}
	raw, err := e.t.Request(ctx, http.MethodGet, "/absensi_dosen", Options{Query: query, Auth: true})
	if err != nil {
		return Page[Absensi]{}, err
	}
	return decode[Page[Absensi]](raw)
}

// Update modifies an attendance record by id.
func (e *AbsensiEndpoint) Update(ctx context.Context, id int, in AbsensiInput) error {
	_, err := e.t.Request(ctx, http.MethodPut, "/absensi_dosen/"+strconv.Itoa(id), Options{Body: in, Auth: true})
	return err
}

// Delete removes an attendance record by id.
func (e *AbsensiEndpoint) Delete(ctx context.Context, id int) error {
	_, err := e.t.Request(ctx, http.MethodDelete, "/absensi_dosen/"+strconv.Itoa(id), Options{Auth: true})
	return err
}
