package backend

import (
	"context"
	"net/http"
	"strconv"
)

// MataKuliahEndpoint is course CRUD.
type MataKuliahEndpoint struct {
	t *Transport
}

// List returns a page of courses, optionally filtered by q.
func (e *MataKuliahEndpoint) List(ctx context.Context, q string, page, size int) (Page[MataKuliah], error) {
	raw, err := e.t.Request(ctx, http.MethodGet, "/mata_kuliah", Options{Query: pageQuery(q, page, size), Auth: true})
	if err != nil {
		return Page[MataKuliah]{}, err
	}
	return decode[Page[MataKuliah]](raw)
}

// Create adds a course.
func (e *MataKuliahEndpoint) Create(ctx context.Context, in MataKuliahInput) error {
	_, err := e.t.Request(ctx, http.MethodPost, "/mata_kuliah", Options{Body: in, Auth: true})
	return err
}

// Update modifies a course by id.
func (e *MataKuliahEndpoint) Update(ctx context.Context, id int, in MataKuliahInput) error {
	_, err := e.t.Request(ctx, http.MethodPut, "/mata_kuliah/"+strconv.Itoa(id), Options{Body: in, Auth: true})
	return err
}

// Delete removes a course by id.
func (e *MataKuliahEndpoint) Delete(ctx context.Context, id int) error {
	_, err := e.t.Request(ctx, http.MethodDelete, "/mata_kuliah/"+strconv.Itoa(id), Options{Auth: true})
	return err
}
