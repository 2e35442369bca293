package backend

import (
	"context"
	"net/http"
	"strconv"
)

// DosenEndpoint is lecturer CRUD.
type DosenEndpoint struct {
	t *Transport
}

// List returns a page of lecturers, optionally filtered by q.
func (e *DosenEndpoint) List(ctx context.Context, q string, page, size int) (Page[Dosen], error) {
	raw, err := e.t.Request(ctx, http.MethodGet, "/dosen", Options{Query: pageQuery(q, page, size), Auth: true})
	if err != nil {
		return Page[Dosen]{}, err
	}
	return decode[Page[Dosen]](raw)
}

// Create adds a lecturer.
func (e *DosenEndpoint) Create(ctx context.Context, in DosenInput) error {
	_, err := e.t.Request(ctx, http.MethodPost, "/dosen", Options{Body: in, Auth: true})
	return err
}

// Update modifies a lecturer by id.
func (e *DosenEndpoint) Update(ctx context.Context, id int, in DosenInput) error {
	_, err := e.t.Request(ctx, http.MethodPut, "/dosen/"+strconv.Itoa(id), Options{Body: in, Auth: true})
	return err
}

// Delete removes a lecturer by id.
func (e *DosenEndpoint) Delete(ctx context.Context, id int) error {
	_, err := e.t.Request(ctx, http.MethodDelete, "/dosen/"+strconv.Itoa(id), Options{Auth: true})
	return err
}
