package backend

import (
	"context"
	"net/http"
	"strconv"
)

// IzinEndpoint is leave CRUD. Creating or deleting a leave cascades on the
// backend to the automatically managed attendance record.
type IzinEndpoint struct {
	t *Transport
}

// List returns a page of leave records.
func (e *IzinEndpoint) List(ctx context.Context, page, size int) (Page[Izin], error) {
	raw, err := e.t.Request(ctx, http.MethodGet, "/izin", Options{
		Query: map[string]string{"page": strconv.Itoa(page), "size": strconv.Itoa(size)},
		Auth:  true,
	})
	if err != nil {
		return Page[Izin]{}, err
	}
	return decode[Page[Izin]](raw)
}

// Create adds a leave record.
func (e *IzinEndpoint) Create(ctx context.Context, in IzinInput) error {
	_, err := e.t.Request(ctx, http.MethodPost, "/izin", Options{Body: in, Auth: true})
	return err
}

// Update modifies a leave record by id.
func (e *IzinEndpoint) Update(ctx context.Context, id int, in IzinInput) error {
	_, err := e.t.Request(ctx, http.MethodPut, "/izin/"+strconv.Itoa(id), Options{Body: in, Auth: true})
	return err
}

// Delete removes a leave record by id.
func (e *IzinEndpoint) Delete(ctx context.Context, id int) error {
	_, err := e.t.Request(ctx, http.MethodDelete, "/izin/"+strconv.Itoa(id), Options{Auth: true})
	return err
}
