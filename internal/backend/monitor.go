package backend

import (
	"context"
	"net/http"
)

// MonitorEndpoint serves the dashboard's read-only surface.
type MonitorEndpoint struct {
	t *Transport
}

// Health reads node liveness. Unauthenticated.
func (e *MonitorEndpoint) Health(ctx context.Context) (HealthPatch, error) {
	raw, err := e.t.Request(ctx, http.MethodGet, "/health", Options{})
	if err != nil {
		return HealthPatch{}, err
	}
	return decode[HealthPatch](raw)
}

// TodaysSchedule reads the day's schedule list. Unauthenticated.
func (e *MonitorEndpoint) TodaysSchedule(ctx context.Context) ([]Jadwal, error) {
	raw, err := e.t.Request(ctx, http.MethodGet, "/todays_schedule", Options{})
	if err != nil {
		return nil, err
	}
	return decode[[]Jadwal](raw)
}

// InitialStatus reads the combined health + status + metrics bootstrap snapshot.
func (e *MonitorEndpoint) InitialStatus(ctx context.Context) (InitialStatus, error) {
	raw, err := e.t.Request(ctx, http.MethodGet, "/initial_status", Options{Auth: true})
	if err != nil {
		return InitialStatus{}, err
	}
	return decode[InitialStatus](raw)
}

// StatusKelas reads the current class status.
func (e *MonitorEndpoint) StatusKelas(ctx context.Context) (LiveStatus, error) {
	raw, err := e.t.Request(ctx, http.MethodGet, "/status_kelas", Options{Auth: true})
	if err != nil {
		return LiveStatus{}, err
	}
	return decode[LiveStatus](raw)
}
