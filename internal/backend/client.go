package backend

import (
	"encoding/json"
	"strconv"
)

// Client bundles the per-entity endpoints over one shared transport.
type Client struct {
	Transport  *Transport
	Auth       *AuthEndpoint
	Monitor    *MonitorEndpoint
	Dosen      *DosenEndpoint
	MataKuliah *MataKuliahEndpoint
	Jadwal     *JadwalEndpoint
	Izin       *IzinEndpoint
	Absensi    *AbsensiEndpoint
}

// New initializes the API client against the given base URL.
func New(baseURL string, tokens TokenStore) *Client {
	t := NewTransport(baseURL, tokens)
	return &Client{
		Transport:  t,
		Auth:       &AuthEndpoint{t: t},
		Monitor:    &MonitorEndpoint{t: t},
		Dosen:      &DosenEndpoint{t: t},
		MataKuliah: &MataKuliahEndpoint{t: t},
		Jadwal:     &JadwalEndpoint{t: t},
		Izin:       &IzinEndpoint{t: t},
		Absensi:    &AbsensiEndpoint{t: t},
	}
}

func decode[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	err := json.Unmarshal(raw, &out)
	return out, err
}

func pageQuery(q string, page, size int) map[string]string {
	return map[string]string{
		"q":    q,
		"page": strconv.Itoa(page),
		"size": strconv.Itoa(size),
	}
}
