package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Get() string { return f.token }
func (f *fakeTokens) Clear()      { f.cleared = true; f.token = "" }

func TestRequestAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tokens := &fakeTokens{token: "abc123"}
	tr := NewTransport(srv.URL, tokens)

	_, err := tr.Request(context.Background(), http.MethodGet, "/x", Options{Auth: true})
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)

	// unauthenticated requests carry no header even with a token present
	_, err = tr.Request(context.Background(), http.MethodGet, "/x", Options{})
	require.NoError(t, err)
	assert.Equal(t, "", gotAuth)
}

func TestRequestQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, &fakeTokens{})
	_, err := tr.Request(context.Background(), http.MethodGet, "/list", Options{
		Query: map[string]string{"page": "2", "q": "budi", "tanggal": ""},
	})
	require.NoError(t, err)
	// empty values are dropped, the rest is encoded in sorted order
	assert.Equal(t, "page=2&q=budi", gotQuery)
}

func TestRequestWrapsNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>proxy error</html>"))
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, &fakeTokens{})
	raw, err := tr.Request(context.Background(), http.MethodGet, "/x", Options{})
	require.NoError(t, err)

	var body struct {
		Raw string `json:"raw"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "<html>proxy error</html>", body.Raw)
}

func TestRequestEmptyBodyBecomesEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, &fakeTokens{})
	raw, err := tr.Request(context.Background(), http.MethodDelete, "/x", Options{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestRequestUnauthorizedClearsTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	tokens := &fakeTokens{token: "stale"}
	tr := NewTransport(srv.URL, tokens)

	_, err := tr.Request(context.Background(), http.MethodGet, "/x", Options{Auth: true})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, tokens.cleared)
	assert.Equal(t, "token expired", err.Error())
}

func TestRequestUnauthorizedDefaultMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := NewTransport(srv.URL, &fakeTokens{token: "stale"})
	_, err := tr.Request(context.Background(), http.MethodGet, "/x", Options{Auth: true})
	require.Error(t, err)
	assert.Equal(t, "Sesi habis, silakan login ulang.", err.Error())
}

func TestRequestAPIErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"error field", http.StatusBadRequest, `{"error":"id tidak valid"}`, "id tidak valid"},
		{"message field", http.StatusConflict, `{"message":"jadwal bentrok"}`, "jadwal bentrok"},
		{"plain text body", http.StatusBadGateway, "Bad Gateway", "Bad Gateway"},
		{"empty body falls back to status", http.StatusInternalServerError, "", "HTTP 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			tr := NewTransport(srv.URL, &fakeTokens{})
			_, err := tr.Request(context.Background(), http.MethodGet, "/x", Options{})
			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestRequestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	tr := NewTransport(srv.URL, &fakeTokens{})
	_, err := tr.Request(context.Background(), http.MethodGet, "/x", Options{})
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.Equal(t, "Tidak bisa menghubungi server. Periksa koneksi.", err.Error())
}
