package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelasboard/internal/backend"
	"kelasboard/internal/livesync"
	"kelasboard/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRig wires a full server against a stubbed backend.
func testRig(t *testing.T, handler http.Handler) (*gin.Engine, *token.Store) {
	t.Helper()
	api := httptest.NewServer(handler)
	t.Cleanup(api.Close)

	tokens := token.NewStore("")
	client := backend.New(api.URL, tokens)
	sync := livesync.New(livesync.Config{Monitor: client.Monitor})

	r := gin.New()
	NewServer(client, tokens, sync).Register(r, func(c *gin.Context) { c.Next() })
	return r, tokens
}

func emptyPages() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"total":0,"page":1}`))
	})
}

func TestAdminRequiresLogin(t *testing.T) {
	r, _ := testRig(t, emptyPages())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdminRendersWithToken(t *testing.T) {
	r, tokens := testRig(t, emptyPages())
	tokens.Set("some-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Konsol Admin")
}

func TestBackend401BouncesToLogin(t *testing.T) {
	r, tokens := testRig(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	tokens.Set("expired-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	// the transport cleared the slot, so the gate itself now rejects
	assert.False(t, tokens.Authenticated())
}

func TestUnknownPathRedirectsToLogin(t *testing.T) {
	r, _ := testRig(t, emptyPages())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboardIsPublic(t *testing.T) {
	r, _ := testRig(t, emptyPages())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Monitoring Kelas")
	assert.Contains(t, w.Body.String(), "Belum Mulai")
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRejectedCredentials(t *testing.T) {
	r, tokens := testRig(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Username atau password salah"}`))
	}))

	w := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"salah"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Username atau password salah")
	assert.False(t, tokens.Authenticated())
}

func TestLoginNetworkFailureMessage(t *testing.T) {
	api := httptest.NewServer(emptyPages())
	api.Close() // backend unreachable

	tokens := token.NewStore("")
	client := backend.New(api.URL, tokens)
	sync := livesync.New(livesync.Config{Monitor: client.Monitor})
	r := gin.New()
	NewServer(client, tokens, sync).Register(r, func(c *gin.Context) { c.Next() })

	w := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"rahasia"}})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Tidak bisa menghubungi server. Periksa koneksi.")
}

func TestLoginSuccessRedirectsToAdmin(t *testing.T) {
	var paths []string
	r, tokens := testRig(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		paths = append(paths, req.URL.Path)
		if req.URL.Path == "/auth/login" {
			w.Write([]byte(`{"token":"jwt-token"}`))
			return
		}
		w.Write([]byte(`{"data":[],"total":0,"page":1}`))
	}))

	w := postForm(r, "/login", url.Values{"username": {"admin"}, "password": {"rahasia"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Equal(t, "jwt-token", tokens.Get())

	// a fresh session primes every console table
	for _, p := range []string{"/dosen", "/mata_kuliah", "/jadwal", "/izin", "/absensi_dosen"} {
		assert.Contains(t, paths, p)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	r, tokens := testRig(t, emptyPages())
	tokens.Set("some-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.False(t, tokens.Authenticated())
}

func TestDeleteShowsConfirmPage(t *testing.T) {
	r, tokens := testRig(t, emptyPages())
	tokens.Set("some-token")

	w := postForm(r, "/admin/dosen/delete", url.Values{"id": {"3"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Konfirmasi Hapus")
	assert.Contains(t, w.Body.String(), `name="confirmed" value="1"`)
}
