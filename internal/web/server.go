package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"kelasboard/internal/admin"
	"kelasboard/internal/backend"
	"kelasboard/internal/livesync"
	"kelasboard/internal/token"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server renders the dashboard and the admin console over one backend client.
type Server struct {
	client  *backend.Client
	tokens  *token.Store
	sync    *livesync.Synchronizer
	console *admin.Controller
	hub     *Hub
	tmpl    *template.Template
}

// NewServer wires the handlers around a shared client and synchronizer.
func NewServer(client *backend.Client, tokens *token.Store, sync *livesync.Synchronizer) *Server {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"badgeClass":    badgeClass,
		"attendanceBad": admin.AttendanceBad,
	}).ParseFS(templateFS, "templates/*.tmpl"))
	return &Server{
		client:  client,
		tokens:  tokens,
		sync:    sync,
		console: admin.NewController(admin.ClientAPI{C: client}),
		hub:     NewHub(),
		tmpl:    tmpl,
	}
}

// Hub exposes the relay so the caller can run it on the synchronizer feed.
func (s *Server) Hub() *Hub { return s.hub }

// Register mounts all routes. loginLimiter guards the credential post only.
func (s *Server) Register(r *gin.Engine, loginLimiter gin.HandlerFunc) {
	r.GET("/", s.handleDashboard)
	r.GET("/login", s.handleLoginForm)
	r.POST("/login", loginLimiter, s.handleLogin)
	r.GET("/logout", s.handleLogout)
	r.GET("/ws", func(c *gin.Context) { s.hub.Serve(c.Writer, c.Request) })

	gated := r.Group("/admin", s.requireAuth())
	gated.GET("", s.handleAdmin)
	gated.POST("/tab", s.handleAdminTab)
	gated.POST("/dosen", s.handleDosenSubmit)
	gated.POST("/dosen/edit", s.handleDosenEdit)
	gated.POST("/dosen/cancel", s.handleDosenCancel)
	gated.POST("/dosen/delete", s.handleDosenDelete)
	gated.POST("/mata_kuliah", s.handleMataKuliahSubmit)
	gated.POST("/mata_kuliah/edit", s.handleMataKuliahEdit)
	gated.POST("/mata_kuliah/cancel", s.handleMataKuliahCancel)
	gated.POST("/mata_kuliah/delete", s.handleMataKuliahDelete)
	gated.POST("/jadwal", s.handleJadwalSubmit)
	gated.POST("/jadwal/edit", s.handleJadwalEdit)
	gated.POST("/jadwal/cancel", s.handleJadwalCancel)
	gated.POST("/jadwal/delete", s.handleJadwalDelete)
	gated.POST("/jadwal/filter", s.handleJadwalFilter)
	gated.POST("/izin", s.handleIzinSubmit)
	gated.POST("/izin/edit", s.handleIzinEdit)
	gated.POST("/izin/cancel", s.handleIzinCancel)
	gated.POST("/izin/delete", s.handleIzinDelete)
	gated.POST("/absensi", s.handleAbsensiSubmit)
	gated.POST("/absensi/edit", s.handleAbsensiEdit)
	gated.POST("/absensi/cancel", s.handleAbsensiCancel)
	gated.POST("/absensi/delete", s.handleAbsensiDelete)
	gated.POST("/absensi/search", s.handleAbsensiSearch)
	gated.POST("/absensi/size", s.handleAbsensiSize)
	gated.POST("/absensi/page", s.handleAbsensiPage)

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
}

// requireAuth is the gate in front of the console: a stored token passes, an
// empty store redirects to the login form. Any 401 from the backend clears
// the store, so the next gated request lands here.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.tokens.Authenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) render(c *gin.Context, status int, name string, data any) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		c.String(http.StatusInternalServerError, "template error: %v", err)
	}
}
