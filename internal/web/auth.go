package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kelasboard/internal/backend"
	"kelasboard/internal/token"
)

type loginData struct {
	Error    string
	Username string
}

func (s *Server) handleLoginForm(c *gin.Context) {
	if s.tokens.Authenticated() {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	s.render(c, http.StatusOK, "login.tmpl", loginData{})
}

// handleLogin exchanges the posted credentials for a token. A connectivity
// failure and a rejected credential read differently on the form.
func (s *Server) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		s.render(c, http.StatusBadRequest, "login.tmpl", loginData{
			Error:    "Username dan password wajib diisi.",
			Username: username,
		})
		return
	}

	tok, err := s.client.Auth.Login(c.Request.Context(), username, password)
	if err != nil {
		status := http.StatusBadGateway
		if !backend.IsNetwork(err) {
			status = http.StatusUnauthorized
		}
		s.render(c, status, "login.tmpl", loginData{
			Error:    err.Error(),
			Username: username,
		})
		return
	}
	s.tokens.Set(tok)
	// prime every console table; failures land as notices on the console
	if err := s.console.LoadAll(c.Request.Context()); s.bounceUnauthorized(c, err) {
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (s *Server) handleLogout(c *gin.Context) {
	s.tokens.Clear()
	c.Redirect(http.StatusFound, "/login")
}

// greeting is the header text on the console, from the token's username claim.
func (s *Server) greeting() string {
	name := token.Username(s.tokens.Get())
	if name == "" {
		return "Selamat datang"
	}
	return "Selamat datang, " + name
}
