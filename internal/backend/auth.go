package backend

import (
	"context"
	"net/http"
)

// AuthEndpoint handles login. Token issuance is entirely backend-owned; this
// side only forwards credentials and keeps the returned token.
type AuthEndpoint struct {
	t *Transport
}

// Login exchanges credentials for a bearer token.
func (e *AuthEndpoint) Login(ctx context.Context, username, password string) (string, error) {
	raw, err := e.t.Request(ctx, http.MethodPost, "/auth/login", Options{
		Body: map[string]string{"username": username, "password": password},
	})
	if err != nil {
		return "", err
	}
	out, err := decode[struct {
		Token string `json:"token"`
	}](raw)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &APIError{Status: http.StatusOK, Message: "Login gagal: token tidak diterima."}
	}
	return out.Token, nil
}
