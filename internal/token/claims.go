package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Username extracts a display name from the token's claims without verifying
// the signature. The value is used for the admin greeting only, never for
// authorization, so a forged token gains nothing. Returns "" on any malformed
// input.
func Username(tok string) string {
	if tok == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return ""
	}
	for _, key := range []string{"username", "sub", "user"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
