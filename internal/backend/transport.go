package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TokenStore is the slot the transport reads bearer tokens from. A 401
// response clears it.
type TokenStore interface {
	Get() string
	Clear()
}

// Options configures a single request.
type Options struct {
	Body  any
	Query map[string]string
	Auth  bool
}

// Transport handles low-level HTTP and authentication against the backend API.
type Transport struct {
	BaseURL    string
	Tokens     TokenStore
	HTTPClient *http.Client
}

// NewTransport creates a transport with base URL and token slot.
func NewTransport(baseURL string, tokens TokenStore) *Transport {
	return &Transport{
		BaseURL: baseURL,
		Tokens:  tokens,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// buildURL appends query params to the base URL + path.
func (t *Transport) buildURL(path string, query map[string]string) string {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return t.BaseURL + path
	}
	q := u.Query()
	for k, v := range query {
		if v != "" {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Request performs one API call. The returned payload is always valid JSON:
// bodies that fail to parse are wrapped as {"raw": "<text>"} so a broken
// response stays inspectable instead of failing the caller.
func (t *Transport) Request(ctx context.Context, method, path string, opts Options) (json.RawMessage, error) {
	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.buildURL(path, opts.Query), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.Auth && t.Tokens != nil {
		if tok := t.Tokens.Get(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	payload := parseBody(raw)

	if resp.StatusCode >= 300 {
		msg := errorMessage(payload)
		if resp.StatusCode == http.StatusUnauthorized {
			if t.Tokens != nil {
				t.Tokens.Clear()
			}
			return nil, &UnauthorizedError{Message: msg}
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	return payload, nil
}

// parseBody normalizes a response body into JSON.
func parseBody(b []byte) json.RawMessage {
	if len(bytes.TrimSpace(b)) == 0 {
		return json.RawMessage(`{}`)
	}
	if json.Valid(b) {
		return json.RawMessage(b)
	}
	wrapped, _ := json.Marshal(map[string]string{"raw": string(b)})
	return wrapped
}

// errorMessage pulls the server-provided message out of an error payload.
// Returns "" when the payload carries none, letting typed errors fall back
// to their defaults.
func errorMessage(payload json.RawMessage) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Raw     string `json:"raw"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	switch {
	case body.Error != "":
		return body.Error
	case body.Message != "":
		return body.Message
	case body.Raw != "":
		return body.Raw
	}
	return ""
}
