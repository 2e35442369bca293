package backend

import (
	"errors"
	"fmt"
)

// NetworkError means the request never produced a response. The raw transport
// cause is kept for logs but the user-facing message stays generic.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Tidak bisa menghubungi server. Periksa koneksi."
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx response that is not a 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// UnauthorizedError is a 401. Receiving one clears the stored token as a side
// effect, so the auth gate fails on the next check.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Sesi habis, silakan login ulang."
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

// IsNetwork reports whether err is a transport failure with no response.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
