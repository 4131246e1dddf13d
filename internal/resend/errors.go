package resend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
	RawBody    []byte `json:"-"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Name != "" {
		return fmt.Sprintf("resend: %s (%d %s)", msg, e.StatusCode, e.Name)
	}
	return fmt.Sprintf("resend: %s (%d)", msg, e.StatusCode)
}

func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func newAPIError(status int, raw []byte) *APIError {
	e := &APIError{}
	if err := json.Unmarshal(raw, e); err != nil || (e.Message == "" && e.Name == "") {
		e = &APIError{Message: strings.TrimSpace(string(raw))}
	}
	e.StatusCode = status
	e.RawBody = raw
	return e
}
