package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/resend-cli/rusend/internal/resend"
)

type cliError struct {
	exit int
	code string
	msg  string
	hint string
	err  error
}

func (e cliError) Error() string { return e.msg }

func (e cliError) Unwrap() error { return e.err }

func usageError(err error) error {
	return cliError{exit: 2, code: "usage_error", msg: err.Error(), hint: "Use --help for usage", err: err}
}

func validationError(msg, hint string) error {
	return cliError{exit: 2, code: "validation_error", msg: msg, hint: hint}
}

func remoteError(step string, err error) error {
	msg := fmt.Sprintf("%s: %v", step, err)
	if errors.Is(err, ErrNoEmails) {
		return cliError{exit: 5, code: "not_found", msg: msg, err: err}
	}
	var apiErr *resend.APIError
	if !errors.As(err, &apiErr) {
		return cliError{exit: 4, code: "transport_error", msg: msg, err: err}
	}
	switch {
	case apiErr.NotFound():
		return cliError{exit: 5, code: "not_found", msg: msg, err: err}
	case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
		return cliError{exit: 4, code: "auth_failed", msg: msg, hint: "Check your API key with rusend config --key", err: err}
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return cliError{exit: 4, code: "rate_limit", msg: msg, err: err}
	default:
		return cliError{exit: 4, code: "remote_error", msg: msg, err: err}
	}
}
