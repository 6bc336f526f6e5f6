// Package respond writes JSON bodies and maps ledger errors onto HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris/debt-ledger/pkg/api"
	"github.com/chris/debt-ledger/pkg/ledger"
)

// RetryAfterSeconds is advertised on concurrency conflicts.
const RetryAfterSeconds = "1"

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Error writes err as an api.Error. Errors that are not ledger errors are logged and reported as internal.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var le *ledger.Error
	if !errors.As(err, &le) {
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, http.StatusInternalServerError, api.Error{Code: "INTERNAL", Message: "internal server error"})
		return
	}

	status := StatusFor(le.Code)
	if le.Retryable() {
		w.Header().Set("Retry-After", RetryAfterSeconds)
	}
	JSON(w, status, api.Error{Code: string(le.Code), Message: le.Message, Retryable: le.Retryable()})
}

// StatusFor maps a ledger error code to its HTTP status.
func StatusFor(code ledger.Code) int {
	switch code {
	case ledger.CodeValidation:
		return http.StatusBadRequest
	case ledger.CodeNotFound:
		return http.StatusNotFound
	case ledger.CodeInvalidState, ledger.CodeConcurrency:
		return http.StatusConflict
	case ledger.CodeOverpayment, ledger.CodeMissingRating:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ParamError reports query and path binding failures from the generated router as validation errors.
func ParamError(w http.ResponseWriter, r *http.Request, err error) {
	Error(w, r, ledger.ValidationError("%v", err))
}

// DecodeBody decodes a JSON request body into dst.
func DecodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ledger.ValidationError("invalid request body: %v", err)
	}
	return nil
}
