package http

import (
	"net/http"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/pkg/httpx"
)

// Envelope is the uniform response body. Every endpoint returns one: the
// domain outcome travels in StatusCode while the HTTP status stays 200 for
// domain outcomes and is reserved for transport-level failures (401, 403,
// 429). Data is always present, defaulting to an empty object. ErrorDetails
// carries field violations on validation outcomes and, when exposure is
// enabled, the cause of server errors.
type Envelope struct {
	StatusCode   int    `json:"statusCode"`
	Message      string `json:"message"`
	Data         any    `json:"data"`
	ErrorDetails any    `json:"errorDetails,omitempty"`
}

// showServerErrors toggles whether ErrorDetails is populated on server
// error envelopes. Off outside development so internals never leak.
var showServerErrors bool

// SetShowServerErrors configures error detail exposure. Call once at
// startup, before serving.
func SetShowServerErrors(v bool) { showServerErrors = v }

func respond(w http.ResponseWriter, httpStatus int, status domain.Status, data any) {
	if data == nil {
		data = struct{}{}
	}
	httpx.WriteJSON(w, httpStatus, Envelope{
		StatusCode: status.Code,
		Message:    status.Message,
		Data:       data,
	})
}

// respondOK writes a successful domain outcome.
func respondOK(w http.ResponseWriter, data any) {
	respond(w, http.StatusOK, domain.StatusOK, data)
}

// respondStatus writes a non-success domain outcome on transport 200.
func respondStatus(w http.ResponseWriter, status domain.Status) {
	respond(w, http.StatusOK, status, nil)
}

// respondValidation writes the validation outcome with the collected field
// violations in errorDetails.
func respondValidation(w http.ResponseWriter, violations []domain.FieldViolation) {
	httpx.WriteJSON(w, http.StatusOK, Envelope{
		StatusCode:   domain.StatusValidationError.Code,
		Message:      domain.StatusValidationError.Message,
		Data:         struct{}{},
		ErrorDetails: violations,
	})
}

// respondServerError writes the server error outcome, attaching the cause
// only when detail exposure is enabled.
func respondServerError(w http.ResponseWriter, err error) {
	env := Envelope{
		StatusCode: domain.StatusServerError.Code,
		Message:    domain.StatusServerError.Message,
		Data:       struct{}{},
	}
	if showServerErrors && err != nil {
		env.ErrorDetails = err.Error()
	}
	httpx.WriteJSON(w, http.StatusOK, env)
}
