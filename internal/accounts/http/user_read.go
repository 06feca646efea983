package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// ReadUserHandler serves GET /v1/user/{id}.
type ReadUserHandler struct {
	UserService *service.UserService
}

// pathUserID parses the {id} path value. A non-numeric id is reported as a
// validation failure.
func pathUserID(r *http.Request) (int64, []domain.FieldViolation) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, []domain.FieldViolation{{Path: "id", Message: "must be a positive integer"}}
	}
	return id, nil
}

// ServeHTTP godoc
//
//	@Summary		Get Account
//	@Description	Returns the public view of an account. Requires the admin scope or the
//	@Description	account's own user scope.
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int			true	"User id"
//	@Success		200	{object}	Envelope	"statusCode 0 with data.user, or a domain failure code"
//	@Failure		401	{object}	Envelope
//	@Failure		403	{object}	Envelope	"token does not cover this user id"
//	@Router			/v1/user/{id} [get].
func (h *ReadUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, violations := pathUserID(r)
	if violations != nil {
		respondValidation(w, violations)
		return
	}

	user, err := h.UserService.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		default:
			slogx.FromContext(ctx).Error("user lookup failed", "err", err, "user_id", id)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, map[string]any{"user": user.Public()})
}
