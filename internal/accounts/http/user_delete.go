package http

import (
	"errors"
	"net/http"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// DeleteUserHandler serves DELETE /v1/user/{id}. Deletion is a soft
// deactivation: the row survives but the account becomes invisible to
// authentication and its refresh tokens stop working.
type DeleteUserHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Deactivate Account
//	@Description	Soft-deletes the account. Requires the admin scope or the account's own
//	@Description	user scope. Deleting an already deactivated account reports user not found.
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	Envelope
//	@Failure		401	{object}	Envelope
//	@Failure		403	{object}	Envelope
//	@Router			/v1/user/{id} [delete].
func (h *DeleteUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, violations := pathUserID(r)
	if violations != nil {
		respondValidation(w, violations)
		return
	}

	if err := h.UserService.Deactivate(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		default:
			slogx.FromContext(ctx).Error("account deactivation failed", "err", err, "user_id", id)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, nil)
}
