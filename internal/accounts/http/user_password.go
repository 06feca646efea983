package http

import (
	"errors"
	"net/http"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// UpdatePasswordHandler serves POST /v1/user/{id}/password/update.
type UpdatePasswordHandler struct {
	UserService *service.UserService
}

type updatePasswordRequest struct {
	Password        string `json:"password" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// ServeHTTP godoc
//
//	@Summary		Change Password
//	@Description	Changes the account password after verifying the old one. The new password
//	@Description	must differ from the current one. A fresh salt and session marker are
//	@Description	generated, so every outstanding refresh token is invalidated.
//	@Tags			User
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User id"
//	@Param			body	body		updatePasswordRequest	true	"Old password, new password and confirmation"
//	@Success		200		{object}	Envelope
//	@Failure		401		{object}	Envelope
//	@Failure		403		{object}	Envelope
//	@Router			/v1/user/{id}/password/update [post].
func (h *UpdatePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, violations := pathUserID(r)
	if violations != nil {
		respondValidation(w, violations)
		return
	}

	var req updatePasswordRequest
	if violations := decodeAndValidate(r, &req); len(violations) > 0 {
		respondValidation(w, violations)
		return
	}

	if err := h.UserService.UpdatePassword(ctx, id, req.Password, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		case errors.Is(err, service.ErrPasswordIncorrect):
			respondStatus(w, domain.StatusPasswordIncorrect)
		case errors.Is(err, service.ErrOldPasswordUsed):
			respondStatus(w, domain.StatusOldPasswordUsed)
		default:
			slogx.FromContext(ctx).Error("password update failed", "err", err, "user_id", id)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, nil)
}

// ResetPasswordHandler serves POST /v1/user/password/reset, an admin-only
// operation that replaces the target's password with a generated one.
type ResetPasswordHandler struct {
	UserService *service.UserService
}

type resetPasswordRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

type resetPasswordResponse struct {
	Password string `json:"password"`
}

// ServeHTTP godoc
//
//	@Summary		Reset Password
//	@Description	Generates a new random password for the target account and returns it.
//	@Description	Reaches deactivated accounts. Admin only.
//	@Tags			User
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		resetPasswordRequest	true	"Target user"
//	@Success		200		{object}	Envelope				"statusCode 0 with data.password, or a domain failure code"
//	@Failure		401		{object}	Envelope
//	@Failure		403		{object}	Envelope	"caller lacks the admin scope"
//	@Router			/v1/user/password/reset [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req resetPasswordRequest
	if violations := decodeAndValidate(r, &req); len(violations) > 0 {
		respondValidation(w, violations)
		return
	}

	password, err := h.UserService.ResetPassword(ctx, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		default:
			slogx.FromContext(ctx).Error("password reset failed", "err", err, "user_id", req.UserID)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, resetPasswordResponse{Password: password})
}
