package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// UpdateUserHandler serves PUT /v1/user/{id}, a partial profile update.
type UpdateUserHandler struct {
	UserService *service.UserService
}

// forbiddenProfileKeys are credential and authorization fields that must
// never be writable through the profile endpoint, even by admins.
var forbiddenProfileKeys = []string{"password", "passwordHash", "salt", "jti", "admin", "active", "id"}

type updateUserRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email       *string `json:"email" validate:"omitempty,email"`
	DisplayName *string `json:"displayName" validate:"omitempty,max=128"`
}

// ServeHTTP godoc
//
//	@Summary		Update Account
//	@Description	Applies a partial profile update. Absent fields stay unchanged. Credential
//	@Description	fields are rejected outright; passwords change only through the dedicated
//	@Description	password endpoints.
//	@Tags			User
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"User id"
//	@Param			body	body		updateUserRequest	true	"Fields to change"
//	@Success		200		{object}	Envelope			"statusCode 0 with data.user, or a domain failure code"
//	@Failure		401		{object}	Envelope
//	@Failure		403		{object}	Envelope
//	@Router			/v1/user/{id} [put].
func (h *UpdateUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, violations := pathUserID(r)
	if violations != nil {
		respondValidation(w, violations)
		return
	}

	// Decode into a raw map first so forbidden keys are caught even
	// though the typed request struct would silently drop them.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondValidation(w, []domain.FieldViolation{{Path: "body", Message: "invalid JSON body"}})
		return
	}
	for _, key := range forbiddenProfileKeys {
		if _, present := raw[key]; present {
			violations = append(violations, domain.FieldViolation{
				Path: key, Message: "cannot be updated through this endpoint",
			})
		}
	}
	if len(violations) > 0 {
		respondValidation(w, violations)
		return
	}

	var req updateUserRequest
	if err := rebind(raw, &req); err != nil {
		respondValidation(w, []domain.FieldViolation{{Path: "body", Message: "invalid JSON body"}})
		return
	}
	if violations := validateStruct(&req); len(violations) > 0 {
		respondValidation(w, violations)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx, id, domain.Profile{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		case errors.Is(err, service.ErrAccountExists):
			respondValidation(w, []domain.FieldViolation{{Path: "email", Message: "already in use"}})
		default:
			slogx.FromContext(ctx).Error("profile update failed", "err", err, "user_id", id)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, map[string]any{"user": user.Public()})
}

// rebind re-decodes an already parsed JSON object into a typed struct.
func rebind(raw map[string]json.RawMessage, dst any) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dst)
}
