package http

import (
	"errors"
	"net/http"
	"slices"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/httpx"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// RevokeTokenHandler serves POST /v1/token/revoke. Rotating the target
// user's session marker kills all their outstanding refresh tokens.
type RevokeTokenHandler struct {
	TokenService *service.TokenService
}

type revokeTokenRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

// ServeHTTP godoc
//
//	@Summary		Revoke Refresh Tokens
//	@Description	Invalidates every outstanding refresh token for the given user. Callers may
//	@Description	revoke their own tokens; the admin scope may revoke anyone's, including
//	@Description	deactivated accounts.
//	@Tags			Token
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		revokeTokenRequest	true	"Target user"
//	@Success		200		{object}	Envelope
//	@Failure		401		{object}	Envelope	"missing or unverifiable access token"
//	@Failure		403		{object}	Envelope	"caller may not revoke this user's tokens"
//	@Router			/v1/token/revoke [post].
func (h *RevokeTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req revokeTokenRequest
	if violations := decodeAndValidate(r, &req); len(violations) > 0 {
		respondValidation(w, violations)
		return
	}

	// The target comes from the body, not the path, so the ownership
	// check cannot ride on the scope guard and happens here instead.
	scopes := httpx.ScopesFromContext(ctx)
	if !slices.Contains(scopes, domain.ScopeAdmin) &&
		!slices.Contains(scopes, domain.UserScope(req.UserID)) {
		respond(w, http.StatusForbidden, domain.StatusForbidden, nil)
		return
	}

	if err := h.TokenService.Revoke(ctx, req.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		default:
			slogx.FromContext(ctx).Error("token revocation failed", "err", err)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, nil)
}
