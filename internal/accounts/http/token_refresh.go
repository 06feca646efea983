package http

import (
	"errors"
	"net/http"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// RefreshTokenHandler serves POST /v1/token/refresh, the credential login
// endpoint.
type RefreshTokenHandler struct {
	TokenService *service.TokenService
}

type refreshTokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenResponse struct {
	RefreshToken string `json:"refreshToken"`
}

// ServeHTTP godoc
//
//	@Summary		Issue Refresh Token
//	@Description	Authenticates email and password and returns a long-lived refresh token.
//	@Description	Issuing a new refresh token invalidates every previously issued one for the same user.
//	@Tags			Token
//	@Accept			json
//	@Produce		json
//	@Param			body	body		refreshTokenRequest	true	"Credentials"
//	@Success		200		{object}	Envelope			"statusCode 0 with data.refreshToken, or a domain failure code"
//	@Router			/v1/token/refresh [post].
func (h *RefreshTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req refreshTokenRequest
	if violations := decodeAndValidate(r, &req); len(violations) > 0 {
		respondValidation(w, violations)
		return
	}

	token, err := h.TokenService.IssueRefreshToken(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		case errors.Is(err, service.ErrPasswordIncorrect):
			respondStatus(w, domain.StatusPasswordIncorrect)
		default:
			slogx.FromContext(ctx).Error("refresh token issuance failed", "err", err)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, refreshTokenResponse{RefreshToken: token})
}
