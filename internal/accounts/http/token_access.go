package http

import (
	"errors"
	"net/http"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/httpx"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// AccessTokenHandler serves POST /v1/token/access, exchanging a live
// refresh token for a short-lived access token.
type AccessTokenHandler struct {
	TokenService *service.TokenService
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// ServeHTTP godoc
//
//	@Summary		Exchange Refresh Token
//	@Description	Exchanges a refresh token for an access token. The refresh token's signature is
//	@Description	checked by the auth guard; this handler additionally checks the stored session
//	@Description	marker, so a refresh token survives signature verification but fails here once a
//	@Description	newer login or a revocation rotated the marker.
//	@Tags			Token
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	Envelope	"statusCode 0 with data.accessToken, or a domain failure code"
//	@Failure		401	{object}	Envelope	"missing or unverifiable refresh token"
//	@Failure		403	{object}	Envelope	"token lacks the refresh scope"
//	@Router			/v1/token/access [post].
func (h *AccessTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		respond(w, http.StatusUnauthorized, domain.StatusUnauthorized, nil)
		return
	}

	token, err := h.TokenService.IssueAccessToken(ctx, claims)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondStatus(w, domain.StatusUserNotFound)
		case errors.Is(err, service.ErrInvalidToken):
			respondStatus(w, domain.StatusInvalidToken)
		default:
			slogx.FromContext(ctx).Error("access token issuance failed", "err", err)
			respondServerError(w, err)
		}
		return
	}

	respondOK(w, accessTokenResponse{AccessToken: token})
}
