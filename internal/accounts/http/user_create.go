package http

import (
	"errors"
	"net/http"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/pkg/slogx"
)

// CreateUserHandler serves POST /v1/user, the registration endpoint.
type CreateUserHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

type createUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"max=128"`
	Password    string `json:"password" validate:"required,min=6,max=128"`

	// IssueTokens requests a token pair alongside the created account so
	// clients can log the user in without a second round trip.
	IssueTokens bool `json:"issueTokens"`
}

type createUserResponse struct {
	User         domain.PublicUser `json:"user"`
	RefreshToken string            `json:"refreshToken,omitempty"`
	AccessToken  string            `json:"accessToken,omitempty"`
}

// ServeHTTP godoc
//
//	@Summary		Create Account
//	@Description	Registers a new account. When issueTokens is set the response also carries
//	@Description	a refresh and access token pair for the new user.
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createUserRequest	true	"New account"
//	@Success		200		{object}	Envelope			"statusCode 0 with data.user, or a domain failure code"
//	@Router			/v1/user [post].
func (h *CreateUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createUserRequest
	if violations := decodeAndValidate(r, &req); len(violations) > 0 {
		respondValidation(w, violations)
		return
	}

	user, err := h.UserService.Create(ctx, service.NewUser{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountExists):
			respondStatus(w, domain.StatusAccountCreationError)
		default:
			log.Error("account creation failed", "err", err)
			respondServerError(w, err)
		}
		return
	}

	resp := createUserResponse{User: user.Public()}

	if req.IssueTokens {
		refresh, err := h.TokenService.IssueRefreshToken(ctx, req.Email, req.Password)
		if err != nil {
			log.Error("post-creation token issuance failed", "err", err, "user_id", user.ID)
			respondServerError(w, err)
			return
		}
		claims, err := h.TokenService.Refresh.Verify(refresh)
		if err != nil {
			respondServerError(w, err)
			return
		}
		access, err := h.TokenService.IssueAccessToken(ctx, claims)
		if err != nil {
			respondServerError(w, err)
			return
		}
		resp.RefreshToken = refresh
		resp.AccessToken = access
	}

	respondOK(w, resp)
}
