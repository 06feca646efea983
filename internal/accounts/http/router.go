package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/service"
	"github.com/wayfarerhq/accounts/internal/accounts/store"
	"github.com/wayfarerhq/accounts/pkg/httpx"
	"github.com/wayfarerhq/accounts/pkg/jwtx"
	"github.com/wayfarerhq/accounts/pkg/slogx"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/wayfarerhq/accounts/api/accounts" // Swagger docs
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	refresh      jwtx.Verifier
	access       jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	TokenService *service.TokenService
	UserService  *service.UserService
}

func NewRouter(
	refresh, access jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		refresh:      refresh,
		access:       access,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerTokens()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	Account management and token service. Issues long-lived refresh tokens and
//	@description	short-lived access tokens signed with HS256 under two independent secrets.
//	@description
//	@description				Every endpoint answers with a uniform envelope: statusCode carries the domain
//	@description				outcome while the HTTP status is reserved for transport failures.
//	@description
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT token, bare or with the "Bearer " prefix.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerTokens() {
	// POST /token/refresh - credential login, strict limit against brute force
	refreshHandler := &RefreshTokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/token/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /token/access - guarded by the refresh strategy; the live
	// session check happens inside the handler
	accessHandler := &AccessTokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/token/access",
		httpx.Chain(accessHandler,
			Authn(r.refresh),
			RequireScope(domain.ScopeRefresh),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /token/revoke - guarded by the access strategy; ownership of
	// the body's userId is checked in the handler
	revokeHandler := &RevokeTokenHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/token/revoke",
		httpx.Chain(revokeHandler,
			Authn(r.access),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	// POST /user - public registration, strict limit
	createHandler := &CreateUserHandler{UserService: r.UserService, TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/user",
		httpx.Chain(createHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	readHandler := &ReadUserHandler{UserService: r.UserService}
	r.Mux.Handle("GET /v1/user/{id}",
		httpx.Chain(readHandler,
			Authn(r.access),
			RequireScope(domain.ScopeAdmin, domain.ScopeUserID),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	updateHandler := &UpdateUserHandler{UserService: r.UserService}
	r.Mux.Handle("PUT /v1/user/{id}",
		httpx.Chain(updateHandler,
			Authn(r.access),
			RequireScope(domain.ScopeAdmin, domain.ScopeUserID),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	deleteHandler := &DeleteUserHandler{UserService: r.UserService}
	r.Mux.Handle("DELETE /v1/user/{id}",
		httpx.Chain(deleteHandler,
			Authn(r.access),
			RequireScope(domain.ScopeAdmin, domain.ScopeUserID),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	passwordHandler := &UpdatePasswordHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/user/{id}/password/update",
		httpx.Chain(passwordHandler,
			Authn(r.access),
			RequireScope(domain.ScopeAdmin, domain.ScopeUserID),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	resetHandler := &ResetPasswordHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/user/password/reset",
		httpx.Chain(resetHandler,
			Authn(r.access),
			RequireScope(domain.ScopeAdmin),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
