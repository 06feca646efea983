package http

import (
	"net/http"
	"time"

	"github.com/wayfarerhq/accounts/internal/accounts/domain"
	"github.com/wayfarerhq/accounts/internal/accounts/store"
	"github.com/wayfarerhq/accounts/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Verifies the database connection before reporting ready. A degraded
//	@Description	service answers 503.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	Envelope	"status, uptime, version, checks"
//	@Failure		503	{object}	Envelope	"not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok"}
		status := "ok"
		httpStatus := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, httpStatus, Envelope{
			StatusCode: domain.StatusOK.Code,
			Message:    domain.StatusOK.Message,
			Data: healthResponse{
				Status:  status,
				Uptime:  time.Since(startTime).String(),
				Version: version,
				Checks:  checks,
			},
		})
	}
}
