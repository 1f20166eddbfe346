package http

import (
	"net/http"
	"time"

	"github.com/BishowDevkota/trekking-company/internal/trek/assets"
	"github.com/BishowDevkota/trekking-company/internal/trek/search"
	"github.com/BishowDevkota/trekking-company/internal/trek/store"
	"github.com/BishowDevkota/trekking-company/pkg/httpx"
	"github.com/BishowDevkota/trekking-company/pkg/trekclient"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	trekclient.HealthResponse	"status, uptime, version"
//	@Router			/livez [get]
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, trekclient.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness endpoint reporting the database, asset host and search index
//	@Description	The search check is omitted when no search cluster is configured
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	trekclient.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	trekclient.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get]
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	host assets.Host,
	index search.Index,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		checks := &trekclient.HealthChecks{
			Database: "ok",
			Assets:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		degrade := func(check *string, err error) {
			*check = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := st.Ping(ctx); err != nil {
			degrade(&checks.Database, err)
		}
		if err := host.Ping(ctx); err != nil {
			degrade(&checks.Assets, err)
		}

		// Search has a store fallback, so a failing cluster degrades the
		// report without failing readiness.
		if index != nil {
			checks.Search = "ok"
			if err := index.Ping(ctx); err != nil {
				checks.Search = "error: " + err.Error()
				overallStatus = "degraded"
			}
		}

		httpx.WriteJSON(w, statusCode, trekclient.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
