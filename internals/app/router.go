package app

import (
	"context"
	"net/http"
	"time"

	middle "incident-board/internals/middleware"
	"incident-board/internals/modules/incident"
	"incident-board/internals/modules/monitor"
	"incident-board/pkg/apperror"
	"incident-board/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(c *Container) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middle.Logger(c.Logger))
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/healthz", c.healthz)

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(c.authMW.Handle)

		v1.Mount("/incidents", incident.Routes(c.incidentHandler))
		v1.Mount("/monitors", monitor.Routes(c.monitorHandler))
	})

	return r
}

// GET /healthz
func (c *Container) healthz(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	if c.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := c.health.Ping(ctx); err != nil {
			c.Logger.Error().Err(err).Msg("health check failed")
			utils.WriteError(w, http.StatusServiceUnavailable, reqID, apperror.Dependency, "database unavailable")
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, reqID, utils.ServiceHealthy, struct{}{})
}
