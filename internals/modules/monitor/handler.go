package monitor

import (
	"context"
	"net/http"

	middle "incident-board/internals/middleware"
	"incident-board/pkg/apperror"
	"incident-board/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type Lister interface {
	ListMonitors(ctx context.Context, userID uuid.UUID) ([]Summary, error)
}

type Handler struct {
	service Lister
}

func NewHandler(service Lister) *Handler {
	return &Handler{
		service: service,
	}
}

// GET /monitors
func (h *Handler) ListMonitors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)
	user, ok := middle.UserFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthorised, "")
		return
	}

	monitors, err := h.service.ListMonitors(ctx, user.UserID)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	m := make([]MonitorSummaryResponse, 0, len(monitors))
	for _, mon := range monitors {
		m = append(m, MonitorSummaryResponse{
			ID:            mon.ID,
			Name:          mon.Name,
			IncidentCount: mon.IncidentCount,
		})
	}

	utils.WriteJSON(w, http.StatusOK, reqID, utils.MonitorsRetrieved, ListMonitorsResponse{
		UserID:   user.UserID.String(),
		Monitors: m,
	})
}
