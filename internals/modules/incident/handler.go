package incident

import (
	"net/http"
	"strconv"

	middle "incident-board/internals/middleware"
	"incident-board/pkg/apperror"
	"incident-board/pkg/utils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type Handler struct {
	fetcher     Fetcher
	validator   *validator.Validate
	logger      *zerolog.Logger
	rowsPerPage int
	opts        []Option
}

func NewHandler(fetcher Fetcher, validator *validator.Validate, logger *zerolog.Logger, rowsPerPage int, opts ...Option) *Handler {
	return &Handler{
		fetcher:     fetcher,
		validator:   validator,
		logger:      logger,
		rowsPerPage: rowsPerPage,
		opts:        opts,
	}
}

// GET /incidents?monitor=all&filter=down&limit=12&offset=0
func (h *Handler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)
	user, ok := middle.UserFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, reqID, apperror.Unauthorised, "")
		return
	}

	q, err := h.parseQuery(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "limit and offset must be integers")
		return
	}
	if err := h.validator.Struct(q); err != nil {
		utils.WriteError(w, http.StatusBadRequest, reqID, apperror.InvalidInput, "limit must be 1-500 and offset non-negative")
		return
	}

	mode, err := ParseFilterMode(q.Filter)
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	ctrl := NewController(h.fetcher, h.logger, h.opts...)
	if err := ctrl.Refresh(ctx, user.UserID); err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}
	if err := ctrl.SetFilter(mode); err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}
	if err := ctrl.SetScope(ParseScope(q.Monitor)); err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	view, err := ctrl.View()
	if err != nil {
		utils.FromAppError(w, reqID, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, reqID, utils.IncidentsRetrieved, newIncidentHistoryResponse(view, q.Limit, q.Offset))
}

func (h *Handler) parseQuery(r *http.Request) (ListIncidentsQuery, error) {
	values := r.URL.Query()

	q := ListIncidentsQuery{
		Monitor: values.Get("monitor"),
		Filter:  values.Get("filter"),
		Limit:   h.rowsPerPage,
	}

	if s := values.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return q, err
		}
		q.Limit = n
	}
	if s := values.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return q, err
		}
		q.Offset = n
	}

	return q, nil
}
