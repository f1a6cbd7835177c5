package incident

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListIncidents)

	return r
}

/*
- GET: /incidents?monitor={all|monitorID}&filter={all|down|resolve}&limit={}&offset={}
	req auth : true
	body : nil
	resp : IncidentHistoryResponse
	errors : 400 invalid_filter_mode, 400 invalid_input, 404 not_found
*/
