package monitor

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListMonitors)

	return r
}

/*
- GET: /monitors -> monitors of the user, for the scope selector
	req auth : true
	body : nil
	resp : ListMonitorsResponse
*/
