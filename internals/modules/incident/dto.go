package incident

type ListIncidentsQuery struct {
	Monitor string
	Filter  string
	Limit   int `validate:"gte=1,lte=500"`
	Offset  int `validate:"gte=0"`
}

type MonitorOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type IncidentHistoryResponse struct {
	State     State           `json:"state"`
	Message   string          `json:"message,omitempty"`
	Scope     string          `json:"scope"`
	Filter    FilterMode      `json:"filter"`
	HasAny    bool            `json:"has_any"`
	HasScoped bool            `json:"has_scoped"`
	Total     int             `json:"total"`
	Limit     int             `json:"limit"`
	Offset    int             `json:"offset"`
	Rows      []DisplayRow    `json:"rows"`
	Monitors  []MonitorOption `json:"monitors"`
}

func newIncidentHistoryResponse(v View, limit, offset int) IncidentHistoryResponse {
	rows := v.Result.Rows
	total := len(rows)

	start := min(offset, total)
	end := min(start+limit, total)
	page := make([]DisplayRow, end-start)
	copy(page, rows[start:end])

	monitors := make([]MonitorOption, 0, len(v.Monitors))
	for _, m := range v.Monitors {
		monitors = append(monitors, MonitorOption{ID: m.ID, Name: m.Name})
	}

	return IncidentHistoryResponse{
		State:     v.State,
		Message:   v.State.Message(),
		Scope:     v.Scope.String(),
		Filter:    v.Filter,
		HasAny:    v.Result.HasAny,
		HasScoped: v.Result.HasScoped,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
		Rows:      page,
		Monitors:  monitors,
	}
}
