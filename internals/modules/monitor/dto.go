package monitor

type MonitorSummaryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IncidentCount int    `json:"incident_count"`
}

type ListMonitorsResponse struct {
	UserID   string                   `json:"user_id"`
	Monitors []MonitorSummaryResponse `json:"monitors"`
}
