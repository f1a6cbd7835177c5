package utils

const (
	IncidentsRetrieved = "incident history retrieved"
	MonitorsRetrieved  = "monitors retrieved"
	ServiceHealthy     = "ok"
)
