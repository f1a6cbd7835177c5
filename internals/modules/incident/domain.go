package incident

import (
	"time"
)

// CannotResolveStatusCode is the synthetic status code the checker records
// when the monitored host could not be resolved.
const CannotResolveStatusCode = 5000

// DownLabel is the label every row carries; the feed only holds down checks.
const DownLabel = "down"

// Incident is one check result belonging to a monitor.
type Incident struct {
	MonitorID  string    `json:"monitor_id"`
	CreatedAt  time.Time `json:"created_at"`
	Status     bool      `json:"status"`
	StatusCode int       `json:"status_code"`
}

// Monitor is a monitored endpoint and the checks recorded against it.
type Monitor struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Checks []Incident `json:"checks"`
}

// DisplayRow is a render-ready incident.
type DisplayRow struct {
	Index       int       `json:"id"`
	Label       string    `json:"label"`
	Status      bool      `json:"status"`
	Timestamp   string    `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
	MonitorID   string    `json:"monitor_id"`
	MonitorName string    `json:"monitor_name"`
	StatusCode  int       `json:"status_code"`
}

// Diagnostic reports a row the pipeline had to skip.
type Diagnostic struct {
	Kind      string    `json:"kind"`
	MonitorID string    `json:"monitor_id"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

// Result is the pipeline output for one scope and filter.
type Result struct {
	Rows        []DisplayRow
	HasAny      bool
	HasScoped   bool
	Diagnostics []Diagnostic
}
