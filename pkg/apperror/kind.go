package apperror

type Kind string

var (
	// --- Request ---
	InvalidInput   Kind = "invalid_input"
	Unauthorised   Kind = "unauthorised"
	Forbidden      Kind = "forbidden"
	RequestTimeout Kind = "request_timeout"

	// --- Resources ---
	AlreadyExists Kind = "already_exist"
	NotFound      Kind = "not_found"
	Conflict      Kind = "conflict"

	// --- Incident engine ---
	InvalidFilterMode        Kind = "invalid_filter_mode"
	DanglingMonitorReference Kind = "dangling_monitor_reference"

	// --- Infra ---
	Internal    Kind = "internal"
	Dependency  Kind = "dependency_failure"
	DatabaseErr Kind = "database_error"
)
