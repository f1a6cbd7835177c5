package incident

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func check(monitorID string, sec int64, status bool, code int) Incident {
	return Incident{MonitorID: monitorID, CreatedAt: at(sec), Status: status, StatusCode: code}
}

func mustStore(t *testing.T, monitors ...Monitor) *Store {
	t.Helper()
	s, err := NewStore(monitors)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
