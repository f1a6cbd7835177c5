package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"incident-board/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

func TestWrapRepoError(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name             string
		err              error
		notFoundPossible bool
		want             apperror.Kind
	}{
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), false, apperror.RequestTimeout},
		{"cancelled", context.Canceled, true, apperror.RequestTimeout},
		{"no rows expected", pgx.ErrNoRows, true, apperror.NotFound},
		{"no rows unexpected", pgx.ErrNoRows, false, apperror.Internal},
		{"postgres", &pgconn.PgError{Code: "42P01", TableName: "monitor_checks"}, false, apperror.DatabaseErr},
		{"other", errors.New("conn reset"), false, apperror.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoError("repo.monitor.list", tt.err, tt.notFoundPossible, &log)
			if got := apperror.KindOf(err); got != tt.want {
				t.Fatalf("kind = %s, want %s (%v)", got, tt.want, err)
			}
		})
	}

	if WrapRepoError("op", nil, false, &log) != nil {
		t.Fatal("nil error must stay nil")
	}
}
