package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"op and err", &Error{Op: "repo.monitor.list", Err: cause}, "repo.monitor.list: boom"},
		{"err only", &Error{Err: cause}, "boom"},
		{"op and message", &Error{Op: "incident.scope.resolve", Message: "monitor not found"}, "incident.scope.resolve: monitor not found"},
		{"op only", &Error{Op: "incident.scope.resolve"}, "incident.scope.resolve"},
		{"empty", &Error{}, "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := &Error{Kind: NotFound, Op: "incident.scope.resolve"}
	wrapped := fmt.Errorf("view: %w", base)

	if !IsKind(wrapped, NotFound) {
		t.Fatal("expected NotFound through fmt wrapping")
	}
	if IsKind(wrapped, InvalidFilterMode) {
		t.Fatal("did not expect InvalidFilterMode")
	}
	if KindOf(wrapped) != NotFound {
		t.Fatalf("KindOf = %s", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != Internal {
		t.Fatal("plain errors should be Internal")
	}
}

func TestWithErrCapturesStackForInternal(t *testing.T) {
	e := (&Error{Kind: Internal}).WithErr(errors.New("x"))
	if len(e.Stack) == 0 {
		t.Fatal("expected stack for internal error")
	}

	e = (&Error{Kind: NotFound}).WithErr(errors.New("x"))
	if len(e.Stack) != 0 {
		t.Fatal("did not expect stack for not found")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(InvalidFilterMode, "op", nil), http.StatusBadRequest},
		{New(NotFound, "op", nil), http.StatusNotFound},
		{New(Unauthorised, "op", nil), http.StatusUnauthorized},
		{New(RequestTimeout, "op", nil), http.StatusGatewayTimeout},
		{New(Dependency, "op", nil), http.StatusBadGateway},
		{New(Conflict, "op", nil), http.StatusConflict},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
