package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewUsesPort(t *testing.T) {
	logger := zerolog.Nop()
	s := New(9090, http.NotFoundHandler(), &logger)

	if s.Addr() != ":9090" {
		t.Fatalf("Addr() = %q", s.Addr())
	}
}

func TestStartAndShutdown(t *testing.T) {
	logger := zerolog.Nop()
	s := New(0, http.NotFoundHandler(), &logger)

	s.Start()
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}
