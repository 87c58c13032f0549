package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	var cap capturingHandler
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rr := httptest.NewRecorder()

	require.NotPanics(t, func() {
		Recover(slog.New(&cap), next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "panic recovered", cap.record.Message)
	require.Equal(t, "boom", cap.attrs()["panic"].String())
}

func TestRecover_PassThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rr := httptest.NewRecorder()

	Recover(logger, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusTeapot, rr.Code)
}
