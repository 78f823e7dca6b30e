package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		headers    []int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "untouched", wantStatus: 0},
		{name: "explicit status", headers: []int{http.StatusAccepted}, wantStatus: http.StatusAccepted},
		{name: "second header ignored", headers: []int{http.StatusNotFound, http.StatusInternalServerError}, wantStatus: http.StatusNotFound},
		{name: "implicit ok", writes: []string{"<html>"}, wantStatus: http.StatusOK, wantSize: 6},
		{name: "size accumulates", headers: []int{http.StatusServiceUnavailable}, writes: []string{"off", "line"}, wantStatus: http.StatusServiceUnavailable, wantSize: 7},
		{name: "empty write", writes: []string{""}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.headers {
				w.WriteHeader(code)
			}
			for _, chunk := range tt.writes {
				_, err := w.Write([]byte(chunk))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, rr.Code)
			}
		})
	}
}

func TestResponseWriter_HeadersReachUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("X-Mapster-Cache", "hit")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "hit", rr.Header().Get("X-Mapster-Cache"))
}

func TestResponseWriter_Flush(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Flush()

	assert.True(t, rr.Flushed)
	assert.Equal(t, http.StatusOK, w.status)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	require.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
