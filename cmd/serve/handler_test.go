package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.wasm"), []byte("\x00asm"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte("<html></html>"), 0644))

	h := newHandler(dir, zap.NewNop())

	testCases := map[string]struct {
		path        string
		status      int
		contentType string
	}{
		"Wasm":    {path: "/main.wasm", status: http.StatusOK, contentType: "application/wasm"},
		"HTML":    {path: "/page.html", status: http.StatusOK, contentType: "text/html; charset=utf-8"},
		"Missing": {path: "/none.js", status: http.StatusNotFound},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
		})
	}
}
