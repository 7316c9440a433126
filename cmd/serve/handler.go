package main

import (
	"net/http"
	"path"

	"go.uber.org/zap"
)

func newHandler(dir string, logger *zap.Logger) http.Handler {
	return &noCache{
		Handler: http.FileServer(http.Dir(dir)),
		logger:  logger,
	}
}

type noCache struct {
	http.Handler
	logger *zap.Logger
}

func (h *noCache) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	if path.Ext(r.URL.Path) == ".wasm" {
		w.Header().Set("Content-Type", "application/wasm")
	}
	h.logger.Debug("Request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	h.Handler.ServeHTTP(w, r)
}
