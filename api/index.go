package handler

import (
	"net/http"

	"tavola/config"
	"tavola/di"
	"tavola/shared/logger"
	"tavola/transport/http/response"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.Init(cfg)

	handler, cleanup, err := di.InitializeService()
	if err != nil {
		response.WithUnhealthy(w)

		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
