package api

import (
	"net/http"

	"docket-k8s/docs"
	"docket-k8s/internal/config"
	"docket-k8s/internal/handler"
)

// NewMux returns the route table with handler state initialized.
// Routes are registered with exact patterns so anything else gets the
// mux default 404.
func NewMux(cfg config.Config) *http.ServeMux {
	handler.InitConfig(cfg)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hello", handler.Hello)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	mux.HandleFunc("GET /version", handler.VersionHandler)
	mux.HandleFunc("GET /swagger.json", docs.SwaggerJSON)
	mux.HandleFunc("GET /swagger", docs.SwaggerUI)
	mux.HandleFunc("GET /swagger/", docs.SwaggerUI)
	return mux
}
