package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"docket-k8s/internal/config"
)

// Version is set via -ldflags "-X docket-k8s/internal/handler.Version=..."
var Version = "latest"

var (
	startTime = time.Now()
	warmupDur = time.Second
)

// InitConfig initializes handler state from config.Config
func InitConfig(cfg config.Config) {
	warmupDur = cfg.ReadinessWarmup()
	startTime = time.Now()
}

// SetStartTime lets tests override the launch moment to exercise /readyz
func SetStartTime(t time.Time) { startTime = t }

// writeJSON helper
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
