package handler

import (
	"net/http"
	"runtime"
)

// Greeting is the fixed response body of /api/hello. The value is kept
// byte-for-byte compatible with the original service.
const Greeting = "Hello from Docker spring boot app"

// swagger:route GET /api/hello hello hello
// Returns the fixed greeting message.
// responses:
//
//	200: helloResponse
func Hello(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Greeting))
}

// swagger:route GET /version version version
// Returns service version & go runtime.
// responses:
//
//	200: versionResponse
func VersionHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": Version,
		"go":      runtime.Version(),
	})
}
