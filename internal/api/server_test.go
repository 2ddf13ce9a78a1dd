package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"docket-k8s/internal/config"
	"docket-k8s/internal/handler"
)

func testConfig() config.Config {
	return config.Config{Port: "8080", ReadinessWarmupSeconds: 0, ShutdownTimeoutSeconds: 5}
}

func performRequest(t *testing.T, mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHello(t *testing.T) {
	mux := NewMux(testConfig())
	rec := performRequest(t, mux, http.MethodGet, "/api/hello")
	if rec.Code != http.StatusOK {
		b, _ := io.ReadAll(rec.Body)
		t.Fatalf("expected 200, got %d body=%s", rec.Code, string(b))
	}
	if got := rec.Body.String(); got != handler.Greeting {
		t.Fatalf("unexpected body: %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type: %q", ct)
	}
}

func TestHelloConcurrent(t *testing.T) {
	mux := NewMux(testConfig())
	const n = 100
	var wg sync.WaitGroup
	errCh := make(chan string, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK || rec.Body.String() != handler.Greeting {
				errCh <- fmt.Sprintf("code=%d body=%s", rec.Code, rec.Body.String())
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for msg := range errCh {
		t.Fatalf("concurrent request mismatch: %s", msg)
	}
}

func TestUnknownPath(t *testing.T) {
	mux := NewMux(testConfig())
	rec := performRequest(t, mux, http.MethodGet, "/api/unknown")
	if rec.Code != http.StatusNotFound {
		b, _ := io.ReadAll(rec.Body)
		t.Fatalf("expected 404, got %d body=%s", rec.Code, string(b))
	}
}

func TestHealthz(t *testing.T) {
	mux := NewMux(testConfig())
	rec := performRequest(t, mux, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		b, _ := io.ReadAll(rec.Body)
		t.Fatalf("expected 200, got %d body=%s", rec.Code, string(b))
	}
}

func TestVersion(t *testing.T) {
	mux := NewMux(testConfig())
	rec := performRequest(t, mux, http.MethodGet, "/version")
	if rec.Code != http.StatusOK {
		b, _ := io.ReadAll(rec.Body)
		t.Fatalf("expected 200, got %d body=%s", rec.Code, string(b))
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("empty body for /version")
	}
}

func TestSwaggerJSON(t *testing.T) {
	mux := NewMux(testConfig())
	rec := performRequest(t, mux, http.MethodGet, "/swagger.json")
	if rec.Code != http.StatusOK {
		b, _ := io.ReadAll(rec.Body)
		t.Fatalf("expected 200, got %d body=%s", rec.Code, string(b))
	}
	if rec.Body.Len() == 0 {
		t.Fatalf("swagger json empty")
	}
}
