package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
)

func TestBuildHandler_ServesLandingPage(t *testing.T) {
	defer timeouts.Reset()

	coreCfg := &config.CoreConfig{Env: "prod"}
	appCfg := completeAppConfig()
	appCfg.SiteName = "Jo Doe"
	appCfg.SiteIntroHTML = `<p>Hello there</p><script>alert(1)</script>`
	appCfg.CSPConnectSrc = []string{"https://api.example.com"}

	if err := Startup(context.Background(), coreCfg, appCfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup() error: %v", err)
	}
	handler, err := BuildHandler(coreCfg, appCfg, DBDeps{}, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler() error: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /: got %d, want %d (body %q)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	csp := rec.Header().Get("Content-Security-Policy")
	for _, want := range []string{"default-src 'self'", "connect-src 'self' https://api.example.com"} {
		if !strings.Contains(csp, want) {
			t.Errorf("Content-Security-Policy = %q, missing %q", csp, want)
		}
	}

	body := rec.Body.String()
	for _, want := range []string{`id="contact-form"`, `name="_gotcha"`, "<title>Jo Doe</title>", "<p>Hello there</p>"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "alert(1)") {
		t.Error("intro script was not sanitized")
	}
}

func TestBuildHandler_APIRoutes(t *testing.T) {
	defer timeouts.Reset()

	coreCfg := &config.CoreConfig{Env: "prod"}
	if err := Startup(context.Background(), coreCfg, completeAppConfig(), DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup() error: %v", err)
	}
	handler, err := BuildHandler(coreCfg, completeAppConfig(), DBDeps{}, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler() error: %v", err)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/api/health", http.StatusOK},
		{"OPTIONS", "/api/contact", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
